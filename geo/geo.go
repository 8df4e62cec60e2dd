/*------------------------------------------------------------------------------
* geo.go : geodetic utilities — longitude normalisation and heading frame
*          correction
*
* notes  : lat_lon_to_enu is performed by callers (see internal/ingest); this
*          package only holds the small pieces of geodesy the core itself
*          needs: folding longitude into [-180, 180) and converting a GPS
*          compass heading into the math-frame angle the pose/trig layers
*          use.
*
*          Copyright (C) 2024-2026 by feng xuebin, All rights reserved.
*-----------------------------------------------------------------------------*/
package geo

import (
	"github.com/xbfeng/tbspgo/fixed"
	"github.com/xbfeng/tbspgo/trig"
)

const (
	Deg360 = fixed.F(360 * fixed.Scale)
	Deg180 = fixed.F(180 * fixed.Scale)
	Deg90  = fixed.F(90 * fixed.Scale)
)

// NormalizeLon folds a fixed-point degree longitude into [-180, 180) by
// repeated +/-360 degree addition. Idempotent.
func NormalizeLon(lon fixed.F) fixed.F {
	for lon >= Deg180 {
		lon = fixed.Sub(lon, Deg360)
	}
	for lon < -Deg180 {
		lon = fixed.Add(lon, Deg360)
	}
	return lon
}

// HeadingToAngle converts a GPS compass heading (fixed-point degrees, 0 =
// true north, clockwise) into the internal math-frame angle (0 = east,
// counter-clockwise), applying the +90 degree frame correction, wrapping
// into [0, 360), then scaling into trig.Angle using a 64-bit intermediate.
func HeadingToAngle(headingDeg fixed.F) trig.Angle {
	corrected := fixed.Add(headingDeg, Deg90)

	wrapped := corrected
	for wrapped >= Deg360 {
		wrapped = fixed.Sub(wrapped, Deg360)
	}
	for wrapped < 0 {
		wrapped = fixed.Add(wrapped, Deg360)
	}

	// wrapped is a Q16.16 degree value; the represented degree count is
	// wrapped/65536, and we want degree*2^32/360. Both factors of 65536
	// cancel, leaving a single 64-bit integer division.
	units := (int64(wrapped) * (1 << 16)) / 360
	return trig.Angle(uint32(units))
}
