// Package ingest is the boundary between an external AIS/GPS feed and the
// deterministic core: it owns the flat-earth lat/lon-to-ENU conversion the
// core itself assumes has already happened, since the core only consumes
// already-converted east/north/up metres. Positions arrive as
// github.com/paulmach/orb points, a common lon/lat representation in
// Go geospatial tooling, and leave as pose.Pose values ready for
// tbsp.Root.InsertPose.
package ingest

import (
	"github.com/paulmach/orb"

	"github.com/xbfeng/tbspgo/fixed"
	"github.com/xbfeng/tbspgo/pose"
	"github.com/xbfeng/tbspgo/trig"
)

// KilometersPerDegree is the flat-earth approximation constant the T-BSP
// cell grid is built on, reused here for the ENU projection so that the
// Origin's north-south metre scale matches the cell grid. The east-west
// scale additionally applies cos(lat0), which the cell grid does not.
const KilometersPerDegree = 111.32

// Origin is the voyage's reference point, in plain floating-point degrees.
// Projection is a one-time-per-report operation at the ingest boundary, not
// part of the deterministic core, so floating point is acceptable here;
// the core downstream of it stays integer-only.
type Origin struct {
	LatDeg float64
	LonDeg float64

	cosLat0 float64
}

// NewOrigin precomputes cos(lat0) once so every subsequent Project call is
// a pair of multiplies.
func NewOrigin(latDeg, lonDeg float64) Origin {
	angle := degToAngle(latDeg)
	cosQ16 := trig.CosOf(angle)
	return Origin{LatDeg: latDeg, LonDeg: lonDeg, cosLat0: cosQ16.ToFloat()}
}

// degToAngle converts a plain degree value into the 2^32-unit angle space,
// with no heading frame correction — this is a bare degrees-to-angle
// conversion for evaluating cos(latitude), not a compass heading.
func degToAngle(deg float64) trig.Angle {
	wrapped := deg
	for wrapped >= 360 {
		wrapped -= 360
	}
	for wrapped < 0 {
		wrapped += 360
	}
	units := (wrapped / 360) * (1 << 32)
	return trig.Angle(uint32(int64(units)))
}

// Project converts a lat/lon point into ENU east/north metres (as 16.16
// fixed-point values) relative to Origin, using the same K ≈ 111.32 km/deg
// constant the T-BSP cell grid is built on.
func (o Origin) Project(pt orb.Point) (east, north fixed.F) {
	dLonDeg := pt.Lon() - o.LonDeg
	dLatDeg := pt.Lat() - o.LatDeg

	eastKm := dLonDeg * KilometersPerDegree * o.cosLat0
	northKm := dLatDeg * KilometersPerDegree

	return fixed.FromFloat(eastKm * 1000), fixed.FromFloat(northKm * 1000)
}

// Report is one externally-sourced position fix, before ENU projection.
type Report struct {
	MMSI       uint32
	Point      orb.Point
	HeadingDeg fixed.F
	UpM        fixed.F
	Timestamp  uint32
}

// ToPose projects r against o and builds the Pose the core consumes.
func (o Origin) ToPose(r Report) pose.Pose {
	east, north := o.Project(r.Point)
	return pose.FromGPS(east, north, r.UpM, r.HeadingDeg, r.Timestamp, r.MMSI)
}
