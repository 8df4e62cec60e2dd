/*------------------------------------------------------------------------------
* trig.go : sine/cosine lookup over a 2^32 angle circle
*
* notes  : Angle represents the full circle as 2^32 units: 0 = 0 deg,
*          0x40000000 = 90 deg, 0x80000000 = 180 deg, 0xC0000000 = 270 deg.
*          Wraparound is free (uint32 arithmetic). The table has tableSize
*          (8192) entries; SinOf indexes it with the top 13 bits of the
*          angle. SinOfInterp additionally linearly interpolates using the
*          next 16 bits as a Q16 fraction, for callers who need smoother
*          output than the raw 0.044 deg table resolution.
*
*          Copyright (C) 2024-2026 by feng xuebin, All rights reserved.
*-----------------------------------------------------------------------------*/
package trig

import "github.com/xbfeng/tbspgo/fixed"

// Angle is the full-circle angle representation: value/2^32 revolutions.
type Angle uint32

const (
	quarterTurn     Angle = 1 << 30 // 90 degrees
	tableIndexShift       = 32 - 13
	tableIndexMask        = tableSize - 1
)

// SinOf returns sin(a) in Q16.16, read directly from the table with no
// interpolation.
func SinOf(a Angle) fixed.F {
	return sine[(a>>tableIndexShift)&tableIndexMask]
}

// CosOf returns cos(a) in Q16.16 by indexing the sine table at a 90 degree
// offset.
func CosOf(a Angle) fixed.F {
	return SinOf(a + quarterTurn)
}

// SinOfInterp returns sin(a) in Q16.16, linearly interpolating between the
// two nearest table entries using the bits below the table index as a Q16
// fractional weight.
func SinOfInterp(a Angle) fixed.F {
	idx := (a >> tableIndexShift) & tableIndexMask
	next := (idx + 1) & tableIndexMask
	frac := fixed.F((a << 13) >> 16) // bits [18:3) as Q16 fraction in [0,1)

	lo := sine[idx]
	hi := sine[next]
	return lo + fixed.Mul(hi-lo, frac)
}

// CosOfInterp is the interpolated counterpart to CosOf.
func CosOfInterp(a Angle) fixed.F {
	return SinOfInterp(a + quarterTurn)
}
