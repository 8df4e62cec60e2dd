/*------------------------------------------------------------------------------
* rotation.go : 3x3 rigid-body rotation matrices in Q16.16, row-major
*
*          Copyright (C) 2024-2026 by feng xuebin, All rights reserved.
*-----------------------------------------------------------------------------*/
package pose

import (
	"github.com/xbfeng/tbspgo/fixed"
	"github.com/xbfeng/tbspgo/trig"
)

// Rotation is a row-major 3x3 matrix of Q16.16 values:
// [ r0 r1 r2 ]
// [ r3 r4 r5 ]
// [ r6 r7 r8 ]
type Rotation [9]fixed.F

// Identity returns diag(1, 1, 1).
func Identity() Rotation {
	one := fixed.FromInt(1)
	return Rotation{
		one, 0, 0,
		0, one, 0,
		0, 0, one,
	}
}

// FromYaw builds the 2D yaw rotation embedded in 3D, using the sine/cosine
// LUTs:
//
//	[ cos -sin 0 ]
//	[ sin  cos 0 ]
//	[ 0    0   1 ]
func FromYaw(a trig.Angle) Rotation {
	c := trig.CosOf(a)
	s := trig.SinOf(a)
	one := fixed.FromInt(1)
	return Rotation{
		c, -s, 0,
		s, c, 0,
		0, 0, one,
	}
}

// Mul computes C = A*B with 64-bit accumulators, final >>16. Aliasing is
// allowed: C may be the same matrix as A or B.
func Mul(a, b Rotation) Rotation {
	var tmp Rotation
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var acc int64
			for k := 0; k < 3; k++ {
				acc += int64(a[row*3+k]) * int64(b[k*3+col])
			}
			tmp[row*3+col] = fixed.F(acc >> 16)
		}
	}
	return tmp
}

// Trace returns R[0] + R[4] + R[8].
func Trace(r Rotation) fixed.F {
	return fixed.Add(fixed.Add(r[0], r[4]), r[8])
}

// Orthonormalize performs one Gram-Schmidt correction pass over the rows of
// r, counteracting the drift that long chains of Mul accumulate. It is not
// called by any core operation automatically; callers chaining
// multiplications across many poses are expected to invoke it periodically.
func Orthonormalize(r *Rotation) {
	row0 := Vec3{r[0], r[1], r[2]}
	row1 := Vec3{r[3], r[4], r[5]}
	row2 := Vec3{r[6], r[7], r[8]}

	row0 = normalizeVec3(row0)

	d01 := dot(row1, row0)
	row1 = VecSub(row1, scale(row0, d01))
	row1 = normalizeVec3(row1)

	row2 = cross(row0, row1)

	r[0], r[1], r[2] = row0[0], row0[1], row0[2]
	r[3], r[4], r[5] = row1[0], row1[1], row1[2]
	r[6], r[7], r[8] = row2[0], row2[1], row2[2]
}
