/*------------------------------------------------------------------------------
* vector.go : 3-vectors in Q16.16 (ENU translation, rotation rows)
*
*          Copyright (C) 2024-2026 by feng xuebin, All rights reserved.
*-----------------------------------------------------------------------------*/
package pose

import (
	"math"

	"github.com/xbfeng/tbspgo/fixed"
)

// Vec3 is a 3-element Q16.16 vector, {x, y, z} or {e, n, u} depending on
// context.
type Vec3 [3]fixed.F

// VecSub returns a - b.
func VecSub(a, b Vec3) Vec3 {
	return Vec3{fixed.Sub(a[0], b[0]), fixed.Sub(a[1], b[1]), fixed.Sub(a[2], b[2])}
}

// NormSquared returns |v|^2 with a 64-bit accumulator, in Q16.16. Callers
// with metre-scale magnitudes in the thousands must not use this for
// distance comparisons (see handoff.Transitioned); it is safe only for
// small-magnitude vectors such as rotation rows.
func NormSquared(v Vec3) fixed.F {
	var acc int64
	for _, c := range v {
		acc += (int64(c) * int64(c)) >> 16
	}
	return fixed.F(acc)
}

// MatVecMul computes m*v with 64-bit intermediates.
func MatVecMul(m Rotation, v Vec3) Vec3 {
	var out Vec3
	for row := 0; row < 3; row++ {
		var acc int64
		for col := 0; col < 3; col++ {
			acc += int64(m[row*3+col]) * int64(v[col])
		}
		out[row] = fixed.F(acc >> 16)
	}
	return out
}

func dot(a, b Vec3) fixed.F {
	var acc int64
	for i := 0; i < 3; i++ {
		acc += (int64(a[i]) * int64(b[i])) >> 16
	}
	return fixed.F(acc)
}

func scale(v Vec3, s fixed.F) Vec3 {
	return Vec3{fixed.Mul(v[0], s), fixed.Mul(v[1], s), fixed.Mul(v[2], s)}
}

func cross(a, b Vec3) Vec3 {
	return Vec3{
		fixed.Sub(fixed.Mul(a[1], b[2]), fixed.Mul(a[2], b[1])),
		fixed.Sub(fixed.Mul(a[2], b[0]), fixed.Mul(a[0], b[2])),
		fixed.Sub(fixed.Mul(a[0], b[1]), fixed.Mul(a[1], b[0])),
	}
}

// normalizeVec3 rescales v to unit length. It is used only by
// Orthonormalize and, unlike every other function in this package, goes
// through a float64 square root: this is the one corner of the pose layer
// (besides handoff's distance comparison) where bit-identical cross-platform
// determinism is not guaranteed, and only when a caller opts into calling
// it.
func normalizeVec3(v Vec3) Vec3 {
	n2 := NormSquared(v).ToFloat()
	if n2 <= 0 {
		return v
	}
	inv := fixed.FromFloat(1.0 / math.Sqrt(n2))
	return scale(v, inv)
}
