/*------------------------------------------------------------------------------
* pose.go : rigid-body pose — rotation + ENU translation + metadata
*
* notes  : byte-packed to exactly 56 bytes, little-endian, in the field
*          order rotation(36) | translation(12) | timestamp(4) | mmsi(4).
*          The layout is wire-normative (see handoff.Packet, which embeds
*          one verbatim); Serialize/Deserialize never rely on Go struct
*          layout or compiler padding.
*
*          Copyright (C) 2024-2026 by feng xuebin, All rights reserved.
*-----------------------------------------------------------------------------*/
package pose

import (
	"encoding/binary"

	"github.com/xbfeng/tbspgo/fixed"
	"github.com/xbfeng/tbspgo/geo"
)

// Size is the wire size of a serialised Pose, in bytes.
const Size = 9*4 + 3*4 + 4 + 4 // 56

// Pose is a rigid-body placement plus vessel metadata. Within normal use
// the rotation's trace lies in [-1, 3] and its determinant stays close to
// 1; long chains of Mul should periodically call Orthonormalize.
type Pose struct {
	R         Rotation
	T         Vec3
	Timestamp uint32
	MMSI      uint32
}

// FromGPS builds a Pose directly from already ENU-converted metres and a
// GPS compass heading. Translation is set verbatim; rotation is derived
// from heading via the frame-corrected angle conversion.
func FromGPS(east, north, up fixed.F, headingDeg fixed.F, ts uint32, mmsi uint32) Pose {
	return Pose{
		R:         FromYaw(geo.HeadingToAngle(headingDeg)),
		T:         Vec3{east, north, up},
		Timestamp: ts,
		MMSI:      mmsi,
	}
}

// Serialize writes the 56-byte little-endian wire form of p into buf, which
// must have length >= Size, and returns the number of bytes written.
func Serialize(p Pose, buf []byte) int {
	off := 0
	for _, v := range p.R {
		binary.LittleEndian.PutUint32(buf[off:], uint32(v))
		off += 4
	}
	for _, v := range p.T {
		binary.LittleEndian.PutUint32(buf[off:], uint32(v))
		off += 4
	}
	binary.LittleEndian.PutUint32(buf[off:], p.Timestamp)
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], p.MMSI)
	off += 4
	return off
}

// Deserialize reads a 56-byte little-endian wire form from buf (which must
// have length >= Size) into a Pose.
func Deserialize(buf []byte) Pose {
	var p Pose
	off := 0
	for i := range p.R {
		p.R[i] = fixed.F(binary.LittleEndian.Uint32(buf[off:]))
		off += 4
	}
	for i := range p.T {
		p.T[i] = fixed.F(binary.LittleEndian.Uint32(buf[off:]))
		off += 4
	}
	p.Timestamp = binary.LittleEndian.Uint32(buf[off:])
	off += 4
	p.MMSI = binary.LittleEndian.Uint32(buf[off:])
	off += 4
	return p
}
