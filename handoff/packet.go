/*------------------------------------------------------------------------------
* packet.go : cell-to-cell handoff packet — construction, byte-exact
*             serialisation/deserialisation, validation
*
* notes  : the wire layout is normative (little-endian, fixed byte
*          offsets): MMSI(4) | pose(56) | old cell(2) |
*          new cell(2) | flags(1) | padding(3) | signature(32) = 100 bytes.
*          Every field is emitted explicitly; nothing relies on Go struct
*          layout or compiler padding.
*
*          Copyright (C) 2024-2026 by feng xuebin, All rights reserved.
*-----------------------------------------------------------------------------*/
package handoff

import (
	"encoding/binary"

	"github.com/xbfeng/tbspgo/fixed"
	"github.com/xbfeng/tbspgo/pose"
)

// Size is the wire size of a serialised Packet, in bytes.
const Size = 4 + pose.Size + 2 + 2 + 1 + 3 + 32 // 100

const (
	// FlagDateline is set iff a dateline crossing was detected between
	// the two points that produced this handoff.
	FlagDateline byte = 1 << 0
	// FlagPolar is set iff either endpoint's latitude magnitude exceeds
	// PolarThresholdDeg.
	FlagPolar byte = 1 << 1

	// PolarThresholdDeg is the latitude magnitude above which a point is
	// considered to be in the "polar" band.
	PolarThresholdDeg = 80.0

	// DatelineThresholdDeg is the raw-longitude-difference magnitude
	// above which two points are considered to straddle the
	// anti-meridian.
	DatelineThresholdDeg = 180.0

	// staleAfterSeconds is the maximum age, relative to an external
	// clock at or after the pose's timestamp, that a packet is accepted
	// at validation time.
	staleAfterSeconds = 86400
)

// Packet is the 100-byte cell-to-cell handoff record.
type Packet struct {
	MMSI      uint32
	LastPose  pose.Pose
	OldCellID uint16
	NewCellID uint16
	Flags     byte
	Signature [32]byte
}

// DetectDatelineCross reports whether two pre-normalised longitudes
// straddle the anti-meridian: the raw difference b-a (deliberately not
// re-normalised) exceeds DatelineThresholdDeg in magnitude. Any
// non-crossing step between two points in [-180, 180) has a raw difference
// of at most 180 degrees, so this is an unambiguous indicator.
func DetectDatelineCross(a, b fixed.F) bool {
	diff := fixed.Sub(b, a)
	threshold := fixed.FromFloat(DatelineThresholdDeg)
	return fixed.Abs(diff) > threshold
}

// ComputeFlags derives the flag byte for a transition between
// (lat1, lon1) and (lat2, lon2): bit 0 for a dateline crossing, bit 1 if
// either endpoint's latitude magnitude exceeds PolarThresholdDeg.
func ComputeFlags(lat1, lon1, lat2, lon2 fixed.F) byte {
	var flags byte
	if DetectDatelineCross(lon1, lon2) {
		flags |= FlagDateline
	}
	polarThreshold := fixed.FromFloat(PolarThresholdDeg)
	if fixed.Abs(lat1) > polarThreshold || fixed.Abs(lat2) > polarThreshold {
		flags |= FlagPolar
	}
	return flags
}

// Transitioned reports whether the ENU distance between prev and curr's
// translations exceeds one cell's edge length. Squaring metre-scale
// fixed-point values overflows well before the represented metres do, so
// each delta is converted to a real-valued metre count before squaring,
// avoid overflowing the fixed-point intermediate; fixed.Mul must not be used
// directly on translation deltas measured in thousands of metres. Either
// pose being nil yields false.
func Transitioned(prev, curr *pose.Pose, cellSizeKm float64) bool {
	if prev == nil || curr == nil {
		return false
	}
	var sum float64
	for i := 0; i < 3; i++ {
		d := curr.T[i].ToFloat() - prev.T[i].ToFloat()
		sum += d * d
	}
	thresholdM := cellSizeKm * 1000.0
	return sum > thresholdM*thresholdM
}

// NewPacket constructs a handoff packet: it copies lastPose by value, sets
// the old/new cell IDs and flags, and zeroes the signature field — the
// signer is an external collaborator that fills it in-place before
// broadcast.
func NewPacket(mmsi uint32, lastPose pose.Pose, oldCellID, newCellID uint16, flags byte) Packet {
	return Packet{
		MMSI:      mmsi,
		LastPose:  lastPose,
		OldCellID: oldCellID,
		NewCellID: newCellID,
		Flags:     flags,
	}
}

// Serialize writes the 100-byte little-endian wire form of p into buf
// (which must have length >= Size) and returns the number of bytes
// written. The pose translation stores ENU metres, not degrees, so no
// longitude normalisation is applied here.
func Serialize(p Packet, buf []byte) int {
	off := 0
	binary.LittleEndian.PutUint32(buf[off:], p.MMSI)
	off += 4
	off += pose.Serialize(p.LastPose, buf[off:])
	binary.LittleEndian.PutUint16(buf[off:], p.OldCellID)
	off += 2
	binary.LittleEndian.PutUint16(buf[off:], p.NewCellID)
	off += 2
	buf[off] = p.Flags
	off++
	buf[off] = 0
	buf[off+1] = 0
	buf[off+2] = 0
	off += 3
	copy(buf[off:off+32], p.Signature[:])
	off += 32
	return off
}

// Deserialize reads a 100-byte little-endian wire form from buf (which must
// have length >= Size) into a Packet. The only validity check performed
// here is that MMSI is non-zero; the second return value reports that
// check's result.
func Deserialize(buf []byte) (Packet, bool) {
	var p Packet
	off := 0
	p.MMSI = binary.LittleEndian.Uint32(buf[off:])
	off += 4
	p.LastPose = pose.Deserialize(buf[off:])
	off += pose.Size
	p.OldCellID = binary.LittleEndian.Uint16(buf[off:])
	off += 2
	p.NewCellID = binary.LittleEndian.Uint16(buf[off:])
	off += 2
	p.Flags = buf[off]
	off++
	off += 3 // padding
	copy(p.Signature[:], buf[off:off+32])
	off += 32
	return p, p.MMSI != 0
}

// Validate reports whether p is accepted at the current external clock
// time nowUnix: MMSI must be non-zero, OldCellID must differ from
// NewCellID, and when nowUnix is at or after the pose's timestamp, its age
// must not exceed 24 hours. A pose timestamped ahead of nowUnix (clock skew
// the other way) is tolerated, not rejected.
func Validate(p Packet, nowUnix uint32) bool {
	if p.MMSI == 0 {
		return false
	}
	if p.OldCellID == p.NewCellID {
		return false
	}
	if nowUnix >= p.LastPose.Timestamp {
		age := nowUnix - p.LastPose.Timestamp
		if age > staleAfterSeconds {
			return false
		}
	}
	return true
}

