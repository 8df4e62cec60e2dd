/*------------------------------------------------------------------------------
* statemachine.go : per-vessel NO_CELL -> IN_CELL -> TRANSITIONING -> IN_CELL
*
*          Copyright (C) 2024-2026 by feng xuebin, All rights reserved.
*-----------------------------------------------------------------------------*/
package handoff

import (
	"github.com/xbfeng/tbspgo/fixed"
	"github.com/xbfeng/tbspgo/pose"
)

// vesselState tracks one vessel's current cell and the geodetic fix that
// produced it. lat/lon are kept alongside the pose because Pose itself only
// carries ENU translation metres, not degrees, and the dateline/polar flag
// derivation needs the original geodetic coordinates.
type vesselState struct {
	cellID uint16
	lat    fixed.F
	lon    fixed.F
	last   pose.Pose
}

// Machine runs the per-vessel handoff state machine: NO_CELL -> IN_CELL ->
// TRANSITIONING -> IN_CELL. The absence of an entry for an MMSI is the NO_CELL
// pseudo-state: the first pose for a vessel simply establishes IN_CELL
// without emitting a packet.
type Machine struct {
	states map[uint32]vesselState
}

// NewMachine returns an empty state machine.
func NewMachine() *Machine {
	return &Machine{states: make(map[uint32]vesselState)}
}

// Advance feeds one new geodetic fix (lat, lon), already mapped to cellID,
// and its derived pose p into the state machine for p.MMSI. If this is the
// vessel's first fix, it establishes IN_CELL(cellID) and returns (zero
// Packet, false). If cellID matches the vessel's current cell, it remains
// IN_CELL and returns (zero Packet, false). Otherwise it transitions,
// builds and returns a handoff packet for the old->new boundary, and
// atomically moves to IN_CELL(cellID).
func (m *Machine) Advance(cellID uint16, lat, lon fixed.F, p pose.Pose) (Packet, bool) {
	prev, ok := m.states[p.MMSI]
	next := vesselState{cellID: cellID, lat: lat, lon: lon, last: p}

	if !ok || prev.cellID == cellID {
		m.states[p.MMSI] = next
		return Packet{}, false
	}

	flags := ComputeFlags(prev.lat, prev.lon, lat, lon)
	pkt := NewPacket(p.MMSI, prev.last, prev.cellID, cellID, flags)
	m.states[p.MMSI] = next
	return pkt, true
}

// Forget removes a vessel's state, returning it to the NO_CELL
// pseudo-state; the next fix for that MMSI will re-establish IN_CELL
// without emitting a packet.
func (m *Machine) Forget(mmsi uint32) {
	delete(m.states, mmsi)
}
