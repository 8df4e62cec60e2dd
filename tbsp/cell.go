/*------------------------------------------------------------------------------
* cell.go : a bounded ring of poses belonging to one grid square
*
*          Copyright (C) 2024-2026 by feng xuebin, All rights reserved.
*-----------------------------------------------------------------------------*/
package tbsp

import (
	"github.com/xbfeng/tbspgo/fixed"
	"github.com/xbfeng/tbspgo/pose"
)

// PosesPerCell is the fixed capacity of a cell's pose ring (build-time
// constant; runtime reconfiguration is a non-goal).
const PosesPerCell = 128

// Cell is a bounded ring of poses for one grid square, allocated on demand
// from Root's static pool and freed by Root.ResetCell. pose_count <= PosesPerCell
// always; if Active is false, PoseCount is always 0; CellID is stable for
// the cell's lifetime (set at allocation, cleared by Root.ResetCell).
type Cell struct {
	LatMin, LatMax fixed.F
	LonMin, LonMax fixed.F
	CellID         uint16
	PoseCount      uint16
	Active         bool
	Poses          [PosesPerCell]pose.Pose
}

// NearFull reports whether PoseCount >= threshold*Capacity, for a
// caller-supplied threshold in (0, 1]. Intended to let callers trigger
// estimation before the ring-reset overflow policy activates.
func NearFull(c *Cell, threshold float64) bool {
	if threshold <= 0 || threshold > 1 {
		threshold = 1
	}
	limit := threshold * float64(PosesPerCell)
	return float64(c.PoseCount) >= limit
}
