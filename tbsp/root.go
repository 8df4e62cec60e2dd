/*------------------------------------------------------------------------------
* root.go : T-BSP engine — static cell pool, coordinate-to-cell mapping,
*           insertion, neighbour queries, bounds recovery
*
* notes  : single-threaded, cooperative, non-blocking. No operation here
*          allocates, blocks, or performs I/O; Root is not internally
*          synchronised and must be owned by exactly one task.
*
*          Copyright (C) 2024-2026 by feng xuebin, All rights reserved.
*-----------------------------------------------------------------------------*/
package tbsp

import (
	"github.com/xbfeng/tbspgo/fixed"
	"github.com/xbfeng/tbspgo/geo"
	"github.com/xbfeng/tbspgo/pose"
)

const (
	// MaxCells is the static pool size; a cell_id must fit in 16 bits.
	MaxCells = 64

	// CellSizeKm is the nominal edge length of a grid cell.
	CellSizeKm = 10

	// DegToKm approximates 1 degree of latitude/longitude in kilometres
	// at the reference point (flat-earth; no cos(lat) scaling for
	// longitude — see DESIGN.md on the high-latitude error this implies).
	DegToKm = 111.32

	minIdx = -128
	maxIdx = 127
)

// compile-time size assertions: MaxCells must fit a uint16 cell ID, and
// PosesPerCell must be positive.
const _ uint16 = MaxCells // MaxCells must fit a 16-bit cell ID.

var _ [PosesPerCell - 1]struct{} // POSES_PER_CELL >= 1 (negative array length is a compile error).

// Root is the T-BSP root: a static pool of MaxCells cells plus the
// voyage-origin reference. ActiveCount always equals the number of cells
// with Active == true; no two active cells share a CellID.
type Root struct {
	Cells       [MaxCells]Cell
	ActiveCount int
	RefLat      fixed.F
	RefLon      fixed.F

	// OnOverflow, if set, is invoked immediately before a full cell's
	// pose ring is discarded by the ring-reset overflow policy — the
	// "hook... so operators notice" design note calls for.
	OnOverflow func(cellID uint16)
}

// NewRoot initialises a T-BSP root for a voyage with its origin at
// (refLat, refLon); refLon is normalised at construction.
func NewRoot(refLat, refLon fixed.F) *Root {
	return &Root{RefLat: refLat, RefLon: geo.NormalizeLon(refLon)}
}

func degreesToIndex(d fixed.F) int32 {
	k := fixed.FromFloat(DegToKm)
	dKm := fixed.Mul(d, k)
	cellSize := fixed.FromInt(CellSizeKm)
	if cellSize == 0 {
		return 0
	}
	// Truncating 64-bit division: floor for non-negative numerators,
	// ceiling-toward-zero for negative ones — Go's integer division
	// already truncates toward zero in both cases, which is exactly
	// this rounding policy.
	return int32(int64(dKm) / int64(cellSize))
}

func clampIdx(v int32) int32 {
	if v < minIdx {
		return minIdx
	}
	if v > maxIdx {
		return maxIdx
	}
	return v
}

// EncodeCellID packs clamped lat/lon grid indices into a 16-bit cell ID.
func EncodeCellID(latIdx, lonIdx int32) uint16 {
	latIdx = clampIdx(latIdx)
	lonIdx = clampIdx(lonIdx)
	return (uint16(uint8(int8(latIdx))) << 8) | uint16(uint8(int8(lonIdx)))
}

// DecodeCellID unpacks a cell ID into sign-extended lat/lon grid indices.
func DecodeCellID(id uint16) (latIdx, lonIdx int32) {
	latIdx = int32(int8(id >> 8))
	lonIdx = int32(int8(id & 0xFF))
	return
}

// LatLonToCell maps a raw geodetic fix to its cell ID, relative to r's
// voyage origin. The longitude delta is the raw (non-normalised)
// difference from RefLon: this is deliberate (see handoff for dateline
// handling) and is why points just west and just east of the anti-meridian
// land in very different — often clamped-to-boundary — cells.
func (r *Root) LatLonToCell(lat, lon fixed.F) uint16 {
	dLat := fixed.Sub(lat, r.RefLat)
	dLon := fixed.Sub(lon, r.RefLon)
	return EncodeCellID(degreesToIndex(dLat), degreesToIndex(dLon))
}

// indexBounds returns the [min, max] offset from ref that degreesToIndex
// maps to idx, given degPerCell. It must stay the exact inverse of
// degreesToIndex's truncating division: that division makes idx 0 a
// double-wide cell spanning (-degPerCell, +degPerCell) (any fractional
// numerator between -1 and 1 cell truncates to 0), while idx != 0 is a
// normal single-width cell starting at idx*degPerCell and extending one
// cell further away from zero.
func indexBounds(idx int32, ref, degPerCell fixed.F) (min, max fixed.F) {
	switch {
	case idx == 0:
		min = fixed.Sub(ref, degPerCell)
		max = fixed.Add(ref, degPerCell)
	case idx > 0:
		min = fixed.Add(ref, fixed.Mul(fixed.FromInt(idx), degPerCell))
		max = fixed.Add(min, degPerCell)
	default: // idx < 0
		max = fixed.Add(ref, fixed.Mul(fixed.FromInt(idx), degPerCell))
		min = fixed.Sub(max, degPerCell)
	}
	return
}

// CellBounds decodes a cell ID back into its geodetic bounding box,
// relative to r's voyage origin, normalising longitudes. The box is the
// exact inverse of LatLonToCell's index computation (see indexBounds), so
// any point that mapped to id falls within the returned [min, max] range on
// each axis.
func (r *Root) CellBounds(id uint16) (latMin, latMax, lonMin, lonMax fixed.F) {
	latIdx, lonIdx := DecodeCellID(id)
	degPerCell := fixed.Div(fixed.FromInt(CellSizeKm), fixed.FromFloat(DegToKm))

	latMin, latMax = indexBounds(latIdx, r.RefLat, degPerCell)

	lonMinRaw, lonMaxRaw := indexBounds(lonIdx, r.RefLon, degPerCell)
	lonMin = geo.NormalizeLon(lonMinRaw)
	lonMax = geo.NormalizeLon(lonMaxRaw)
	return
}

// findActive returns the index of the active cell with the given ID, or -1.
func (r *Root) findActive(id uint16) int {
	for i := range r.Cells {
		if r.Cells[i].Active && r.Cells[i].CellID == id {
			return i
		}
	}
	return -1
}

// findFree returns the index of the first inactive slot, or -1 if the pool
// is full.
func (r *Root) findFree() int {
	for i := range r.Cells {
		if !r.Cells[i].Active {
			return i
		}
	}
	return -1
}

// GetCell returns a pointer to the active cell with the given ID, or nil.
func (r *Root) GetCell(id uint16) *Cell {
	if i := r.findActive(id); i >= 0 {
		return &r.Cells[i]
	}
	return nil
}

// InsertPose implements the cell insertion algorithm:
//  1. locate an active cell with this ID;
//  2. otherwise allocate the first free slot;
//  3. fail with capacity_exhausted if no slot is free;
//  4. if the target cell is already full, reset pose_count to 0 (ring
//     semantics — a wholesale discard, not a per-element rotation) and
//     invoke OnOverflow first;
//  5. append the pose by value.
//
// It returns false (capacity_exhausted) with no state mutated if no cell
// could be found or allocated.
func (r *Root) InsertPose(id uint16, p pose.Pose) bool {
	idx := r.findActive(id)
	if idx < 0 {
		idx = r.findFree()
		if idx < 0 {
			return false
		}
		r.Cells[idx] = Cell{CellID: id, Active: true}
		r.ActiveCount++
	}
	c := &r.Cells[idx]
	if c.PoseCount >= PosesPerCell {
		if r.OnOverflow != nil {
			r.OnOverflow(id)
		}
		c.PoseCount = 0
	}
	c.Poses[c.PoseCount] = p
	c.PoseCount++
	return true
}

// ResetCell marks a cell inactive, zeroes its pose count, clears its CellID,
// and decrements ActiveCount. It is a no-op if id is not an active cell.
// Pose contents are left untouched; they are overwritten on the cell's next
// allocation.
func (r *Root) ResetCell(id uint16) {
	idx := r.findActive(id)
	if idx < 0 {
		return
	}
	r.Cells[idx].Active = false
	r.Cells[idx].PoseCount = 0
	r.Cells[idx].CellID = 0
	r.ActiveCount--
}

// neighborOffsets lists the 8-connectivity {dLat, dLon} offsets in the
// fixed order NW, N, NE, W, E, SW, S, SE (latIdx grows northward).
var neighborOffsets = [8][2]int32{
	{1, -1}, {1, 0}, {1, 1},
	{0, -1}, {0, 1},
	{-1, -1}, {-1, 0}, {-1, 1},
}

// AdjacentCells enumerates the up-to-8 neighbouring cell IDs of id into
// out, in NW, N, NE, W, E, SW, S, SE order, omitting any whose grid index
// would fall outside [-128, 127], and returns how many it wrote. out is
// caller-owned so this never allocates. It does not wrap across the
// anti-meridian; dateline handling belongs to the handoff protocol.
func AdjacentCells(id uint16, out *[8]uint16) int {
	latIdx, lonIdx := DecodeCellID(id)
	n := 0
	for _, off := range neighborOffsets {
		nLat := latIdx + off[0]
		nLon := lonIdx + off[1]
		if nLat < minIdx || nLat > maxIdx || nLon < minIdx || nLon > maxIdx {
			continue
		}
		out[n] = EncodeCellID(nLat, nLon)
		n++
	}
	return n
}
