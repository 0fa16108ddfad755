package physics

import (
	"math"
	"slices"
)

// SpatialGrid is a uniform grid for broad-phase collision detection in a
// bounded arena. Items are inserted by position and index, then nearby items
// are found through a 3x3 neighbourhood lookup.
//
// Cell size must be >= the maximum distance between the reference points of
// two colliding items so that every potential pair shares a neighbourhood.
// Positions outside the arena are clamped to the edge cells.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that fall within a grid cell.
// The slice is reused between ticks (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the given arena dimensions.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// Candidates appends to dst the indices stored in the 3x3 neighbourhood of
// the given position, sorted ascending so callers see a stable order.
func (g *SpatialGrid) Candidates(x, y float64, dst []int) []int {
	start := len(dst)
	g.QueryAround(x, y, func(index int) bool {
		dst = append(dst, index)
		return false
	})
	slices.Sort(dst[start:])
	return dst
}

// QueryAround calls fn for each item index in the 3x3 cell neighbourhood
// around the given position. Cells beyond the arena edge are skipped.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= g.rows {
			continue
		}
		rowOffset := r * g.cols

		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= g.cols {
				continue
			}
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts arena coordinates to grid cell coordinates,
// clamping to the valid range.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = clampCell(x*g.invCellSize, g.cols)
	row = clampCell(y*g.invCellSize, g.rows)
	return col, row
}

func clampCell(f float64, n int) int {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f >= float64(n) {
		return n - 1
	}
	return int(f)
}
