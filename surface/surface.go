// Package surface tracks the settled height of every ground-plane column
// during one settlement run.
//
// A Surface is a sparse height map: each written Position records the highest
// settled z at that column and the handle of the brick that put it there.
// Columns never written are bare ground (height 0, owner geom.NoBrick).
//
// Heights only ever grow. SetHeight rejects any update that would not strictly
// raise every column it touches and reports an *OverlapError; the surface is
// left unchanged in that case.
//
// A Surface is owned by a single settlement run and is not safe for
// concurrent use.
package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/brickstack/geom"
)

// ErrOverlap indicates a brick would settle into a column already occupied
// at or above its resting height.
var ErrOverlap = errors.New("surface: settling brick overlaps an occupied column")

// Column is the settled state of one ground-plane cell.
type Column struct {
	Height int // highest occupied z; 0 is bare ground
	Owner  int // brick handle that last raised Height, or geom.NoBrick
}

// Cell pairs a Position with its Column, used by Columns snapshots.
type Cell struct {
	geom.Position
	Column
}

// OverlapError describes a rejected SetHeight call.
type OverlapError struct {
	At       geom.Position
	Existing Column
	Height   int
	Owner    int
}

// Error implements error.
func (e *OverlapError) Error() string {
	return fmt.Sprintf("surface: brick %d with top at z=%d fell too far at %s (column already at z=%d, owned by brick %d)",
		e.Owner, e.Height, e.At, e.Existing.Height, e.Existing.Owner)
}

// Unwrap lets errors.Is match ErrOverlap.
func (e *OverlapError) Unwrap() error { return ErrOverlap }

// Support is the outcome of folding a footprint against the surface:
// the tallest column height and every distinct owner standing at it.
type Support struct {
	Height int   // highest column within the footprint
	Owners []int // sorted owners at Height; empty when resting on the ground
}

// Surface is the sparse height map.
type Surface struct {
	columns map[geom.Position]Column
}

// New returns an empty Surface: bare ground everywhere.
// Complexity: O(1).
func New() *Surface {
	return &Surface{columns: make(map[geom.Position]Column)}
}

// Get returns the height and owner at p, or (0, geom.NoBrick) if p was never written.
// Complexity: O(1).
func (s *Surface) Get(p geom.Position) (height, owner int) {
	if c, ok := s.columns[p]; ok {
		return c.Height, c.Owner
	}

	return 0, geom.NoBrick
}

// SetHeight publishes owner as the top of every column in fp at the given height.
//
// Every existing column in fp must be strictly lower than height; otherwise an
// *OverlapError naming the first offending position is returned and no column
// is modified.
// Complexity: O(Area(fp)).
func (s *Surface) SetHeight(fp geom.Footprint, height, owner int) error {
	// 1. Check the whole footprint before writing anything
	for p := range fp.Cells() {
		if c, ok := s.columns[p]; ok && c.Height >= height {
			return &OverlapError{At: p, Existing: c, Height: height, Owner: owner}
		}
	}
	// 2. Publish
	for p := range fp.Cells() {
		s.columns[p] = Column{Height: height, Owner: owner}
	}

	return nil
}

// Highest folds the footprint into the tallest column height and the set of
// owners at that height. Ties are inclusive: two bricks standing equally tall
// under fp are both reported. Bare ground contributes height 0 and no owner.
// Complexity: O(Area(fp) + k log k) for k owners.
func (s *Surface) Highest(fp geom.Footprint) Support {
	acc := Support{Height: -1}
	for p := range fp.Cells() {
		h, owner := s.Get(p)
		acc = acc.merge(h, owner)
	}
	if acc.Height < 0 {
		// empty footprint: nothing was sampled
		return Support{Height: 0}
	}
	slices.Sort(acc.Owners)

	return acc
}

// merge folds one sampled column into the running support.
func (acc Support) merge(h, owner int) Support {
	switch {
	case h > acc.Height:
		acc.Height = h
		acc.Owners = acc.Owners[:0]
		if owner != geom.NoBrick {
			acc.Owners = append(acc.Owners, owner)
		}
	case h == acc.Height && owner != geom.NoBrick:
		if !slices.Contains(acc.Owners, owner) {
			acc.Owners = append(acc.Owners, owner)
		}
	}

	return acc
}

// Len reports the number of written columns.
func (s *Surface) Len() int { return len(s.columns) }

// Columns returns a snapshot of every written column sorted by X, then Y.
// Complexity: O(n log n).
func (s *Surface) Columns() []Cell {
	out := make([]Cell, 0, len(s.columns))
	for p, c := range s.columns {
		out = append(out, Cell{Position: p, Column: c})
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}

		return cmp.Compare(a.Y, b.Y)
	})

	return out
}
