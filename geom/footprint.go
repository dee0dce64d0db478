package geom

import (
	"fmt"
	"iter"
)

// Cells enumerates every Position inside the footprint, x outer and y inner.
// The sequence is a pure function of the box and can be ranged over any
// number of times. An inverted box yields nothing.
// Complexity: O(Area) time, O(1) memory.
func (f Footprint) Cells() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for x := f.TopLeft.X; x <= f.BottomRight.X; x++ {
			for y := f.TopLeft.Y; y <= f.BottomRight.Y; y++ {
				if !yield(Position{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Area is the number of cells in the footprint; 0 for inverted boxes.
func (f Footprint) Area() int {
	w := f.BottomRight.X - f.TopLeft.X + 1
	h := f.BottomRight.Y - f.TopLeft.Y + 1
	if w <= 0 || h <= 0 {
		return 0
	}

	return w * h
}

// Contains reports whether p lies inside the footprint.
func (f Footprint) Contains(p Position) bool {
	return p.X >= f.TopLeft.X && p.X <= f.BottomRight.X &&
		p.Y >= f.TopLeft.Y && p.Y <= f.BottomRight.Y
}

// Overlaps reports whether the two footprints share at least one cell.
func (f Footprint) Overlaps(o Footprint) bool {
	if f.Area() == 0 || o.Area() == 0 {
		return false
	}

	return f.TopLeft.X <= o.BottomRight.X && o.TopLeft.X <= f.BottomRight.X &&
		f.TopLeft.Y <= o.BottomRight.Y && o.TopLeft.Y <= f.BottomRight.Y
}

// Validate returns ErrEmptyFootprint for an inverted box.
func (f Footprint) Validate() error {
	if f.Area() == 0 {
		return fmt.Errorf("%w: %s..%s", ErrEmptyFootprint, f.TopLeft, f.BottomRight)
	}

	return nil
}
