package geom

import (
	"cmp"
	"fmt"
)

// NewBrick builds a Brick from two endpoints given in any order.
// The endpoint with the smaller Z becomes Lower; on equal Z the first
// argument is kept as Lower.
// Complexity: O(1).
func NewBrick(a, b Point3, label string) Brick {
	if a.Z <= b.Z {
		return Brick{Lower: a, Upper: b, Label: label}
	}

	return Brick{Lower: b, Upper: a, Label: label}
}

// ComparePoints orders points by Z, then X, then Y.
// Returns -1, 0 or +1 and is suitable for slices.SortFunc.
func ComparePoints(a, b Point3) int {
	if c := cmp.Compare(a.Z, b.Z); c != 0 {
		return c
	}
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}

	return cmp.Compare(a.Y, b.Y)
}

// CompareBricks orders bricks by Lower, then by Upper, using ComparePoints.
// Labels are ignored.
func CompareBricks(a, b Brick) int {
	if c := ComparePoints(a.Lower, b.Lower); c != 0 {
		return c
	}

	return ComparePoints(a.Upper, b.Upper)
}

// Less reports whether b sorts strictly before other.
func (b Brick) Less(other Brick) bool {
	return CompareBricks(b, other) < 0
}

// Footprint projects the brick onto the ground plane, taking min/max per axis.
// Complexity: O(1).
func (b Brick) Footprint() Footprint {
	return Footprint{
		TopLeft: Position{
			X: min(b.Lower.X, b.Upper.X),
			Y: min(b.Lower.Y, b.Upper.Y),
		},
		BottomRight: Position{
			X: max(b.Lower.X, b.Upper.X),
			Y: max(b.Lower.Y, b.Upper.Y),
		},
	}
}

// Height is the number of z-levels the brick occupies.
func (b Brick) Height() int {
	return b.Upper.Z - b.Lower.Z + 1
}

// Volume is the number of cells the brick occupies.
func (b Brick) Volume() int {
	return b.Footprint().Area() * b.Height()
}

// Lowered returns a copy of b moved down by dz levels (up when dz < 0).
// The height of the brick is preserved.
func (b Brick) Lowered(dz int) Brick {
	b.Lower.Z -= dz
	b.Upper.Z -= dz

	return b
}

// Validate checks that the brick extends along at most one axis and that
// Lower is not above Upper.
func (b Brick) Validate() error {
	if b.Lower.Z > b.Upper.Z {
		return fmt.Errorf("geom: brick %s has lower z above upper z", b)
	}
	differ := 0
	if b.Lower.X != b.Upper.X {
		differ++
	}
	if b.Lower.Y != b.Upper.Y {
		differ++
	}
	if b.Lower.Z != b.Upper.Z {
		differ++
	}
	if differ > 1 {
		return fmt.Errorf("%w: %s", ErrDiagonal, b)
	}

	return nil
}

// String renders the brick in input notation, with the label annotation
// when one is set: "x,y,z~x,y,z" or "x,y,z~x,y,z <- label".
func (b Brick) String() string {
	if b.Label != "" {
		return fmt.Sprintf("%s~%s <- %s", b.Lower, b.Upper, b.Label)
	}

	return fmt.Sprintf("%s~%s", b.Lower, b.Upper)
}
