package geom

import (
	"errors"
	"fmt"
)

// NoBrick is the owner handle reported for ground-level columns.
const NoBrick = -1

// Sentinel errors for geometry validation.
var (
	// ErrDiagonal indicates brick endpoints differ in more than one axis.
	ErrDiagonal = errors.New("geom: brick extends along more than one axis")

	// ErrEmptyFootprint indicates a footprint with no cells.
	ErrEmptyFootprint = errors.New("geom: footprint has zero area")
)

// Point3 is a cell in 3-D integer space. Z is the height above the ground.
type Point3 struct {
	X, Y, Z int
}

// String renders the point in input notation: "x,y,z".
func (p Point3) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Position is a cell on the ground plane.
type Position struct {
	X, Y int
}

// String renders the position as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Footprint is the inclusive 2-D bounding box a brick covers on the ground plane.
type Footprint struct {
	TopLeft     Position
	BottomRight Position
}

// Brick is an axis-aligned run of cells between Lower and Upper (inclusive).
//
// Lower.Z <= Upper.Z always holds for bricks built with NewBrick.
// Label is an optional diagnostic name and takes no part in ordering.
type Brick struct {
	Lower Point3
	Upper Point3
	Label string
}
