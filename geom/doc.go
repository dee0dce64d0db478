// Package geom defines the integer geometry used by the brick settlement
// engine: 3-D points, axis-aligned bricks and their 2-D footprints on the
// ground plane.
//
// What:
//
//   - Point3: an (X, Y, Z) integer triple ordered by Z, then X, then Y, so that
//     sorting points sorts them by height above the ground.
//   - Brick: a unit cross-section segment between two Point3 endpoints,
//     normalized so Lower.Z <= Upper.Z. A brick extends along at most one axis.
//   - Footprint: the inclusive 2-D bounding box of a brick projected onto the
//     ground plane. Footprint.Cells enumerates every covered Position lazily.
//
// Why:
//
//   - Sorting bricks by their lowest point gives the order in which bricks
//     can be settled without ever consulting a brick that has not landed yet.
//   - Footprints are the unit of work for the settlement surface: every
//     height query and update is performed over a brick's footprint cells.
//
// Complexity:
//
//   - NewBrick, Footprint, Compare*: O(1).
//   - Footprint.Cells: O(Area) over the whole sequence, O(1) memory.
//
// Errors:
//
//   - ErrDiagonal: brick endpoints differ in more than one axis.
//   - ErrEmptyFootprint: footprint covers no cells (inverted bounds).
package geom
