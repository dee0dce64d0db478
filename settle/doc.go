// Package settle drops suspended bricks onto the ground, one at a time, and
// records which settled bricks each one comes to rest on.
//
// What:
//
//   - Settle sorts bricks by their lowest point (geom.CompareBricks) and lowers
//     each in turn until it rests on the ground (z = 1) or on the tallest
//     already-settled brick beneath its footprint.
//   - Every brick standing at that tallest height is recorded as a supporter;
//     ties are inclusive.
//   - While settling, any brick found to be the sole supporter of another is
//     struck from the set of bricks that could be safely disintegrated.
//     A struck brick is never re-qualified: settled bricks never move again.
//
// Why:
//
//   - Bricks sorted by lowest z only ever land on bricks that were processed
//     earlier, so one sequential pass over a single surface.Surface suffices.
//
// Complexity:
//
//   - Time O(n log n + Σ Area(footprint)), Memory O(n + occupied columns).
//
// Errors:
//
//   - ErrInvalidBrick: a brick fails geom validation (diagonal).
//   - ErrEmptyFootprint: a brick covers no ground cells (wraps geom.ErrEmptyFootprint).
//   - surface.ErrOverlap: a brick would settle into an occupied column
//     (overlapping input). The run is aborted and no partial Result is returned.
//   - context.Canceled / DeadlineExceeded from WithContext.
package settle
