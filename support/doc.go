// Package support analyzes the support graph of a settled brick stack.
//
// What:
//
//   - Graph records, per brick handle, the bricks it rests on (SupportedBy)
//     and the bricks resting on it (Supports). Edges point upward: an edge
//     u→v means u supports v.
//   - Removable lists the bricks that are nobody's sole supporter: they can be
//     disintegrated without any other brick losing all of its support.
//   - TopologicalOrder yields a bottom-up order (every supporter before the
//     bricks it supports), or ErrCycleDetected for a malformed relation.
//   - Cascade simulates disintegrating one brick and reports the chain
//     reaction: a brick falls once every one of its supporters has fallen.
//   - CascadeCounts / CascadeTotal run every brick's cascade in parallel with
//     errgroup, bounded by a worker limit.
//
// Why:
//
//   - The settlement engine's online candidate set answers "how many bricks
//     are safe", while the graph answers "which bricks hold which" and "how
//     bad is removing this one".
//
// Complexity:
//
//   - FromSupporters: O(V + E log E).
//   - Removable:      O(V + E).
//   - TopologicalOrder, Cascade: O(V + E) time, O(V) memory.
//   - CascadeCounts:  O(V·(V + E)) total work, spread over workers.
//
// Errors:
//
//   - ErrResultNil       nil settle.Result
//   - ErrHandleRange     a handle outside [0, Len())
//   - ErrSelfSupport     a brick listed as its own supporter
//   - ErrCycleDetected   support relation is not acyclic
//   - ErrOptionViolation invalid option (negative worker count or depth)
//   - context.Canceled   cancellation via WithContext / ctx arguments
//   - hook errors        propagated from OnFall
package support
