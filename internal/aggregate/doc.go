// Package aggregate implements four traversals of the same Book tree, all
// returning the sum of every line quantity:
//
//   - Sync: plain nested loops, no suspension machinery. Baseline.
//   - AwaitEach: every leaf read goes through the full suspend-and-resume
//     path even when the value is already available, allocating a resume
//     frame per node.
//   - FastPathParams: checks each child for immediate resolution and only
//     escalates into a suspension-aware continuation on the first pending
//     child; the continuation receives its partial state (index,
//     accumulator, pending value) as explicit parameters.
//   - FastPathCaptured: same escalation policy, but the continuation
//     captures its partial state from the enclosing scope.
//
// All four are strictly sequential. The suspension machinery is exercised
// purely as a calling convention: with the standard fixture every leaf
// resolves synchronously, so the variants differ only in what they allocate,
// which is exactly what the harness measures.
package aggregate
