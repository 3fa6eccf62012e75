package aggregate

import (
	"github.com/agbru/aggbench/internal/future"
	"github.com/agbru/aggbench/internal/order"
)

// Fast-path aggregation, captured-state continuation.
//
// The decision policy is identical to the parameter-passing variant: consume
// resolved children in place, escalate once per level on the first pending
// child, finish the traversal inside the continuation. The difference under
// measurement is how the partial state reaches the continuation: here the
// index, accumulator, and pending value live in the enclosing scope and the
// continuation is a closure over them, so whatever the runtime must keep
// alive for the closure is what gets allocated on escalation.

// sumBookFastCaptured aggregates the order sums with the resolved-check fast
// path and a closure continuation.
func sumBookFastCaptured(b *order.Book) future.Value {
	total := 0
	for i := 0; i < len(b.Orders); i++ {
		v := sumOrderFastCaptured(&b.Orders[i])
		if !v.IsResolved() {
			finish := func() int {
				total += v.Await()
				for i++; i < len(b.Orders); i++ {
					ov := sumOrderFastCaptured(&b.Orders[i])
					if ov.IsResolved() {
						total += ov.Get()
					} else {
						total += ov.Await()
					}
				}
				return total
			}
			return future.Resolved(finish())
		}
		total += v.Get()
	}
	return future.Resolved(total)
}

// sumOrderFastCaptured aggregates one order's line quantities with the
// resolved-check fast path and a closure continuation.
func sumOrderFastCaptured(o *order.Order) future.Value {
	total := 0
	for i := 0; i < len(o.Lines); i++ {
		v := o.Lines[i].QuantityAsync()
		if !v.IsResolved() {
			finish := func() int {
				total += v.Await()
				for i++; i < len(o.Lines); i++ {
					lv := o.Lines[i].QuantityAsync()
					if lv.IsResolved() {
						total += lv.Get()
					} else {
						total += lv.Await()
					}
				}
				return total
			}
			return future.Resolved(finish())
		}
		total += v.Get()
	}
	return future.Resolved(total)
}
