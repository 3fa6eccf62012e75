package aggregate

import (
	"github.com/agbru/aggbench/internal/future"
	"github.com/agbru/aggbench/internal/order"
)

// Fast-path aggregation, parameter-passing continuation.
//
// Each level scans its children by index and consumes already-resolved
// values in place, allocation free. The first child that is not resolved
// escalates into a finish function that receives the collection, the current
// index, the accumulator so far, and the pending value as explicit
// arguments. The finish function completes the remaining iteration itself,
// handling resolved and unresolved children inline; control never returns to
// the fast loop, so escalation happens at most once per invocation per level.

// sumBookFast aggregates the order sums with the resolved-check fast path.
func sumBookFast(b *order.Book) future.Value {
	total := 0
	for i := range b.Orders {
		v := sumOrderFast(&b.Orders[i])
		if !v.IsResolved() {
			return future.Resolved(finishBookSum(b, i, total, v))
		}
		total += v.Get()
	}
	return future.Resolved(total)
}

// finishBookSum completes a book sum after the first unresolved order sum.
func finishBookSum(b *order.Book, i, total int, pending future.Value) int {
	total += pending.Await()
	for i++; i < len(b.Orders); i++ {
		v := sumOrderFast(&b.Orders[i])
		if v.IsResolved() {
			total += v.Get()
		} else {
			total += v.Await()
		}
	}
	return total
}

// sumOrderFast aggregates one order's line quantities with the
// resolved-check fast path.
func sumOrderFast(o *order.Order) future.Value {
	total := 0
	for i := range o.Lines {
		v := o.Lines[i].QuantityAsync()
		if !v.IsResolved() {
			return future.Resolved(finishOrderSum(o, i, total, v))
		}
		total += v.Get()
	}
	return future.Resolved(total)
}

// finishOrderSum completes an order sum after the first unresolved line.
func finishOrderSum(o *order.Order, i, total int, pending future.Value) int {
	total += pending.Await()
	for i++; i < len(o.Lines); i++ {
		v := o.Lines[i].QuantityAsync()
		if v.IsResolved() {
			total += v.Get()
		} else {
			total += v.Await()
		}
	}
	return total
}
