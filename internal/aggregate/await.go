package aggregate

import (
	"github.com/agbru/aggbench/internal/future"
	"github.com/agbru/aggbench/internal/order"
)

// awaitFrame is the state container built for one suspend-and-resume step:
// the accumulator so far and the value being awaited. The uniform variant
// allocates one per child read, resolved or not, which is the calling
// convention whose cost this variant exists to measure.
type awaitFrame struct {
	total   int
	pending future.Value
}

// resume finishes the step: await the value and fold it into the accumulator.
func (f *awaitFrame) resume() int {
	return f.total + f.pending.Await()
}

// parkedFrame holds the most recently issued frame, standing in for the
// scheduler slot that would keep a suspended computation reachable. Parking
// the frame pins it to the heap. Like the rest of the package, this slot
// assumes the single-threaded runner: concurrent aggregations would race on
// it.
var parkedFrame *awaitFrame

// awaitInto performs one full suspension step for v, allocating a fresh
// resume frame regardless of whether v is already resolved.
func awaitInto(total int, v future.Value) int {
	f := &awaitFrame{total: total, pending: v}
	parkedFrame = f
	return f.resume()
}

// sumBookAwaitEach walks the tree awaiting every child unconditionally. Each
// order sum and each leaf read pays for one frame even though, with the
// standard fixture, every value is already resolved when awaited.
func sumBookAwaitEach(b *order.Book) int {
	total := 0
	for i := range b.Orders {
		total = awaitInto(total, sumOrderAwaitEach(&b.Orders[i]))
	}
	return total
}

// sumOrderAwaitEach sums one order's lines through the suspension machinery
// and exposes the result as a maybe-pending value for the book level.
func sumOrderAwaitEach(o *order.Order) future.Value {
	total := 0
	for i := range o.Lines {
		total = awaitInto(total, o.Lines[i].QuantityAsync())
	}
	return future.Resolved(total)
}
