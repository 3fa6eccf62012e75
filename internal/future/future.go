// Package future provides a maybe-pending integer value: a result that is
// either already available synchronously or will be delivered later on a
// channel. The type is passed by value so that the already-resolved case
// carries no heap allocation, which is the property the aggregation
// benchmarks in this repository are built to measure.
package future

// Value is an int result that may already be resolved or may still be
// pending delivery on a channel. The zero Value is resolved with value 0.
type Value struct {
	v  int
	ch <-chan int
}

// Resolved returns a Value that already holds its result.
func Resolved(v int) Value {
	return Value{v: v}
}

// Pending returns a Value whose result will arrive on ch. The sender must
// deliver exactly one int; the Value is consumed by a single Await call.
func Pending(ch <-chan int) Value {
	return Value{ch: ch}
}

// IsResolved reports whether the result is already available without
// suspending.
func (val Value) IsResolved() bool {
	return val.ch == nil
}

// Get returns the result of a resolved Value. It must only be called when
// IsResolved reports true; calling it on a pending Value is a programming
// defect and returns a meaningless zero.
func (val Value) Get() int {
	return val.v
}

// Await returns the result, blocking on the channel when the Value is still
// pending. For a resolved Value it returns immediately.
func (val Value) Await() int {
	if val.ch == nil {
		return val.v
	}
	return <-val.ch
}
