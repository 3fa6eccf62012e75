// Package order defines the Book / Order / OrderLine tree the aggregation
// benchmarks traverse, together with the seeded fixture generator that
// produces it. Ownership is strictly tree-shaped: a Book owns its Orders and
// each Order owns its Lines. The tree is never mutated after construction.
package order

import "github.com/agbru/aggbench/internal/future"

// OrderLine is a leaf of the tree holding a single non-negative quantity.
type OrderLine struct {
	Quantity int
}

// QuantityAsync exposes the quantity as a maybe-pending value. In this
// repository the quantity is always available, so the returned Value is
// always resolved; the signature exists to force callers into
// suspension-aware calling conventions, which is what the benchmarks
// compare.
func (l *OrderLine) QuantityAsync() future.Value {
	return future.Resolved(l.Quantity)
}

// Order owns an ordered sequence of lines.
type Order struct {
	Lines []OrderLine
}

// Book owns an ordered sequence of orders. It is the root of the fixture.
type Book struct {
	Orders []Order
}
