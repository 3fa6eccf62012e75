package aggregate

import "github.com/agbru/aggbench/internal/order"

// sumBookSync walks book -> orders -> lines with plain nested loops. No
// suspension semantics are involved; this is both the correctness baseline
// and the performance baseline the other variants are compared against.
func sumBookSync(b *order.Book) int {
	total := 0
	for i := range b.Orders {
		total += sumOrderSync(&b.Orders[i])
	}
	return total
}

// sumOrderSync sums the line quantities of a single order.
func sumOrderSync(o *order.Order) int {
	total := 0
	for i := range o.Lines {
		total += o.Lines[i].Quantity
	}
	return total
}
