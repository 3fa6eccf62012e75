// This file contains the deterministic fixture generator.

package order

import "math/rand"

// ─────────────────────────────────────────────────────────────────────────────
// Fixture Generation Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultSeed is the seed used for the documented benchmark fixture.
	// The total quantity reachable from a Book generated with this seed is a
	// fixed integer, which the equivalence tests rely on.
	DefaultSeed int64 = 12345

	// DefaultOrderCount is the number of orders in the benchmark fixture.
	DefaultOrderCount = 50

	// maxLinesPerOrder bounds the lines per order; each order receives
	// between 1 and maxLinesPerOrder lines inclusive.
	maxLinesPerOrder = 9

	// quantityBound is the exclusive upper bound for line quantities; each
	// line receives a quantity in [1, quantityBound).
	quantityBound = 20
)

// GenerateBook deterministically builds a Book with orderCount orders, each
// holding 1 to 9 lines with quantities drawn uniformly from [1, 20). The same
// seed always yields an identical tree.
//
// Parameters:
//   - seed: The seed for the random source.
//   - orderCount: The number of orders to generate.
//
// Returns:
//   - *Book: The generated tree, ready for repeated immutable traversal.
func GenerateBook(seed int64, orderCount int) *Book {
	rng := rand.New(rand.NewSource(seed))
	book := &Book{Orders: make([]Order, orderCount)}
	for i := range book.Orders {
		lineCount := rng.Intn(maxLinesPerOrder) + 1
		lines := make([]OrderLine, lineCount)
		for j := range lines {
			lines[j] = OrderLine{Quantity: rng.Intn(quantityBound-1) + 1}
		}
		book.Orders[i].Lines = lines
	}
	return book
}

// DefaultBook builds the documented benchmark fixture: DefaultOrderCount
// orders generated from DefaultSeed.
func DefaultBook() *Book {
	return GenerateBook(DefaultSeed, DefaultOrderCount)
}
