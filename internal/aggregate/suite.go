package aggregate

import (
	"sync"

	"github.com/agbru/aggbench/internal/order"
)

// Variant names accepted by the -variant flag. VariantAll selects every
// aggregator for comparison.
const (
	VariantAll              = "all"
	VariantSync             = "sync"
	VariantAwaitEach        = "await-each"
	VariantFastPathParams   = "fastpath-params"
	VariantFastPathCaptured = "fastpath-captured"
)

// Variant is a single runnable aggregation entry point. Run takes no
// arguments and closes over the suite's shared fixture.
type Variant struct {
	// Name identifies the aggregation strategy.
	Name string
	// Baseline marks the variant other results are compared against.
	Baseline bool
	// Run executes one full traversal and returns the total quantity.
	Run func() int
}

// Suite bundles the four aggregation entry points around one lazily built,
// shared fixture. The fixture is constructed on first use and reused
// immutably across every subsequent invocation.
type Suite struct {
	seed       int64
	orderCount int

	once sync.Once
	book *order.Book
}

// NewSuite creates a suite whose fixture will be generated from the given
// seed and order count on first use.
func NewSuite(seed int64, orderCount int) *Suite {
	return &Suite{seed: seed, orderCount: orderCount}
}

// NewSuiteWithBook creates a suite over an already constructed tree. Used by
// tests that need precise control over the fixture shape.
func NewSuiteWithBook(book *order.Book) *Suite {
	return &Suite{book: book}
}

// DefaultSuite creates a suite over the documented benchmark fixture
// (seed 12345, 50 orders).
func DefaultSuite() *Suite {
	return NewSuite(order.DefaultSeed, order.DefaultOrderCount)
}

// Book returns the shared fixture, generating it on first call unless one
// was supplied at construction.
func (s *Suite) Book() *order.Book {
	s.once.Do(func() {
		if s.book == nil {
			s.book = order.GenerateBook(s.seed, s.orderCount)
		}
	})
	return s.book
}

// Sync returns the total quantity using the synchronous baseline traversal.
func (s *Suite) Sync() int {
	return sumBookSync(s.Book())
}

// AwaitEach returns the total quantity, suspending unconditionally at every
// leaf read.
func (s *Suite) AwaitEach() int {
	return sumBookAwaitEach(s.Book())
}

// FastPathParams returns the total quantity using the resolved-check fast
// path with a parameter-passing continuation.
func (s *Suite) FastPathParams() int {
	return sumBookFast(s.Book()).Await()
}

// FastPathCaptured returns the total quantity using the resolved-check fast
// path with a state-capturing continuation.
func (s *Suite) FastPathCaptured() int {
	return sumBookFastCaptured(s.Book()).Await()
}

// Variants returns the four entry points in presentation order, with the
// synchronous baseline first.
func (s *Suite) Variants() []Variant {
	return []Variant{
		{Name: VariantSync, Baseline: true, Run: s.Sync},
		{Name: VariantAwaitEach, Run: s.AwaitEach},
		{Name: VariantFastPathParams, Run: s.FastPathParams},
		{Name: VariantFastPathCaptured, Run: s.FastPathCaptured},
	}
}

// VariantNames lists every selectable variant name, including VariantAll.
func VariantNames() []string {
	return []string{
		VariantAll,
		VariantSync,
		VariantAwaitEach,
		VariantFastPathParams,
		VariantFastPathCaptured,
	}
}

// Select returns the variants matching name: all of them for VariantAll, or
// the single named one. The boolean reports whether the name was recognized.
func (s *Suite) Select(name string) ([]Variant, bool) {
	variants := s.Variants()
	if name == "" || name == VariantAll {
		return variants, true
	}
	for _, v := range variants {
		if v.Name == name {
			return []Variant{v}, true
		}
	}
	return nil, false
}
