package aggregate

import (
	"testing"

	"github.com/agbru/aggbench/internal/order"
)

// benchSink keeps the totals observable so the traversals are not optimized
// away.
var benchSink int

// BenchmarkAggregators measures per-invocation time and heap allocations for
// the four traversal strategies over the shared fixture. The synchronous
// variant is the baseline; the interesting comparison is the allocation
// column: AwaitEach pays one frame per node while both fast-path variants
// stay at zero when every leaf resolves synchronously.
func BenchmarkAggregators(b *testing.B) {
	suite := DefaultSuite()
	suite.Book() // build the fixture outside the timed region

	for _, v := range suite.Variants() {
		b.Run(v.Name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink = v.Run()
			}
		})
	}
}

// BenchmarkSuspensionStep isolates the cost of one suspend-and-resume step
// against one resolved-check, the per-child decision the fast path removes.
func BenchmarkSuspensionStep(b *testing.B) {
	line := &order.OrderLine{Quantity: 1}

	b.Run("await-frame", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			benchSink = awaitInto(benchSink, line.QuantityAsync())
		}
	})

	b.Run("resolved-check", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := line.QuantityAsync()
			if v.IsResolved() {
				benchSink += v.Get()
			} else {
				benchSink += v.Await()
			}
		}
	})
}
