// Package metrics reads runtime and OS-level measurements for the benchmark
// harness: heap statistics around a measured loop and process CPU time.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	TotalAlloc   uint64 // cumulative bytes allocated
	Mallocs      uint64 // cumulative heap objects allocated
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryDelta is the difference between two snapshots taken around a
// measured loop.
type MemoryDelta struct {
	AllocBytes uint64 // bytes allocated during the loop
	Allocs     uint64 // heap objects allocated during the loop
	GCCycles   uint32 // collections completed during the loop
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		TotalAlloc:   m.TotalAlloc,
		Mallocs:      m.Mallocs,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Delta computes the allocation activity between two snapshots. The
// cumulative counters never decrease, so before must have been taken first.
func Delta(before, after MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		AllocBytes: after.TotalAlloc - before.TotalAlloc,
		Allocs:     after.Mallocs - before.Mallocs,
		GCCycles:   after.NumGC - before.NumGC,
	}
}

// PerOp divides the delta across n operations. Returns zeros when n is not
// positive.
func (d MemoryDelta) PerOp(n int) (bytesPerOp, allocsPerOp float64) {
	if n <= 0 {
		return 0, 0
	}
	return float64(d.AllocBytes) / float64(n), float64(d.Allocs) / float64(n)
}
