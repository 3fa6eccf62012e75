// Package sysmon samples system-wide resource usage. The harness records a
// snapshot alongside each run so results can be discounted when the machine
// was busy.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// HostInfo describes the hardware the measurements ran on.
type HostInfo struct {
	LogicalCores  int
	PhysicalCores int
	TotalMemBytes uint64
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Host collects static hardware facts. Fields are zero when the platform
// does not expose them.
func Host() HostInfo {
	var h HostInfo
	if n, err := cpu.Counts(true); err == nil {
		h.LogicalCores = n
	}
	if n, err := cpu.Counts(false); err == nil {
		h.PhysicalCores = n
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		h.TotalMemBytes = vmem.Total
	}
	return h
}
