// Package format renders durations, counters and progress indicators for the
// CLI and TUI front ends.
package format

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

// maxETA caps the estimate so a near-zero rate never reports an absurd
// remaining time.
const maxETA = 24 * time.Hour

// ProgressState tracks per-variant completion fractions.
type ProgressState struct {
	mu          sync.Mutex
	numVariants int
	progresses  []float64
}

// NewProgressState creates state for n variants, all at zero progress.
func NewProgressState(n int) *ProgressState {
	return &ProgressState{
		numVariants: n,
		progresses:  make([]float64, n),
	}
}

// Update records the completion fraction of one variant. Out-of-range
// indices are ignored; fractions are clamped to [0, 1].
func (ps *ProgressState) Update(index int, progress float64) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if index < 0 || index >= ps.numVariants {
		return
	}
	ps.progresses[index] = math.Min(1.0, math.Max(0.0, progress))
}

// CalculateAverage returns the mean completion fraction across variants.
func (ps *ProgressState) CalculateAverage() float64 {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.numVariants == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numVariants)
}

// ProgressWithETA extends ProgressState with a completion-time estimate
// derived from the observed progress rate.
type ProgressWithETA struct {
	*ProgressState
	numVariants  int
	startTime    time.Time
	progressRate float64 // fraction per second, exponentially smoothed
	lastAverage  float64
	lastUpdate   time.Time
}

// NewProgressWithETA creates an estimator for n variants.
func NewProgressWithETA(n int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(n),
		numVariants:   n,
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records one variant's progress and returns the overall
// average along with the current ETA.
func (p *ProgressWithETA) UpdateWithETA(index int, progress float64) (float64, time.Duration) {
	p.Update(index, progress)
	average := p.CalculateAverage()

	now := time.Now()
	if elapsed := now.Sub(p.lastUpdate).Seconds(); elapsed > 0 && average > p.lastAverage {
		instantRate := (average - p.lastAverage) / elapsed
		if p.progressRate == 0 {
			p.progressRate = instantRate
		} else {
			// Exponential smoothing keeps the ETA from jumping on every
			// update.
			p.progressRate = 0.7*p.progressRate + 0.3*instantRate
		}
		p.lastAverage = average
		p.lastUpdate = now
	}

	return average, p.GetETA()
}

// GetETA estimates the remaining time from the smoothed progress rate. It
// returns 0 when no rate has been observed yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1.0 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders an ETA compactly: "calculating..." before an estimate
// exists, then "< 1s", "45s", "2m30s", "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		minutes := int(eta.Minutes())
		seconds := int(eta.Seconds()) % 60
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		hours := int(eta.Hours())
		minutes := int(eta.Minutes()) % 60
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
}

// ProgressBar renders a fixed-width bar of filled and light blocks. The
// fraction is clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	progress = math.Min(1.0, math.Max(0.0, progress))
	filled := int(progress * float64(length))

	var b strings.Builder
	b.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < filled {
			b.WriteRune('█')
		} else {
			b.WriteRune('░')
		}
	}
	return b.String()
}

// FormatProgressBarWithETA combines a bar, a percentage and the ETA into one
// status line.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
