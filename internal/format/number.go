package format

import (
	"fmt"
	"strings"
)

// FormatNumberString inserts thousand separators into a decimal integer
// string. A leading sign is preserved.
func FormatNumberString(s string) string {
	if s == "" {
		return s
	}

	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign = s[:1]
		s = s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// FormatCount renders an integer with thousand separators.
func FormatCount(n int) string {
	return FormatNumberString(fmt.Sprintf("%d", n))
}

// FormatNsPerOp renders a per-operation wall time with a precision suited to
// its magnitude.
func FormatNsPerOp(ns float64) string {
	switch {
	case ns < 10:
		return fmt.Sprintf("%.2f ns/op", ns)
	case ns < 1_000:
		return fmt.Sprintf("%.1f ns/op", ns)
	default:
		return fmt.Sprintf("%s ns/op", FormatNumberString(fmt.Sprintf("%.0f", ns)))
	}
}

// FormatAllocsPerOp renders a per-operation allocation count. Whole numbers
// drop the fraction.
func FormatAllocsPerOp(allocs float64) string {
	if allocs == float64(int64(allocs)) {
		return fmt.Sprintf("%d allocs/op", int64(allocs))
	}
	return fmt.Sprintf("%.2f allocs/op", allocs)
}

// FormatBytesPerOp renders a per-operation allocation volume.
func FormatBytesPerOp(bytes float64) string {
	if bytes == float64(int64(bytes)) {
		return fmt.Sprintf("%d B/op", int64(bytes))
	}
	return fmt.Sprintf("%.2f B/op", bytes)
}

// FormatBytes renders a byte count with a binary-prefix unit.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatOpsPerSec renders throughput with an SI suffix above a million.
func FormatOpsPerSec(ops float64) string {
	switch {
	case ops >= 1_000_000_000:
		return fmt.Sprintf("%.2fG ops/s", ops/1_000_000_000)
	case ops >= 1_000_000:
		return fmt.Sprintf("%.2fM ops/s", ops/1_000_000)
	case ops >= 1_000:
		return fmt.Sprintf("%.1fk ops/s", ops/1_000)
	default:
		return fmt.Sprintf("%.0f ops/s", ops)
	}
}
