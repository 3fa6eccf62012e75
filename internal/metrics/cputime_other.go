//go:build !unix

package metrics

import "time"

// CPUTime is unavailable on this platform; callers treat zero as "not
// measured".
func CPUTime() time.Duration {
	return 0
}
