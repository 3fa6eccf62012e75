//go:build unix

package metrics

import (
	"time"

	"golang.org/x/sys/unix"
)

// CPUTime returns the cumulative user+system CPU time consumed by the
// process, or zero when the reading fails. Sampling it around the measured
// loop distinguishes time spent computing from time spent descheduled.
func CPUTime() time.Duration {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &usage); err != nil {
		return 0
	}
	user := time.Duration(usage.Utime.Sec)*time.Second + time.Duration(usage.Utime.Usec)*time.Microsecond
	system := time.Duration(usage.Stime.Sec)*time.Second + time.Duration(usage.Stime.Usec)*time.Microsecond
	return user + system
}
