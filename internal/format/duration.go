package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders a duration at a precision suited to its
// magnitude: microseconds below a millisecond, milliseconds below a second,
// and the default representation beyond that.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
