package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version. Overridden at build time via
// -ldflags "-X github.com/agbru/aggbench/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "aggbench %s (%s)\n", Version, runtime.Version())
}
