// Package sysinfo collects the diagnostic key/value report emitted by
// the system-info command for bug reports.
package sysinfo

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/unix"

	"periscope/internal/version"
)

// Metric is one row of the diagnostic report. Code marks values that
// should render in a monospace/code style.
type Metric struct {
	Label string
	Value string
	Code  bool
}

// Report gathers the diagnostic metrics in display order.
func Report() []Metric {
	metrics := []Metric{
		{Label: "Periscope Version", Value: version.Version, Code: true},
		{Label: "Go Runtime", Value: runtime.Version(), Code: true},
		{Label: "Platform", Value: runtime.GOOS + "/" + runtime.GOARCH, Code: true},
		{Label: "CPU Cores", Value: fmt.Sprintf("%d", runtime.NumCPU())},
	}

	var uname unix.Utsname
	if err := unix.Uname(&uname); err == nil {
		metrics = append(metrics,
			Metric{Label: "Kernel", Value: charsToString(uname.Release[:]), Code: true},
			Metric{Label: "Hostname", Value: charsToString(uname.Nodename[:])},
		)
	}

	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err == nil {
		totalMiB := uint64(info.Totalram) * uint64(info.Unit) / (1 << 20)
		metrics = append(metrics, Metric{Label: "Total Memory", Value: fmt.Sprintf("%d MiB", totalMiB)})
	}

	return metrics
}

func charsToString(chars []byte) string {
	return strings.TrimRight(string(chars), "\x00")
}
