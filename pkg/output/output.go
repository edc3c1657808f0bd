package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/mohnkhan/check-riak/pkg/check"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, yellow, red, dim, reset = "", "", "", "", ""
	}
}

func statusColor(s check.Status) string {
	switch s {
	case check.StatusOK:
		return green
	case check.StatusCritical:
		return red
	default:
		return yellow
	}
}

// formatLabel dims the "label:" prefix of a detail line, if present.
func formatLabel(detail string) string {
	if dim == "" {
		return detail
	}
	idx := strings.Index(detail, ": ")
	if idx < 0 {
		return detail
	}
	return dim + detail[:idx+1] + reset + detail[idx+1:]
}

// PrintResult outputs a check result with colored status.
func PrintResult(r check.Result) {
	fmt.Printf("%s[%s]%s %s\n", statusColor(r.Status), r.Status, reset, r.Name)
	for _, d := range r.Details {
		fmt.Printf("      %s\n", formatLabel(d))
	}
}

// PrintResults outputs a sequence of check results.
func PrintResults(results []check.Result) {
	for _, r := range results {
		PrintResult(r)
	}
}
