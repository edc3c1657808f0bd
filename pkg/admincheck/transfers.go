package admincheck

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/runner"
	"github.com/mohnkhan/check-riak/pkg/threshold"
)

var handoffRe = regexp.MustCompile(`'([^']+)' waiting to handoff (\d+) partitions?`)

// Handoff is one node's pending partition handoff count.
type Handoff struct {
	Node       string
	Partitions int
}

// ParseTransfers extracts pending handoffs from transfers output.
func ParseTransfers(out string) []Handoff {
	var handoffs []Handoff
	for _, m := range handoffRe.FindAllStringSubmatch(out, -1) {
		n, _ := strconv.Atoi(m[2])
		handoffs = append(handoffs, Handoff{Node: m[1], Partitions: n})
	}
	return handoffs
}

// TransfersCheck counts partitions waiting to handoff. With no
// thresholds configured, any pending transfer is a warning.
type TransfersCheck struct {
	Admin      string               // riak-admin path (default: riak-admin)
	Timeout    time.Duration        // invocation timeout
	Thresholds threshold.Thresholds // ceilings on pending partitions
	Runner     runner.Runner        // injected for testing
}

// Run executes `riak-admin transfers`.
func (c *TransfersCheck) Run() check.Result {
	result := check.Result{
		Name: "transfers",
	}

	out, err := runAdmin(c.Runner, c.Admin, c.Timeout, "transfers")
	if err != nil {
		return result.Unknownf("%v", err)
	}

	if strings.Contains(out, "No transfers active") {
		result.Status = check.StatusOK
		result.AddDetail("no transfers active")
		return result
	}

	handoffs := ParseTransfers(out)
	if len(handoffs) == 0 {
		return result.Unknownf("unrecognized transfers output: %q", firstNonEmptyLine(out))
	}

	total := 0
	for _, h := range handoffs {
		total += h.Partitions
		result.AddDetailf("%s: %d partition(s) waiting", h.Node, h.Partitions)
	}

	if !c.Thresholds.Set() {
		return result.Warningf("%d partition(s) waiting to handoff", total)
	}

	switch c.Thresholds.Evaluate(float64(total), threshold.Ceiling) {
	case check.StatusCritical:
		return result.Criticalf("%d partition(s) waiting to handoff", total)
	case check.StatusWarning:
		return result.Warningf("%d partition(s) waiting to handoff", total)
	}

	result.Status = check.StatusOK
	result.AddDetailf("%d partition(s) waiting to handoff", total)
	return result
}
