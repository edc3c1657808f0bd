// Package profilecheck runs a short low-level profiler pass against the
// Riak VM and reports syscall latency. It drives dtrace by default and
// degrades to UNKNOWN on hosts without a profiler, so wiring it into a
// scheduled suite stays safe.
package profilecheck

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/proccheck"
	"github.com/mohnkhan/check-riak/pkg/runner"
	"github.com/mohnkhan/check-riak/pkg/threshold"
)

// DefaultProfiler is the profiler binary resolved through PATH.
const DefaultProfiler = "dtrace"

// DefaultDuration is the sampling window for one pass.
const DefaultDuration = 5 * time.Second

// topCalls caps how many syscalls are reported.
const topCalls = 5

// SyscallLatency is one syscall's average latency over the window.
type SyscallLatency struct {
	Name      string
	AvgMicros float64
}

// aggRe matches one aggregation line: syscall name and average nanoseconds.
var aggRe = regexp.MustCompile(`(?m)^\s*([\w.]+)\s+(\d+)\s*$`)

// ParseAggregate extracts per-syscall average latency from dtrace
// aggregation output, sorted slowest first.
func ParseAggregate(out string) []SyscallLatency {
	var calls []SyscallLatency
	for _, m := range aggRe.FindAllStringSubmatch(out, -1) {
		ns, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		calls = append(calls, SyscallLatency{Name: m[1], AvgMicros: ns / 1000})
	}
	sort.Slice(calls, func(i, j int) bool {
		return calls[i].AvgMicros > calls[j].AvgMicros
	})
	return calls
}

// script builds the dtrace program: average syscall latency for the
// target pid, self-terminating after the window.
func script(window time.Duration) string {
	return fmt.Sprintf(
		`syscall:::entry /pid == $target/ { self->ts = timestamp; } `+
			`syscall:::return /self->ts/ { @[probefunc] = avg(timestamp - self->ts); self->ts = 0; } `+
			`tick-%ds { exit(0); }`,
		int(window.Seconds()))
}

// Check profiles the VM's syscall latency for a short window.
type Check struct {
	Node       string               // Erlang node name for pid lookup
	Profiler   string               // profiler binary (default: dtrace)
	Duration   time.Duration        // sampling window (default 5s)
	Thresholds threshold.Thresholds // ceilings on the worst average latency in microseconds
	Lister     proccheck.Lister     // injected for testing
	Runner     runner.Runner        // injected for testing
}

// Run executes the profiler check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "profile: " + c.Node,
	}

	profiler := c.Profiler
	if profiler == "" {
		profiler = DefaultProfiler
	}
	window := c.Duration
	if window < time.Second {
		window = DefaultDuration
	}
	run := c.Runner
	if run == nil {
		run = &runner.RealRunner{}
	}
	lister := c.Lister
	if lister == nil {
		lister = &proccheck.RealLister{}
	}

	if _, err := run.LookPath(profiler); err != nil {
		return result.Unknownf("profiler %s not available: %v", profiler, err)
	}

	vms, err := proccheck.FindVM(lister, c.Node)
	if err != nil {
		return result.Unknownf("%v", err)
	}
	if len(vms) == 0 {
		return result.Unknownf("no beam process found for node %s", c.Node)
	}
	pid := vms[0].PID

	// The window plus startup slack; dtrace exits itself via the tick probe.
	ctx, cancel := context.WithTimeout(context.Background(), window+10*time.Second)
	defer cancel()

	stdout, stderr, err := run.RunContext(ctx, profiler,
		"-q", "-p", strconv.Itoa(int(pid)), "-n", script(window))
	if err != nil {
		if stderr != "" {
			return result.Unknownf("profiler run failed: %s", stderr)
		}
		return result.Unknownf("profiler run failed: %v", err)
	}

	calls := ParseAggregate(stdout)
	if len(calls) == 0 {
		return result.Unknownf("no syscall samples captured in %s", window)
	}

	result.AddDetailf("pid: %d", pid)
	result.AddDetailf("window: %s", window)
	for i, call := range calls {
		if i == topCalls {
			break
		}
		result.AddDetailf("%s: %.1fus avg", call.Name, call.AvgMicros)
	}

	worst := calls[0]
	switch c.Thresholds.Evaluate(worst.AvgMicros, threshold.Ceiling) {
	case check.StatusCritical:
		return result.Criticalf("%s averaging %.1fus", worst.Name, worst.AvgMicros)
	case check.StatusWarning:
		return result.Warningf("%s averaging %.1fus", worst.Name, worst.AvgMicros)
	}

	result.Status = check.StatusOK
	return result
}
