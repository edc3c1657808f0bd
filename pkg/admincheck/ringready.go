package admincheck

import (
	"strings"
	"time"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/runner"
)

// RingReadyCheck verifies all nodes agree on the ring.
type RingReadyCheck struct {
	Admin   string        // riak-admin path (default: riak-admin)
	Timeout time.Duration // invocation timeout
	Runner  runner.Runner // injected for testing
}

// Run executes `riak-admin ringready`.
func (c *RingReadyCheck) Run() check.Result {
	result := check.Result{
		Name: "ringready",
	}

	out, err := runAdmin(c.Runner, c.Admin, c.Timeout, "ringready")
	if err != nil {
		return result.Unknownf("%v", err)
	}

	line := firstNonEmptyLine(out)
	switch {
	case strings.HasPrefix(line, "TRUE"):
		result.Status = check.StatusOK
		result.AddDetail(line)
		return result
	case strings.HasPrefix(line, "FALSE"):
		return result.Critical(line, nil)
	default:
		return result.Unknownf("unrecognized ringready output: %q", line)
	}
}

func firstNonEmptyLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
