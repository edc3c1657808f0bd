package admincheck

import (
	"regexp"
	"strconv"
	"time"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/runner"
	"github.com/mohnkhan/check-riak/pkg/threshold"
)

// Membership holds the member-status summary counts.
type Membership struct {
	Valid   int
	Leaving int
	Exiting int
	Joining int
	Down    int
}

// InFlux counts members in a transitional state.
func (m Membership) InFlux() int {
	return m.Leaving + m.Exiting + m.Joining
}

var memberSummaryRe = regexp.MustCompile(
	`Valid:(\d+) / Leaving:(\d+) / Exiting:(\d+) / Joining:(\d+) / Down:(\d+)`)

// ParseMemberStatus extracts the summary counts from member-status output.
func ParseMemberStatus(out string) (Membership, bool) {
	matches := memberSummaryRe.FindStringSubmatch(out)
	if matches == nil {
		return Membership{}, false
	}
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}
	return Membership{
		Valid:   atoi(matches[1]),
		Leaving: atoi(matches[2]),
		Exiting: atoi(matches[3]),
		Joining: atoi(matches[4]),
		Down:    atoi(matches[5]),
	}, true
}

// MembersCheck inspects ring membership. Down members are critical,
// transitional members a warning, and the thresholds set floors on the
// valid-member count.
type MembersCheck struct {
	Admin      string               // riak-admin path (default: riak-admin)
	Timeout    time.Duration        // invocation timeout
	Thresholds threshold.Thresholds // minimum valid members (floor)
	Runner     runner.Runner        // injected for testing
}

// Run executes `riak-admin member-status`.
func (c *MembersCheck) Run() check.Result {
	result := check.Result{
		Name: "members",
	}

	out, err := runAdmin(c.Runner, c.Admin, c.Timeout, "member-status")
	if err != nil {
		return result.Unknownf("%v", err)
	}

	m, ok := ParseMemberStatus(out)
	if !ok {
		return result.Unknownf("no membership summary in member-status output")
	}

	result.AddDetailf("valid: %d", m.Valid)
	result.AddDetailf("leaving: %d", m.Leaving)
	result.AddDetailf("exiting: %d", m.Exiting)
	result.AddDetailf("joining: %d", m.Joining)
	result.AddDetailf("down: %d", m.Down)

	if m.Down > 0 {
		return result.Criticalf("%d member(s) down", m.Down)
	}

	switch c.Thresholds.Evaluate(float64(m.Valid), threshold.Floor) {
	case check.StatusCritical:
		return result.Criticalf("only %d valid member(s)", m.Valid)
	case check.StatusWarning:
		return result.Warningf("only %d valid member(s)", m.Valid)
	}

	if n := m.InFlux(); n > 0 {
		return result.Warningf("%d member(s) in transition", n)
	}

	result.Status = check.StatusOK
	return result
}
