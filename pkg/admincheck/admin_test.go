package admincheck

import (
	"context"
	"errors"
	"testing"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/runner"
	"github.com/mohnkhan/check-riak/pkg/testutil"
	"github.com/mohnkhan/check-riak/pkg/threshold"
)

func adminRunner(t *testing.T, wantArg, stdout string) *runner.MockRunner {
	t.Helper()
	return &runner.MockRunner{
		RunContextFunc: func(_ context.Context, name string, args ...string) (string, string, error) {
			if len(args) != 1 || args[0] != wantArg {
				t.Errorf("args = %v, want [%s]", args, wantArg)
			}
			return stdout, "", nil
		},
	}
}

func failingRunner(stderr string) *runner.MockRunner {
	return &runner.MockRunner{
		RunContextFunc: func(_ context.Context, name string, args ...string) (string, string, error) {
			return "", stderr, errors.New("exit status 1")
		},
	}
}

func TestRingReady_True(t *testing.T) {
	c := &RingReadyCheck{
		Runner: adminRunner(t, "ringready",
			"TRUE All nodes agree on the ring ['riak@10.0.0.1','riak@10.0.0.2']\n"),
	}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusOK)
	}
	if !testutil.ContainsDetail(result.Details, "All nodes agree") {
		t.Errorf("Details = %v, want agreement line", result.Details)
	}
}

func TestRingReady_False(t *testing.T) {
	c := &RingReadyCheck{
		Runner: adminRunner(t, "ringready",
			"FALSE ['riak@10.0.0.2'] down.  All nodes need to be up to check.\n"),
	}

	result := c.Run()

	if result.Status != check.StatusCritical {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusCritical)
	}
}

func TestRingReady_CommandFails(t *testing.T) {
	c := &RingReadyCheck{
		Runner: failingRunner("Node is not running!"),
	}

	result := c.Run()

	if result.Status != check.StatusUnknown {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusUnknown)
	}
	if !testutil.ContainsDetail(result.Details, "Node is not running!") {
		t.Errorf("Details = %v, want stderr carried through", result.Details)
	}
}

func TestRingReady_Garbage(t *testing.T) {
	c := &RingReadyCheck{
		Runner: adminRunner(t, "ringready", "something unexpected\n"),
	}

	if result := c.Run(); result.Status != check.StatusUnknown {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusUnknown)
	}
}

const memberStatusOutput = `================================= Membership ==================================
Status     Ring    Pending    Node
-------------------------------------------------------------------------------
valid      34.4%      --      'riak@10.0.0.1'
valid      32.8%      --      'riak@10.0.0.2'
valid      32.8%      --      'riak@10.0.0.3'
-------------------------------------------------------------------------------
Valid:3 / Leaving:0 / Exiting:0 / Joining:0 / Down:0
`

func TestParseMemberStatus(t *testing.T) {
	m, ok := ParseMemberStatus(memberStatusOutput)
	if !ok {
		t.Fatal("ParseMemberStatus() ok = false, want true")
	}
	want := Membership{Valid: 3}
	if m != want {
		t.Errorf("ParseMemberStatus() = %+v, want %+v", m, want)
	}

	if _, ok := ParseMemberStatus("no summary here"); ok {
		t.Error("ParseMemberStatus(garbage) ok = true, want false")
	}
}

func TestMembers_AllValid(t *testing.T) {
	c := &MembersCheck{
		Runner: adminRunner(t, "member-status", memberStatusOutput),
	}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusOK)
	}
	if !testutil.ContainsDetail(result.Details, "valid: 3") {
		t.Errorf("Details = %v, want valid count", result.Details)
	}
}

func TestMembers_Down(t *testing.T) {
	out := "Valid:2 / Leaving:0 / Exiting:0 / Joining:0 / Down:1\n"
	c := &MembersCheck{
		Runner: adminRunner(t, "member-status", out),
	}

	result := c.Run()

	if result.Status != check.StatusCritical {
		t.Errorf("Status = %v, want %v for a down member", result.Status, check.StatusCritical)
	}
}

func TestMembers_Transitioning(t *testing.T) {
	out := "Valid:2 / Leaving:1 / Exiting:0 / Joining:0 / Down:0\n"
	c := &MembersCheck{
		Runner: adminRunner(t, "member-status", out),
	}

	result := c.Run()

	if result.Status != check.StatusWarning {
		t.Errorf("Status = %v, want %v for a leaving member", result.Status, check.StatusWarning)
	}
}

func TestMembers_ValidFloor(t *testing.T) {
	out := "Valid:2 / Leaving:0 / Exiting:0 / Joining:0 / Down:0\n"
	c := &MembersCheck{
		Thresholds: threshold.Thresholds{
			Warn: testutil.Ptr(3.0),
			Crit: testutil.Ptr(2.0),
		},
		Runner: adminRunner(t, "member-status", out),
	}

	result := c.Run()

	if result.Status != check.StatusWarning {
		t.Errorf("Status = %v, want %v below warn floor", result.Status, check.StatusWarning)
	}
}

func TestMembers_NoSummary(t *testing.T) {
	c := &MembersCheck{
		Runner: adminRunner(t, "member-status", "garbage\n"),
	}

	if result := c.Run(); result.Status != check.StatusUnknown {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusUnknown)
	}
}

func TestTransfers_NoneActive(t *testing.T) {
	c := &TransfersCheck{
		Runner: adminRunner(t, "transfers", "No transfers active\n"),
	}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusOK)
	}
}

const transfersOutput = `'riak@10.0.0.2' waiting to handoff 3 partitions
'riak@10.0.0.1' waiting to handoff 1 partition
`

func TestParseTransfers(t *testing.T) {
	handoffs := ParseTransfers(transfersOutput)
	if len(handoffs) != 2 {
		t.Fatalf("len(handoffs) = %d, want 2", len(handoffs))
	}
	if handoffs[0].Node != "riak@10.0.0.2" || handoffs[0].Partitions != 3 {
		t.Errorf("handoffs[0] = %+v", handoffs[0])
	}
	if handoffs[1].Node != "riak@10.0.0.1" || handoffs[1].Partitions != 1 {
		t.Errorf("handoffs[1] = %+v", handoffs[1])
	}
}

func TestTransfers_PendingDefaultsToWarning(t *testing.T) {
	c := &TransfersCheck{
		Runner: adminRunner(t, "transfers", transfersOutput),
	}

	result := c.Run()

	if result.Status != check.StatusWarning {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusWarning)
	}
	if !testutil.ContainsDetail(result.Details, "riak@10.0.0.2: 3 partition(s) waiting") {
		t.Errorf("Details = %v, want per-node handoff detail", result.Details)
	}
}

func TestTransfers_Thresholds(t *testing.T) {
	tests := []struct {
		name       string
		warn, crit float64
		wantStatus check.Status
	}{
		{"under", 10, 20, check.StatusOK},
		{"warning", 2, 20, check.StatusWarning},
		{"critical", 1, 2, check.StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &TransfersCheck{
				Thresholds: threshold.Thresholds{
					Warn: testutil.Ptr(tt.warn),
					Crit: testutil.Ptr(tt.crit),
				},
				Runner: adminRunner(t, "transfers", transfersOutput),
			}

			if result := c.Run(); result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", result.Status, tt.wantStatus)
			}
		})
	}
}

func TestTransfers_UnrecognizedOutput(t *testing.T) {
	c := &TransfersCheck{
		Runner: adminRunner(t, "transfers", "Attempting to restart script through sudo\n"),
	}

	if result := c.Run(); result.Status != check.StatusUnknown {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusUnknown)
	}
}
