// Package proccheck verifies that the Riak Erlang VM is present in the
// process table.
package proccheck

import (
	"fmt"
	"strings"

	"github.com/mohnkhan/check-riak/pkg/check"
)

// vmNames are the process names the Erlang VM runs under.
var vmNames = []string{"beam.smp", "beam"}

// FindVM returns the VM processes belonging to the given node. When node
// is non-empty, only VMs whose command line carries it are returned,
// which keeps multi-node hosts from matching the wrong instance.
func FindVM(l Lister, node string) ([]ProcInfo, error) {
	procs, err := l.Processes()
	if err != nil {
		return nil, fmt.Errorf("process table query failed: %w", err)
	}

	var vms []ProcInfo
	for _, p := range procs {
		if !isVMName(p.Name) {
			continue
		}
		if node != "" && !strings.Contains(p.Cmdline, node) {
			continue
		}
		vms = append(vms, p)
	}
	return vms, nil
}

func isVMName(name string) bool {
	for _, n := range vmNames {
		if name == n {
			return true
		}
	}
	return false
}

// Check verifies the Riak VM is running (and optionally who owns it).
type Check struct {
	Node   string // Erlang node name expected on the VM command line
	User   string // expected owning user (optional)
	Lister Lister // injected for testing
}

// Run executes the process check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "proc: " + c.Node,
	}

	lister := c.Lister
	if lister == nil {
		lister = &RealLister{}
	}

	vms, err := FindVM(lister, c.Node)
	if err != nil {
		return result.Unknownf("%v", err)
	}
	if len(vms) == 0 {
		return result.Criticalf("no beam process found for node %s", c.Node)
	}

	vm := vms[0]
	result.AddDetailf("pid: %d", vm.PID)
	if vm.User != "" {
		result.AddDetailf("user: %s", vm.User)
	}
	if len(vms) > 1 {
		result.AddDetailf("matching processes: %d", len(vms))
	}

	if c.User != "" && vm.User != c.User {
		return result.Criticalf("running as %s, expected %s", vm.User, c.User)
	}

	result.Status = check.StatusOK
	return result
}
