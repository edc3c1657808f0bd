// Package memcheck compares the Riak VM's resident set size against
// warning/critical ceilings.
package memcheck

import (
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/proccheck"
	"github.com/mohnkhan/check-riak/pkg/threshold"
)

// SysMemReader abstracts system memory introspection for testability.
type SysMemReader interface {
	VirtualMemory() (total, used uint64, usedPercent float64, err error)
}

// RealSysMemReader reads system memory via gopsutil.
type RealSysMemReader struct{}

func (r *RealSysMemReader) VirtualMemory() (uint64, uint64, float64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, 0, err
	}
	return vm.Total, vm.Used, vm.UsedPercent, nil
}

// MockSysMemReader is a test double for SysMemReader.
type MockSysMemReader struct {
	Total       uint64
	Used        uint64
	UsedPercent float64
	Err         error
}

func (m *MockSysMemReader) VirtualMemory() (uint64, uint64, float64, error) {
	return m.Total, m.Used, m.UsedPercent, m.Err
}

// Check compares the VM's RSS against size thresholds.
type Check struct {
	Node       string               // Erlang node name for process matching
	Thresholds threshold.Thresholds // RSS ceilings in bytes
	Lister     proccheck.Lister     // injected for testing
	SysMem     SysMemReader         // injected for testing
}

// Run executes the memory check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "mem: " + c.Node,
	}

	lister := c.Lister
	if lister == nil {
		lister = &proccheck.RealLister{}
	}

	vms, err := proccheck.FindVM(lister, c.Node)
	if err != nil {
		return result.Unknownf("%v", err)
	}
	if len(vms) == 0 {
		return result.Unknownf("no beam process found for node %s", c.Node)
	}

	vm := vms[0]
	if vm.RSS == 0 {
		return result.Unknownf("cannot read RSS for pid %d", vm.PID)
	}

	result.AddDetailf("pid: %d", vm.PID)
	result.AddDetailf("rss: %s", threshold.FormatSize(vm.RSS))
	if c.Thresholds.Warn != nil {
		result.AddDetailf("warn at: %s", threshold.FormatSize(uint64(*c.Thresholds.Warn)))
	}
	if c.Thresholds.Crit != nil {
		result.AddDetailf("crit at: %s", threshold.FormatSize(uint64(*c.Thresholds.Crit)))
	}

	sysMem := c.SysMem
	if sysMem == nil {
		sysMem = &RealSysMemReader{}
	}
	if total, used, pct, err := sysMem.VirtualMemory(); err == nil {
		result.AddDetailf("system: %s of %s used (%.1f%%)",
			threshold.FormatSize(used), threshold.FormatSize(total), pct)
	}

	status := c.Thresholds.Evaluate(float64(vm.RSS), threshold.Ceiling)
	switch status {
	case check.StatusWarning:
		return result.Warningf("rss %s over warning threshold", threshold.FormatSize(vm.RSS))
	case check.StatusCritical:
		return result.Criticalf("rss %s over critical threshold", threshold.FormatSize(vm.RSS))
	}

	result.Status = check.StatusOK
	return result
}
