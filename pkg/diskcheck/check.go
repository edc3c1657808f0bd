// Package diskcheck verifies free space on the filesystem holding the
// node's data directory.
package diskcheck

import (
	"github.com/shirou/gopsutil/v3/disk"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/threshold"
)

// UsageReader abstracts filesystem usage introspection for testability.
type UsageReader interface {
	Usage(path string) (free, total uint64, err error)
}

// RealUsageReader reads filesystem usage via gopsutil.
type RealUsageReader struct{}

func (r *RealUsageReader) Usage(path string) (uint64, uint64, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return 0, 0, err
	}
	return u.Free, u.Total, nil
}

// MockUsageReader is a test double for UsageReader.
type MockUsageReader struct {
	FreeBytes  uint64
	TotalBytes uint64
	Err        error
}

func (m *MockUsageReader) Usage(string) (uint64, uint64, error) {
	return m.FreeBytes, m.TotalBytes, m.Err
}

// Check compares free space on a path against size floors.
type Check struct {
	Path       string               // data directory (or any path on the filesystem)
	Thresholds threshold.Thresholds // free-space floors in bytes
	Reader     UsageReader          // injected for testing
}

// Run executes the disk check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "disk: " + c.Path,
	}

	reader := c.Reader
	if reader == nil {
		reader = &RealUsageReader{}
	}

	free, total, err := reader.Usage(c.Path)
	if err != nil {
		return result.Unknownf("cannot read filesystem usage: %v", err)
	}

	result.AddDetailf("free: %s of %s", threshold.FormatSize(free), threshold.FormatSize(total))
	if c.Thresholds.Warn != nil {
		result.AddDetailf("warn below: %s", threshold.FormatSize(uint64(*c.Thresholds.Warn)))
	}
	if c.Thresholds.Crit != nil {
		result.AddDetailf("crit below: %s", threshold.FormatSize(uint64(*c.Thresholds.Crit)))
	}

	switch c.Thresholds.Evaluate(float64(free), threshold.Floor) {
	case check.StatusCritical:
		return result.Criticalf("only %s free", threshold.FormatSize(free))
	case check.StatusWarning:
		return result.Warningf("only %s free", threshold.FormatSize(free))
	}

	result.Status = check.StatusOK
	return result
}
