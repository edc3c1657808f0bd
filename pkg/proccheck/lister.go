package proccheck

import "github.com/shirou/gopsutil/v3/process"

// ProcInfo describes one process-table entry.
type ProcInfo struct {
	PID     int32
	Name    string
	Cmdline string
	User    string
	RSS     uint64 // resident set size in bytes
}

// Lister abstracts the process table for testability.
type Lister interface {
	Processes() ([]ProcInfo, error)
}

// RealLister reads the process table via gopsutil.
type RealLister struct{}

// Processes returns all visible processes. Entries whose name cannot be
// read (kernel threads, races with exiting processes) are skipped.
func (r *RealLister) Processes() ([]ProcInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	infos := make([]ProcInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		info := ProcInfo{PID: p.Pid, Name: name}
		info.Cmdline, _ = p.Cmdline()
		info.User, _ = p.Username()
		if mem, err := p.MemoryInfo(); err == nil && mem != nil {
			info.RSS = mem.RSS
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// MockLister is a test double for Lister.
type MockLister struct {
	ProcessesFunc func() ([]ProcInfo, error)
}

// Processes calls the mock function.
func (m *MockLister) Processes() ([]ProcInfo, error) {
	return m.ProcessesFunc()
}
