package check

// Checker is implemented by all check types.
// Each check probes a single aspect of a running Riak node
// and returns a Result carrying a status and detail lines.
//
// Implementations:
//   - proccheck.Check: Riak VM presence in the process table
//   - memcheck.Check: VM resident set size against thresholds
//   - pingcheck.Check: HTTP /ping endpoint (or riak ping)
//   - statscheck.Check: HTTP /stats endpoint values
//   - admincheck checks: ringready, member-status, transfers
//   - compactioncheck.Check: LevelDB compaction error markers
type Checker interface {
	Run() Result
}
