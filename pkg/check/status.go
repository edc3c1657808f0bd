package check

// Status represents the outcome of a check, following the standard
// monitoring plugin convention.
type Status string

const (
	StatusOK       Status = "OK"
	StatusWarning  Status = "WARNING"
	StatusCritical Status = "CRITICAL"
	StatusUnknown  Status = "UNKNOWN"
)

// ExitCode maps a status to the conventional monitoring plugin exit code.
func (s Status) ExitCode() int {
	switch s {
	case StatusOK:
		return 0
	case StatusWarning:
		return 1
	case StatusCritical:
		return 2
	default:
		return 3
	}
}

// severity orders statuses for worst-of aggregation. CRITICAL outranks
// everything; UNKNOWN sits between OK and WARNING so that a run of
// unknowns never masks a real warning.
func (s Status) severity() int {
	switch s {
	case StatusOK:
		return 0
	case StatusUnknown:
		return 1
	case StatusWarning:
		return 2
	case StatusCritical:
		return 3
	default:
		return 1
	}
}

// Worst returns the most severe status among the given results.
// An empty slice is UNKNOWN: a run that checked nothing proved nothing.
func Worst(results []Result) Status {
	if len(results) == 0 {
		return StatusUnknown
	}
	worst := StatusOK
	for _, r := range results {
		if r.Status.severity() > worst.severity() {
			worst = r.Status
		}
	}
	return worst
}
