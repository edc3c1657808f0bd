package check

import "fmt"

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g. "ping: http://127.0.0.1:8098/ping"
	Status  Status   // OK, WARNING, CRITICAL or UNKNOWN
	Details []string // human-readable details
	Err     error    // underlying error for non-OK results
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Critical sets the result to critical status with a detail message.
func (r *Result) Critical(detail string, err error) Result {
	r.Status = StatusCritical
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Criticalf sets the result to critical status with a formatted detail message.
func (r *Result) Criticalf(format string, args ...interface{}) Result {
	return r.Critical(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// Warning sets the result to warning status with a detail message.
func (r *Result) Warning(detail string, err error) Result {
	r.Status = StatusWarning
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Warningf sets the result to warning status with a formatted detail message.
func (r *Result) Warningf(format string, args ...interface{}) Result {
	return r.Warning(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// Unknown sets the result to unknown status with a detail message.
func (r *Result) Unknown(detail string, err error) Result {
	r.Status = StatusUnknown
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Unknownf sets the result to unknown status with a formatted detail message.
func (r *Result) Unknownf(format string, args ...interface{}) Result {
	return r.Unknown(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
