package check

import (
	"errors"
	"testing"
)

func TestResult_Critical(t *testing.T) {
	r := &Result{Name: "test"}
	err := errors.New("test error")

	result := r.Critical("something broke", err)

	if result.Status != StatusCritical {
		t.Errorf("Status = %v, want %v", result.Status, StatusCritical)
	}
	if len(result.Details) != 1 || result.Details[0] != "something broke" {
		t.Errorf("Details = %v, want [something broke]", result.Details)
	}
	if result.Err != err {
		t.Errorf("Err = %v, want %v", result.Err, err)
	}
}

func TestResult_Criticalf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Criticalf("value %d over limit", 42)

	if result.Status != StatusCritical {
		t.Errorf("Status = %v, want %v", result.Status, StatusCritical)
	}
	if len(result.Details) != 1 || result.Details[0] != "value 42 over limit" {
		t.Errorf("Details = %v, want [value 42 over limit]", result.Details)
	}
	if result.Err == nil || result.Err.Error() != "value 42 over limit" {
		t.Errorf("Err = %v, want error with message 'value 42 over limit'", result.Err)
	}
}

func TestResult_Warningf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Warningf("value %d near limit", 40)

	if result.Status != StatusWarning {
		t.Errorf("Status = %v, want %v", result.Status, StatusWarning)
	}
	if len(result.Details) != 1 || result.Details[0] != "value 40 near limit" {
		t.Errorf("Details = %v, want [value 40 near limit]", result.Details)
	}
}

func TestResult_Unknownf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Unknownf("cannot measure: %s", "no process")

	if result.Status != StatusUnknown {
		t.Errorf("Status = %v, want %v", result.Status, StatusUnknown)
	}
	if result.Err == nil {
		t.Error("Err = nil, want error")
	}
}

func TestResult_AddDetail(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetail("first detail").AddDetail("second detail")

	if len(result.Details) != 2 {
		t.Errorf("len(Details) = %d, want 2", len(result.Details))
	}
	if result.Details[0] != "first detail" || result.Details[1] != "second detail" {
		t.Errorf("Details = %v, want [first detail, second detail]", result.Details)
	}
	if result != r {
		t.Error("AddDetail should return the same Result pointer")
	}
}

func TestResult_AddDetailf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetailf("rss: %s", "1.2GB")

	if len(result.Details) != 1 || result.Details[0] != "rss: 1.2GB" {
		t.Errorf("Details = %v, want [rss: 1.2GB]", result.Details)
	}
}

func TestResultOK(t *testing.T) {
	result := Result{Status: StatusOK}
	if !result.OK() {
		t.Error("OK() = false, want true for StatusOK")
	}

	for _, s := range []Status{StatusWarning, StatusCritical, StatusUnknown} {
		result.Status = s
		if result.OK() {
			t.Errorf("OK() = true, want false for %s", s)
		}
	}
}
