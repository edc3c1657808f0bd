package threshold

import (
	"testing"

	"github.com/mohnkhan/check-riak/pkg/check"
)

func ptr(v float64) *float64 { return &v }

func TestEvaluate_Ceiling(t *testing.T) {
	tests := []struct {
		name  string
		th    Thresholds
		value float64
		want  check.Status
	}{
		{"no bounds", Thresholds{}, 100, check.StatusOK},
		{"below warn", Thresholds{Warn: ptr(50), Crit: ptr(100)}, 40, check.StatusOK},
		{"at warn", Thresholds{Warn: ptr(50), Crit: ptr(100)}, 50, check.StatusOK},
		{"above warn", Thresholds{Warn: ptr(50), Crit: ptr(100)}, 60, check.StatusWarning},
		{"above crit", Thresholds{Warn: ptr(50), Crit: ptr(100)}, 150, check.StatusCritical},
		{"crit only", Thresholds{Crit: ptr(100)}, 150, check.StatusCritical},
		{"warn only", Thresholds{Warn: ptr(50)}, 150, check.StatusWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.th.Evaluate(tt.value, Ceiling); got != tt.want {
				t.Errorf("Evaluate(%v, Ceiling) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Floor(t *testing.T) {
	tests := []struct {
		name  string
		th    Thresholds
		value float64
		want  check.Status
	}{
		{"no bounds", Thresholds{}, 1, check.StatusOK},
		{"above warn", Thresholds{Warn: ptr(3), Crit: ptr(1)}, 5, check.StatusOK},
		{"at warn", Thresholds{Warn: ptr(3), Crit: ptr(1)}, 3, check.StatusOK},
		{"below warn", Thresholds{Warn: ptr(3), Crit: ptr(1)}, 2, check.StatusWarning},
		{"below crit", Thresholds{Warn: ptr(3), Crit: ptr(1)}, 0, check.StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.th.Evaluate(tt.value, Floor); got != tt.want {
				t.Errorf("Evaluate(%v, Floor) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		th      Thresholds
		dir     Direction
		wantErr bool
	}{
		{"unset is valid", Thresholds{}, Ceiling, false},
		{"ceiling warn below crit", Thresholds{Warn: ptr(50), Crit: ptr(100)}, Ceiling, false},
		{"ceiling warn above crit", Thresholds{Warn: ptr(200), Crit: ptr(100)}, Ceiling, true},
		{"floor warn above crit", Thresholds{Warn: ptr(3), Crit: ptr(1)}, Floor, false},
		{"floor warn below crit", Thresholds{Warn: ptr(1), Crit: ptr(3)}, Floor, true},
		{"warn only", Thresholds{Warn: ptr(200)}, Ceiling, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.th.Validate(tt.dir)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSet(t *testing.T) {
	if (Thresholds{}).Set() {
		t.Error("Set() = true for empty thresholds")
	}
	if !(Thresholds{Warn: ptr(1)}).Set() {
		t.Error("Set() = false with warn bound")
	}
	if !(Thresholds{Crit: ptr(1)}).Set() {
		t.Error("Set() = false with crit bound")
	}
}
