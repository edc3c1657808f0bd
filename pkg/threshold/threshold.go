// Package threshold evaluates warning/critical bounds the way monitoring
// plugins do: a value is compared against optional warn and crit levels
// and mapped to a check status.
package threshold

import (
	"fmt"

	"github.com/mohnkhan/check-riak/pkg/check"
)

// Direction controls which side of a bound is unhealthy.
type Direction int

const (
	// Ceiling marks values above the bound unhealthy (RSS, latency, transfers).
	Ceiling Direction = iota
	// Floor marks values below the bound unhealthy (free disk, valid members).
	Floor
)

// Thresholds holds optional warning and critical bounds.
// A nil bound is not checked.
type Thresholds struct {
	Warn *float64
	Crit *float64
}

// Set reports whether at least one bound is configured.
func (t Thresholds) Set() bool {
	return t.Warn != nil || t.Crit != nil
}

// Validate rejects bound pairs that can never produce a warning:
// for a ceiling warn must stay below crit, for a floor above it.
func (t Thresholds) Validate(dir Direction) error {
	if t.Warn == nil || t.Crit == nil {
		return nil
	}
	switch dir {
	case Ceiling:
		if *t.Warn > *t.Crit {
			return fmt.Errorf("warning threshold %v exceeds critical threshold %v", *t.Warn, *t.Crit)
		}
	case Floor:
		if *t.Warn < *t.Crit {
			return fmt.Errorf("warning threshold %v below critical threshold %v", *t.Warn, *t.Crit)
		}
	}
	return nil
}

// Evaluate maps a measured value to a status. Crit wins over warn.
func (t Thresholds) Evaluate(value float64, dir Direction) check.Status {
	switch dir {
	case Ceiling:
		if t.Crit != nil && value > *t.Crit {
			return check.StatusCritical
		}
		if t.Warn != nil && value > *t.Warn {
			return check.StatusWarning
		}
	case Floor:
		if t.Crit != nil && value < *t.Crit {
			return check.StatusCritical
		}
		if t.Warn != nil && value < *t.Warn {
			return check.StatusWarning
		}
	}
	return check.StatusOK
}
