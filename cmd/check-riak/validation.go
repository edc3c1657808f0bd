package main

import (
	"fmt"

	"github.com/mohnkhan/check-riak/pkg/threshold"
)

// sizeThresholds parses -W/-C as sizes (e.g. 512M, 2G) and validates
// them for the given direction.
func sizeThresholds(dir threshold.Direction) (threshold.Thresholds, error) {
	t, err := threshold.ParseSizeThresholds(flagWarn, flagCrit)
	if err != nil {
		return t, err
	}
	if err := t.Validate(dir); err != nil {
		return t, fmt.Errorf("invalid thresholds: %w", err)
	}
	return t, nil
}

// numericThresholds parses -W/-C as plain numbers and validates them
// for the given direction.
func numericThresholds(dir threshold.Direction) (threshold.Thresholds, error) {
	t, err := threshold.ParseNumericThresholds(flagWarn, flagCrit)
	if err != nil {
		return t, err
	}
	if err := t.Validate(dir); err != nil {
		return t, fmt.Errorf("invalid thresholds: %w", err)
	}
	return t, nil
}
