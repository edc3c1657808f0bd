package threshold

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	_         = iota
	KB uint64 = 1 << (10 * iota)
	MB
	GB
	TB
)

// ParseSize parses a human-readable size string into bytes, the form
// -W/-C take for RSS ceilings and free-disk floors.
// Supports: B, K/KB, M/MB, G/GB, T/TB (case-insensitive)
// Examples: "512M", "2G", "1.5GB", "1024"
func ParseSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	// Match number (with optional decimal) and optional unit
	re := regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*([KMGT]?B?)?$`)
	matches := re.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid size format: %q", s)
	}

	numStr := matches[1]
	unit := strings.ToUpper(matches[2])

	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %q", numStr)
	}

	var multiplier uint64
	switch unit {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = KB
	case "M", "MB":
		multiplier = MB
	case "G", "GB":
		multiplier = GB
	case "T", "TB":
		multiplier = TB
	default:
		return 0, fmt.Errorf("unknown unit: %q", unit)
	}

	return uint64(num * float64(multiplier)), nil
}

// FormatSize formats bytes for detail lines like "rss: 1.2GB".
func FormatSize(bytes uint64) string {
	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.1fTB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.1fGB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fKB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// ParseSizeThresholds builds size-based thresholds from flag strings.
// Empty strings leave the corresponding bound unset.
func ParseSizeThresholds(warn, crit string) (Thresholds, error) {
	var t Thresholds
	if warn != "" {
		w, err := ParseSize(warn)
		if err != nil {
			return t, fmt.Errorf("invalid warning threshold: %w", err)
		}
		wf := float64(w)
		t.Warn = &wf
	}
	if crit != "" {
		c, err := ParseSize(crit)
		if err != nil {
			return t, fmt.Errorf("invalid critical threshold: %w", err)
		}
		cf := float64(c)
		t.Crit = &cf
	}
	return t, nil
}

// ParseNumericThresholds builds numeric thresholds from flag strings.
// Empty strings leave the corresponding bound unset.
func ParseNumericThresholds(warn, crit string) (Thresholds, error) {
	var t Thresholds
	if warn != "" {
		w, err := strconv.ParseFloat(warn, 64)
		if err != nil {
			return t, fmt.Errorf("invalid warning threshold: %q", warn)
		}
		t.Warn = &w
	}
	if crit != "" {
		c, err := strconv.ParseFloat(crit, 64)
		if err != nil {
			return t, fmt.Errorf("invalid critical threshold: %q", crit)
		}
		t.Crit = &c
	}
	return t, nil
}
