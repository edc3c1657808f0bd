package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/profilecheck"
	"github.com/mohnkhan/check-riak/pkg/threshold"
)

var (
	profileBinary   string
	profileDuration time.Duration
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile the Riak VM's syscall latency",
	Long: `Run a short low-level profiler pass (dtrace by default) against the
VM and report average syscall latency. -W/-C are ceilings on the worst
average, in microseconds. Hosts without a profiler report UNKNOWN.

Examples:
  check-riak profile
  check-riak profile --duration 10s -W 500 -C 2000`,
	Args: cobra.NoArgs,
	RunE: runProfileCheck,
}

func init() {
	profileCmd.Flags().StringVar(&profileBinary, "profiler", profilecheck.DefaultProfiler, "profiler binary")
	profileCmd.Flags().DurationVar(&profileDuration, "duration", profilecheck.DefaultDuration, "sampling window")
	rootCmd.AddCommand(profileCmd)
	registerCheck("profile", newProfileCheck)
}

func newProfileCheck() (check.Checker, error) {
	t, err := numericThresholds(threshold.Ceiling)
	if err != nil {
		return nil, err
	}
	return &profilecheck.Check{
		Node:       flagNode,
		Profiler:   profileBinary,
		Duration:   profileDuration,
		Thresholds: t,
	}, nil
}

func runProfileCheck(_ *cobra.Command, _ []string) error {
	c, err := newProfileCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}
