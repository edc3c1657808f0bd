package main

import (
	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/admincheck"
	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/threshold"
)

var ringreadyCmd = &cobra.Command{
	Use:   "ringready",
	Short: "Check all nodes agree on the ring",
	Args:  cobra.NoArgs,
	RunE:  runRingReadyCheck,
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Check ring membership",
	Long: `Inspect riak-admin member-status. Down members are critical and
transitional members a warning; -W/-C set floors on the valid count.

Examples:
  check-riak members
  check-riak members -W 5 -C 3`,
	Args: cobra.NoArgs,
	RunE: runMembersCheck,
}

var transfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "Check pending handoff transfers",
	Long: `Count partitions waiting to handoff. With no thresholds any pending
transfer is a warning; -W/-C set ceilings on the total.`,
	Args: cobra.NoArgs,
	RunE: runTransfersCheck,
}

func init() {
	rootCmd.AddCommand(ringreadyCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(transfersCmd)
	registerCheck("ringready", newRingReadyCheck)
	registerCheck("members", newMembersCheck)
	registerCheck("transfers", newTransfersCheck)
}

func newRingReadyCheck() (check.Checker, error) {
	return &admincheck.RingReadyCheck{
		Admin:   flagAdmin,
		Timeout: flagTimeout,
	}, nil
}

func newMembersCheck() (check.Checker, error) {
	t, err := numericThresholds(threshold.Floor)
	if err != nil {
		return nil, err
	}
	return &admincheck.MembersCheck{
		Admin:      flagAdmin,
		Timeout:    flagTimeout,
		Thresholds: t,
	}, nil
}

func newTransfersCheck() (check.Checker, error) {
	t, err := numericThresholds(threshold.Ceiling)
	if err != nil {
		return nil, err
	}
	return &admincheck.TransfersCheck{
		Admin:      flagAdmin,
		Timeout:    flagTimeout,
		Thresholds: t,
	}, nil
}

func runRingReadyCheck(_ *cobra.Command, _ []string) error {
	c, err := newRingReadyCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}

func runMembersCheck(_ *cobra.Command, _ []string) error {
	c, err := newMembersCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}

func runTransfersCheck(_ *cobra.Command, _ []string) error {
	c, err := newTransfersCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}
