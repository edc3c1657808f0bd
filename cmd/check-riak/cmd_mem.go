package main

import (
	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/memcheck"
	"github.com/mohnkhan/check-riak/pkg/threshold"
)

var memCmd = &cobra.Command{
	Use:   "mem",
	Short: "Check the Riak VM's resident set size",
	Long: `Compare the VM's RSS against -W/-C size ceilings.

Examples:
  check-riak mem -W 1G -C 2G
  check-riak mem -n riak@10.0.0.1 -C 4G`,
	Args: cobra.NoArgs,
	RunE: runMemCheck,
}

func init() {
	rootCmd.AddCommand(memCmd)
	registerCheck("mem", newMemCheck)
}

func newMemCheck() (check.Checker, error) {
	t, err := sizeThresholds(threshold.Ceiling)
	if err != nil {
		return nil, err
	}
	return &memcheck.Check{
		Node:       flagNode,
		Thresholds: t,
	}, nil
}

func runMemCheck(_ *cobra.Command, _ []string) error {
	c, err := newMemCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}
