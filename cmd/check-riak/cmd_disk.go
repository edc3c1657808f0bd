package main

import (
	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/diskcheck"
	"github.com/mohnkhan/check-riak/pkg/threshold"
)

var diskCmd = &cobra.Command{
	Use:   "disk",
	Short: "Check free space under the data directory",
	Long: `Compare free space on the data directory's filesystem against
-W/-C size floors.

Examples:
  check-riak disk -W 20G -C 5G
  check-riak disk -d /data/riak/leveldb -C 10G`,
	Args: cobra.NoArgs,
	RunE: runDiskCheck,
}

func init() {
	rootCmd.AddCommand(diskCmd)
	registerCheck("disk", newDiskCheck)
}

func newDiskCheck() (check.Checker, error) {
	t, err := sizeThresholds(threshold.Floor)
	if err != nil {
		return nil, err
	}
	return &diskcheck.Check{
		Path:       flagDataDir,
		Thresholds: t,
	}, nil
}

func runDiskCheck(_ *cobra.Command, _ []string) error {
	c, err := newDiskCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}
