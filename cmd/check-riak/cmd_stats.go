package main

import (
	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/statscheck"
	"github.com/mohnkhan/check-riak/pkg/threshold"
)

var statsKey string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Check values from the HTTP /stats endpoint",
	Long: `Fetch /stats and report a summary, or threshold one numeric stat.

Examples:
  check-riak stats
  check-riak stats --key node_get_fsm_time_95 -W 50000 -C 100000
  check-riak stats --key read_repairs -C 100`,
	Args: cobra.NoArgs,
	RunE: runStatsCheck,
}

func init() {
	statsCmd.Flags().StringVar(&statsKey, "key", "", "stat to compare against -W/-C")
	rootCmd.AddCommand(statsCmd)
	registerCheck("stats", newStatsCheck)
}

func newStatsCheck() (check.Checker, error) {
	var t threshold.Thresholds
	if statsKey != "" {
		var err error
		t, err = numericThresholds(threshold.Ceiling)
		if err != nil {
			return nil, err
		}
	}
	return &statscheck.Check{
		URL:        httpURL("/stats"),
		Key:        statsKey,
		Thresholds: t,
		Timeout:    flagTimeout,
	}, nil
}

func runStatsCheck(_ *cobra.Command, _ []string) error {
	c, err := newStatsCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}
