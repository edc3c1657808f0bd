package main

import (
	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/output"
)

// allOrder lists the checks the all subcommand runs, roughly from
// "is the node there" outward to cluster and storage health. Slow or
// host-specific checks (profile, version) are excluded.
var allOrder = []string{
	"proc",
	"service",
	"ping",
	"pb",
	"stats",
	"ringready",
	"members",
	"transfers",
	"compaction",
	"disk",
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the standard battery of checks",
	Long: `Run every standard check against the node and exit with the worst
status. When -W/-C are given they apply to the mem check only; the
other checks run with their unthresholded defaults.

Examples:
  check-riak all
  check-riak all -n riak@10.0.0.1 -W 2G -C 4G`,
	Args: cobra.NoArgs,
	RunE: runAllChecks,
}

func init() {
	rootCmd.AddCommand(allCmd)
}

func runAllChecks(_ *cobra.Command, _ []string) error {
	warn, crit := flagWarn, flagCrit
	flagWarn, flagCrit = "", ""
	defer func() { flagWarn, flagCrit = warn, crit }()

	var results []check.Result
	for _, name := range allOrder {
		c, err := buildCheck(name)
		if err != nil {
			return err
		}
		r := c.Run()
		output.PrintResult(r)
		results = append(results, r)

		// mem piggybacks on proc's VM lookup and only runs when
		// thresholds were given.
		if name == "proc" && (warn != "" || crit != "") {
			flagWarn, flagCrit = warn, crit
			mc, err := buildCheck("mem")
			flagWarn, flagCrit = "", ""
			if err != nil {
				return err
			}
			mr := mc.Run()
			output.PrintResult(mr)
			results = append(results, mr)
		}
	}

	if worst := check.Worst(results); worst != check.StatusOK {
		return &checkError{status: worst}
	}
	return nil
}
