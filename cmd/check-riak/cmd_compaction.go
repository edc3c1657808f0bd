package main

import (
	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/compactioncheck"
)

var compactionCmd = &cobra.Command{
	Use:   "compaction",
	Short: "Check LevelDB LOG files for compaction errors",
	Long: `Scan the data directory's LevelDB LOG files for compaction error
markers. Affected partitions are listed with the eleveldb repair
command to run from an attached console.`,
	Args: cobra.NoArgs,
	RunE: runCompactionCheck,
}

func init() {
	rootCmd.AddCommand(compactionCmd)
	registerCheck("compaction", newCompactionCheck)
}

func newCompactionCheck() (check.Checker, error) {
	return &compactioncheck.Check{
		DataDir: flagDataDir,
		RiakCmd: flagRiak,
	}, nil
}

func runCompactionCheck(_ *cobra.Command, _ []string) error {
	c, err := newCompactionCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}
