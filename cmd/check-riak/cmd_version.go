package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/version"
	"github.com/mohnkhan/check-riak/pkg/versioncheck"
)

var versionMin string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Check the installed Riak release",
	Long: `Read the release through the control script. --min makes anything
older critical.

Examples:
  check-riak version
  check-riak version --min 1.4`,
	Args: cobra.NoArgs,
	RunE: runVersionCheck,
}

func init() {
	versionCmd.Flags().StringVar(&versionMin, "min", "", "minimum release required (inclusive)")
	rootCmd.AddCommand(versionCmd)
	registerCheck("version", newVersionCheck)
}

func newVersionCheck() (check.Checker, error) {
	c := &versioncheck.Check{
		RiakCmd: flagRiak,
		Timeout: flagTimeout,
	}
	if versionMin != "" {
		min, err := version.Parse(versionMin)
		if err != nil {
			return nil, fmt.Errorf("invalid --min: %w", err)
		}
		c.MinVersion = &min
	}
	return c, nil
}

func runVersionCheck(_ *cobra.Command, _ []string) error {
	c, err := newVersionCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}
