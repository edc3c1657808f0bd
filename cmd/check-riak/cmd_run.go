package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/suite"
)

var runFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the checks listed in a suite file",
	Long: `Load a ` + suite.FileName + ` suite file and run its checks in order,
exiting with the worst status. Without --file the search walks up from
the working directory. Defaults in the file apply unless the matching
flag was given on the command line.

Examples:
  check-riak run
  check-riak run --file /etc/check-riak/production.yaml`,
	Args: cobra.NoArgs,
	RunE: runSuite,
}

func init() {
	runCmd.Flags().StringVar(&runFile, "file", "", "path to a suite file")
	rootCmd.AddCommand(runCmd)
}

func runSuite(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := suite.FindFile(wd, runFile)
	if err != nil {
		return err
	}
	cfg, err := suite.Load(path)
	if err != nil {
		return err
	}

	applyDefaults(cmd, cfg.Defaults)

	// Reject unknown names before running anything.
	for _, name := range cfg.Checks {
		if _, ok := checkBuilders[name]; !ok {
			return fmt.Errorf("%s: unknown check %q (known: %s)", path, name, strings.Join(knownChecks(), ", "))
		}
	}

	fmt.Printf("suite: %s\n", path)
	return runSequence(cfg.Checks)
}

// applyDefaults copies suite-file defaults onto the global flags, but a
// flag set on the command line always wins.
func applyDefaults(cmd *cobra.Command, d suite.Defaults) {
	set := cmd.Root().PersistentFlags().Changed

	if d.Host != "" && !set("host") {
		flagHost = d.Host
	}
	if d.Port != 0 && !set("port") {
		flagPort = d.Port
	}
	if d.Node != "" && !set("node") {
		flagNode = d.Node
	}
	if d.Admin != "" && !set("admin") {
		flagAdmin = d.Admin
	}
	if d.Riak != "" && !set("riak") {
		flagRiak = d.Riak
	}
	if d.DataDir != "" && !set("data-dir") {
		flagDataDir = d.DataDir
	}
	if d.Service != "" && !set("service") {
		flagService = d.Service
	}
	if d.Timeout != 0 && !set("timeout") {
		flagTimeout = d.Timeout
	}
	if d.Warn != "" && !set("warn") {
		flagWarn = d.Warn
	}
	if d.Crit != "" && !set("crit") {
		flagCrit = d.Crit
	}
}
