package main

import (
	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/pingcheck"
)

var pingCLI bool

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the node answers ping",
	Long: `Probe the HTTP /ping endpoint, or the Erlang-level ping via the
control script with --cli.`,
	Args: cobra.NoArgs,
	RunE: runPingCheck,
}

func init() {
	pingCmd.Flags().BoolVar(&pingCLI, "cli", false, "ping through `riak ping` instead of HTTP")
	rootCmd.AddCommand(pingCmd)
	registerCheck("ping", newPingCheck)
}

func newPingCheck() (check.Checker, error) {
	return &pingcheck.Check{
		URL:     httpURL("/ping"),
		Timeout: flagTimeout,
		UseCLI:  pingCLI,
		RiakCmd: flagRiak,
	}, nil
}

func runPingCheck(_ *cobra.Command, _ []string) error {
	c, err := newPingCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}
