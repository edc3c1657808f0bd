package main

import (
	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/servicecheck"
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Check the service manager reports the node running",
	Args:  cobra.NoArgs,
	RunE:  runServiceCheck,
}

func init() {
	rootCmd.AddCommand(serviceCmd)
	registerCheck("service", newServiceCheck)
}

func newServiceCheck() (check.Checker, error) {
	return &servicecheck.Check{
		Service: flagService,
		Timeout: flagTimeout,
	}, nil
}

func runServiceCheck(_ *cobra.Command, _ []string) error {
	c, err := newServiceCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}
