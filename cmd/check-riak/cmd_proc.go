package main

import (
	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/proccheck"
)

var procUser string

var procCmd = &cobra.Command{
	Use:   "proc",
	Short: "Check the Riak VM is present in the process table",
	Args:  cobra.NoArgs,
	RunE:  runProcCheck,
}

func init() {
	procCmd.Flags().StringVar(&procUser, "user", "", "expected owning user")
	rootCmd.AddCommand(procCmd)
	registerCheck("proc", newProcCheck)
}

func newProcCheck() (check.Checker, error) {
	return &proccheck.Check{
		Node: flagNode,
		User: procUser,
	}, nil
}

func runProcCheck(_ *cobra.Command, _ []string) error {
	c, err := newProcCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}
