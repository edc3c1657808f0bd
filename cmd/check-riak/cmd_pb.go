package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/tcpcheck"
)

var pbPort int

var pbCmd = &cobra.Command{
	Use:   "pb",
	Short: "Check the protocol buffers listener accepts connections",
	Args:  cobra.NoArgs,
	RunE:  runPBCheck,
}

func init() {
	pbCmd.Flags().IntVar(&pbPort, "pb-port", 8087, "protocol buffers port")
	rootCmd.AddCommand(pbCmd)
	registerCheck("pb", newPBCheck)
}

func newPBCheck() (check.Checker, error) {
	return &tcpcheck.Check{
		Address: fmt.Sprintf("%s:%d", flagHost, pbPort),
		Timeout: flagTimeout,
	}, nil
}

func runPBCheck(_ *cobra.Command, _ []string) error {
	c, err := newPBCheck()
	if err != nil {
		return err
	}
	return runCheck(c)
}
