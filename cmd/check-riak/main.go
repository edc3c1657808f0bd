package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mohnkhan/check-riak/pkg/check"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	flagHost    string
	flagPort    int
	flagNode    string
	flagTimeout time.Duration
	flagWarn    string
	flagCrit    string
	flagAdmin   string
	flagRiak    string
	flagDataDir string
	flagService string
)

var rootCmd = &cobra.Command{
	Use:     "check-riak",
	Short:   "Health checks for a running Riak node",
	Long:    "check-riak probes a Riak node the way a monitoring system expects: each check prints a status line and exits 0 (ok), 1 (warning), 2 (critical) or 3 (unknown).",
	Version: Version,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagHost, "host", "H", "127.0.0.1", "Riak HTTP host")
	pf.IntVarP(&flagPort, "port", "p", 8098, "Riak HTTP port")
	pf.StringVarP(&flagNode, "node", "n", "riak@127.0.0.1", "Erlang node name")
	pf.DurationVarP(&flagTimeout, "timeout", "t", 10*time.Second, "per-probe timeout")
	pf.StringVarP(&flagWarn, "warn", "W", "", "warning threshold (check specific: size or number)")
	pf.StringVarP(&flagCrit, "crit", "C", "", "critical threshold (check specific: size or number)")
	pf.StringVarP(&flagAdmin, "admin", "a", "riak-admin", "path to riak-admin")
	pf.StringVarP(&flagRiak, "riak", "c", "riak", "path to the riak control script")
	pf.StringVarP(&flagDataDir, "data-dir", "d", "/var/lib/riak/leveldb", "LevelDB data directory")
	pf.StringVarP(&flagService, "service", "s", "riak", "service manager unit/instance name")
}

// httpURL builds a node endpoint URL from the host/port flags.
func httpURL(path string) string {
	return fmt.Sprintf("http://%s:%d%s", flagHost, flagPort, path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ce *checkError
		if errors.As(err, &ce) {
			os.Exit(ce.status.ExitCode())
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(check.StatusUnknown.ExitCode())
	}
}
