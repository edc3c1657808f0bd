// Package versioncheck reads the installed Riak release through the
// control script and optionally enforces a minimum.
package versioncheck

import (
	"context"
	"strings"
	"time"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/runner"
	"github.com/mohnkhan/check-riak/pkg/version"
)

// Check reads `riak version` and compares it against a minimum.
type Check struct {
	RiakCmd    string           // control script path (default: riak)
	MinVersion *version.Version // minimum release required (inclusive)
	Timeout    time.Duration    // invocation timeout (default 10s)
	Runner     runner.Runner    // injected for testing
}

// Run executes the version check.
func (c *Check) Run() check.Result {
	riakCmd := c.RiakCmd
	if riakCmd == "" {
		riakCmd = "riak"
	}
	result := check.Result{
		Name: "version: " + riakCmd,
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	run := c.Runner
	if run == nil {
		run = &runner.RealRunner{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := run.RunContext(ctx, riakCmd, "version")
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return result.Unknownf("riak version failed: %s", msg)
		}
		return result.Unknownf("riak version failed: %v", err)
	}

	out := strings.TrimSpace(stdout)
	v, err := version.Extract(out)
	if err != nil {
		return result.Unknownf("cannot parse version from %q", out)
	}

	result.AddDetailf("version: %s", v)

	if c.MinVersion != nil && !v.GreaterThanOrEqual(*c.MinVersion) {
		return result.Criticalf("version %s below minimum %s", v, c.MinVersion)
	}

	result.Status = check.StatusOK
	return result
}
