// Package servicecheck queries the service manager for the node's
// service state. It speaks systemd where systemctl exists and SMF where
// svcs does, so the same check works on Linux and SmartOS hosts.
package servicecheck

import (
	"context"
	"strings"
	"time"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/runner"
)

// Check verifies the service manager reports the service as running.
type Check struct {
	Service string        // unit or SMF instance name (default: riak)
	Timeout time.Duration // query timeout (default 10s)
	Runner  runner.Runner // injected for testing
}

// Run executes the service check.
func (c *Check) Run() check.Result {
	service := c.Service
	if service == "" {
		service = "riak"
	}
	result := check.Result{
		Name: "service: " + service,
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

	if _, err := run.LookPath("systemctl"); err == nil {
		return c.checkSystemd(ctx, run, service, result)
	}
	if _, err := run.LookPath("svcs"); err == nil {
		return c.checkSMF(ctx, run, service, result)
	}
	return result.Unknownf("no supported service manager found (systemctl, svcs)")
}

func (c *Check) checkSystemd(ctx context.Context, run runner.Runner, service string, result check.Result) check.Result {
	// is-active exits non-zero for anything but "active"; the state on
	// stdout is still the interesting part.
	stdout, stderr, err := run.RunContext(ctx, "systemctl", "is-active", service)
	state := strings.TrimSpace(stdout)
	if state == "" {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return result.Unknownf("systemctl is-active failed: %s", msg)
		}
		return result.Unknownf("systemctl is-active failed: %v", err)
	}

	result.AddDetailf("manager: systemd")
	result.AddDetailf("state: %s", state)
	if state != "active" {
		return result.Criticalf("service %s is %s", service, state)
	}

	result.Status = check.StatusOK
	return result
}

func (c *Check) checkSMF(ctx context.Context, run runner.Runner, service string, result check.Result) check.Result {
	stdout, stderr, err := run.RunContext(ctx, "svcs", "-H", "-o", "state", service)
	state := strings.TrimSpace(stdout)
	if state == "" {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return result.Unknownf("svcs failed: %s", msg)
		}
		return result.Unknownf("svcs failed: %v", err)
	}

	result.AddDetailf("manager: smf")
	result.AddDetailf("state: %s", state)
	if state != "online" {
		return result.Criticalf("service %s is %s", service, state)
	}

	result.Status = check.StatusOK
	return result
}
