// Package admincheck wraps riak-admin queries: ring agreement, cluster
// membership and handoff transfers. Each check shells out once, parses
// the fixed-format output and maps it to a status.
package admincheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mohnkhan/check-riak/pkg/runner"
)

// DefaultAdmin is the riak-admin tool name resolved through PATH.
const DefaultAdmin = "riak-admin"

// DefaultTimeout bounds a single riak-admin invocation.
const DefaultTimeout = 10 * time.Second

// runAdmin executes one riak-admin subcommand and returns its stdout.
func runAdmin(run runner.Runner, admin string, timeout time.Duration, args ...string) (string, error) {
	if run == nil {
		run = &runner.RealRunner{}
	}
	if admin == "" {
		admin = DefaultAdmin
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := run.RunContext(ctx, admin, args...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%s %s timed out after %s", admin, strings.Join(args, " "), timeout)
		}
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			detail = strings.TrimSpace(stdout)
		}
		if detail != "" {
			return "", fmt.Errorf("%s %s failed: %v: %s", admin, strings.Join(args, " "), err, detail)
		}
		return "", fmt.Errorf("%s %s failed: %w", admin, strings.Join(args, " "), err)
	}
	return stdout, nil
}
