// Package pingcheck probes node liveness through the HTTP /ping
// endpoint or, alternatively, the riak control script's ping command.
package pingcheck

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/runner"
)

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package.
type RealHTTPClient struct {
	Timeout time.Duration
}

// Do executes an HTTP request.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	client := &http.Client{Timeout: c.Timeout}
	return client.Do(req)
}

// Check verifies the node answers ping.
type Check struct {
	URL     string        // ping endpoint, e.g. http://127.0.0.1:8098/ping
	Timeout time.Duration // probe timeout (default 10s)
	UseCLI  bool          // ping through the control script instead of HTTP
	RiakCmd string        // control script path (default: riak)
	Client  HTTPClient    // injected for testing
	Runner  runner.Runner // injected for testing
}

// Run executes the ping check.
func (c *Check) Run() check.Result {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	if c.UseCLI {
		return c.runCLI(timeout)
	}
	return c.runHTTP(timeout)
}

func (c *Check) runHTTP(timeout time.Duration) check.Result {
	result := check.Result{
		Name: "ping: " + c.URL,
	}

	client := c.Client
	if client == nil {
		client = &RealHTTPClient{Timeout: timeout}
	}

	req, err := http.NewRequest(http.MethodGet, c.URL, http.NoBody)
	if err != nil {
		return result.Criticalf("failed to create request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return result.Criticalf("request failed: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return result.Criticalf("failed to read response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return result.Criticalf("status %d, expected 200", resp.StatusCode)
	}

	answer := strings.TrimSpace(string(body))
	if answer != "OK" {
		return result.Criticalf("unexpected ping response %q", answer)
	}

	result.Status = check.StatusOK
	result.AddDetail("response: OK")
	return result
}

func (c *Check) runCLI(timeout time.Duration) check.Result {
	riakCmd := c.RiakCmd
	if riakCmd == "" {
		riakCmd = "riak"
	}

	result := check.Result{
		Name: "ping: " + riakCmd + " ping",
	}

	run := c.Runner
	if run == nil {
		run = &runner.RealRunner{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := run.RunContext(ctx, riakCmd, "ping")
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Criticalf("riak ping timed out after %s", timeout)
		}
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			detail = strings.TrimSpace(stdout)
		}
		if detail != "" {
			result.AddDetail(detail)
		}
		return result.Criticalf("riak ping failed: %v", err)
	}

	answer := strings.TrimSpace(stdout)
	if answer != "pong" {
		return result.Criticalf("unexpected ping response %q", answer)
	}

	result.Status = check.StatusOK
	result.AddDetail("response: pong")
	return result
}
