package pingcheck

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/runner"
	"github.com/mohnkhan/check-riak/pkg/testutil"
)

func TestPingCheck_HTTP_OK(t *testing.T) {
	c := &Check{
		URL: "http://127.0.0.1:8098/ping",
		Client: &testutil.MockHTTPClient{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				if req.URL.Path != "/ping" {
					t.Errorf("path = %q, want /ping", req.URL.Path)
				}
				return testutil.MockResponse(200, "OK"), nil
			},
		},
	}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusOK)
	}
	if result.Name != "ping: http://127.0.0.1:8098/ping" {
		t.Errorf("Name = %q", result.Name)
	}
}

func TestPingCheck_HTTP_WrongStatus(t *testing.T) {
	c := &Check{
		URL: "http://127.0.0.1:8098/ping",
		Client: &testutil.MockHTTPClient{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return testutil.MockResponse(503, "Service Unavailable"), nil
			},
		},
	}

	result := c.Run()

	if result.Status != check.StatusCritical {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusCritical)
	}
}

func TestPingCheck_HTTP_WrongBody(t *testing.T) {
	c := &Check{
		URL: "http://127.0.0.1:8098/ping",
		Client: &testutil.MockHTTPClient{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return testutil.MockResponse(200, "<html>proxy error</html>"), nil
			},
		},
	}

	result := c.Run()

	if result.Status != check.StatusCritical {
		t.Errorf("Status = %v, want %v for non-OK body", result.Status, check.StatusCritical)
	}
}

func TestPingCheck_HTTP_ConnectionRefused(t *testing.T) {
	c := &Check{
		URL: "http://127.0.0.1:8098/ping",
		Client: &testutil.MockHTTPClient{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
		},
	}

	result := c.Run()

	if result.Status != check.StatusCritical {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusCritical)
	}
}

func TestPingCheck_CLI_Pong(t *testing.T) {
	c := &Check{
		UseCLI:  true,
		RiakCmd: "/usr/sbin/riak",
		Runner: &runner.MockRunner{
			RunContextFunc: func(_ context.Context, name string, args ...string) (string, string, error) {
				if name != "/usr/sbin/riak" || len(args) != 1 || args[0] != "ping" {
					t.Errorf("command = %s %v, want /usr/sbin/riak ping", name, args)
				}
				return "pong\n", "", nil
			},
		},
	}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusOK)
	}
	if !testutil.ContainsDetail(result.Details, "response: pong") {
		t.Errorf("Details = %v, want pong detail", result.Details)
	}
}

func TestPingCheck_CLI_NodeDown(t *testing.T) {
	c := &Check{
		UseCLI: true,
		Runner: &runner.MockRunner{
			RunContextFunc: func(_ context.Context, name string, args ...string) (string, string, error) {
				return "Node 'riak@127.0.0.1' not responding to pings.\n", "", errors.New("exit status 1")
			},
		},
	}

	result := c.Run()

	if result.Status != check.StatusCritical {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusCritical)
	}
	if !testutil.ContainsDetail(result.Details, "not responding to pings") {
		t.Errorf("Details = %v, want node-down detail", result.Details)
	}
}
