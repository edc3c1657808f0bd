// Package statscheck reads the node's HTTP /stats endpoint and
// optionally compares a single numeric stat against thresholds.
package statscheck

import (
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/threshold"
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

// summaryKeys are reported when no specific stat is requested.
var summaryKeys = []string{
	"node_gets",
	"node_puts",
	"node_get_fsm_time_median",
	"node_get_fsm_time_95",
	"node_put_fsm_time_median",
	"node_put_fsm_time_95",
	"read_repairs",
	"ring_num_partitions",
	"connected_nodes",
}

// Check fetches /stats and evaluates one stat or reports a summary.
type Check struct {
	URL        string               // stats endpoint, e.g. http://127.0.0.1:8098/stats
	Key        string               // stat to threshold (empty: summary mode)
	Thresholds threshold.Thresholds // ceilings for the selected stat
	Timeout    time.Duration        // request timeout (default 10s)
	Client     HTTPClient           // injected for testing
}

// Run executes the stats check.
func (c *Check) Run() check.Result {
	name := "stats: " + c.URL
	if c.Key != "" {
		name = "stats: " + c.Key
	}
	result := check.Result{Name: name}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
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
	if !gjson.ValidBytes(body) {
		return result.Unknownf("stats response is not valid JSON")
	}

	stats := string(body)
	if c.Key == "" {
		return c.summarize(stats, result)
	}
	return c.evaluate(stats, result)
}

func (c *Check) summarize(stats string, result check.Result) check.Result {
	for _, key := range summaryKeys {
		v := gjson.Get(stats, key)
		if !v.Exists() {
			continue
		}
		if v.IsArray() {
			result.AddDetailf("%s: %d", key, len(v.Array()))
			continue
		}
		result.AddDetailf("%s: %s", key, v.String())
	}
	result.Status = check.StatusOK
	return result
}

func (c *Check) evaluate(stats string, result check.Result) check.Result {
	v := gjson.Get(stats, c.Key)
	if !v.Exists() {
		return result.Unknownf("stat %q not present", c.Key)
	}
	if v.Type != gjson.Number {
		return result.Unknownf("stat %q is not numeric (%s)", c.Key, v.String())
	}

	value := v.Float()
	result.AddDetailf("%s: %s", c.Key, v.String())
	if c.Thresholds.Warn != nil {
		result.AddDetailf("warn at: %v", *c.Thresholds.Warn)
	}
	if c.Thresholds.Crit != nil {
		result.AddDetailf("crit at: %v", *c.Thresholds.Crit)
	}

	switch c.Thresholds.Evaluate(value, threshold.Ceiling) {
	case check.StatusWarning:
		return result.Warningf("%s %v over warning threshold", c.Key, value)
	case check.StatusCritical:
		return result.Criticalf("%s %v over critical threshold", c.Key, value)
	}

	result.Status = check.StatusOK
	return result
}
