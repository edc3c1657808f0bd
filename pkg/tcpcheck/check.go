// Package tcpcheck verifies TCP reachability, used for the node's
// protocol buffers listener which speaks no HTTP.
package tcpcheck

import (
	"net"
	"time"

	"github.com/mohnkhan/check-riak/pkg/check"
)

// Dialer abstracts network dialing for testability.
type Dialer interface {
	DialTimeout(network, address string, timeout time.Duration) (net.Conn, error)
}

// RealDialer uses the real net package.
type RealDialer struct{}

// DialTimeout dials the network address with a timeout.
func (d *RealDialer) DialTimeout(network, address string, timeout time.Duration) (net.Conn, error) {
	return net.DialTimeout(network, address, timeout)
}

// MockDialer is a test double for Dialer.
type MockDialer struct {
	DialTimeoutFunc func(network, address string, timeout time.Duration) (net.Conn, error)
}

// DialTimeout calls the mock function.
func (m *MockDialer) DialTimeout(network, address string, timeout time.Duration) (net.Conn, error) {
	return m.DialTimeoutFunc(network, address, timeout)
}

// Check verifies TCP connectivity to a host:port.
type Check struct {
	Address string        // host:port to connect to
	Timeout time.Duration // connection timeout (default 10s)
	Dialer  Dialer        // injected for testing
}

// Run executes the TCP connectivity check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "pb: " + c.Address,
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	dialer := c.Dialer
	if dialer == nil {
		dialer = &RealDialer{}
	}

	conn, err := dialer.DialTimeout("tcp", c.Address, timeout)
	if err != nil {
		return result.Criticalf("connection failed: %v", err)
	}
	defer func() { _ = conn.Close() }()

	result.Status = check.StatusOK
	result.AddDetailf("connected to %s", c.Address)
	return result
}
