// Package tcp provides the TCP transport used to reach the LiveSplit
// Server component. It implements the transport.Dialer interface.
package tcp

import (
	"context"
	"fmt"
	"net"

	"livesplit-hotkeys/pkg/config"
)

// Dialer implements the transport.Dialer interface for TCP connections.
type Dialer struct {
	tcpAddr *net.TCPAddr
	dial    config.TCPDialerFunc
}

// NewDialer creates a new TCP dialer for the specified address. The
// dialer function can be replaced via deps for testing.
func NewDialer(addr string, deps *config.Dependencies) (*Dialer, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("net.ResolveTCPAddr(tcp, %s): %s", addr, err)
	}

	return &Dialer{
		tcpAddr: tcpAddr,
		dial:    config.GetTCPDialerFunc(deps),
	}, nil
}

// Dial establishes a TCP connection to the configured address with
// keep-alive enabled.
func (d *Dialer) Dial(ctx context.Context) (net.Conn, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	conn, err := d.dial("tcp", nil, d.tcpAddr)
	if err != nil {
		return nil, fmt.Errorf("dialing tcp %s: %s", d.tcpAddr.String(), err)
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		tcpConn.SetKeepAlive(true)
	}
	return conn, nil
}
