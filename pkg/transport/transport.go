// Package transport provides the network transports used to reach a
// timer server: plain TCP for the LiveSplit Server component and
// WebSocket for LiveSplit One.
package transport

import (
	"context"
	"net"
)

// Dialer establishes an outbound connection to a timer server.
type Dialer interface {
	Dial(ctx context.Context) (net.Conn, error)
}
