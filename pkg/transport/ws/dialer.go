// Package ws provides the WebSocket transport used to reach a
// LiveSplit One server, which accepts the same command lines as the
// classic TCP server.
package ws

import (
	"context"
	"fmt"
	"net"

	"github.com/coder/websocket"

	"livesplit-hotkeys/pkg/config"
)

// Dialer implements the transport.Dialer interface for WebSocket connections.
type Dialer struct {
	url string
}

// NewDialer creates a WebSocket dialer for the given address and
// protocol (ws or wss).
func NewDialer(addr string, proto config.Protocol) *Dialer {
	return &Dialer{
		url: fmt.Sprintf("%s://%s", proto.String(), addr),
	}
}

// Dial establishes the WebSocket connection and exposes it as a
// net.Conn carrying text messages, one command line per message.
func (d *Dialer) Dial(ctx context.Context) (net.Conn, error) {
	c, _, err := websocket.Dial(ctx, d.url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket.Dial(%s): %s", d.url, err)
	}

	return websocket.NetConn(context.Background(), c, websocket.MessageText), nil
}
