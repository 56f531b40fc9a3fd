// Package livesplit implements a client for the LiveSplit Server
// protocol: CRLF-terminated ASCII command lines sent over a single
// connection, with no replies expected for the commands used here.
package livesplit

import (
	"context"
	"fmt"
	"net"

	"livesplit-hotkeys/pkg/config"
	"livesplit-hotkeys/pkg/format"
	"livesplit-hotkeys/pkg/log"
	"livesplit-hotkeys/pkg/transport"
	"livesplit-hotkeys/pkg/transport/tcp"
	"livesplit-hotkeys/pkg/transport/ws"
)

// Client connects to a LiveSplit Server (or LiveSplit One) and sends
// timer commands.
type Client struct {
	ctx context.Context
	cfg *config.Config

	conn net.Conn
}

// New creates a client for the server described by cfg.
func New(ctx context.Context, cfg *config.Config) *Client {
	return &Client{
		ctx: ctx,
		cfg: cfg,
	}
}

// Connect establishes the connection using the configured transport.
func (c *Client) Connect() error {
	addr := format.Addr(c.cfg.Host, c.cfg.Port)

	c.cfg.Logger.InfoMsg("Connecting to LiveSplit server at %s://%s\n", c.cfg.Protocol, addr)

	var d transport.Dialer
	var err error
	switch c.cfg.Protocol {
	case config.ProtoWS, config.ProtoWSS:
		d = ws.NewDialer(addr, c.cfg.Protocol)
	default:
		d, err = tcp.NewDialer(addr, c.cfg.Deps)
	}
	if err != nil {
		return fmt.Errorf("NewDialer: %s", err)
	}

	c.conn, err = d.Dial(c.ctx)
	if err != nil {
		return fmt.Errorf("could not connect to LiveSplit server: %s", err)
	}

	if c.cfg.CommandLog != "" {
		c.conn, err = log.NewLoggedConn(c.conn, c.cfg.CommandLog)
		if err != nil {
			return fmt.Errorf("log.NewLoggedConn(%s): %s", c.cfg.CommandLog, err)
		}
	}

	return nil
}

// Close closes the connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}

	c.cfg.Logger.InfoMsg("Connection to %s closed\n", c.conn.RemoteAddr())

	return c.conn.Close()
}

// GetConnection returns the underlying connection, nil before Connect.
func (c *Client) GetConnection() net.Conn {
	return c.conn
}

// StartOrSplit starts the timer or splits if it is already running.
func (c *Client) StartOrSplit() error {
	return c.send("startorsplit")
}

// Reset resets the timer.
func (c *Client) Reset() error {
	return c.send("reset")
}

// SkipSplit skips the current split.
func (c *Client) SkipSplit() error {
	return c.send("skipsplit")
}

// UndoSplit undoes the previous split.
func (c *Client) UndoSplit() error {
	return c.send("unsplit")
}

// Pause pauses the timer.
func (c *Client) Pause() error {
	return c.send("pause")
}

// Resume resumes a paused timer.
func (c *Client) Resume() error {
	return c.send("resume")
}

// SetComparison switches the active comparison.
func (c *Client) SetComparison(name string) error {
	return c.send("setcomparison " + name)
}

func (c *Client) send(command string) error {
	if c.conn == nil {
		return fmt.Errorf("not connected")
	}

	if _, err := c.conn.Write([]byte(command + "\r\n")); err != nil {
		return fmt.Errorf("sending %q: %s", command, err)
	}
	return nil
}
