package log

import (
	"fmt"
	"net"
	"os"
	"time"
)

// loggedConn wraps a net.Conn and records all traffic to a file. The
// LiveSplit protocol is write-mostly, so in practice the file contains
// the command lines sent to the server.
type loggedConn struct {
	conn    net.Conn
	logFile *os.File
}

// NewLoggedConn wraps conn such that all bytes read or written are also
// appended to the file at path.
func NewLoggedConn(conn net.Conn, path string) (net.Conn, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("os.OpenFile(%s): %s", path, err)
	}

	return &loggedConn{
		conn:    conn,
		logFile: f,
	}, nil
}

func (lc *loggedConn) Read(b []byte) (int, error) {
	n, err := lc.conn.Read(b)
	if n > 0 {
		if _, werr := lc.logFile.Write(b[:n]); werr != nil {
			return 0, fmt.Errorf("reading: %s", werr)
		}
	}
	return n, err
}

func (lc *loggedConn) Write(b []byte) (int, error) {
	n, err := lc.conn.Write(b)
	if n > 0 {
		if _, werr := lc.logFile.Write(b[:n]); werr != nil {
			return 0, fmt.Errorf("writing: %s", werr)
		}
	}
	return n, err
}

func (lc *loggedConn) Close() error {
	lc.logFile.Close()
	return lc.conn.Close()
}

func (lc *loggedConn) LocalAddr() net.Addr {
	return lc.conn.LocalAddr()
}

func (lc *loggedConn) RemoteAddr() net.Addr {
	return lc.conn.RemoteAddr()
}

func (lc *loggedConn) SetDeadline(t time.Time) error {
	return lc.conn.SetDeadline(t)
}

func (lc *loggedConn) SetReadDeadline(t time.Time) error {
	return lc.conn.SetReadDeadline(t)
}

func (lc *loggedConn) SetWriteDeadline(t time.Time) error {
	return lc.conn.SetWriteDeadline(t)
}
