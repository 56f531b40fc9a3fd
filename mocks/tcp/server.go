package tcp

import (
	"bufio"
	"fmt"
	"net"
	"sync"
	"time"
)

// LineServer is a test server that accepts connections on a mock
// listener and records every CRLF-terminated line it receives, the way
// the LiveSplit Server consumes commands.
type LineServer struct {
	listener net.Listener

	mu    sync.Mutex
	lines []string
}

// NewLineServer starts a line-recording server on the given address of
// the mock network.
func NewLineServer(network *MockTCPNetwork, addr string) (*LineServer, error) {
	laddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	l, err := network.ListenTCP("tcp", laddr)
	if err != nil {
		return nil, err
	}

	s := &LineServer{listener: l}
	go s.serve()
	return s, nil
}

func (s *LineServer) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *LineServer) handle(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		s.mu.Lock()
		s.lines = append(s.lines, line)
		s.mu.Unlock()
	}
}

// Lines returns a copy of the lines received so far. The scanner's
// line splitting strips the CRLF terminators.
func (s *LineServer) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// WaitForLines polls until at least n lines arrived or the timeout
// elapses, returning the lines seen.
func (s *LineServer) WaitForLines(n int, timeout time.Duration) ([]string, error) {
	deadline := time.Now().Add(timeout)
	for {
		lines := s.Lines()
		if len(lines) >= n {
			return lines, nil
		}
		if time.Now().After(deadline) {
			return lines, fmt.Errorf("timeout waiting for %d lines, got %d", n, len(lines))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// Close stops the server.
func (s *LineServer) Close() error {
	return s.listener.Close()
}
