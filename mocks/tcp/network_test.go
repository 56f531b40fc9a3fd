package tcp

import (
	"net"
	"testing"
	"time"
)

func TestMockTCPNetwork_DialWithoutListener(t *testing.T) {
	t.Parallel()

	network := NewMockTCPNetwork()

	raddr, _ := net.ResolveTCPAddr("tcp", "127.0.0.1:12345")
	if _, err := network.DialTCP("tcp", nil, raddr); err == nil {
		t.Error("DialTCP() without listener should fail")
	}
}

func TestMockTCPNetwork_ListenAndDial(t *testing.T) {
	t.Parallel()

	network := NewMockTCPNetwork()

	laddr, _ := net.ResolveTCPAddr("tcp", "127.0.0.1:12345")
	listener, err := network.ListenTCP("tcp", laddr)
	if err != nil {
		t.Fatalf("ListenTCP() error: %s", err)
	}
	defer listener.Close()

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		buf := make([]byte, 64)
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		conn.Write(buf[:n])
	}()

	conn, err := network.DialTCP("tcp", nil, laddr)
	if err != nil {
		t.Fatalf("DialTCP() error: %s", err)
	}
	defer conn.Close()

	msg := []byte("ping")
	if _, err := conn.Write(msg); err != nil {
		t.Fatalf("Write() error: %s", err)
	}

	buf := make([]byte, 64)
	n, err := conn.Read(buf)
	if err != nil {
		t.Fatalf("Read() error: %s", err)
	}
	if string(buf[:n]) != "ping" {
		t.Errorf("echo = %q, want %q", buf[:n], "ping")
	}
}

func TestMockTCPNetwork_AddressInUse(t *testing.T) {
	t.Parallel()

	network := NewMockTCPNetwork()

	laddr, _ := net.ResolveTCPAddr("tcp", "127.0.0.1:12345")
	l, err := network.ListenTCP("tcp", laddr)
	if err != nil {
		t.Fatalf("ListenTCP() error: %s", err)
	}
	defer l.Close()

	if _, err := network.ListenTCP("tcp", laddr); err == nil {
		t.Error("second ListenTCP() on same address should fail")
	}
}

func TestLineServer_RecordsLines(t *testing.T) {
	t.Parallel()

	network := NewMockTCPNetwork()

	server, err := NewLineServer(network, "127.0.0.1:16834")
	if err != nil {
		t.Fatalf("NewLineServer() error: %s", err)
	}
	defer server.Close()

	raddr, _ := net.ResolveTCPAddr("tcp", "127.0.0.1:16834")
	conn, err := network.DialTCP("tcp", nil, raddr)
	if err != nil {
		t.Fatalf("DialTCP() error: %s", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("startorsplit\r\nreset\r\n")); err != nil {
		t.Fatalf("Write() error: %s", err)
	}

	lines, err := server.WaitForLines(2, 2*time.Second)
	if err != nil {
		t.Fatalf("WaitForLines() error: %s", err)
	}
	if lines[0] != "startorsplit" || lines[1] != "reset" {
		t.Errorf("lines = %v, want [startorsplit reset]", lines)
	}
}
