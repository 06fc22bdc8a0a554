package proxyprotocol

import (
	"net"
	"time"
)

// Listener wraps a net.Listener so that accepted connections honour the PROXY
// protocol.
type Listener struct {
	net.Listener

	// HeaderTimeout bounds the time spent waiting for a PROXY header.
	HeaderTimeout time.Duration
}

// Accept waits for and returns the next connection.
func (l *Listener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}

	return NewConn(conn, l.HeaderTimeout), nil
}
