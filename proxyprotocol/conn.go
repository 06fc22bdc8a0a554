package proxyprotocol

import (
	"bufio"
	"net"
	"sync"
	"time"

	proxyproto "github.com/pires/go-proxyproto"
)

// Conn is a net.Conn that parses an optional PROXY protocol header (v1 or v2)
// from the start of the stream.
//
// The header is read on first use of the connection rather than when it is
// accepted, so a slow client can not stall the listener. Connections that do
// not begin with a PROXY header are passed through untouched.
type Conn struct {
	net.Conn

	headerTimeout time.Duration
	reader        *bufio.Reader
	once          sync.Once
	err           error
	local         net.Addr
	remote        net.Addr
}

// NewConn returns a connection that reads a PROXY protocol header from nc.
// If headerTimeout is positive the header must arrive within that time.
func NewConn(nc net.Conn, headerTimeout time.Duration) *Conn {
	return &Conn{
		Conn:          nc,
		headerTimeout: headerTimeout,
		reader:        bufio.NewReader(nc),
	}
}

func (c *Conn) init() {
	c.once.Do(func() {
		if c.headerTimeout > 0 {
			c.Conn.SetReadDeadline(time.Now().Add(c.headerTimeout))
			defer c.Conn.SetReadDeadline(time.Time{})
		}

		hdr, err := proxyproto.Read(c.reader)
		switch err {
		case nil:
			if hdr.Command == proxyproto.LOCAL {
				return
			}
			c.local = addressFromHeader(hdr.TransportProtocol, hdr.DestinationAddress, hdr.DestinationPort)
			c.remote = addressFromHeader(hdr.TransportProtocol, hdr.SourceAddress, hdr.SourcePort)
		case proxyproto.ErrNoProxyProtocol, proxyproto.ErrInvalidLength:
			// not a PROXY connection
		default:
			c.err = err
		}
	})
}

// ReadHeader reads the PROXY header, if it has not already been read, and
// returns any error encountered.
func (c *Conn) ReadHeader() error {
	c.init()
	return c.err
}

// Read reads data from the connection, after any PROXY header.
func (c *Conn) Read(b []byte) (int, error) {
	c.init()
	if c.err != nil {
		return 0, c.err
	}
	return c.reader.Read(b)
}

// LocalAddr returns the destination address from the PROXY header, or the
// connection's own local address if there is none.
func (c *Conn) LocalAddr() net.Addr {
	c.init()
	if c.local != nil {
		return c.local
	}
	return c.Conn.LocalAddr()
}

// RemoteAddr returns the source address from the PROXY header, or the
// connection's own remote address if there is none.
func (c *Conn) RemoteAddr() net.Addr {
	c.init()
	if c.remote != nil {
		return c.remote
	}
	return c.Conn.RemoteAddr()
}
