package proxyprotocol

import (
	"net"

	proxyproto "github.com/pires/go-proxyproto"
)

// addressFromHeader returns the address described by a PROXY header, using the
// header's transport protocol to choose the address type.
func addressFromHeader(
	proto proxyproto.AddressFamilyAndProtocol,
	ip net.IP,
	port uint16,
) net.Addr {
	switch {
	case proto.IsUnix():
		network := "unix"
		if !proto.IsStream() {
			network = "unixgram"
		}
		return &net.UnixAddr{Net: network, Name: ip.String()}
	case proto.IsStream():
		return &net.TCPAddr{IP: ip, Port: int(port)}
	case proto.IsUnspec():
		return nil
	default:
		return &net.UDPAddr{IP: ip, Port: int(port)}
	}
}
