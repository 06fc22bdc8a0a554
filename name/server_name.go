// Package name normalizes TLS server names.
package name

import (
	"crypto/tls"
	"errors"
	"strings"

	"golang.org/x/net/idna"
)

var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.VerifyDNSLength(true),
)

// ErrEmpty is returned when a server name is empty.
var ErrEmpty = errors.New("server name is empty")

// ServerName is a normalized TLS server name, in both its ASCII (punycode) and
// Unicode forms.
type ServerName struct {
	Unicode  string
	Punycode string
}

// String returns the Unicode form of the name.
func (n ServerName) String() string {
	return n.Unicode
}

// Parent returns the name with its leftmost label removed. ok is false if n
// has only one label.
func (n ServerName) Parent() (parent ServerName, ok bool) {
	u := strings.SplitN(n.Unicode, ".", 2)
	p := strings.SplitN(n.Punycode, ".", 2)
	if len(u) != 2 || len(p) != 2 {
		return ServerName{}, false
	}

	return ServerName{Unicode: u[1], Punycode: p[1]}, true
}

// Parse normalizes a server name, which may be given in either form.
func Parse(s string) (ServerName, error) {
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return ServerName{}, ErrEmpty
	}

	var (
		n   ServerName
		err error
	)

	n.Punycode, err = profile.ToASCII(s)
	if err != nil {
		return ServerName{}, err
	}

	n.Unicode, err = profile.ToUnicode(n.Punycode)
	if err != nil {
		return ServerName{}, err
	}

	return n, nil
}

// MustParse is like Parse but panics if s is invalid.
func MustParse(s string) ServerName {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

// FromTLS returns the server name requested in a TLS handshake.
func FromTLS(info *tls.ClientHelloInfo) (ServerName, error) {
	return Parse(info.ServerName)
}
