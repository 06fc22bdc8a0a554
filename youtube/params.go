package youtube

import (
	"net/url"
	"strings"
)

// KeyParam is the name of the query parameter that carries the API key.
const KeyParam = "key"

// Param is a single name/value pair forwarded to the upstream API.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered sequence of query parameters forwarded to the upstream
// API. Repeated names are permitted and are encoded as repeated pairs.
type Params []Param

// WithKey returns a copy of p with the API key appended as the final
// parameter. Any existing KeyParam entries are removed first, so the key
// appears exactly once.
func (p Params) WithKey(key string) Params {
	out := make(Params, 0, len(p)+1)
	for _, param := range p {
		if param.Name != KeyParam {
			out = append(out, param)
		}
	}

	return append(out, Param{KeyParam, key})
}

// Get returns the values of all parameters named name, in order.
func (p Params) Get(name string) []string {
	var values []string
	for _, param := range p {
		if param.Name == name {
			values = append(values, param.Value)
		}
	}

	return values
}

// Encode serializes p in "application/x-www-form-urlencoded" form, preserving
// the order of the parameters.
func (p Params) Encode() string {
	var b strings.Builder

	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}

	return b.String()
}
