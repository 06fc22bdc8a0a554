package youtube

import (
	"net/url"
	"strings"
)

// Query is the set of query parameters received with an inbound request.
//
// Unlike url.Values, a Query remembers the order in which parameter names
// first appeared, so that the forwarded query string preserves the caller's
// ordering.
type Query struct {
	names  []string
	values map[string][]string
}

// ParseQuery parses a raw (still percent-encoded) query string.
//
// Parsing is lenient: pairs are separated by '&' only, a '+' decodes to a
// space, a value whose escapes are malformed is kept verbatim, and a trailing
// "[]" on a name (array syntax) is removed so that "id[]=a&id[]=b" and
// "id=a&id=b" are equivalent. Pairs with an empty name are ignored.
func ParseQuery(raw string) Query {
	var q Query

	for raw != "" {
		var pair string
		pair, raw = split(raw, "&")
		if pair == "" {
			continue
		}

		name, value := split(pair, "=")
		name = strings.TrimSuffix(unescape(name), "[]")
		if name == "" {
			continue
		}

		q.Add(name, unescape(value))
	}

	return q
}

// Add appends value to the values for name.
func (q *Query) Add(name, value string) {
	if q.values == nil {
		q.values = map[string][]string{}
	}

	if _, ok := q.values[name]; !ok {
		q.names = append(q.names, name)
	}

	q.values[name] = append(q.values[name], value)
}

// Names returns the parameter names in order of first appearance.
func (q Query) Names() []string {
	return q.names
}

// Get returns all values for name, in the order received.
func (q Query) Get(name string) []string {
	return q.values[name]
}

// Len returns the number of distinct parameter names.
func (q Query) Len() int {
	return len(q.names)
}

func split(s, sep string) (string, string) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):]
	}

	return s, ""
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}

	return s
}
