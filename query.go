package erold

import (
	"net/url"
	"strings"
)

// Param is a single query-string parameter.
type Param struct {
	Key   string
	Value string
}

// Query is an ordered list of query parameters. Unlike url.Values it
// preserves insertion order on the wire.
type Query []Param

// With appends a parameter and returns the extended query.
func (q Query) With(key, value string) Query {
	return append(q, Param{Key: key, Value: value})
}

// Encode renders the query string in insertion order. Parameters with
// an empty value are dropped so they never reach the wire.
func (q Query) Encode() string {
	var b strings.Builder
	for _, p := range q {
		if p.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
