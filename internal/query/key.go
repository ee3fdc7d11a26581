package query

import (
	"sort"
	"strings"
)

// Key identifies one cached read: a resource name plus its query
// parameters in a canonical order, so the same logical read always
// lands on the same cache slot.
type Key string

// NewKey builds a Key from a resource name and optional parameters.
// Parameters are sorted so map iteration order cannot split a read
// across two slots.
func NewKey(resource string, params map[string]string) Key {
	if len(params) == 0 {
		return Key(resource)
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(resource)
	sep := "?"
	for _, name := range names {
		b.WriteString(sep)
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(params[name])
		sep = "&"
	}
	return Key(b.String())
}
