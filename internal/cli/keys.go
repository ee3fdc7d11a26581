package cli

import (
	"net/url"
	"strconv"

	"github.com/slatehq/slate/internal/query"
)

// Cache keys. Every read of the same resource with the same filter
// must land on the same key, so keys are always built through these
// helpers.

func resourceKey(resource string, v url.Values) query.Key {
	if len(v) == 0 {
		return query.NewKey(resource, nil)
	}
	params := make(map[string]string, len(v))
	for name := range v {
		params[name] = v.Get(name)
	}
	return query.NewKey(resource, params)
}

func detailKey(resource string, id int) query.Key {
	return query.NewKey(resource, map[string]string{"id": strconv.Itoa(id)})
}
