// Package query turns the slash-delimited request path tail into the typed
// filter set forwarded to the upstream provider.
package query

import (
	"log/slog"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is the maximum amount of articles the provider returns in a
// single page.
const DefaultPageSize = 100

var numericKeys = map[string]bool{
	"page":      true,
	"page_size": true,
}

// Query is an insertion-ordered mapping of filter-parameter names to string
// or integer values.
type Query struct {
	keys   []string
	values map[string]interface{}
}

func New() *Query {
	return &Query{
		values: make(map[string]interface{}),
	}
}

// Parse splits the path tail on '/' and pairs consecutive tokens as
// key/value. A trailing unmatched token is dropped. Values of recognized
// numeric keys are coerced to integers; a key whose value cannot be coerced
// is dropped rather than failing the request. After coercion, page_size is
// defaulted to DefaultPageSize if absent.
func Parse(tail string) *Query {
	q := New()

	tail = strings.Trim(tail, "/")
	if tail != "" {
		tokens := strings.Split(tail, "/")
		for i := 0; i+1 < len(tokens); i += 2 {
			key, value := tokens[i], tokens[i+1]

			if numericKeys[key] {
				n, err := strconv.Atoi(value)
				if err != nil {
					slog.Debug("Dropping non-numeric query value", "key", key, "value", value)
					continue
				}
				q.Set(key, n)
				continue
			}

			q.Set(key, value)
		}
	}

	if _, ok := q.Int("page_size"); !ok {
		q.Set("page_size", DefaultPageSize)
	}

	return q
}

// Set adds or replaces a value. Insertion order is preserved.
func (q *Query) Set(key string, value interface{}) {
	if _, exists := q.values[key]; !exists {
		q.keys = append(q.keys, key)
	}
	q.values[key] = value
}

// Get returns the string value for key.
func (q *Query) Get(key string) (string, bool) {
	value, ok := q.values[key].(string)
	return value, ok
}

// Int returns the integer value for key.
func (q *Query) Int(key string) (int, bool) {
	value, ok := q.values[key].(int)
	return value, ok
}

func (q *Query) Has(key string) bool {
	_, ok := q.values[key]
	return ok
}

// Keys returns the parameter names in insertion order.
func (q *Query) Keys() []string {
	return q.keys
}

// Values renders the query as URL parameters for the upstream call. PageSize
// is forwarded under the provider's camelCase name.
func (q *Query) Values() url.Values {
	params := url.Values{}

	for _, key := range q.keys {
		name := key
		switch key {
		case "page_size":
			name = "pageSize"
		}

		switch value := q.values[key].(type) {
		case int:
			params.Set(name, strconv.Itoa(value))
		case string:
			params.Set(name, value)
		}
	}

	return params
}
