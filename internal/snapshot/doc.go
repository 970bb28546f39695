package snapshot

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// Doc is a captured state document: an arbitrary string-keyed tree of
// values as produced by a JSON decode or a live-state clone. Every accessor
// is total; a missing key, nil value, or wrong shape yields the default
// instead of an error. Accessors never write.
type Doc map[string]any

var ErrNotObject = errors.New("snapshot: document is not a JSON object")

// Decode parses a captured snapshot document from JSON.
func Decode(data []byte) (Doc, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Doc(m), nil
}

// Str returns the string value at key, coercing scalars; "" when absent.
func (d Doc) Str(key string) string {
	return d.StrOr(key, "")
}

func (d Doc) StrOr(key, def string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return def
	}
	return s
}

// Int returns the integer value at key, coercing numeric and string
// scalars; 0 when absent or non-numeric.
func (d Doc) Int(key string) int {
	return d.IntOr(key, 0)
}

func (d Doc) IntOr(key string, def int) int {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return n
}

// Child returns the nested document at key, or a nil Doc when the key is
// absent or does not hold an object.
func (d Doc) Child(key string) Doc {
	switch v := d[key].(type) {
	case map[string]any:
		return Doc(v)
	case Doc:
		return v
	default:
		return nil
	}
}

// At walks a chain of nested documents, returning a nil Doc as soon as any
// segment is missing.
func (d Doc) At(path ...string) Doc {
	cur := d
	for _, key := range path {
		cur = cur.Child(key)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// List returns the sequence at key, or nil when absent or not a sequence.
func (d Doc) List(key string) []any {
	v, ok := d[key].([]any)
	if !ok {
		return nil
	}
	return v
}

// Clone deep-copies the document so the result is independent of the maps
// and slices it was built from.
func (d Doc) Clone() Doc {
	if d == nil {
		return nil
	}
	out := make(Doc, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case Doc:
		return map[string]any(t.Clone())
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
