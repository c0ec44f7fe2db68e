package envproof

import (
	"net/url"
	"sort"
	"time"
)

// Data is the immutable mapping from field name to resolved typed value. It
// exposes read-only accessors and no mutation API, so validated
// configuration cannot be altered downstream. Every schema field is present
// as a key; optional-and-absent fields hold nil.
type Data struct {
	values map[string]any
}

func newData(values map[string]any) *Data {
	return &Data{values: values}
}

// Keys returns every field name in sorted order.
func (d *Data) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether the field exists in the result (optional-and-absent
// fields included).
func (d *Data) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// IsSet reports whether the field resolved to an actual value, i.e. it is
// present and not an optional-and-absent nil.
func (d *Data) IsSet(name string) bool {
	v, ok := d.values[name]
	return ok && v != nil
}

// Get returns the resolved value and whether the field exists.
// Reference-typed values (parsed JSON, arrays) come back as copies.
func (d *Data) Get(name string) (any, bool) {
	v, ok := d.values[name]
	return copyValue(v), ok
}

// String returns the field's string value, or "" when absent or not a
// string.
func (d *Data) String(name string) string {
	v, _ := d.values[name].(string)
	return v
}

// Float returns the field's numeric value, or 0 when absent.
func (d *Data) Float(name string) float64 {
	v, _ := d.values[name].(float64)
	return v
}

// Int returns the field's numeric value truncated to int.
func (d *Data) Int(name string) int {
	return int(d.Float(name))
}

// Bool returns the field's boolean value, or false when absent.
func (d *Data) Bool(name string) bool {
	v, _ := d.values[name].(bool)
	return v
}

// Duration returns the field's duration value, or 0 when absent.
func (d *Data) Duration(name string) time.Duration {
	v, _ := d.values[name].(time.Duration)
	return v
}

// URL returns the field's parsed URL, or nil when absent.
func (d *Data) URL(name string) *url.URL {
	v, _ := d.values[name].(*url.URL)
	return v
}

// JSON returns a copy of the field's parsed JSON value, or nil when absent.
func (d *Data) JSON(name string) any {
	if v, ok := d.values[name]; ok {
		return copyValue(v)
	}
	return nil
}

// Slice returns a copy of the field's array value, or nil when absent.
func (d *Data) Slice(name string) []any {
	v, _ := d.values[name].([]any)
	if v == nil {
		return nil
	}
	out, _ := copyValue(v).([]any)
	return out
}

// Strings returns the field's array value as strings, skipping non-string
// elements.
func (d *Data) Strings(name string) []string {
	items := d.Slice(name)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Map returns a copy of the underlying values. Mutating the copy
// has no effect on the Data.
func (d *Data) Map() map[string]any {
	out := make(map[string]any, len(d.values))
	for k, v := range d.values {
		out[k] = copyValue(v)
	}
	return out
}

// Len returns the number of fields in the result.
func (d *Data) Len() int { return len(d.values) }

// copyValue clones reference-typed values (parsed JSON objects and arrays)
// so no accessor hands out the internal backing store.
func copyValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, it := range t {
			out[i] = copyValue(it)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, it := range t {
			out[k] = copyValue(it)
		}
		return out
	default:
		return v
	}
}
