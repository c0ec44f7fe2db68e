package envproof

import "sort"

// Schema maps variable names (conventionally UPPER_SNAKE_CASE) to field
// schemas. Keys are unique; there is no nesting.
type Schema map[string]Field

// Names returns the schema's keys in sorted order. The engine iterates in
// this order so error ordering is deterministic.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a shallow copy of the schema. Field values are immutable
// descriptions, so sharing them is safe.
func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	for name, f := range s {
		out[name] = f
	}
	return out
}

// Merge combines schemas left to right; on key collision the later schema
// wins.
func Merge(schemas ...Schema) Schema {
	out := Schema{}
	for _, s := range schemas {
		for name, f := range s {
			out[name] = f
		}
	}
	return out
}

// Extend is Merge(base, additions).
func Extend(base, additions Schema) Schema {
	return Merge(base, additions)
}

// Pick keeps only the listed keys that exist; unknown keys in the list are
// silently ignored.
func Pick(s Schema, keys ...string) Schema {
	out := Schema{}
	for _, k := range keys {
		if f, ok := s[k]; ok {
			out[k] = f
		}
	}
	return out
}

// Omit drops the listed keys.
func Omit(s Schema, keys ...string) Schema {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := Schema{}
	for name, f := range s {
		if _, skip := drop[name]; skip {
			continue
		}
		out[name] = f
	}
	return out
}

// WithPrefix renames every key to prefix+key, preserving the field values
// unchanged. This operates at the schema-definition level; it is distinct
// from Options.Prefix, which renames lookups against the input source.
func WithPrefix(s Schema, prefix string) Schema {
	out := make(Schema, len(s))
	for name, f := range s {
		out[prefix+name] = f
	}
	return out
}
