package field

import (
	"fmt"
	"strings"

	"github.com/jayantpathariya/envproof"
)

// ArraySchema wraps an item schema and a separator (default ","). Coercion
// splits the raw value, trims each piece, discards empty pieces, coerces
// each remaining piece with the item schema and runs the item schema's own
// rules per element; the first failing element aborts with an error
// identifying its index.
type ArraySchema struct {
	base
	item      envproof.Field
	separator string
	defRaw    string
}

// Array returns a new array schema over the given item schema.
func Array(item envproof.Field) ArraySchema {
	if item == nil {
		panic("envproof/field: Array requires an item schema")
	}
	return ArraySchema{item: item, separator: ","}
}

// Kind implements envproof.Field.
func (a ArraySchema) Kind() envproof.Kind { return envproof.KindArray }

// Coerce implements envproof.Field.
func (a ArraySchema) Coerce(raw string) (any, error) {
	pieces := strings.Split(raw, a.separator)
	out := make([]any, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		idx := len(out)
		v, err := a.item.Coerce(piece)
		if err != nil {
			return nil, fmt.Errorf("element %d: %v", idx, err)
		}
		for _, rule := range a.item.Rules() {
			if !rule.Check(v) {
				return nil, fmt.Errorf("element %d: %s", idx, rule.Message)
			}
		}
		out = append(out, v)
	}
	return out, nil
}

// Item returns the wrapped item schema.
func (a ArraySchema) Item() envproof.Field { return a.item }

// TypeDescription implements envproof.Field.
func (a ArraySchema) TypeDescription() string {
	return fmt.Sprintf("list of %s, separated by %q", a.item.TypeDescription(), a.separator)
}

// ExampleValue implements envproof.Field.
func (a ArraySchema) ExampleValue() string {
	if a.meta.Example != "" {
		return a.meta.Example
	}
	item := a.item.ExampleValue()
	return item + a.separator + item
}

// WithOptional implements envproof.Field.
func (a ArraySchema) WithOptional(optional bool) envproof.Field {
	a.base = a.base.withOptional(optional)
	return a
}

// Optional marks absent/empty input as "no value" rather than an error.
func (a ArraySchema) Optional() ArraySchema {
	a.base = a.base.withOptional(true)
	return a
}

// Default resolves absent/empty input to the coerced list. An unparsable
// default is a programmer error and panics. The raw text is kept and
// re-coerced per resolution so validation runs never share one mutable slice.
func (a ArraySchema) Default(raw string) ArraySchema {
	if _, err := a.Coerce(raw); err != nil {
		panic(fmt.Sprintf("envproof/field: array default %q: %v", raw, err))
	}
	a.defRaw = raw
	a.hasDef = true
	return a
}

// DefaultValue implements envproof.Field, coercing a fresh list per call.
func (a ArraySchema) DefaultValue() (any, bool) {
	if !a.hasDef {
		return nil, false
	}
	v, _ := a.Coerce(a.defRaw)
	return v, true
}

// Secret redacts the value in every error and generated example.
func (a ArraySchema) Secret() ArraySchema {
	a.base = a.base.withSecret()
	return a
}

// Describe attaches a human-readable description.
func (a ArraySchema) Describe(d string) ArraySchema {
	a.base = a.base.withDescription(d)
	return a
}

// Example attaches an explicit example value.
func (a ArraySchema) Example(e string) ArraySchema {
	a.base = a.base.withExample(e)
	return a
}

// Separator replaces the element separator (default ",").
func (a ArraySchema) Separator(sep string) ArraySchema {
	if sep == "" {
		panic("envproof/field: array separator must not be empty")
	}
	a.separator = sep
	return a
}

// MinLength requires at least n elements.
func (a ArraySchema) MinLength(n int) ArraySchema {
	a.base = a.withRule("min_length",
		fmt.Sprintf("must contain at least %d elements", n),
		func(v any) bool { items, _ := v.([]any); return len(items) >= n })
	return a
}

// MaxLength requires at most n elements.
func (a ArraySchema) MaxLength(n int) ArraySchema {
	a.base = a.withRule("max_length",
		fmt.Sprintf("must contain at most %d elements", n),
		func(v any) bool { items, _ := v.([]any); return len(items) <= n })
	return a
}

// NonEmpty requires at least one element.
func (a ArraySchema) NonEmpty() ArraySchema {
	return a.MinLength(1)
}
