package field

import (
	"fmt"
	"strings"

	"github.com/jayantpathariya/envproof"
)

// EnumSchema validates membership in a fixed, ordered set of string
// literals. Coercion trims the raw value and requires exact, case-sensitive
// membership.
type EnumSchema struct {
	base
	allowed []string
}

// Enum returns a new enum schema over the given allowed values. Constructing
// an enum with no values is a programmer error and panics immediately.
func Enum(allowed ...string) EnumSchema {
	if len(allowed) == 0 {
		panic("envproof/field: Enum requires at least one allowed value")
	}
	vals := make([]string, len(allowed))
	copy(vals, allowed)
	return EnumSchema{allowed: vals}
}

// Kind implements envproof.Field.
func (e EnumSchema) Kind() envproof.Kind { return envproof.KindEnum }

// Coerce implements envproof.Field.
func (e EnumSchema) Coerce(raw string) (any, error) {
	v := strings.TrimSpace(raw)
	for _, a := range e.allowed {
		if v == a {
			return v, nil
		}
	}
	return nil, fmt.Errorf("must be one of: %s", strings.Join(e.allowed, ", "))
}

// Allowed returns a copy of the allowed value set, in declaration order.
func (e EnumSchema) Allowed() []string {
	out := make([]string, len(e.allowed))
	copy(out, e.allowed)
	return out
}

// TypeDescription implements envproof.Field.
func (e EnumSchema) TypeDescription() string {
	return "one of: " + strings.Join(e.allowed, " | ")
}

// ExampleValue implements envproof.Field.
func (e EnumSchema) ExampleValue() string {
	if e.meta.Example != "" {
		return e.meta.Example
	}
	return e.allowed[0]
}

// WithOptional implements envproof.Field.
func (e EnumSchema) WithOptional(optional bool) envproof.Field {
	e.base = e.base.withOptional(optional)
	return e
}

// Optional marks absent/empty input as "no value" rather than an error.
func (e EnumSchema) Optional() EnumSchema {
	e.base = e.base.withOptional(true)
	return e
}

// Default resolves absent/empty input to v instead of erroring. A default
// outside the allowed set is a programmer error and panics. The stored
// default is the trimmed value Coerce accepts, so " info" resolves to "info".
func (e EnumSchema) Default(v string) EnumSchema {
	coerced, err := e.Coerce(v)
	if err != nil {
		panic(fmt.Sprintf("envproof/field: enum default %q is not an allowed value", v))
	}
	e.base = e.base.withDefault(coerced)
	return e
}

// Secret redacts the value in every error and generated example.
func (e EnumSchema) Secret() EnumSchema {
	e.base = e.base.withSecret()
	return e
}

// Describe attaches a human-readable description.
func (e EnumSchema) Describe(d string) EnumSchema {
	e.base = e.base.withDescription(d)
	return e
}

// Example attaches an explicit example value.
func (e EnumSchema) Example(ex string) EnumSchema {
	e.base = e.base.withExample(ex)
	return e
}
