package field

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jayantpathariya/envproof"
)

// NumberSchema validates numeric variables. Coercion accepts decimal
// notation, a leading + or -, and scientific notation ("1e5"); NaN,
// infinities, and non-numeric strings fail.
type NumberSchema struct {
	base
	integer bool
	min     *float64
	max     *float64
}

// Number returns a new number schema.
func Number() NumberSchema { return NumberSchema{} }

// Kind implements envproof.Field.
func (n NumberSchema) Kind() envproof.Kind { return envproof.KindNumber }

// Coerce implements envproof.Field.
func (n NumberSchema) Coerce(raw string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, errors.New("must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.New("must be a finite number")
	}
	return f, nil
}

// TypeDescription implements envproof.Field.
func (n NumberSchema) TypeDescription() string {
	desc := "number"
	if n.integer {
		desc = "integer"
	}
	switch {
	case n.min != nil && n.max != nil:
		desc += fmt.Sprintf(", %s-%s", formatNumber(*n.min), formatNumber(*n.max))
	case n.min != nil:
		desc += fmt.Sprintf(", at least %s", formatNumber(*n.min))
	case n.max != nil:
		desc += fmt.Sprintf(", at most %s", formatNumber(*n.max))
	}
	return desc
}

// ExampleValue implements envproof.Field.
func (n NumberSchema) ExampleValue() string {
	if n.meta.Example != "" {
		return n.meta.Example
	}
	if n.hasDef {
		if f, ok := n.def.(float64); ok {
			return formatNumber(f)
		}
	}
	return "3000"
}

// WithOptional implements envproof.Field.
func (n NumberSchema) WithOptional(optional bool) envproof.Field {
	n.base = n.base.withOptional(optional)
	return n
}

// Optional marks absent/empty input as "no value" rather than an error.
func (n NumberSchema) Optional() NumberSchema {
	n.base = n.base.withOptional(true)
	return n
}

// Default resolves absent/empty input to v instead of erroring.
func (n NumberSchema) Default(v float64) NumberSchema {
	n.base = n.base.withDefault(v)
	return n
}

// Secret redacts the value in every error and generated example.
func (n NumberSchema) Secret() NumberSchema {
	n.base = n.base.withSecret()
	return n
}

// Describe attaches a human-readable description.
func (n NumberSchema) Describe(d string) NumberSchema {
	n.base = n.base.withDescription(d)
	return n
}

// Example attaches an explicit example value.
func (n NumberSchema) Example(e string) NumberSchema {
	n.base = n.base.withExample(e)
	return n
}

// Integer rejects non-integral values.
func (n NumberSchema) Integer() NumberSchema {
	n.integer = true
	n.base = n.withRule("integer",
		"must be an integer",
		func(v any) bool { f, _ := v.(float64); return math.Trunc(f) == f })
	return n
}

// Min requires the value to be at least limit.
func (n NumberSchema) Min(limit float64) NumberSchema {
	n.min = &limit
	n.base = n.withRule("min",
		fmt.Sprintf("must be at least %s", formatNumber(limit)),
		func(v any) bool { f, _ := v.(float64); return f >= limit })
	return n
}

// Max requires the value to be at most limit.
func (n NumberSchema) Max(limit float64) NumberSchema {
	n.max = &limit
	n.base = n.withRule("max",
		fmt.Sprintf("must be at most %s", formatNumber(limit)),
		func(v any) bool { f, _ := v.(float64); return f <= limit })
	return n
}

// Positive requires the value to be at least 1. This intentionally mirrors
// the historical behavior: "positive" means >= 1, so fractional values below
// one (0.5) are rejected.
func (n NumberSchema) Positive() NumberSchema {
	return n.Min(1)
}

// NonNegative requires the value to be at least 0.
func (n NumberSchema) NonNegative() NumberSchema {
	return n.Min(0)
}

// Between requires min <= value <= max.
func (n NumberSchema) Between(min, max float64) NumberSchema {
	return n.Min(min).Max(max)
}

// Port is shorthand for Integer().Min(1).Max(65535).
func (n NumberSchema) Port() NumberSchema {
	return n.Integer().Min(1).Max(65535)
}

// Refine attaches an arbitrary predicate with a custom message.
func (n NumberSchema) Refine(message string, check func(v float64) bool) NumberSchema {
	n.base = n.withRule("refine", message,
		func(v any) bool { f, _ := v.(float64); return check(f) })
	return n
}

// formatNumber renders a float without a trailing ".0" for integral values.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
