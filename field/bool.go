package field

import (
	"fmt"
	"strings"

	"github.com/jayantpathariya/envproof"
)

var (
	trueTokens  = map[string]struct{}{"true": {}, "1": {}, "yes": {}, "on": {}}
	falseTokens = map[string]struct{}{"false": {}, "0": {}, "no": {}, "off": {}}
)

// BoolSchema validates boolean variables. Coercion matches a fixed token set
// case-insensitively after trimming: true/1/yes/on and false/0/no/off.
type BoolSchema struct {
	base
}

// Bool returns a new boolean schema.
func Bool() BoolSchema { return BoolSchema{} }

// Kind implements envproof.Field.
func (b BoolSchema) Kind() envproof.Kind { return envproof.KindBool }

// Coerce implements envproof.Field.
func (b BoolSchema) Coerce(raw string) (any, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueTokens[token]; ok {
		return true, nil
	}
	if _, ok := falseTokens[token]; ok {
		return false, nil
	}
	return nil, fmt.Errorf("must be one of: true, 1, yes, on, false, 0, no, off")
}

// TypeDescription implements envproof.Field.
func (b BoolSchema) TypeDescription() string {
	return "boolean (true/1/yes/on or false/0/no/off)"
}

// ExampleValue implements envproof.Field.
func (b BoolSchema) ExampleValue() string {
	if b.meta.Example != "" {
		return b.meta.Example
	}
	return "true"
}

// WithOptional implements envproof.Field.
func (b BoolSchema) WithOptional(optional bool) envproof.Field {
	b.base = b.base.withOptional(optional)
	return b
}

// Optional marks absent/empty input as "no value" rather than an error.
func (b BoolSchema) Optional() BoolSchema {
	b.base = b.base.withOptional(true)
	return b
}

// Default resolves absent/empty input to v instead of erroring.
func (b BoolSchema) Default(v bool) BoolSchema {
	b.base = b.base.withDefault(v)
	return b
}

// Secret redacts the value in every error and generated example.
func (b BoolSchema) Secret() BoolSchema {
	b.base = b.base.withSecret()
	return b
}

// Describe attaches a human-readable description.
func (b BoolSchema) Describe(d string) BoolSchema {
	b.base = b.base.withDescription(d)
	return b
}

// Example attaches an explicit example value.
func (b BoolSchema) Example(e string) BoolSchema {
	b.base = b.base.withExample(e)
	return b
}
