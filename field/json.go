package field

import (
	"errors"
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/jayantpathariya/envproof"
)

// JSONSchema validates variables holding JSON text. Coercion parses the
// trimmed value; an empty string is a coercion failure, not the JSON value
// "".
type JSONSchema struct {
	base
	defRaw string
}

// JSON returns a new JSON schema.
func JSON() JSONSchema { return JSONSchema{} }

// Kind implements envproof.Field.
func (j JSONSchema) Kind() envproof.Kind { return envproof.KindJSON }

// Coerce implements envproof.Field.
func (j JSONSchema) Coerce(raw string) (any, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, errors.New("must be valid JSON")
	}
	var v any
	if err := gojson.Unmarshal([]byte(text), &v); err != nil {
		return nil, errors.New("must be valid JSON")
	}
	return v, nil
}

// TypeDescription implements envproof.Field.
func (j JSONSchema) TypeDescription() string {
	for _, r := range j.rules {
		switch r.Name {
		case "array":
			return "JSON array"
		case "object":
			return "JSON object"
		}
	}
	return "JSON"
}

// ExampleValue implements envproof.Field.
func (j JSONSchema) ExampleValue() string {
	if j.meta.Example != "" {
		return j.meta.Example
	}
	for _, r := range j.rules {
		if r.Name == "array" {
			return `["a","b"]`
		}
	}
	return `{"key":"value"}`
}

// WithOptional implements envproof.Field.
func (j JSONSchema) WithOptional(optional bool) envproof.Field {
	j.base = j.base.withOptional(optional)
	return j
}

// Optional marks absent/empty input as "no value" rather than an error.
func (j JSONSchema) Optional() JSONSchema {
	j.base = j.base.withOptional(true)
	return j
}

// Default resolves absent/empty input to the parsed JSON value. Unparsable
// default text is a programmer error and panics. The raw text is kept and
// re-parsed per resolution: parsed JSON is reference-typed, and handing every
// validation run the same map or slice would let one run's caller alter what
// the next run returns.
func (j JSONSchema) Default(raw string) JSONSchema {
	if _, err := j.Coerce(raw); err != nil {
		panic(fmt.Sprintf("envproof/field: JSON default %q: %v", raw, err))
	}
	j.defRaw = raw
	j.hasDef = true
	return j
}

// DefaultValue implements envproof.Field, parsing a fresh value per call.
func (j JSONSchema) DefaultValue() (any, bool) {
	if !j.hasDef {
		return nil, false
	}
	v, _ := j.Coerce(j.defRaw)
	return v, true
}

// Secret redacts the value in every error and generated example.
func (j JSONSchema) Secret() JSONSchema {
	j.base = j.base.withSecret()
	return j
}

// Describe attaches a human-readable description.
func (j JSONSchema) Describe(d string) JSONSchema {
	j.base = j.base.withDescription(d)
	return j
}

// Example attaches an explicit example value.
func (j JSONSchema) Example(e string) JSONSchema {
	j.base = j.base.withExample(e)
	return j
}

// Array requires the top-level value to be an array.
func (j JSONSchema) Array() JSONSchema {
	j.base = j.withRule("array",
		"must be a JSON array",
		func(v any) bool { _, ok := v.([]any); return ok })
	return j
}

// Object requires the top-level value to be a non-null, non-array object.
func (j JSONSchema) Object() JSONSchema {
	j.base = j.withRule("object",
		"must be a JSON object",
		func(v any) bool { _, ok := v.(map[string]any); return ok })
	return j
}

// Validate attaches an arbitrary predicate on the parsed value.
func (j JSONSchema) Validate(message string, check func(v any) bool) JSONSchema {
	j.base = j.withRule("validate", message, check)
	return j
}
