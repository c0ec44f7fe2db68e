package field

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jayantpathariya/envproof"
)

// URLSchema validates absolute URLs. Coercion parses the trimmed value and
// yields a *url.URL exposing scheme, host, path, query, fragment and
// credentials; relative references and empty strings fail.
type URLSchema struct {
	base
	protocols []string
	defRaw    string
}

// URL returns a new URL schema.
func URL() URLSchema { return URLSchema{} }

// Kind implements envproof.Field.
func (u URLSchema) Kind() envproof.Kind { return envproof.KindURL }

// Coerce implements envproof.Field.
func (u URLSchema) Coerce(raw string) (any, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, errors.New("must be a URL")
	}
	parsed, err := url.Parse(v)
	if err != nil {
		return nil, errors.New("must be a valid URL")
	}
	if !parsed.IsAbs() {
		return nil, errors.New("must be an absolute URL")
	}
	return parsed, nil
}

// TypeDescription implements envproof.Field.
func (u URLSchema) TypeDescription() string {
	if len(u.protocols) > 0 {
		return "URL (" + strings.Join(u.protocols, ", ") + ")"
	}
	return "URL"
}

// ExampleValue implements envproof.Field.
func (u URLSchema) ExampleValue() string {
	if u.meta.Example != "" {
		return u.meta.Example
	}
	if len(u.protocols) > 0 {
		return u.protocols[0] + "://example.com"
	}
	return "https://example.com"
}

// WithOptional implements envproof.Field.
func (u URLSchema) WithOptional(optional bool) envproof.Field {
	u.base = u.base.withOptional(optional)
	return u
}

// Optional marks absent/empty input as "no value" rather than an error.
func (u URLSchema) Optional() URLSchema {
	u.base = u.base.withOptional(true)
	return u
}

// Default resolves absent/empty input to the parsed URL. An unparsable
// default is a programmer error and panics. The raw text is kept and
// re-parsed per resolution so runs never share one mutable *url.URL.
func (u URLSchema) Default(raw string) URLSchema {
	if _, err := u.Coerce(raw); err != nil {
		panic(fmt.Sprintf("envproof/field: URL default %q: %v", raw, err))
	}
	u.defRaw = raw
	u.hasDef = true
	return u
}

// DefaultValue implements envproof.Field, parsing a fresh URL per call.
func (u URLSchema) DefaultValue() (any, bool) {
	if !u.hasDef {
		return nil, false
	}
	v, _ := u.Coerce(u.defRaw)
	return v, true
}

// Secret redacts the value in every error and generated example.
func (u URLSchema) Secret() URLSchema {
	u.base = u.base.withSecret()
	return u
}

// Describe attaches a human-readable description.
func (u URLSchema) Describe(d string) URLSchema {
	u.base = u.base.withDescription(d)
	return u
}

// Example attaches an explicit example value.
func (u URLSchema) Example(e string) URLSchema {
	u.base = u.base.withExample(e)
	return u
}

// Protocols restricts the URL scheme to the given set. Values are
// normalized: a trailing colon is dropped and matching is case-insensitive.
func (u URLSchema) Protocols(protocols ...string) URLSchema {
	normalized := make([]string, 0, len(protocols))
	for _, p := range protocols {
		normalized = append(normalized, strings.ToLower(strings.TrimSuffix(p, ":")))
	}
	u.protocols = normalized
	u.base = u.withRule("protocols",
		fmt.Sprintf("must use one of the protocols: %s", strings.Join(normalized, ", ")),
		func(v any) bool {
			parsed, ok := v.(*url.URL)
			if !ok {
				return false
			}
			scheme := strings.ToLower(parsed.Scheme)
			for _, p := range normalized {
				if scheme == p {
					return true
				}
			}
			return false
		})
	return u
}

// HTTP is shorthand for Protocols("http", "https").
func (u URLSchema) HTTP() URLSchema {
	return u.Protocols("http", "https")
}

// WithPath requires a non-trivial path (more than just "/").
func (u URLSchema) WithPath() URLSchema {
	u.base = u.withRule("with_path",
		"must include a path",
		func(v any) bool {
			parsed, ok := v.(*url.URL)
			return ok && parsed.Path != "" && parsed.Path != "/"
		})
	return u
}

// Host requires an exact hostname match.
func (u URLSchema) Host(name string) URLSchema {
	u.base = u.withRule("host",
		fmt.Sprintf("must have host %q", name),
		func(v any) bool {
			parsed, ok := v.(*url.URL)
			return ok && parsed.Hostname() == name
		})
	return u
}
