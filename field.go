package envproof

// Kind tags the field-schema variant.
type Kind string

const (
	KindString   Kind = "string"
	KindNumber   Kind = "number"
	KindBool     Kind = "boolean"
	KindEnum     Kind = "enum"
	KindURL      Kind = "url"
	KindJSON     Kind = "json"
	KindArray    Kind = "array"
	KindDuration Kind = "duration"
	KindPath     Kind = "path"
)

// Rule is a post-coercion refinement: a named predicate that may reject an
// otherwise well-typed value. Rules run in registration order; the first
// failing rule produces the error for its field.
type Rule struct {
	Name    string
	Message string
	Check   func(v any) bool
}

// Metadata carries the documentation attributes of a field.
type Metadata struct {
	Secret      bool
	Description string
	Example     string
}

// Field is the common capability contract every schema variant implements.
// A Field is a pure description: applying the same Field to the same raw
// string always yields the same outcome (path-existence refinements, which
// legitimately consult the filesystem, excepted). Builder methods on the
// concrete variants are copy-on-write and never mutate a shared instance.
type Field interface {
	// Kind identifies the variant.
	Kind() Kind

	// Coerce converts a raw string into the variant's typed value. It is
	// deterministic and never panics for well-formed input; malformed input
	// yields a descriptive error, not an exception.
	Coerce(raw string) (any, error)

	// Rules returns the ordered refinement rules.
	Rules() []Rule

	// IsOptional reports whether an absent/empty input resolves to "no
	// value" rather than an error.
	IsOptional() bool

	// DefaultValue returns the resolved typed default, if one is set. A
	// default always wins over optional-is-nil for absent/empty input.
	DefaultValue() (any, bool)

	// Meta returns the secret/description/example metadata.
	Meta() Metadata

	// TypeDescription is a human-readable constraint summary reflecting the
	// currently attached rules (for example "integer, 1-65535").
	TypeDescription() string

	// ExampleValue returns the explicit example if set, else a
	// variant-specific synthesized default.
	ExampleValue() string

	// WithOptional returns a copy with the optional flag replaced. Used by
	// environment-conditional schema rules; the receiver is not mutated.
	WithOptional(optional bool) Field
}
