package field

import (
	"fmt"
	"net/netip"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/jayantpathariya/envproof"
)

// emailPattern checks the simple local@domain.tld shape, not full RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IPVersion selects which address family the IP refinement accepts.
type IPVersion string

const (
	IPv4  IPVersion = "v4"
	IPv6  IPVersion = "v6"
	IPAny IPVersion = "any"
)

// StringSchema validates free-form string variables. Coercion is the
// identity and cannot fail; all constraints are refinements.
type StringSchema struct {
	base
}

// String returns a new string schema.
func String() StringSchema { return StringSchema{} }

// Kind implements envproof.Field.
func (s StringSchema) Kind() envproof.Kind { return envproof.KindString }

// Coerce implements envproof.Field; identity for any raw string.
func (s StringSchema) Coerce(raw string) (any, error) { return raw, nil }

// TypeDescription implements envproof.Field.
func (s StringSchema) TypeDescription() string {
	desc := "string"
	var notes []string
	for _, r := range s.rules {
		switch r.Name {
		case "min_length", "max_length", "length", "pattern", "email", "uuid", "ip":
			notes = append(notes, strings.ReplaceAll(r.Name, "_", " "))
		}
	}
	if len(notes) > 0 {
		desc += ", " + strings.Join(notes, ", ")
	}
	return desc
}

// ExampleValue implements envproof.Field.
func (s StringSchema) ExampleValue() string {
	if s.meta.Example != "" {
		return s.meta.Example
	}
	return "your_value_here"
}

// WithOptional implements envproof.Field.
func (s StringSchema) WithOptional(optional bool) envproof.Field {
	s.base = s.base.withOptional(optional)
	return s
}

// Optional marks absent/empty input as "no value" rather than an error.
func (s StringSchema) Optional() StringSchema {
	s.base = s.base.withOptional(true)
	return s
}

// Default resolves absent/empty input to v instead of erroring.
func (s StringSchema) Default(v string) StringSchema {
	s.base = s.base.withDefault(v)
	return s
}

// Secret redacts the value in every error and generated example.
func (s StringSchema) Secret() StringSchema {
	s.base = s.base.withSecret()
	return s
}

// Describe attaches a human-readable description.
func (s StringSchema) Describe(d string) StringSchema {
	s.base = s.base.withDescription(d)
	return s
}

// Example attaches an explicit example value.
func (s StringSchema) Example(e string) StringSchema {
	s.base = s.base.withExample(e)
	return s
}

// MinLength requires at least n characters.
func (s StringSchema) MinLength(n int) StringSchema {
	s.base = s.withRule("min_length",
		fmt.Sprintf("must be at least %d characters long", n),
		func(v any) bool { str, _ := v.(string); return len(str) >= n })
	return s
}

// MaxLength requires at most n characters.
func (s StringSchema) MaxLength(n int) StringSchema {
	s.base = s.withRule("max_length",
		fmt.Sprintf("must be at most %d characters long", n),
		func(v any) bool { str, _ := v.(string); return len(str) <= n })
	return s
}

// Length requires exactly n characters.
func (s StringSchema) Length(n int) StringSchema {
	s.base = s.withRule("length",
		fmt.Sprintf("must be exactly %d characters long", n),
		func(v any) bool { str, _ := v.(string); return len(str) == n })
	return s
}

// Pattern requires the whole value to match the expression. An uncompilable
// expression panics at construction.
func (s StringSchema) Pattern(expr string) StringSchema {
	re := regexp.MustCompile(`^(?:` + expr + `)$`)
	s.base = s.withRule("pattern",
		fmt.Sprintf("must match pattern %q", expr),
		func(v any) bool { str, _ := v.(string); return re.MatchString(str) })
	return s
}

// NonEmpty requires a non-whitespace value. Distinct from the engine-level
// emptiness check: this rejects whitespace-only input too.
func (s StringSchema) NonEmpty() StringSchema {
	s.base = s.withRule("non_empty",
		"must not be empty or whitespace-only",
		func(v any) bool { str, _ := v.(string); return strings.TrimSpace(str) != "" })
	return s
}

// StartsWith requires the given prefix.
func (s StringSchema) StartsWith(prefix string) StringSchema {
	s.base = s.withRule("starts_with",
		fmt.Sprintf("must start with %q", prefix),
		func(v any) bool { str, _ := v.(string); return strings.HasPrefix(str, prefix) })
	return s
}

// EndsWith requires the given suffix.
func (s StringSchema) EndsWith(suffix string) StringSchema {
	s.base = s.withRule("ends_with",
		fmt.Sprintf("must end with %q", suffix),
		func(v any) bool { str, _ := v.(string); return strings.HasSuffix(str, suffix) })
	return s
}

// Email requires a simple local@domain.tld shape.
func (s StringSchema) Email() StringSchema {
	s.base = s.withRule("email",
		"must be a valid email address",
		func(v any) bool { str, _ := v.(string); return emailPattern.MatchString(str) })
	return s
}

// UUID requires the canonical 8-4-4-4-12 hex format, case-insensitive.
func (s StringSchema) UUID() StringSchema {
	s.base = s.withRule("uuid",
		"must be a valid UUID (8-4-4-4-12 hex format)",
		func(v any) bool {
			str, _ := v.(string)
			if len(str) != 36 {
				return false
			}
			_, err := uuid.Parse(str)
			return err == nil
		})
	return s
}

// IP requires a valid IP address of the given version. IPv4 validation
// rejects octets above 255 and non-canonical leading-zero forms and requires
// exactly four dot-separated parts; IPv6 accepts full and ::-compressed
// forms.
func (s StringSchema) IP(version IPVersion) StringSchema {
	s.base = s.withRule("ip",
		fmt.Sprintf("must be a valid IP address (%s)", version),
		func(v any) bool {
			str, _ := v.(string)
			addr, err := netip.ParseAddr(str)
			if err != nil {
				return false
			}
			switch version {
			case IPv4:
				return addr.Is4()
			case IPv6:
				return addr.Is6()
			default:
				return true
			}
		})
	return s
}

// Refine attaches an arbitrary predicate with a custom message.
func (s StringSchema) Refine(message string, check func(v string) bool) StringSchema {
	s.base = s.withRule("refine", message,
		func(v any) bool { str, _ := v.(string); return check(str) })
	return s
}
