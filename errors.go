package envproof

import (
	"errors"
	"fmt"
	"strings"
)

// Validation reasons (exported consts for IDE completion and type safety by
// convention).
const (
	ReasonMissing      = "missing"       // required variable absent from the source
	ReasonEmpty        = "empty"         // present but empty string
	ReasonInvalidType  = "invalid_type"  // coercion/parse failure
	ReasonInvalidValue = "invalid_value" // coercion succeeded, a refinement rule rejected the value
	ReasonParseError   = "parse_error"   // reserved for collaborators needing finer granularity
	ReasonUnknown      = "unknown"       // strict mode: source key not declared in the schema
	ReasonCrossField   = "cross_field"   // post-validation multi-field rule failure
)

// Redacted replaces received/example values of secret fields in every error.
const Redacted = "[REDACTED]"

// ValidationError represents a single validation entry.
type ValidationError struct {
	Variable string `json:"variable"`           // Variable name, post prefix-stripping.
	Reason   string `json:"reason"`             // One of the reasons listed above.
	Message  string `json:"message"`            // Human-readable description.
	Expected string `json:"expected,omitempty"` // Type/constraint summary.
	Received string `json:"received,omitempty"` // Raw value; Redacted when the field is secret.
	Example  string `json:"example,omitempty"`  // Example value; Redacted when the field is secret.
	Secret   bool   `json:"secret"`             // Copied from the field's metadata.
}

// ValidationErrors is a collection of validation entries that implements
// error.
type ValidationErrors []ValidationError

// Error summarizes the first few entries.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(ve)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := ve[i]
		fmt.Fprintf(b, "%s: %s", it.Variable, it.Reason)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Render produces the full multi-line human-readable report.
func (ve ValidationErrors) Render() string {
	if len(ve) == 0 {
		return ""
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "environment validation failed (%d error", len(ve))
	if len(ve) > 1 {
		b.WriteString("s")
	}
	b.WriteString("):")
	for _, e := range ve {
		fmt.Fprintf(b, "\n  - %s: %s", e.Variable, e.Message)
		var extra []string
		if e.Received != "" {
			extra = append(extra, fmt.Sprintf("received %q", e.Received))
		}
		if e.Expected != "" {
			extra = append(extra, "expected "+e.Expected)
		}
		if len(extra) > 0 {
			fmt.Fprintf(b, " (%s)", strings.Join(extra, ", "))
		}
	}
	return b.String()
}

// Filter returns the entries for the given variable name.
func (ve ValidationErrors) Filter(variable string) ValidationErrors {
	var out ValidationErrors
	for _, e := range ve {
		if e.Variable == variable {
			out = append(out, e)
		}
	}
	return out
}

// Has reports whether there is at least one entry for the given variable.
func (ve ValidationErrors) Has(variable string) bool {
	return len(ve.Filter(variable)) > 0
}

// Error is the failure returned by Env: it carries the structured entry list
// together with a pre-rendered message so both machine-readable and
// terminal-friendly consumers are served by one call.
type Error struct {
	Errors ValidationErrors
}

func (e *Error) Error() string { return e.Errors.Render() }

// AsValidationErrors extracts ValidationErrors from an error using errors.As
// internally. It unwraps both a raw ValidationErrors value and an *Error.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	if err == nil {
		return nil, false
	}
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Errors, true
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// fieldError assembles a ValidationError for a schema field, applying secret
// redaction to the received and example values.
func fieldError(variable, reason, message, received string, f Field) ValidationError {
	e := ValidationError{
		Variable: variable,
		Reason:   reason,
		Message:  message,
		Expected: f.TypeDescription(),
		Received: received,
		Example:  f.ExampleValue(),
		Secret:   f.Meta().Secret,
	}
	if e.Secret {
		if e.Received != "" {
			e.Received = Redacted
		}
		if e.Example != "" {
			e.Example = Redacted
		}
	}
	return e
}
