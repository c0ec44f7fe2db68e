package envproof

import (
	"fmt"
	"sort"
)

// Options configures a single validation run.
type Options struct {
	// Prefix is prepended to every schema key when looking up the source.
	Prefix string

	// StripPrefix names result keys (and error variables) by the bare
	// schema key instead of the full lookup key. Only meaningful together
	// with Prefix.
	StripPrefix bool

	// Strict rejects source keys that no schema field consumed.
	Strict bool

	// StrictIgnore lists source keys exempt from Strict.
	StrictIgnore []string
}

// Result is the outcome of a validation run. On success Data holds the
// resolved typed value for every schema field; on failure Errors holds every
// detected error, not just the first.
type Result struct {
	Success bool
	Data    *Data
	Errors  ValidationErrors
}

// Validate checks every schema field against the source and aggregates all
// failures. It is a pure function of schema, source, and options: fields are
// resolved independently, the engine never short-circuits across fields
// (only within a single field's rule chain), and error ordering follows
// sorted schema key order.
func Validate(schema Schema, source Source, opts Options) Result {
	values := make(map[string]any, len(schema))
	var errs ValidationErrors
	consumed := make(map[string]struct{}, len(schema))

	for _, name := range schema.Names() {
		f := schema[name]
		lookupKey := opts.Prefix + name
		consumed[lookupKey] = struct{}{}

		outKey := lookupKey
		if opts.StripPrefix && opts.Prefix != "" {
			outKey = name
		}

		raw, present := source.Lookup(lookupKey)
		if !present || raw == "" {
			if def, ok := f.DefaultValue(); ok {
				values[outKey] = def
				continue
			}
			if f.IsOptional() {
				values[outKey] = nil
				continue
			}
			if present {
				errs = append(errs, fieldError(outKey, ReasonEmpty,
					"required variable is set but empty", "", f))
			} else {
				errs = append(errs, fieldError(outKey, ReasonMissing,
					"required variable is missing", "", f))
			}
			continue
		}

		v, err := f.Coerce(raw)
		if err != nil {
			errs = append(errs, fieldError(outKey, ReasonInvalidType, err.Error(), raw, f))
			continue
		}

		if rule, ok := firstFailingRule(f, v); ok {
			errs = append(errs, fieldError(outKey, ReasonInvalidValue, rule.Message, raw, f))
			continue
		}

		values[outKey] = v
	}

	if opts.Strict {
		errs = append(errs, unknownKeyErrors(source, consumed, opts.StrictIgnore)...)
	}

	if len(errs) > 0 {
		return Result{Success: false, Errors: errs}
	}
	return Result{Success: true, Data: newData(values), Errors: ValidationErrors{}}
}

func firstFailingRule(f Field, v any) (Rule, bool) {
	for _, rule := range f.Rules() {
		if !rule.Check(v) {
			return rule, true
		}
	}
	return Rule{}, false
}

func unknownKeyErrors(source Source, consumed map[string]struct{}, ignore []string) ValidationErrors {
	skip := make(map[string]struct{}, len(ignore))
	for _, k := range ignore {
		skip[k] = struct{}{}
	}
	keys := source.Keys()
	sort.Strings(keys)
	var errs ValidationErrors
	for _, k := range keys {
		if _, ok := consumed[k]; ok {
			continue
		}
		if _, ok := skip[k]; ok {
			continue
		}
		errs = append(errs, ValidationError{
			Variable: k,
			Reason:   ReasonUnknown,
			Message:  fmt.Sprintf("unknown variable %q is not declared in the schema", k),
		})
	}
	return errs
}
