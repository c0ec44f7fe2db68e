package envproof

import (
	"fmt"
	"os"

	"github.com/jayantpathariya/envproof/dotenv"
)

// Environment names recognized by the conditional schema rules. "dev" is
// accepted as a shorthand for development.
const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)

// CrossIssue is one failure reported by a cross-field validation hook.
// Variable defaults to "_schema" when left empty.
type CrossIssue struct {
	Variable string
	Message  string
}

// CrossValidateFunc inspects the fully resolved data after per-field
// validation succeeded and may report issues spanning multiple fields.
type CrossValidateFunc func(data *Data) []CrossIssue

// ReporterFunc renders a validation error list for terminal output.
// report.Pretty, report.JSON and report.Minimal satisfy this signature.
type ReporterFunc func(errs ValidationErrors) string

// EnvOptions configures the Env / ValidateEnv / EnvOrExit entry points.
type EnvOptions struct {
	// Source overrides the raw input; defaults to a snapshot of the live
	// process environment.
	Source Source

	// DotenvFiles are layered underneath the source, later files
	// overriding earlier ones. Explicit source values always win over
	// file-derived ones. Missing files are skipped.
	DotenvFiles []string

	// ExpandVars performs ${VAR} expansion on file-derived values against
	// the merged context before the overlay is applied.
	ExpandVars bool

	// Engine options (see Options).
	Prefix       string
	StripPrefix  bool
	Strict       bool
	StrictIgnore []string

	// Environment enables the conditional schema rules below.
	Environment string

	// RequireInProduction lists optional fields that become required when
	// Environment is "production". Defaulted fields are never forced
	// required.
	RequireInProduction []string

	// OptionalInDevelopment lists fields that become optional when
	// Environment is "development" (or "dev").
	OptionalInDevelopment []string

	// CrossValidate runs after per-field validation succeeds; any issue it
	// reports downgrades the overall result to failure.
	CrossValidate CrossValidateFunc

	// Reporter renders errors for EnvOrExit; defaults to
	// ValidationErrors.Render.
	Reporter ReporterFunc

	// ExitCode is the process exit code used by EnvOrExit on failure;
	// defaults to 1.
	ExitCode int
}

// Env resolves the source, applies environment-conditional schema rules,
// validates, and runs cross-field checks. On success it returns the
// immutable data; on validation failure it returns an *Error carrying both
// the structured error list and a pre-rendered message.
func Env(schema Schema, opts EnvOptions) (*Data, error) {
	res, err := run(schema, opts)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, &Error{Errors: res.Errors}
	}
	return res.Data, nil
}

// MustEnv is Env but panics on any failure. Intended for program startup
// where invalid configuration is fatal.
func MustEnv(schema Schema, opts EnvOptions) *Data {
	data, err := Env(schema, opts)
	if err != nil {
		panic("envproof: " + err.Error())
	}
	return data
}

// ValidateEnv is the non-raising variant: it always returns a Result and
// lets the caller decide what to do with the itemized errors. Source
// resolution failures (an unreadable dotenv file) surface as the returned
// error.
func ValidateEnv(schema Schema, opts EnvOptions) (Result, error) {
	return run(schema, opts)
}

// EnvOrExit renders any failure through the configured reporter to stderr
// and terminates the process with the configured exit code (default 1).
func EnvOrExit(schema Schema, opts EnvOptions) *Data {
	res, err := run(schema, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "envproof: "+err.Error())
		os.Exit(exitCode(opts))
	}
	if !res.Success {
		render := opts.Reporter
		if render == nil {
			render = ValidationErrors.Render
		}
		fmt.Fprintln(os.Stderr, render(res.Errors))
		os.Exit(exitCode(opts))
	}
	return res.Data
}

func exitCode(opts EnvOptions) int {
	if opts.ExitCode != 0 {
		return opts.ExitCode
	}
	return 1
}

func run(schema Schema, opts EnvOptions) (Result, error) {
	source, err := resolveSource(opts)
	if err != nil {
		return Result{}, err
	}

	effective := applyEnvironmentRules(schema, opts)

	res := Validate(effective, source, Options{
		Prefix:       opts.Prefix,
		StripPrefix:  opts.StripPrefix,
		Strict:       opts.Strict,
		StrictIgnore: opts.StrictIgnore,
	})

	if res.Success && opts.CrossValidate != nil {
		if issues := opts.CrossValidate(res.Data); len(issues) > 0 {
			errs := make(ValidationErrors, 0, len(issues))
			for _, is := range issues {
				variable := is.Variable
				if variable == "" {
					variable = "_schema"
				}
				errs = append(errs, ValidationError{
					Variable: variable,
					Reason:   ReasonCrossField,
					Message:  is.Message,
				})
			}
			res = Result{Success: false, Errors: errs}
		}
	}

	return res, nil
}

// resolveSource builds the effective source: the explicit source (or a live
// environment snapshot) layered over dotenv-file values.
func resolveSource(opts EnvOptions) (Source, error) {
	overlay := opts.Source
	if overlay == nil {
		overlay = Environ()
	}
	if len(opts.DotenvFiles) == 0 {
		return overlay, nil
	}
	fileVars, err := dotenv.Load(opts.DotenvFiles...)
	if err != nil {
		return nil, fmt.Errorf("envproof: loading dotenv files: %w", err)
	}
	if opts.ExpandVars {
		fileVars = dotenv.Expand(fileVars, overlay.Lookup)
	}
	return layeredSource{overlay: overlay, under: SourceMap(fileVars)}, nil
}

// applyEnvironmentRules clones the schema and flips optionality according to
// the environment-conditional lists. The caller's schema is never mutated.
func applyEnvironmentRules(schema Schema, opts EnvOptions) Schema {
	env := opts.Environment
	if env == "dev" {
		env = EnvironmentDevelopment
	}
	switch env {
	case EnvironmentProduction:
		if len(opts.RequireInProduction) == 0 {
			return schema
		}
		out := schema.Clone()
		for _, name := range opts.RequireInProduction {
			f, ok := out[name]
			if !ok || !f.IsOptional() {
				continue
			}
			if _, hasDefault := f.DefaultValue(); hasDefault {
				continue
			}
			out[name] = f.WithOptional(false)
		}
		return out
	case EnvironmentDevelopment:
		if len(opts.OptionalInDevelopment) == 0 {
			return schema
		}
		out := schema.Clone()
		for _, name := range opts.OptionalInDevelopment {
			if f, ok := out[name]; ok {
				out[name] = f.WithOptional(true)
			}
		}
		return out
	default:
		return schema
	}
}
