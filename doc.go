// Package envproof validates named string inputs (environment variables)
// against a declarative schema and produces either a fully-typed, immutable
// result or a structured set of errors.
//
//   - Composable field schemas (string, number, bool, enum, url, json, array,
//     duration, path) with chainable refinements live under field/.
//   - A stable error model via ValidationErrors (variable, reason, message,
//     expected/received/example, secret redaction).
//   - A pure validation engine: per-field resolution with default/optional
//     semantics, prefix filtering, strict unknown-key detection, and full
//     error aggregation.
//   - Entry points Env / MustEnv / ValidateEnv / EnvOrExit layering dotenv
//     files under the live environment, applying environment-conditional
//     schema rules and cross-field validation.
//
// Design policy:
//   - Keep only public APIs in the root package; builders under field/,
//     input collaborators under dotenv/, reporters under report/, and the
//     CLI under cmd/envproof.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := envproof.Schema{
//		"PORT":         field.Number().Port().Default(3000),
//		"DATABASE_URL": field.URL().Protocols("postgres"),
//		"API_KEY":      field.String().MinLength(32).Secret(),
//	}
//	data, err := envproof.Env(schema, envproof.EnvOptions{})
package envproof
