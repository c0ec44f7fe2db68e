// Package field provides the schema variants for envproof: string, number,
// boolean, enum, URL, JSON, array, duration, and path fields with chainable
// refinements.
//
// Every builder method is a pure copy-on-write transform: it returns a new
// schema value derived from the receiver and never mutates a shared
// instance, so consumers may hold references to pre-modification schemas and
// expect them to remain unchanged. Chains compose, e.g.
// field.String().Secret().MinLength(3) carries both the secret flag and the
// length rule.
//
// Misuse at construction time (an enum with zero allowed values, an
// uncompilable pattern, an unparsable default) is a programmer error and
// panics immediately; malformed runtime input never does.
package field

import (
	"github.com/jayantpathariya/envproof"
)

// base carries the attributes shared by every variant: optionality, default,
// metadata, and the ordered refinement rules.
type base struct {
	optional bool
	def      any
	hasDef   bool
	meta     envproof.Metadata
	rules    []envproof.Rule
}

// withRule appends a rule without sharing the backing array with the
// receiver, keeping copy-on-write semantics intact.
func (b base) withRule(name, message string, check func(v any) bool) base {
	rules := make([]envproof.Rule, len(b.rules), len(b.rules)+1)
	copy(rules, b.rules)
	b.rules = append(rules, envproof.Rule{Name: name, Message: message, Check: check})
	return b
}

func (b base) withOptional(on bool) base {
	b.optional = on
	return b
}

func (b base) withDefault(v any) base {
	b.def = v
	b.hasDef = true
	return b
}

func (b base) withSecret() base {
	b.meta.Secret = true
	return b
}

func (b base) withDescription(d string) base {
	b.meta.Description = d
	return b
}

func (b base) withExample(e string) base {
	b.meta.Example = e
	return b
}

// IsOptional implements envproof.Field.
func (b base) IsOptional() bool { return b.optional }

// DefaultValue implements envproof.Field.
func (b base) DefaultValue() (any, bool) {
	if !b.hasDef {
		return nil, false
	}
	return b.def, true
}

// Meta implements envproof.Field.
func (b base) Meta() envproof.Metadata { return b.meta }

// Rules implements envproof.Field. The returned slice is a copy.
func (b base) Rules() []envproof.Rule {
	out := make([]envproof.Rule, len(b.rules))
	copy(out, b.rules)
	return out
}
