// Package report renders validation error lists for terminal and machine
// consumers. Reporters are pure functions over envproof.ValidationErrors:
// they never need access to the schema, and secret values arrive already
// redacted.
package report

import (
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/pterm/pterm"

	envproof "github.com/jayantpathariya/envproof"
)

// Format names the built-in reporters.
type Format string

const (
	FormatPretty  Format = "pretty"
	FormatJSON    Format = "json"
	FormatMinimal Format = "minimal"
)

// Render dispatches to the named reporter; unknown formats fall back to
// pretty.
func Render(format Format, errs envproof.ValidationErrors) string {
	switch format {
	case FormatJSON:
		return JSON(errs)
	case FormatMinimal:
		return Minimal(errs)
	default:
		return Pretty(errs)
	}
}

// Pretty renders a colored, boxed report for interactive terminals.
func Pretty(errs envproof.ValidationErrors) string {
	if len(errs) == 0 {
		return pterm.Green("✓ environment is valid")
	}
	plural := ""
	if len(errs) > 1 {
		plural = "s"
	}
	var b strings.Builder
	b.WriteString(pterm.Red(fmt.Sprintf("✗ %d invalid environment variable%s", len(errs), plural)))
	items := make([]pterm.BulletListItem, 0, len(errs))
	for _, e := range errs {
		text := pterm.Bold.Sprint(e.Variable) + ": " + e.Message
		var detail []string
		if e.Received != "" {
			detail = append(detail, fmt.Sprintf("received %q", e.Received))
		}
		if e.Expected != "" {
			detail = append(detail, "expected "+e.Expected)
		}
		if e.Example != "" {
			detail = append(detail, "example: "+e.Example)
		}
		if len(detail) > 0 {
			text += pterm.Gray(" (" + strings.Join(detail, ", ") + ")")
		}
		items = append(items, pterm.BulletListItem{Level: 0, Text: text})
	}
	list, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		// Srender only fails on writer issues; fall back to the plain form.
		return errs.Render()
	}
	b.WriteString("\n")
	b.WriteString(list)
	return strings.TrimRight(b.String(), "\n")
}

// jsonReport is the stable machine-readable shape.
type jsonReport struct {
	Success bool                       `json:"success"`
	Errors  []envproof.ValidationError `json:"errors"`
}

// JSON renders the error list as a {success, errors} document.
func JSON(errs envproof.ValidationErrors) string {
	doc := jsonReport{Success: len(errs) == 0, Errors: errs}
	if doc.Errors == nil {
		doc.Errors = []envproof.ValidationError{}
	}
	out, err := gojson.MarshalIndent(doc, "", "  ")
	if err != nil {
		return `{"success":false,"errors":[]}`
	}
	return string(out)
}

// Minimal renders one "VARIABLE: message" line per error.
func Minimal(errs envproof.ValidationErrors) string {
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, e.Variable+": "+e.Message)
	}
	return strings.Join(lines, "\n")
}
