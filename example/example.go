// Package example generates .env.example documentation files from a schema.
// It consumes only the per-field metadata the core exposes (description,
// example, secret, default); secret values are never written out.
package example

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	envproof "github.com/jayantpathariya/envproof"
)

// Generate renders one KEY=value block per schema field, sorted by name,
// with the description and type summary as comments. Defaults take priority
// over examples as the suggested value; secret fields are left blank.
func Generate(schema envproof.Schema) string {
	var b strings.Builder
	b.WriteString("# Generated by envproof. Fill in the blanks and rename to .env\n")
	for _, name := range schema.Names() {
		f := schema[name]
		meta := f.Meta()
		b.WriteString("\n")
		if meta.Description != "" {
			fmt.Fprintf(&b, "# %s\n", meta.Description)
		}
		summary := f.TypeDescription()
		if f.IsOptional() {
			summary += " (optional)"
		}
		if meta.Secret {
			summary += " (secret)"
		}
		fmt.Fprintf(&b, "# %s\n", summary)
		fmt.Fprintf(&b, "%s=%s\n", name, suggestedValue(f))
	}
	return b.String()
}

func suggestedValue(f envproof.Field) string {
	if f.Meta().Secret {
		return ""
	}
	if def, ok := f.DefaultValue(); ok {
		return formatValue(def)
	}
	return f.ExampleValue()
}

// formatValue renders a resolved default back into its raw string form.
func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Duration:
		return formatDuration(t)
	case *url.URL:
		return t.String()
	case []any:
		parts := make([]string, 0, len(t))
		for _, it := range t {
			parts = append(parts, formatValue(it))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatDuration prefers the largest whole unit from the schema's own unit
// table so generated files read like the values users write.
func formatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	units := []struct {
		suffix string
		ms     int64
	}{
		{"w", 7 * 24 * 60 * 60 * 1000},
		{"d", 24 * 60 * 60 * 1000},
		{"h", 60 * 60 * 1000},
		{"m", 60 * 1000},
		{"s", 1000},
	}
	for _, u := range units {
		if ms > 0 && ms%u.ms == 0 {
			return strconv.FormatInt(ms/u.ms, 10) + u.suffix
		}
	}
	return strconv.FormatInt(ms, 10) + "ms"
}
