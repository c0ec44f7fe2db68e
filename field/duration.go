package field

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jayantpathariya/envproof"
)

// durationPattern captures "<number>" or "<number><unit>" with optional
// whitespace between them.
var durationPattern = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d+)?|\.\d+))\s*([a-z]*)$`)

// unitMillis maps unit aliases to their length in milliseconds. A bare
// number is interpreted as milliseconds.
var unitMillis = map[string]float64{
	"":        1,
	"ms":      1,
	"s":       1000,
	"sec":     1000,
	"second":  1000,
	"seconds": 1000,
	"m":       60 * 1000,
	"min":     60 * 1000,
	"minute":  60 * 1000,
	"minutes": 60 * 1000,
	"h":       60 * 60 * 1000,
	"hr":      60 * 60 * 1000,
	"hour":    60 * 60 * 1000,
	"hours":   60 * 60 * 1000,
	"d":       24 * 60 * 60 * 1000,
	"day":     24 * 60 * 60 * 1000,
	"days":    24 * 60 * 60 * 1000,
	"w":       7 * 24 * 60 * 60 * 1000,
	"week":    7 * 24 * 60 * 60 * 1000,
	"weeks":   7 * 24 * 60 * 60 * 1000,
}

// parseDuration resolves a duration string ("500ms", "1.5s", "2w", or a bare
// millisecond count) to a time.Duration. Unknown units and negative results
// fail.
func parseDuration(raw string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if m == nil {
		return 0, errors.New("must be a duration like 500ms, 30s, 5m, 1h, 2d or 1w")
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, errors.New("must be a duration like 500ms, 30s, 5m, 1h, 2d or 1w")
	}
	unit, ok := unitMillis[m[2]]
	if !ok {
		return 0, fmt.Errorf("unknown duration unit %q", m[2])
	}
	millis := value * unit
	if millis < 0 {
		return 0, errors.New("must not be negative")
	}
	return time.Duration(millis * float64(time.Millisecond)), nil
}

// DurationSchema validates durations given either as "<number><unit>"
// (case-insensitive, decimals allowed) or as a bare millisecond count. The
// typed value is a time.Duration.
type DurationSchema struct {
	base
}

// Duration returns a new duration schema.
func Duration() DurationSchema { return DurationSchema{} }

// Kind implements envproof.Field.
func (d DurationSchema) Kind() envproof.Kind { return envproof.KindDuration }

// Coerce implements envproof.Field.
func (d DurationSchema) Coerce(raw string) (any, error) {
	dur, err := parseDuration(raw)
	if err != nil {
		return nil, err
	}
	return dur, nil
}

// TypeDescription implements envproof.Field.
func (d DurationSchema) TypeDescription() string {
	return "duration (e.g. 500ms, 30s, 5m, 1h)"
}

// ExampleValue implements envproof.Field.
func (d DurationSchema) ExampleValue() string {
	if d.meta.Example != "" {
		return d.meta.Example
	}
	return "30s"
}

// WithOptional implements envproof.Field.
func (d DurationSchema) WithOptional(optional bool) envproof.Field {
	d.base = d.base.withOptional(optional)
	return d
}

// Optional marks absent/empty input as "no value" rather than an error.
func (d DurationSchema) Optional() DurationSchema {
	d.base = d.base.withOptional(true)
	return d
}

// Default resolves absent/empty input to the parsed duration. The default
// goes through the same parser as runtime input ("24h" and "86400000" are
// both accepted); an unparsable default is a programmer error and panics.
func (d DurationSchema) Default(raw string) DurationSchema {
	dur, err := parseDuration(raw)
	if err != nil {
		panic(fmt.Sprintf("envproof/field: duration default %q: %v", raw, err))
	}
	d.base = d.base.withDefault(dur)
	return d
}

// Secret redacts the value in every error and generated example.
func (d DurationSchema) Secret() DurationSchema {
	d.base = d.base.withSecret()
	return d
}

// Describe attaches a human-readable description.
func (d DurationSchema) Describe(desc string) DurationSchema {
	d.base = d.base.withDescription(desc)
	return d
}

// Example attaches an explicit example value.
func (d DurationSchema) Example(e string) DurationSchema {
	d.base = d.base.withExample(e)
	return d
}

// Min requires the resolved duration to be at least the given limit, itself
// a duration string or a bare millisecond count. An unparsable limit panics.
func (d DurationSchema) Min(limit string) DurationSchema {
	min, err := parseDuration(limit)
	if err != nil {
		panic(fmt.Sprintf("envproof/field: duration min %q: %v", limit, err))
	}
	d.base = d.withRule("min",
		fmt.Sprintf("must be at least %s", limit),
		func(v any) bool { dur, _ := v.(time.Duration); return dur >= min })
	return d
}

// Max requires the resolved duration to be at most the given limit, itself a
// duration string or a bare millisecond count. An unparsable limit panics.
func (d DurationSchema) Max(limit string) DurationSchema {
	max, err := parseDuration(limit)
	if err != nil {
		panic(fmt.Sprintf("envproof/field: duration max %q: %v", limit, err))
	}
	d.base = d.withRule("max",
		fmt.Sprintf("must be at most %s", limit),
		func(v any) bool { dur, _ := v.(time.Duration); return dur <= max })
	return d
}
