package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envproof "github.com/jayantpathariya/envproof"
	"github.com/jayantpathariya/envproof/field"
)

func TestStringCoerceIsIdentity(t *testing.T) {
	f := field.String()
	for _, raw := range []string{"hello", "  padded  ", "", "日本語"} {
		v, err := f.Coerce(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, v)
	}
	assert.Equal(t, envproof.KindString, f.Kind())
}

func TestStringLengthRules(t *testing.T) {
	tests := []struct {
		name      string
		schema    field.StringSchema
		raw       string
		wantError string
	}{
		{"min ok", field.String().MinLength(3), "abc", ""},
		{"min fail", field.String().MinLength(3), "ab", "must be at least 3 characters long"},
		{"max ok", field.String().MaxLength(3), "abc", ""},
		{"max fail", field.String().MaxLength(3), "abcd", "must be at most 3 characters long"},
		{"exact ok", field.String().Length(4), "abcd", ""},
		{"exact fail", field.String().Length(4), "abc", "must be exactly 4 characters long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conform(tt.schema, tt.raw)
			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantError)
			}
		})
	}
}

func TestStringPattern(t *testing.T) {
	f := field.String().Pattern(`[a-z]+-\d+`)

	_, err := conform(f, "region-12")
	assert.NoError(t, err)

	// The expression is anchored: a partial match is not enough.
	_, err = conform(f, "xregion-12x")
	assert.Error(t, err)

	assert.Panics(t, func() { field.String().Pattern(`(`) })
}

func TestStringNonEmpty(t *testing.T) {
	f := field.String().NonEmpty()

	_, err := conform(f, "x")
	assert.NoError(t, err)
	_, err = conform(f, "   ")
	assert.EqualError(t, err, "must not be empty or whitespace-only")
}

func TestStringAffixes(t *testing.T) {
	_, err := conform(field.String().StartsWith("sk_"), "sk_live_1")
	assert.NoError(t, err)
	_, err = conform(field.String().StartsWith("sk_"), "pk_live_1")
	assert.Error(t, err)

	_, err = conform(field.String().EndsWith(".pem"), "cert.pem")
	assert.NoError(t, err)
	_, err = conform(field.String().EndsWith(".pem"), "cert.key")
	assert.Error(t, err)
}

func TestStringEmail(t *testing.T) {
	f := field.String().Email()
	tests := []struct {
		raw   string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"no-at-sign.example.com", false},
		{"user@nodot", false},
		{"spaced user@example.com", false},
		{"@example.com", false},
	}
	for _, tt := range tests {
		_, err := conform(f, tt.raw)
		if tt.valid {
			assert.NoError(t, err, tt.raw)
		} else {
			assert.Error(t, err, tt.raw)
		}
	}
}

func TestStringUUID(t *testing.T) {
	f := field.String().UUID()
	tests := []struct {
		raw   string
		valid bool
	}{
		{"123e4567-e89b-12d3-a456-426614174000", true},
		{"123E4567-E89B-12D3-A456-426614174000", true},
		{"123e4567e89b12d3a456426614174000", false}, // canonical form only
		{"123e4567-e89b-12d3-a456-42661417400", false},
		{"not-a-uuid", false},
	}
	for _, tt := range tests {
		_, err := conform(f, tt.raw)
		if tt.valid {
			assert.NoError(t, err, tt.raw)
		} else {
			assert.Error(t, err, tt.raw)
		}
	}
}

func TestStringIP(t *testing.T) {
	tests := []struct {
		version field.IPVersion
		raw     string
		valid   bool
	}{
		{field.IPv4, "192.168.1.1", true},
		{field.IPv4, "0.0.0.0", true},
		{field.IPv4, "256.1.1.1", false},
		{field.IPv4, "192.168.1", false},
		{field.IPv4, "192.168.001.1", false},
		{field.IPv4, "::1", false},
		{field.IPv6, "::1", true},
		{field.IPv6, "2001:db8::8a2e:370:7334", true},
		{field.IPv6, "192.168.1.1", false},
		{field.IPAny, "192.168.1.1", true},
		{field.IPAny, "::1", true},
		{field.IPAny, "nope", false},
	}
	for _, tt := range tests {
		_, err := conform(field.String().IP(tt.version), tt.raw)
		if tt.valid {
			assert.NoError(t, err, "%s %s", tt.version, tt.raw)
		} else {
			assert.Error(t, err, "%s %s", tt.version, tt.raw)
		}
	}
}

func TestStringRefine(t *testing.T) {
	f := field.String().Refine("must be lowercase", func(v string) bool {
		return v == "" || v == "abc"
	})
	_, err := conform(f, "abc")
	assert.NoError(t, err)
	_, err = conform(f, "ABC")
	assert.EqualError(t, err, "must be lowercase")
}

func TestStringExampleValue(t *testing.T) {
	assert.Equal(t, "your_value_here", field.String().ExampleValue())
	assert.Equal(t, "orders-api", field.String().Example("orders-api").ExampleValue())
}
