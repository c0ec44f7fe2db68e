package field_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayantpathariya/envproof/field"
)

func TestDurationCoerce(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"500", 500 * time.Millisecond}, // bare number is milliseconds
		{"500ms", 500 * time.Millisecond},
		{"30s", 30 * time.Second},
		{"30 s", 30 * time.Second},
		{"1.5s", 1500 * time.Millisecond},
		{".5s", 500 * time.Millisecond},
		{"5m", 5 * time.Minute},
		{"2min", 2 * time.Minute},
		{"1h", time.Hour},
		{"1HR", time.Hour}, // units are case-insensitive
		{"2d", 48 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"3 weeks", 3 * 7 * 24 * time.Hour},
		{"0", 0},
	}
	for _, tt := range tests {
		v, err := field.Duration().Coerce(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, v, tt.raw)
	}
}

func TestDurationCoerceRejects(t *testing.T) {
	for _, raw := range []string{"", "fast", "10 parsecs", "1h30m", "-5s", "-100", "ms"} {
		_, err := field.Duration().Coerce(raw)
		assert.Error(t, err, raw)
	}
}

func TestDurationBounds(t *testing.T) {
	f := field.Duration().Min("1s").Max("1m")

	_, err := conform(f, "1s")
	assert.NoError(t, err)
	_, err = conform(f, "60000")
	assert.NoError(t, err)
	_, err = conform(f, "999ms")
	assert.EqualError(t, err, "must be at least 1s")
	_, err = conform(f, "61s")
	assert.EqualError(t, err, "must be at most 1m")

	assert.Panics(t, func() { field.Duration().Min("soon") })
	assert.Panics(t, func() { field.Duration().Max("later") })
}

func TestDurationDefault(t *testing.T) {
	v, ok := field.Duration().Default("24h").DefaultValue()
	require.True(t, ok)
	assert.Equal(t, 24*time.Hour, v)

	// Defaults go through the same parser as runtime input.
	v, ok = field.Duration().Default("86400000").DefaultValue()
	require.True(t, ok)
	assert.Equal(t, 24*time.Hour, v)

	assert.Panics(t, func() { field.Duration().Default("whenever") })
}
