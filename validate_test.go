package envproof_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envproof "github.com/jayantpathariya/envproof"
	"github.com/jayantpathariya/envproof/field"
)

func TestValidateResolvesTypedValues(t *testing.T) {
	schema := envproof.Schema{
		"PORT":  field.Number().Port(),
		"DEBUG": field.Bool().Default(false),
		"HOSTS": field.Array(field.String()),
	}
	source := envproof.SourceMap{
		"PORT":  "8080",
		"HOSTS": "a.example.com, b.example.com",
	}

	res := envproof.Validate(schema, source, envproof.Options{})
	require.True(t, res.Success)
	require.Empty(t, res.Errors)
	assert.Equal(t, 8080, res.Data.Int("PORT"))
	assert.False(t, res.Data.Bool("DEBUG"))
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, res.Data.Strings("HOSTS"))
}

func TestValidateMissingVersusEmpty(t *testing.T) {
	schema := envproof.Schema{
		"A": field.String(),
		"B": field.String(),
	}
	source := envproof.SourceMap{"B": ""}

	res := envproof.Validate(schema, source, envproof.Options{})
	require.False(t, res.Success)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, envproof.ReasonMissing, res.Errors[0].Reason)
	assert.Equal(t, "A", res.Errors[0].Variable)
	assert.Equal(t, envproof.ReasonEmpty, res.Errors[1].Reason)
	assert.Equal(t, "B", res.Errors[1].Variable)
}

func TestValidateDefaultBeatsOptional(t *testing.T) {
	schema := envproof.Schema{
		"LEVEL": field.Enum("debug", "info", "warn").Optional().Default("info"),
	}

	res := envproof.Validate(schema, envproof.SourceMap{}, envproof.Options{})
	require.True(t, res.Success)
	assert.True(t, res.Data.IsSet("LEVEL"))
	assert.Equal(t, "info", res.Data.String("LEVEL"))

	// Empty input resolves through the same path as an absent one.
	res = envproof.Validate(schema, envproof.SourceMap{"LEVEL": ""}, envproof.Options{})
	require.True(t, res.Success)
	assert.Equal(t, "info", res.Data.String("LEVEL"))
}

func TestValidateOptionalAbsentIsPresentButUnset(t *testing.T) {
	schema := envproof.Schema{
		"SENTRY_DSN": field.URL().Optional(),
	}

	res := envproof.Validate(schema, envproof.SourceMap{}, envproof.Options{})
	require.True(t, res.Success)
	assert.True(t, res.Data.Has("SENTRY_DSN"))
	assert.False(t, res.Data.IsSet("SENTRY_DSN"))
	assert.Nil(t, res.Data.URL("SENTRY_DSN"))
}

func TestValidateCollectsAllErrorsInSortedOrder(t *testing.T) {
	schema := envproof.Schema{
		"Z_PORT": field.Number().Port(),
		"A_URL":  field.URL(),
		"M_FLAG": field.Bool(),
	}
	source := envproof.SourceMap{
		"Z_PORT": "99999",
		"A_URL":  "not a url",
		"M_FLAG": "maybe",
	}

	res := envproof.Validate(schema, source, envproof.Options{})
	require.False(t, res.Success)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, "A_URL", res.Errors[0].Variable)
	assert.Equal(t, "M_FLAG", res.Errors[1].Variable)
	assert.Equal(t, "Z_PORT", res.Errors[2].Variable)
}

func TestValidateReasonDistinguishesCoercionFromRules(t *testing.T) {
	schema := envproof.Schema{"PORT": field.Number().Port()}

	res := envproof.Validate(schema, envproof.SourceMap{"PORT": "abc"}, envproof.Options{})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, envproof.ReasonInvalidType, res.Errors[0].Reason)

	res = envproof.Validate(schema, envproof.SourceMap{"PORT": "70000"}, envproof.Options{})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, envproof.ReasonInvalidValue, res.Errors[0].Reason)
	assert.Equal(t, "70000", res.Errors[0].Received)
}

func TestValidateRuleChainStopsAtFirstFailure(t *testing.T) {
	schema := envproof.Schema{
		"NAME": field.String().MinLength(5).Pattern(`[a-z]+`),
	}

	// "ab" violates both rules; only the first is reported.
	res := envproof.Validate(schema, envproof.SourceMap{"NAME": "ab"}, envproof.Options{})
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "at least 5 characters")
}

func TestValidatePrefix(t *testing.T) {
	schema := envproof.Schema{"PORT": field.Number().Port()}
	source := envproof.SourceMap{"MYAPP_PORT": "8080"}

	res := envproof.Validate(schema, source, envproof.Options{Prefix: "MYAPP_"})
	require.True(t, res.Success)
	assert.True(t, res.Data.Has("MYAPP_PORT"))
	assert.False(t, res.Data.Has("PORT"))

	res = envproof.Validate(schema, source, envproof.Options{Prefix: "MYAPP_", StripPrefix: true})
	require.True(t, res.Success)
	assert.True(t, res.Data.Has("PORT"))
	assert.Equal(t, 8080, res.Data.Int("PORT"))
}

func TestValidatePrefixErrorsUseOutputName(t *testing.T) {
	schema := envproof.Schema{"PORT": field.Number().Port()}

	res := envproof.Validate(schema, envproof.SourceMap{}, envproof.Options{
		Prefix:      "MYAPP_",
		StripPrefix: true,
	})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "PORT", res.Errors[0].Variable)
}

func TestValidateStrict(t *testing.T) {
	schema := envproof.Schema{"PORT": field.Number().Port()}
	source := envproof.SourceMap{
		"PORT":     "8080",
		"ZEBRA":    "1",
		"AARDVARK": "2",
		"IGNORED":  "3",
	}

	res := envproof.Validate(schema, source, envproof.Options{Strict: true})
	require.False(t, res.Success)
	require.Len(t, res.Errors, 3)

	res = envproof.Validate(schema, source, envproof.Options{
		Strict:       true,
		StrictIgnore: []string{"IGNORED"},
	})
	require.False(t, res.Success)
	require.Len(t, res.Errors, 2)
	// Unknown-key errors are sorted by key.
	assert.Equal(t, "AARDVARK", res.Errors[0].Variable)
	assert.Equal(t, "ZEBRA", res.Errors[1].Variable)
	assert.Equal(t, envproof.ReasonUnknown, res.Errors[0].Reason)
}

func TestValidateStrictWithPrefixConsumesLookupKey(t *testing.T) {
	schema := envproof.Schema{"PORT": field.Number().Port()}
	source := envproof.SourceMap{"MYAPP_PORT": "8080"}

	res := envproof.Validate(schema, source, envproof.Options{
		Prefix: "MYAPP_",
		Strict: true,
	})
	require.True(t, res.Success)
}

func TestValidateSecretRedaction(t *testing.T) {
	schema := envproof.Schema{
		"API_KEY": field.String().MinLength(32).Secret().Example("sk_live_abc"),
	}

	res := envproof.Validate(schema, envproof.SourceMap{"API_KEY": "short"}, envproof.Options{})
	require.Len(t, res.Errors, 1)
	e := res.Errors[0]
	assert.True(t, e.Secret)
	assert.Equal(t, envproof.Redacted, e.Received)
	assert.Equal(t, envproof.Redacted, e.Example)
	assert.NotContains(t, e.Message, "short")
}

func TestValidateIsDeterministic(t *testing.T) {
	schema := envproof.Schema{
		"A": field.String(),
		"B": field.Number(),
		"C": field.Bool(),
	}
	source := envproof.SourceMap{"B": "x", "C": "y"}

	first := envproof.Validate(schema, source, envproof.Options{})
	second := envproof.Validate(schema, source, envproof.Options{})
	assert.Equal(t, first.Errors, second.Errors)
}

func TestValidateRunsShareNoDefaultState(t *testing.T) {
	schema := envproof.Schema{
		"CFG": field.JSON().Default(`{"mode":"safe"}`),
		"IDS": field.Array(field.String()).Default("x,y"),
	}

	first := envproof.Validate(schema, envproof.SourceMap{}, envproof.Options{})
	require.True(t, first.Success)
	first.Data.JSON("CFG").(map[string]any)["mode"] = "tampered"
	first.Data.Slice("IDS")[0] = "tampered"

	second := envproof.Validate(schema, envproof.SourceMap{}, envproof.Options{})
	require.True(t, second.Success)
	assert.Equal(t, "safe", second.Data.JSON("CFG").(map[string]any)["mode"])
	assert.Equal(t, []string{"x", "y"}, second.Data.Strings("IDS"))
}

func TestValidateDoesNotMutateSource(t *testing.T) {
	schema := envproof.Schema{"PORT": field.Number().Default(3000)}
	source := envproof.SourceMap{"OTHER": "x"}

	_ = envproof.Validate(schema, source, envproof.Options{})
	assert.Equal(t, envproof.SourceMap{"OTHER": "x"}, source)
}
