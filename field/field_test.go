package field_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	envproof "github.com/jayantpathariya/envproof"
	"github.com/jayantpathariya/envproof/field"
)

// conform runs a raw value through coercion and the field's rule chain the
// way the engine does, returning the typed value or the first failure.
func conform(f envproof.Field, raw string) (any, error) {
	v, err := f.Coerce(raw)
	if err != nil {
		return nil, err
	}
	for _, rule := range f.Rules() {
		if !rule.Check(v) {
			return nil, errors.New(rule.Message)
		}
	}
	return v, nil
}

func TestBuildersAreCopyOnWrite(t *testing.T) {
	plain := field.String()
	strict := plain.MinLength(5).Secret()

	assert.Empty(t, plain.Rules())
	assert.False(t, plain.Meta().Secret)
	assert.Len(t, strict.Rules(), 1)
	assert.True(t, strict.Meta().Secret)

	// Two chains branched from the same base never share rule state.
	left := plain.MinLength(1)
	right := plain.MaxLength(9)
	assert.Equal(t, "min_length", left.Rules()[0].Name)
	assert.Equal(t, "max_length", right.Rules()[0].Name)
}

func TestRulesReturnsCopy(t *testing.T) {
	f := field.String().MinLength(2).MaxLength(4)
	rules := f.Rules()
	rules[0] = envproof.Rule{Name: "tampered"}
	assert.Equal(t, "min_length", f.Rules()[0].Name)
}

func TestMetadataChain(t *testing.T) {
	f := field.String().
		Describe("service display name").
		Example("orders-api").
		Secret()

	meta := f.Meta()
	assert.Equal(t, "service display name", meta.Description)
	assert.Equal(t, "orders-api", meta.Example)
	assert.True(t, meta.Secret)
}

func TestWithOptionalRoundTrip(t *testing.T) {
	f := field.Number().Optional()
	assert.True(t, f.IsOptional())

	back := f.WithOptional(false)
	assert.False(t, back.IsOptional())
	assert.True(t, f.IsOptional())
	assert.Equal(t, envproof.KindNumber, back.Kind())
}

func TestDefaultValue(t *testing.T) {
	_, ok := field.String().DefaultValue()
	assert.False(t, ok)

	v, ok := field.String().Default("fallback").DefaultValue()
	assert.True(t, ok)
	assert.Equal(t, "fallback", v)
}
