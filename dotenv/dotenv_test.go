package dotenv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayantpathariya/envproof/dotenv"
)

func TestParseString(t *testing.T) {
	doc := `
# full-line comment
PORT=8080
HOST = localhost
EMPTY=
SPACED=  trimmed value
INLINE=value # trailing comment
DOUBLE="line1\nline2 # not a comment"
SINGLE='literal \n ${RAW}'
ESCAPED="say \"hi\" \\ done"
MALFORMED LINE WITHOUT EQUALS
=no-key
`
	vars := dotenv.ParseString(doc)

	assert.Equal(t, map[string]string{
		"PORT":    "8080",
		"HOST":    "localhost",
		"EMPTY":   "",
		"SPACED":  "trimmed value",
		"INLINE":  "value",
		"DOUBLE":  "line1\nline2 # not a comment",
		"SINGLE":  `literal \n ${RAW}`,
		"ESCAPED": `say "hi" \ done`,
	}, vars)
}

func TestParseLaterAssignmentWins(t *testing.T) {
	vars := dotenv.ParseString("A=first\nA=second\n")
	assert.Equal(t, "second", vars["A"])
}

func TestParseQuotedTrailingComment(t *testing.T) {
	vars := dotenv.ParseString(`KEY="value" # comment after close`)
	assert.Equal(t, "value", vars["KEY"])
}

func TestParseUnterminatedQuoteKeepsRemainder(t *testing.T) {
	vars := dotenv.ParseString(`KEY="unterminated value`)
	assert.Equal(t, "unterminated value", vars["KEY"])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, ".env")
	local := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(base, []byte("A=1\nB=base\n"), 0o600))
	require.NoError(t, os.WriteFile(local, []byte("B=local\nC=3\n"), 0o600))

	vars, err := dotenv.Load(base, local, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1", "B": "local", "C": "3"}, vars)
}

func TestLoadUnreadableFileErrors(t *testing.T) {
	dir := t.TempDir()
	// A directory opens but cannot be scanned as a file.
	sub := filepath.Join(dir, "not-a-file")
	require.NoError(t, os.Mkdir(sub, 0o700))

	_, err := dotenv.Load(sub)
	assert.Error(t, err)
}

func TestExpand(t *testing.T) {
	vars := map[string]string{
		"HOST":    "db.internal",
		"URL":     "postgres://${HOST}:5432/app",
		"AMBIENT": "from ${OUTSIDE}",
		"UNKNOWN": "x${NOPE}y",
		"LITERAL": `cost: \${PRICE}`,
	}
	ambient := func(key string) (string, bool) {
		if key == "OUTSIDE" {
			return "ambient-value", true
		}
		return "", false
	}

	out := dotenv.Expand(vars, ambient)
	assert.Equal(t, "postgres://db.internal:5432/app", out["URL"])
	assert.Equal(t, "from ambient-value", out["AMBIENT"])
	assert.Equal(t, "xy", out["UNKNOWN"])
	assert.Equal(t, "cost: ${PRICE}", out["LITERAL"])
	// Input map is untouched.
	assert.Equal(t, "postgres://${HOST}:5432/app", vars["URL"])
}

func TestExpandNested(t *testing.T) {
	vars := map[string]string{
		"A": "a",
		"B": "${A}b",
		"C": "${B}c",
	}
	out := dotenv.Expand(vars, nil)
	assert.Equal(t, "abc", out["C"])
}

func TestExpandCycleResolvesEmpty(t *testing.T) {
	vars := map[string]string{
		"A":    "${B}",
		"B":    "${A}",
		"SELF": "${SELF}!",
	}
	out := dotenv.Expand(vars, nil)
	assert.Equal(t, "", out["A"])
	assert.Equal(t, "", out["B"])
	assert.Equal(t, "!", out["SELF"])
}

func TestExpandSameBatchBeatsAmbient(t *testing.T) {
	vars := map[string]string{
		"HOST": "file-host",
		"URL":  "http://${HOST}",
	}
	ambient := func(key string) (string, bool) { return "ambient-host", true }

	out := dotenv.Expand(vars, ambient)
	assert.Equal(t, "http://file-host", out["URL"])
}
