// Package dotenv parses .env files into plain string mappings, merges
// layered files, and performs cycle-safe ${VAR} expansion. It knows nothing
// about schemas; envproof consumes its output as an ordinary source layer.
package dotenv

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Parse reads KEY=VALUE lines from r. Blank lines, full-line and trailing
// comments, malformed lines (no '='), and empty keys are skipped. Values may
// be single-quoted (taken literally) or double-quoted (with \n, \r, \t, \\
// and \" unescaped).
func Parse(r io.Reader) (map[string]string, error) {
	out := map[string]string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		out[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(content string) map[string]string {
	out, _ := Parse(strings.NewReader(content))
	return out
}

// Load parses the given files in order and merges them, later files
// overriding earlier ones. Missing files are skipped; any other read error
// is returned.
func Load(paths ...string) (map[string]string, error) {
	merged := map[string]string{}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		vars, err := Parse(f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		for k, v := range vars {
			merged[k] = v
		}
	}
	return merged, nil
}

// Expand resolves ${VAR} references in every value. References resolve
// against same-batch keys first, then fall back to the ambient lookup;
// unresolved references and reference cycles yield the empty string. A
// backslash-escaped \${VAR} is emitted literally as ${VAR}.
func Expand(vars map[string]string, ambient func(key string) (string, bool)) map[string]string {
	var expandValue func(value string, visiting map[string]bool) string

	resolve := func(name string, visiting map[string]bool) string {
		if visiting[name] {
			return ""
		}
		if v, ok := vars[name]; ok {
			visiting[name] = true
			r := expandValue(v, visiting)
			delete(visiting, name)
			return r
		}
		if ambient != nil {
			if v, ok := ambient(name); ok {
				return v
			}
		}
		return ""
	}

	expandValue = func(value string, visiting map[string]bool) string {
		var b strings.Builder
		for i := 0; i < len(value); i++ {
			c := value[i]
			if c == '\\' && i+1 < len(value) && value[i+1] == '$' {
				b.WriteByte('$')
				i++
				continue
			}
			if c == '$' && i+1 < len(value) && value[i+1] == '{' {
				if end := strings.IndexByte(value[i+2:], '}'); end >= 0 {
					name := value[i+2 : i+2+end]
					b.WriteString(resolve(name, visiting))
					i += 2 + end
					continue
				}
			}
			b.WriteByte(c)
		}
		return b.String()
	}

	out := make(map[string]string, len(vars))
	for k, v := range vars {
		out[k] = expandValue(v, map[string]bool{k: true})
	}
	return out
}

// parseLine splits one line into a key/value pair, reporting ok=false for
// lines that carry no assignment.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:eq])
	if key == "" {
		return "", "", false
	}
	return key, parseValue(strings.TrimSpace(line[eq+1:])), true
}

func parseValue(raw string) string {
	if raw == "" {
		return ""
	}
	switch raw[0] {
	case '"':
		return unescapeDouble(readQuoted(raw, '"'))
	case '\'':
		return readQuoted(raw, '\'')
	}
	// Unquoted: strip a trailing comment, then trailing whitespace.
	if i := strings.Index(raw, " #"); i >= 0 {
		raw = raw[:i]
	} else if strings.HasPrefix(raw, "#") {
		raw = ""
	}
	return strings.TrimSpace(raw)
}

// readQuoted returns the content between the opening quote and its closing
// partner, honoring backslash escapes for double quotes. Anything after the
// closing quote (typically a trailing comment) is discarded; an unterminated
// quote keeps the remainder of the line.
func readQuoted(raw string, quote byte) string {
	for i := 1; i < len(raw); i++ {
		if raw[i] == '\\' && quote == '"' {
			i++
			continue
		}
		if raw[i] == quote {
			return raw[1:i]
		}
	}
	return raw[1:]
}

func unescapeDouble(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte(c)
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
