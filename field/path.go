package field

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jayantpathariya/envproof"
)

// PathSchema validates filesystem paths. Coercion trims, rejects empty
// values, and normalizes separators; it never touches the filesystem.
// Refinements that do (Exists, IsFile, IsDirectory, Readable, Writable) fail
// closed: any access error counts as a rule failure, never a panic.
type PathSchema struct {
	base
}

// Path returns a new path schema.
func Path() PathSchema { return PathSchema{} }

// Kind implements envproof.Field.
func (p PathSchema) Kind() envproof.Kind { return envproof.KindPath }

// Coerce implements envproof.Field.
func (p PathSchema) Coerce(raw string) (any, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, errors.New("must be a filesystem path")
	}
	return filepath.Clean(filepath.FromSlash(v)), nil
}

// TypeDescription implements envproof.Field.
func (p PathSchema) TypeDescription() string {
	return "filesystem path"
}

// ExampleValue implements envproof.Field.
func (p PathSchema) ExampleValue() string {
	if p.meta.Example != "" {
		return p.meta.Example
	}
	return "/path/to/file"
}

// WithOptional implements envproof.Field.
func (p PathSchema) WithOptional(optional bool) envproof.Field {
	p.base = p.base.withOptional(optional)
	return p
}

// Optional marks absent/empty input as "no value" rather than an error.
func (p PathSchema) Optional() PathSchema {
	p.base = p.base.withOptional(true)
	return p
}

// Default resolves absent/empty input to the normalized path. An empty
// default is a programmer error and panics.
func (p PathSchema) Default(raw string) PathSchema {
	v, err := p.Coerce(raw)
	if err != nil {
		panic(fmt.Sprintf("envproof/field: path default %q: %v", raw, err))
	}
	p.base = p.base.withDefault(v)
	return p
}

// Secret redacts the value in every error and generated example.
func (p PathSchema) Secret() PathSchema {
	p.base = p.base.withSecret()
	return p
}

// Describe attaches a human-readable description.
func (p PathSchema) Describe(d string) PathSchema {
	p.base = p.base.withDescription(d)
	return p
}

// Example attaches an explicit example value.
func (p PathSchema) Example(e string) PathSchema {
	p.base = p.base.withExample(e)
	return p
}

// Absolute requires an absolute path (pure-syntactic check).
func (p PathSchema) Absolute() PathSchema {
	p.base = p.withRule("absolute",
		"must be an absolute path",
		func(v any) bool { s, _ := v.(string); return filepath.IsAbs(s) })
	return p
}

// Relative requires a relative path (pure-syntactic check).
func (p PathSchema) Relative() PathSchema {
	p.base = p.withRule("relative",
		"must be a relative path",
		func(v any) bool { s, _ := v.(string); return !filepath.IsAbs(s) })
	return p
}

// Extension requires one of the given extensions, matched case-insensitively
// and normalized to include a leading dot.
func (p PathSchema) Extension(exts ...string) PathSchema {
	normalized := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		normalized = append(normalized, e)
	}
	p.base = p.withRule("extension",
		fmt.Sprintf("must have one of the extensions: %s", strings.Join(normalized, ", ")),
		func(v any) bool {
			s, _ := v.(string)
			got := strings.ToLower(filepath.Ext(s))
			for _, e := range normalized {
				if got == e {
					return true
				}
			}
			return false
		})
	return p
}

// Exists requires the path to exist on the filesystem.
func (p PathSchema) Exists() PathSchema {
	p.base = p.withRule("exists",
		"must exist on the filesystem",
		func(v any) bool {
			s, _ := v.(string)
			_, err := os.Stat(s)
			return err == nil
		})
	return p
}

// IsFile requires the path to be an existing regular file.
func (p PathSchema) IsFile() PathSchema {
	p.base = p.withRule("is_file",
		"must be an existing file",
		func(v any) bool {
			s, _ := v.(string)
			info, err := os.Stat(s)
			return err == nil && info.Mode().IsRegular()
		})
	return p
}

// IsDirectory requires the path to be an existing directory.
func (p PathSchema) IsDirectory() PathSchema {
	p.base = p.withRule("is_directory",
		"must be an existing directory",
		func(v any) bool {
			s, _ := v.(string)
			info, err := os.Stat(s)
			return err == nil && info.IsDir()
		})
	return p
}

// Readable requires the path to be openable for reading.
func (p PathSchema) Readable() PathSchema {
	p.base = p.withRule("readable",
		"must be readable",
		func(v any) bool {
			s, _ := v.(string)
			f, err := os.Open(s)
			if err != nil {
				return false
			}
			_ = f.Close()
			return true
		})
	return p
}

// Writable requires the path to be openable for writing. Directories are
// probed with a temporary file that is removed immediately.
func (p PathSchema) Writable() PathSchema {
	p.base = p.withRule("writable",
		"must be writable",
		func(v any) bool {
			s, _ := v.(string)
			info, err := os.Stat(s)
			if err != nil {
				return false
			}
			if info.IsDir() {
				f, err := os.CreateTemp(s, ".envproof-*")
				if err != nil {
					return false
				}
				name := f.Name()
				_ = f.Close()
				_ = os.Remove(name)
				return true
			}
			f, err := os.OpenFile(s, os.O_WRONLY, 0)
			if err != nil {
				return false
			}
			_ = f.Close()
			return true
		})
	return p
}
