package envproof

import (
	"os"
	"strings"
)

// Source supplies raw variable values to the validation engine. The engine
// only ever reads from it; the live process environment is just one
// implementation, injected as a snapshot so the engine stays testable and
// side-effect free.
type Source interface {
	// Lookup returns the raw value for a key and whether the key is present.
	// A present-but-empty value is distinct from an absent one.
	Lookup(key string) (string, bool)

	// Keys lists every key present in the source (used by strict mode).
	Keys() []string
}

// SourceMap is the plain map implementation of Source.
type SourceMap map[string]string

func (m SourceMap) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m SourceMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Environ snapshots the live process environment into a SourceMap.
func Environ() SourceMap {
	env := os.Environ()
	m := make(SourceMap, len(env))
	for _, kv := range env {
		if i := strings.IndexByte(kv, '='); i > 0 {
			m[kv[:i]] = kv[i+1:]
		}
	}
	return m
}

// layeredSource resolves lookups against the overlay first, falling back to
// the underlying layer. Explicit/live values always win over file-derived
// ones.
type layeredSource struct {
	overlay Source
	under   Source
}

func (l layeredSource) Lookup(key string) (string, bool) {
	if v, ok := l.overlay.Lookup(key); ok {
		return v, true
	}
	return l.under.Lookup(key)
}

func (l layeredSource) Keys() []string {
	seen := map[string]struct{}{}
	var keys []string
	for _, k := range l.overlay.Keys() {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for _, k := range l.under.Keys() {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
