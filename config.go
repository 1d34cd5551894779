package config

import "sort"

// Source is the capability every configuration origin implements: answer a
// raw string lookup by key. The boolean reports whether the key is present;
// absence is a normal result, not an error.
//
// Keys are opaque, case-preserving strings chosen by the caller. A Source
// may transform keys internally before its own lookup (Env does), but the
// transformation must be pure and invisible to callers.
type Source interface {
	Get(key string) (string, bool)
}

// Enumerable is an optional interface for sources that know their full key
// set, such as Map, Simple and File. Env cannot implement it: the process
// environment has no inverse of the key transformation.
type Enumerable interface {
	Keys() []string
}

// Config wraps a Source with typed accessors. The accessors are implemented
// once here, so any Source gets all of them by wrapping; see type.go.
// Config embeds its Source and therefore satisfies Source itself, allowing
// configs to be composed into other configs or chains.
type Config struct {
	Source
}

// New wraps one or more sources in a Config. A single source is wrapped
// directly; several sources become a Multi chain probed in argument order,
// first listed winning.
func New(sources ...Source) *Config {
	if len(sources) == 1 {
		return &Config{Source: sources[0]}
	}
	return &Config{Source: NewMulti(sources...)}
}

// Keys reports the wrapped source's key set when it is Enumerable, and nil
// otherwise.
func (c *Config) Keys() []string {
	if e, ok := c.Source.(Enumerable); ok {
		return e.Keys()
	}
	return nil
}

// Map is an in-memory Source, the usual carrier for default values at the
// bottom of a chain.
type Map map[string]string

// Get returns the value stored under key.
func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the stored keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
