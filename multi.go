package config

// Multi chains an ordered list of sources into one. Lookups probe the
// sources strictly in construction order and return the first present
// value; a source that has the key wins outright, values are never merged
// across sources. Listing the environment first and defaults last gives the
// usual layered-override behavior.
//
// The source list is fixed at construction and never reordered, so lookup
// precedence is stable for the lifetime of the chain. Multi is itself a
// Source, so chains can contain other chains.
type Multi struct {
	sources []Source
}

// NewMulti builds a chain over the given sources, first listed = highest
// precedence. The chain owns the slice it is given; callers must not
// mutate it afterwards.
func NewMulti(sources ...Source) *Multi {
	return &Multi{sources: sources}
}

// Get returns the first present value for key in precedence order, or
// ("", false) when no source has it.
func (m *Multi) Get(key string) (string, bool) {
	for _, src := range m.sources {
		if v, ok := src.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

// Keys returns the union of the key sets of all Enumerable sources in the
// chain, in precedence order with duplicates removed. Sources that cannot
// enumerate (Env) contribute nothing.
func (m *Multi) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, src := range m.sources {
		e, ok := src.(Enumerable)
		if !ok {
			continue
		}
		for _, k := range e.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}
