package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The typed accessors below are deliberately fail-fast: a missing key or an
// unparseable value panics. Required configuration that is absent or
// malformed is a deployment error, and silently defaulting would hide it.
// Bool is the single soft exception for parsing; it still requires the key
// to exist.

// MustGet returns the raw string value for key and panics if the key is
// absent. It is the foundation for every typed accessor.
func (c *Config) MustGet(key string) string {
	v, ok := c.Get(key)
	if !ok {
		panic(fmt.Sprintf("config: required key %q not set", key))
	}
	return v
}

// String returns the value for key as a string. It is an alias of MustGet.
func (c *Config) String(key string) string {
	return c.MustGet(key)
}

// Int64 returns the value for key parsed as a signed 64-bit integer.
// Panics if the key is absent or the value does not parse.
func (c *Config) Int64(key string) int64 {
	v := c.MustGet(key)
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("config: key %q: cannot parse %q as int64: %v", key, v, err))
	}
	return i
}

// Float64 returns the value for key parsed as a 64-bit float.
// Panics if the key is absent or the value does not parse.
func (c *Config) Float64(key string) float64 {
	v := c.MustGet(key)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		panic(fmt.Sprintf("config: key %q: cannot parse %q as float64: %v", key, v, err))
	}
	return f
}

// Bool returns true when the value for key is one of t, true, 1, y, yes
// (case-insensitive). Every other value, including garbage, is false; this
// is a truthiness test, not a strict parse. The key itself must still be
// present.
func (c *Config) Bool(key string) bool {
	switch strings.ToLower(c.MustGet(key)) {
	case "t", "true", "1", "y", "yes":
		return true
	}
	return false
}

// Duration returns the value for key interpreted as an integer count of
// seconds. Unit suffixes are not supported: "50" is fifty seconds and
// "50s" is an error. Panics if the key is absent or the value is not an
// integer.
func (c *Config) Duration(key string) time.Duration {
	v := c.MustGet(key)
	secs, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("config: key %q: cannot parse %q as seconds: %v", key, v, err))
	}
	return time.Duration(secs) * time.Second
}

// Time returns the value for key parsed strictly as RFC 3339 and normalized
// to UTC. Panics if the key is absent or the value does not parse.
func (c *Config) Time(key string) time.Time {
	v := c.MustGet(key)
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(fmt.Sprintf("config: key %q: cannot parse %q as RFC 3339: %v", key, v, err))
	}
	return t.UTC()
}

// List returns the value for key split on commas into trimmed elements.
// One surrounding pair of brackets is optional: "[a, b, c]" and "a, b, c"
// read the same. An empty value yields a single empty-string element, not
// an empty slice. Panics if the key is absent.
func (c *Config) List(key string) []string {
	return parseList(c.MustGet(key))
}

// Map returns the value for key parsed as comma-separated "k=>v" entries.
// One surrounding pair of braces is optional: "{a=>1, b=>2}" and
// "a=>1, b=>2" read the same. An entry without "=>" maps its key to the
// empty string, and the last occurrence of a duplicate key wins. Panics if
// the key is absent.
func (c *Config) Map(key string) map[string]string {
	return parseMap(c.MustGet(key))
}

func parseList(s string) []string {
	s = stripDelimiters(s, '[', ']')
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func parseMap(s string) map[string]string {
	s = stripDelimiters(s, '{', '}')
	result := make(map[string]string)
	for _, entry := range strings.Split(s, ",") {
		k, v, found := strings.Cut(entry, "=>")
		if !found {
			v = ""
		}
		result[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return result
}

// stripDelimiters trims surrounding whitespace and at most one matched pair
// of open/close delimiters.
func stripDelimiters(s string, open, closing byte) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == open && s[len(s)-1] == closing {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
