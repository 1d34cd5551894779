package config

import (
	"os"
	"strings"
)

// Env reads configuration from process environment variables. Keys are
// rewritten before lookup: the prefix and an underscore are prepended when
// the prefix is non-empty, "." and "/" become "_", and the result is
// upper-cased. With prefix "myapp", a Get of "mongo.uri" reads MYAPP_MONGO_URI.
//
// The environment is process-wide mutable state that this package neither
// initializes nor owns. Reads reflect whatever the environment holds at call
// time, and two reads are not atomically consistent with each other if the
// environment is mutated concurrently. That transparency is intentional;
// nothing is cached and nothing is locked.
type Env struct {
	prefix string
}

// NewEnv creates an environment source. A non-empty prefix is prepended to
// every key with an underscore separator; an empty prefix prepends nothing.
func NewEnv(prefix string) *Env {
	if prefix != "" {
		prefix += "_"
	}
	return &Env{prefix: prefix}
}

// Get looks key up in the process environment after rewriting it to the
// conventional variable name.
func (e *Env) Get(key string) (string, bool) {
	return os.LookupEnv(e.envName(key))
}

// envName maps a config key to its environment variable name. The rewrite
// is pure: same key in, same name out.
func (e *Env) envName(key string) string {
	name := e.prefix + key
	name = strings.ReplaceAll(name, ".", "_")
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ToUpper(name)
}
