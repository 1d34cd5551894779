// Package config provides a minimal, composable configuration abstraction
// built on a single capability: look up a string value by key.
//
// Any type that can answer Get(key) (string, bool) is a Source. Wrapping a
// Source in a Config adds the full set of typed accessors (Int64, Float64,
// Bool, Duration, Time, List, Map) on top of that one primitive, so writing
// a new adapter is one method. A Config is itself a Source, which makes
// layered and nested compositions possible.
//
// Provided sources:
//   - Map: in-memory string map, typically used for defaults
//   - Env: process environment with a prefix and key rewriting
//     ("db.host" with prefix "APP" reads APP_DB_HOST)
//   - Simple: line-oriented "key = value" text from a string or file
//   - File: TOML, YAML or JSON file flattened to dot-notation keys
//   - Multi: an ordered chain of sources, first match wins
//
// Quick Start:
//
//	cfg, err := config.NewBuilder().
//	    WithEnv("MYAPP").
//	    WithFile("config.toml").
//	    WithDefaults(config.Map{"server.port": "8080"}).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port := cfg.Int64("server.port")
//
// Builder call order defines precedence: sources added first are consulted
// first, so the chain above reads environment over file over defaults.
//
// Failure model: the typed accessors treat a missing or unparseable value as
// a deployment error and panic. Configuration is assumed to be validated
// before the process serves traffic; there is no recoverable error path at
// read time. Source construction, which happens once at startup, returns
// ordinary errors instead so callers can decide how to fail.
//
// All sources are immutable after construction and safe for concurrent
// readers. Env reads the live process environment on every call; two
// consecutive reads are not guaranteed to be consistent if something else
// mutates the environment in between.
package config
