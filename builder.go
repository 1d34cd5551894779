package config

import (
	"fmt"
)

// Builder assembles a layered Config from several sources with a fluent
// interface. The order of With* calls defines precedence: the first source
// added is consulted first. Construction errors (unreadable or malformed
// files) are remembered and reported by Build, so call chains stay clean.
type Builder struct {
	sources []Source
	err     error
}

// NewBuilder creates an empty configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithSource appends any Source to the chain.
func (b *Builder) WithSource(src Source) *Builder {
	if src != nil {
		b.sources = append(b.sources, src)
	}
	return b
}

// WithEnv appends an environment source with the given prefix.
func (b *Builder) WithEnv(prefix string) *Builder {
	return b.WithSource(NewEnv(prefix))
}

// WithFile appends a structured file source (TOML, YAML or JSON, detected
// from extension or content). An empty path is ignored.
func (b *Builder) WithFile(path string) *Builder {
	if path == "" {
		return b
	}
	src, err := LoadFile(path)
	if err != nil {
		b.fail(err)
		return b
	}
	return b.WithSource(src)
}

// WithSimpleFile appends a line-oriented "key = value" file source. An
// empty path is ignored.
func (b *Builder) WithSimpleFile(path string) *Builder {
	if path == "" {
		return b
	}
	src, err := LoadSimple(path)
	if err != nil {
		b.fail(err)
		return b
	}
	return b.WithSource(src)
}

// WithString appends a source parsed from simple-format text.
func (b *Builder) WithString(s string) *Builder {
	src, err := ParseSimple(s)
	if err != nil {
		b.fail(err)
		return b
	}
	return b.WithSource(src)
}

// WithDefaults appends an in-memory map, conventionally the last call so
// the values act as fallbacks for every other source.
func (b *Builder) WithDefaults(defaults Map) *Builder {
	return b.WithSource(defaults)
}

// Build returns the assembled Config, or the first error any With* call
// encountered. Building with no sources is legal and yields a config where
// every key is absent.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.sources...), nil
}

// MustBuild is like Build but panics on error, for program setup paths
// where a broken configuration source should stop the process.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config: build failed: %v", err))
	}
	return cfg
}

// fail records the first construction error.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Quick assembles the common environment-over-file layering in one call.
// configFile may be empty to use the environment alone; envPrefix may be
// empty for unprefixed variable names.
func Quick(envPrefix, configFile string) (*Config, error) {
	return NewBuilder().
		WithEnv(envPrefix).
		WithFile(configFile).
		Build()
}

// MustQuick is like Quick but panics on error.
func MustQuick(envPrefix, configFile string) *Config {
	cfg, err := Quick(envPrefix, configFile)
	if err != nil {
		panic(fmt.Sprintf("config: initialization failed: %v", err))
	}
	return cfg
}
