package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTOML(t *testing.T) {
	f, err := ParseTOML([]byte(`
debug = true
ratio = 0.25

[server]
host = "localhost"
port = 8080
origins = ["a.example.com", "b.example.com"]

[server.limits]
max_conns = 100
`))
	require.NoError(t, err)

	cfg := New(f)

	t.Run("FlattenedKeys", func(t *testing.T) {
		assert.Equal(t, "localhost", cfg.String("server.host"))
		assert.Equal(t, int64(8080), cfg.Int64("server.port"))
		assert.Equal(t, int64(100), cfg.Int64("server.limits.max_conns"))
	})

	t.Run("ScalarsStringified", func(t *testing.T) {
		assert.True(t, cfg.Bool("debug"))
		assert.Equal(t, 0.25, cfg.Float64("ratio"))
	})

	t.Run("ArraysRoundTripThroughList", func(t *testing.T) {
		assert.Equal(t, []string{"a.example.com", "b.example.com"}, cfg.List("server.origins"))
	})

	t.Run("Keys", func(t *testing.T) {
		assert.Equal(t, []string{
			"debug", "ratio",
			"server.host", "server.limits.max_conns", "server.origins", "server.port",
		}, f.Keys())
	})
}

func TestParseTOMLDatetime(t *testing.T) {
	f, err := ParseTOML([]byte("launched = 2015-05-15T05:05:05+02:00\n"))
	require.NoError(t, err)

	// Timestamps render as RFC 3339 UTC so Time reads them back.
	cfg := New(f)
	assert.Equal(t, time.Date(2015, 5, 15, 3, 5, 5, 0, time.UTC), cfg.Time("launched"))
}

func TestParseYAML(t *testing.T) {
	f, err := ParseYAML([]byte(`
server:
  host: 0.0.0.0
  port: 9090
features:
  - metrics
  - tracing
verbose: yes
`))
	require.NoError(t, err)

	cfg := New(f)
	assert.Equal(t, "0.0.0.0", cfg.String("server.host"))
	assert.Equal(t, int64(9090), cfg.Int64("server.port"))
	assert.Equal(t, []string{"metrics", "tracing"}, cfg.List("features"))
	assert.True(t, cfg.Bool("verbose"))
}

func TestParseJSON(t *testing.T) {
	f, err := ParseJSON([]byte(`{
  "server": {"host": "localhost", "port": 8080},
  "big": 9007199254740993,
  "pi": 3.14
}`))
	require.NoError(t, err)

	cfg := New(f)
	assert.Equal(t, "localhost", cfg.String("server.host"))
	assert.Equal(t, int64(8080), cfg.Int64("server.port"))
	assert.Equal(t, 3.14, cfg.Float64("pi"))

	// UseNumber keeps integer precision beyond float64's range.
	assert.Equal(t, int64(9007199254740993), cfg.Int64("big"))
}

func TestParseErrors(t *testing.T) {
	_, err := ParseTOML([]byte("= broken"))
	assert.Error(t, err)

	_, err = ParseJSON([]byte("{not json"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Run("ByExtension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("port = 7070\n"), 0o644))

		f, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, int64(7070), New(f).Int64("port"))
	})

	t.Run("ByContentSniffing", func(t *testing.T) {
		// Unrecognized extension falls back to content detection.
		path := filepath.Join(t.TempDir(), "settings.config")
		require.NoError(t, os.WriteFile(path, []byte(`{"port": 6060}`), 0o644))

		f, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, int64(6060), New(f).Int64("port"))
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
