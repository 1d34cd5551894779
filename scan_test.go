package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverSection struct {
	Host    string        `config:"host"`
	Port    int           `config:"port"`
	Timeout time.Duration `config:"timeout"`
	Debug   bool          `config:"debug"`
	Tags    []string      `config:"tags"`
}

func scanFixture() Map {
	return Map{
		"server.host":    "localhost",
		"server.port":    "8080",
		"server.timeout": "30s",
		"server.debug":   "true",
		"server.tags":    "a,b,c",
		"name":           "demo",
	}
}

func TestScan(t *testing.T) {
	t.Run("Section", func(t *testing.T) {
		var srv serverSection
		require.NoError(t, Scan(scanFixture(), "server", &srv))

		assert.Equal(t, "localhost", srv.Host)
		assert.Equal(t, 8080, srv.Port)
		assert.Equal(t, 30*time.Second, srv.Timeout)
		assert.True(t, srv.Debug)
		assert.Equal(t, []string{"a", "b", "c"}, srv.Tags)
	})

	t.Run("WholeDocument", func(t *testing.T) {
		var root struct {
			Name   string        `config:"name"`
			Server serverSection `config:"server"`
		}
		require.NoError(t, Scan(scanFixture(), "", &root))

		assert.Equal(t, "demo", root.Name)
		assert.Equal(t, "localhost", root.Server.Host)
	})

	t.Run("TrailingDotAllowed", func(t *testing.T) {
		var srv serverSection
		require.NoError(t, Scan(scanFixture(), "server.", &srv))
		assert.Equal(t, "localhost", srv.Host)
	})

	t.Run("MissingSectionLeavesTargetZero", func(t *testing.T) {
		var srv serverSection
		require.NoError(t, Scan(scanFixture(), "nonexistent", &srv))
		assert.Equal(t, serverSection{}, srv)
	})

	t.Run("PathToLeafIsError", func(t *testing.T) {
		var srv serverSection
		err := Scan(scanFixture(), "server.host", &srv)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a section")
	})

	t.Run("NonPointerTarget", func(t *testing.T) {
		var srv serverSection
		assert.Error(t, Scan(scanFixture(), "server", srv))
	})

	t.Run("NonEnumerableSource", func(t *testing.T) {
		var srv serverSection
		err := Scan(NewEnv("SCAN"), "server", &srv)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot enumerate")
	})
}

func TestScanTime(t *testing.T) {
	var target struct {
		Launched time.Time `config:"launched"`
	}
	src := Map{"launched": "2015-05-15T05:05:05Z"}

	require.NoError(t, Scan(src, "", &target))
	assert.Equal(t, time.Date(2015, 5, 15, 5, 5, 5, 0, time.UTC), target.Launched)
}

// Scanning a chain resolves values by precedence while enumeration comes
// from the listable layers.
func TestScanChain(t *testing.T) {
	t.Setenv("SCANCHAIN_SERVER_PORT", "9999")

	chain := NewMulti(
		NewEnv("scanchain"),
		scanFixture(),
	)

	var srv serverSection
	require.NoError(t, Scan(chain, "server", &srv))

	assert.Equal(t, 9999, srv.Port)
	assert.Equal(t, "localhost", srv.Host)
}

func TestConfigScan(t *testing.T) {
	cfg := New(scanFixture())

	var srv serverSection
	require.NoError(t, cfg.Scan("server", &srv))
	assert.Equal(t, "localhost", srv.Host)
}
