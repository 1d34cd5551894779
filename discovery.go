package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DiscoveryOptions configures automatic config file discovery.
type DiscoveryOptions struct {
	// Base name of the config file, without extension.
	Name string

	// Extensions to try, in order. Files ending in ".conf" or ".cfg" are
	// parsed as simple format; everything else as a structured file.
	Extensions []string

	// Custom search directories checked before the defaults.
	Paths []string

	// Environment variable holding an explicit path, checked first.
	EnvVar string

	// Whether to search XDG config directories.
	UseXDG bool

	// Whether to search the current working directory.
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns discovery settings suitable for an
// application named appName: APPNAME_CONFIG override, then the current
// directory and XDG paths, trying .conf, .toml, .yaml and .json.
func DefaultDiscoveryOptions(appName string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".conf", ".toml", ".yaml", ".json"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// WithFileDiscovery searches for a config file per opts and appends it to
// the chain when found. A file that exists but fails to parse is a build
// error; finding no file at all is not — the application can run on
// environment and defaults.
func (b *Builder) WithFileDiscovery(opts DiscoveryOptions) *Builder {
	path := discoverFile(opts)
	if path == "" {
		return b
	}
	if isSimpleExt(path) {
		return b.WithSimpleFile(path)
	}
	return b.WithFile(path)
}

// discoverFile returns the first config file found, or "".
func discoverFile(opts DiscoveryOptions) string {
	// Explicit override wins.
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if opts.UseXDG {
		searchPaths = append(searchPaths, xdgConfigPaths(opts.Name)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

func isSimpleExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".conf", ".cfg":
		return true
	}
	return false
}

// xdgConfigPaths returns XDG-compliant config search directories.
func xdgConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
