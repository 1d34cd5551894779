package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File is a Source backed by a structured configuration file. The document
// is parsed once at construction and its nested tables are flattened into
// dot-notation keys ("server.port"), with every leaf rendered as a string;
// typed interpretation happens through the usual accessors on read.
type File struct {
	values map[string]string
}

// LoadFile reads the file at path and parses it as TOML, YAML or JSON.
// The format is taken from the extension when it is recognized and sniffed
// from the content otherwise. Read failures wrap the underlying os error;
// parse failures report the detected format.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("config: cannot determine format of %s", path)
		}
	}

	f, err := parseStructured(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f, nil
}

// ParseTOML builds a File source from TOML text.
func ParseTOML(data []byte) (*File, error) {
	return parseStructured(data, "toml")
}

// ParseYAML builds a File source from YAML text.
func ParseYAML(data []byte) (*File, error) {
	return parseStructured(data, "yaml")
}

// ParseJSON builds a File source from a JSON object.
func ParseJSON(data []byte) (*File, error) {
	return parseStructured(data, "json")
}

func parseStructured(data []byte, format string) (*File, error) {
	nested := make(map[string]any)

	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // preserve number precision through the string layer
		if err := decoder.Decode(&nested); err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	flat := make(map[string]string)
	flattenInto(nested, "", flat)
	return &File{values: flat}, nil
}

// Get returns the flattened value stored under key.
func (f *File) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Keys returns the flattened key set in sorted order.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// detectFileFormat determines the format from the file extension, returning
// "" when the extension is not conclusive.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect the format by parsing. JSON is
// tried first because it is the strictest, then YAML (a JSON superset),
// then TOML.
func detectFormatFromContent(data []byte) string {
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
