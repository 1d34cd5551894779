package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the values of src under basePath into target, which must be
// a non-nil pointer to a struct or map. Dot-notation keys are rebuilt into
// a nested document, basePath selects a subtree of it ("" selects the
// whole document), and mapstructure performs the decode using the "config"
// struct tag with weak typing, so string values convert to the target's
// numeric, boolean, time.Duration, time.Time and []string fields.
//
// src must be Enumerable; a source that cannot list its keys (Env) has no
// document to decode. Put such sources in a Multi alongside an enumerable
// one and scan the chain: enumeration comes from the listable sources while
// values still resolve by precedence.
func Scan(src Source, basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("config: scan target must be a non-nil pointer, got %T", target)
	}

	e, ok := src.(Enumerable)
	if !ok {
		return fmt.Errorf("config: source %T cannot enumerate keys for scanning", src)
	}

	nested := make(map[string]any)
	for _, key := range e.Keys() {
		if value, exists := src.Get(key); exists {
			setNestedValue(nested, key, value)
		}
	}

	sectionData := navigateToPath(nested, basePath)
	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		if sectionData == nil {
			sectionMap = make(map[string]any)
		} else {
			return fmt.Errorf("config: path %q refers to a value, not a section", basePath)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "config",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("config: create decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("config: decode section %q: %w", basePath, err)
	}

	return nil
}

// Scan decodes the wrapped source's values under basePath into target.
// See the package-level Scan.
func (c *Config) Scan(basePath string, target any) error {
	return Scan(c.Source, basePath, target)
}

// navigateToPath descends a nested map along a dot-notation path. It
// returns nil when the path does not exist and the raw value when the path
// leads to a leaf.
func navigateToPath(nested map[string]any, path string) any {
	path = strings.TrimSuffix(path, ".")
	if path == "" {
		return nested
	}

	current := any(nested)
	for _, segment := range strings.Split(path, ".") {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		value, exists := currentMap[segment]
		if !exists {
			return nil
		}
		current = value
	}
	return current
}
