package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// flattenInto walks a nested map produced by a structured-format decoder and
// writes dot-notation paths with stringified leaves into flat. The storage
// layer of this package is strings by contract, so every leaf is rendered
// to its canonical string form here and re-parsed on access like any other
// value.
func flattenInto(nested map[string]any, prefix string, flat map[string]string) {
	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if sub, isMap := value.(map[string]any); isMap {
			flattenInto(sub, path, flat)
			continue
		}
		flat[path] = formatValue(value)
	}
}

// formatValue renders a decoded leaf as the string this package's accessors
// expect. Arrays join with ", " so List parses them back; timestamps render
// as RFC 3339 UTC so Time parses them back.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case []any:
		parts := make([]string, len(v))
		for i, elem := range v {
			parts[i] = formatValue(elem)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// setNestedValue sets a value in a nested map using a dot-notation path,
// creating intermediate maps as needed. A non-map value occupying an
// intermediate segment is replaced by a map.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for _, segment := range segments[:len(segments)-1] {
		next, exists := current[segment]
		if exists {
			if nextMap, isMap := next.(map[string]any); isMap {
				current = nextMap
				continue
			}
		}
		newMap := make(map[string]any)
		current[segment] = newMap
		current = newMap
	}

	current[segments[len(segments)-1]] = value
}
