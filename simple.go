package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInvalidLine reports a line in simple-format input that is neither a
// comment, nor blank, nor a "key = value" pair. It is a distinct error kind
// from the I/O failures LoadSimple can return, so callers can tell a broken
// file apart from a missing one.
var ErrInvalidLine = errors.New("config: line is not a key = value pair")

// Simple holds configuration parsed from line-oriented "key = value" text.
//
// The format is deliberately minimal: UTF-8 text, one pair per line, lines
// trimmed of surrounding whitespace, blank lines and lines starting with "#"
// ignored. Each remaining line must contain "="; the text before the first
// "=" is the key and the rest is the value, both trimmed. There is no
// quoting, no escaping, no multi-line values and no hierarchy — callers
// wanting structure can use dot-notation keys:
//
//	# storage
//	mongo.uri = mongodb://localhost/
//	mongo.db  = test
//
// Duplicate keys are allowed; the last occurrence wins.
type Simple struct {
	values map[string]string
}

// ParseSimple parses simple-format text into a source. The only possible
// failure is a malformed line, reported as an ErrInvalidLine wrap carrying
// the 1-based line number.
func ParseSimple(s string) (*Simple, error) {
	return readSimple(strings.NewReader(s))
}

// LoadSimple reads and parses the simple-format file at path. Read failures
// wrap the underlying os error (errors.Is with os.ErrNotExist works);
// malformed content wraps ErrInvalidLine.
func LoadSimple(path string) (*Simple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := readSimple(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return s, nil
}

// ReadSimple parses simple-format text from r.
func ReadSimple(r io.Reader) (*Simple, error) {
	return readSimple(r)
}

func readSimple(r io.Reader) (*Simple, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !ok {
			continue
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: read input: %w", err)
	}

	return &Simple{values: values}, nil
}

// parseLine returns the key/value pair on a line, or ok=false for blank
// lines and comments.
func parseLine(line string) (key, value string, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false, nil
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false, fmt.Errorf("%w: %q", ErrInvalidLine, line)
	}

	return strings.TrimSpace(key), strings.TrimSpace(value), true, nil
}

// Get returns the value parsed for key.
func (s *Simple) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns every key defined by the input, in unspecified order.
func (s *Simple) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}
