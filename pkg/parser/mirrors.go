package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/helmcode/problem-summary/pkg/model"
)

// ErrNotMapping is returned when mirrors.json is valid JSON but not an object
var ErrNotMapping = errors.New("mirrors: top-level value is not an object")

// ParseMirrors decodes a flat {"name": "url"} object. Entries come back in
// document order; values that are not strings are skipped.
func ParseMirrors(data []byte) ([]model.Mirror, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("mirrors: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotMapping
	}

	var mirrors []model.Mirror
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("mirrors: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("mirrors: unexpected key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("mirrors: value for %q: %w", name, err)
		}

		if len(raw) == 0 || raw[0] != '"' {
			continue
		}
		var url string
		if err := json.Unmarshal(raw, &url); err != nil {
			return nil, fmt.Errorf("mirrors: value for %q: %w", name, err)
		}
		mirrors = append(mirrors, model.Mirror{Name: name, URL: url})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("mirrors: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("mirrors: trailing data after object")
	}

	return mirrors, nil
}
