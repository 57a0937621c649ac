package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Marker delimits the generated part of a report file. Everything above it
// belongs to the user and is kept across runs.
const Marker = "# Generated Summary"

// Merge keeps existing content up to the first marker line and appends the
// marker followed by generated. Merging the result again with the same
// generated content returns it unchanged.
func Merge(existing, generated string) string {
	prefix := existing
	if i := markerIndex(existing); i >= 0 {
		prefix = existing[:i]
	} else if prefix != "" && !strings.HasSuffix(prefix, "\n") {
		prefix += "\n"
	}
	return prefix + Marker + "\n\n" + generated
}

// Assemble merges unless overwrite is set, in which case only the marker
// and the generated content are kept.
func Assemble(existing, generated string, overwrite bool) string {
	if overwrite {
		return Merge("", generated)
	}
	return Merge(existing, generated)
}

// Write assembles generated with the current content of path, if any, and
// writes the result back.
func Write(path, generated string, overwrite bool) error {
	var existing string
	if !overwrite {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		existing = string(data)
	}

	if err := os.WriteFile(path, []byte(Assemble(existing, generated, overwrite)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// markerIndex returns the offset of the first line that is exactly Marker
func markerIndex(s string) int {
	offset := 0
	for {
		line, _, found := strings.Cut(s[offset:], "\n")
		if strings.TrimSuffix(line, "\r") == Marker {
			return offset
		}
		if !found {
			return -1
		}
		offset += len(line) + 1
	}
}
