package analyzer

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/helmcode/problem-summary/pkg/model"
)

// Sentinel files recognised inside a required directory
const (
	MissingMarker = "missing.md"
	BrokenMarker  = "broken.md"
)

// ErrContradiction means a directory was judged empty and broken at once.
// This is a problem with the corpus data and stops report generation.
var ErrContradiction = errors.New("directory is both empty and broken")

// ContradictionError carries the directory that triggered ErrContradiction
type ContradictionError struct {
	Dir string
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("%s: %s and %s are both present", e.Dir, MissingMarker, BrokenMarker)
}

func (e *ContradictionError) Unwrap() error {
	return ErrContradiction
}

// Judge maps the observed directory state to a verdict.
func Judge(entries int, missing, broken bool) (model.Verdict, error) {
	empty := entries == 0 || missing

	switch {
	case empty && broken:
		return model.Empty, ErrContradiction
	case empty:
		return model.Empty, nil
	case broken:
		return model.Incomplete, nil
	default:
		return model.Ok, nil
	}
}

// Classify lists dir once and judges it. An unreadable directory counts as
// having no entries.
func (a *Analyzer) Classify(dir string) (model.Verdict, error) {
	entries, err := fs.ReadDir(a.fs, dir)
	if err != nil {
		a.log.Warn("cannot read directory, treating it as empty", logField(dir, err)...)
	}

	var missing, broken bool
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch e.Name() {
		case MissingMarker:
			missing = true
		case BrokenMarker:
			broken = true
		}
	}

	v, err := Judge(len(entries), missing, broken)
	if err != nil {
		return v, &ContradictionError{Dir: dir}
	}
	return v, nil
}
