package analyzer

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/helmcode/problem-summary/pkg/logger"
	"github.com/helmcode/problem-summary/pkg/model"
	"github.com/helmcode/problem-summary/pkg/parser"
)

// MirrorsFile is the optional sidecar listing external copies of a problem
const MirrorsFile = "mirrors.json"

// Analyzer computes verdicts and mirrors for problems of one corpus.
// Nothing is cached: every call looks at the filesystem again.
type Analyzer struct {
	fs  fs.FS
	log logger.Logger
}

func New(fsys fs.FS, log logger.Logger) *Analyzer {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Analyzer{fs: fsys, log: log}
}

func (a *Analyzer) IsProblem(p string) bool {
	return IsProblem(a.fs, p)
}

// Analyze classifies the four required directories of problem p and
// resolves its mirrors.
func (a *Analyzer) Analyze(p string) (model.Problem, error) {
	verdicts := make([]model.Verdict, len(RequiredDirs))
	for i, name := range RequiredDirs {
		v, err := a.Classify(path.Join(p, name))
		if err != nil {
			return model.Problem{}, fmt.Errorf("problem %s: %w", p, err)
		}
		verdicts[i] = v
	}

	return model.Problem{
		Path:      p,
		Statement: verdicts[0],
		Tests:     verdicts[1],
		Editorial: verdicts[2],
		Sources:   verdicts[3],
		Mirrors:   a.ResolveMirrors(p),
	}, nil
}

// ResolveMirrors reads p/mirrors.json. A missing or malformed file yields
// no mirrors.
func (a *Analyzer) ResolveMirrors(p string) []model.Mirror {
	name := path.Join(p, MirrorsFile)

	data, err := fs.ReadFile(a.fs, name)
	if err != nil {
		return nil
	}

	mirrors, err := parser.ParseMirrors(data)
	if err != nil {
		a.log.Debug("ignoring malformed mirrors file", logField(name, err)...)
		return nil
	}
	return mirrors
}

func logField(p string, err error) []logger.Field {
	return []logger.Field{logger.F("path", p), logger.F("err", err)}
}
