package analyzer

import (
	"io/fs"
	"path"
)

// Required directories of a problem, in report column order
const (
	DirStatement = "enunt"
	DirTests     = "teste"
	DirEditorial = "editorial"
	DirSources   = "surse"
)

var RequiredDirs = []string{DirStatement, DirTests, DirEditorial, DirSources}

// IsProblem reports whether all required directories exist directly under p.
// A required name that is a regular file does not count.
func IsProblem(fsys fs.FS, p string) bool {
	for _, name := range RequiredDirs {
		info, err := fs.Stat(fsys, path.Join(p, name))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}
