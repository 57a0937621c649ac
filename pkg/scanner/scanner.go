package scanner

import (
	"io/fs"
	"path"
	"sort"

	"github.com/helmcode/problem-summary/pkg/analyzer"
	"github.com/helmcode/problem-summary/pkg/logger"
	"github.com/helmcode/problem-summary/pkg/model"
)

// Scanner walks a corpus and keeps only the branches that lead to problems.
// Paths are slash-separated and relative to the root of fsys.
type Scanner struct {
	fs  fs.FS
	log logger.Logger
}

func New(fsys fs.FS, log logger.Logger) *Scanner {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Scanner{fs: fsys, log: log}
}

// BuildTree returns the pruned pre-order node list under p and whether it
// contains at least one problem. A problem is emitted as a Leaf and not
// descended into; a directory without problems below it emits nothing.
func (s *Scanner) BuildTree(p string) ([]model.Node, bool) {
	if analyzer.IsProblem(s.fs, p) {
		return []model.Node{model.NewLeaf(p)}, true
	}

	var children []model.Node
	for _, sub := range s.subdirs(p) {
		nodes, ok := s.BuildTree(sub)
		if ok {
			children = append(children, nodes...)
		}
	}

	if len(children) == 0 {
		return nil, false
	}
	return append([]model.Node{model.NewBranch(p)}, children...), true
}

// CollectProblems returns the problems under p in the same order BuildTree
// would emit their leaves.
func (s *Scanner) CollectProblems(p string) []string {
	if analyzer.IsProblem(s.fs, p) {
		return []string{p}
	}

	var problems []string
	for _, sub := range s.subdirs(p) {
		problems = append(problems, s.CollectProblems(sub)...)
	}
	return problems
}

// Branches returns the Branch paths of nodes, in order
func Branches(nodes []model.Node) []string {
	var out []string
	for _, n := range nodes {
		if n.Kind == model.Branch {
			out = append(out, n.Path)
		}
	}
	return out
}

// subdirs lists the direct subdirectories of p sorted byte-wise by name.
// Symlinks are not followed. Unreadable directories have no children.
func (s *Scanner) subdirs(p string) []string {
	entries, err := fs.ReadDir(s.fs, p)
	if err != nil {
		s.log.Warn("cannot read directory, skipping it", logger.F("path", p), logger.F("err", err))
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]string, len(names))
	for i, name := range names {
		out[i] = path.Join(p, name)
	}
	s.log.Debug("scanned directory", logger.F("path", p), logger.F("subdirs", len(out)))
	return out
}
