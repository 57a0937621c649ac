package report

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/helmcode/problem-summary/pkg/analyzer"
	"github.com/helmcode/problem-summary/pkg/formatter"
	"github.com/helmcode/problem-summary/pkg/logger"
	"github.com/helmcode/problem-summary/pkg/model"
	"github.com/helmcode/problem-summary/pkg/scanner"
)

// Options controls what a Generator renders
type Options struct {
	Table   bool
	Mirrors bool
}

// Generator produces the report for the corpus rooted at "." of its
// filesystem. Name is how the root is called in the output.
type Generator struct {
	fs       fs.FS
	name     string
	opts     Options
	log      logger.Logger
	scanner  *scanner.Scanner
	renderer *formatter.Renderer
	analyzer *analyzer.Analyzer
}

func NewGenerator(fsys fs.FS, name string, opts Options, log logger.Logger) *Generator {
	if log == nil {
		log = logger.NoOp{}
	}
	a := analyzer.New(fsys, log)
	return &Generator{
		fs:       fsys,
		name:     name,
		opts:     opts,
		log:      log,
		scanner:  scanner.New(fsys, log),
		analyzer: a,
		renderer: formatter.NewRenderer(a, name, opts.Mirrors),
	}
}

// Generate renders the markdown report for the whole corpus
func (g *Generator) Generate() (string, error) {
	if g.opts.Table {
		return g.renderer.RenderTable(g.scanner.CollectProblems("."))
	}
	nodes, _ := g.scanner.BuildTree(".")
	return g.renderer.RenderTree(nodes)
}

// Summarize returns the pruned tree together with every problem's row data
func (g *Generator) Summarize() (*model.Summary, error) {
	nodes, _ := g.scanner.BuildTree(".")

	summary := &model.Summary{Root: g.name, Nodes: nodes}
	for _, n := range nodes {
		if n.Kind != model.Leaf {
			continue
		}
		p, err := g.analyzer.Analyze(n.Path)
		if err != nil {
			return nil, err
		}
		summary.Problems = append(summary.Problems, p)
	}
	return summary, nil
}

// Target is one directory that gets its own report
type Target struct {
	Dir       string
	Generator *Generator
}

// Targets returns one target per Branch of the pruned tree, each generator
// rooted at its branch directory.
func (g *Generator) Targets() ([]Target, error) {
	nodes, _ := g.scanner.BuildTree(".")

	var targets []Target
	for _, dir := range scanner.Branches(nodes) {
		if dir == "." {
			targets = append(targets, Target{Dir: dir, Generator: g})
			continue
		}
		sub, err := fs.Sub(g.fs, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", dir, err)
		}
		targets = append(targets, Target{
			Dir:       dir,
			Generator: NewGenerator(sub, path.Base(dir), g.opts, g.log),
		})
	}
	return targets, nil
}
