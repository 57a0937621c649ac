package formatter

import (
	"fmt"
	"path"
	"strings"

	"github.com/helmcode/problem-summary/pkg/model"
)

var (
	tableColumns = []string{"Nume", "Enunt", "Teste", "Editorial", "Surse"}
	mirrorColumn = "Mirrors"
)

// Analyzer produces the row data for one problem
type Analyzer interface {
	Analyze(p string) (model.Problem, error)
}

// Renderer turns scanner output into markdown. RootName is shown wherever
// the scan root itself ("." ) has to be named.
type Renderer struct {
	analyzer Analyzer
	rootName string
	mirrors  bool
}

func NewRenderer(a Analyzer, rootName string, mirrors bool) *Renderer {
	return &Renderer{analyzer: a, rootName: rootName, mirrors: mirrors}
}

// RenderTable renders a single table with one row per problem, named by
// its path relative to the scan root.
func (r *Renderer) RenderTable(problems []string) (string, error) {
	var b strings.Builder
	r.writeHeader(&b)

	for _, p := range problems {
		if err := r.writeRow(&b, p, r.relName(p)); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// RenderTree renders branches as headings and runs of leaves as tables.
// The heading level comes from the branch path alone.
func (r *Renderer) RenderTree(nodes []model.Node) (string, error) {
	var b strings.Builder
	tableOpen := false

	for _, n := range nodes {
		switch n.Kind {
		case model.Branch:
			if tableOpen {
				b.WriteString("\n")
				tableOpen = false
			}
			fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", model.Depth(n.Path)), r.baseName(n.Path))
		case model.Leaf:
			if !tableOpen {
				r.writeHeader(&b)
				tableOpen = true
			}
			if err := r.writeRow(&b, n.Path, r.baseName(n.Path)); err != nil {
				return "", err
			}
		default:
			return "", fmt.Errorf("unknown node kind %d for %s", n.Kind, n.Path)
		}
	}
	return b.String(), nil
}

// FormatMirrors renders mirrors as inline links in the given order
func FormatMirrors(mirrors []model.Mirror) string {
	links := make([]string, len(mirrors))
	for i, m := range mirrors {
		links[i] = fmt.Sprintf("[%s](%s)", m.Name, m.URL)
	}
	return strings.Join(links, ", ")
}

func (r *Renderer) columns() []string {
	if r.mirrors {
		return append(append([]string{}, tableColumns...), mirrorColumn)
	}
	return tableColumns
}

func (r *Renderer) writeHeader(b *strings.Builder) {
	cols := r.columns()
	sep := make([]string, len(cols))
	for i := range sep {
		sep[i] = "---"
	}
	writeCells(b, cols)
	writeCells(b, sep)
}

func (r *Renderer) writeRow(b *strings.Builder, p, name string) error {
	problem, err := r.analyzer.Analyze(p)
	if err != nil {
		return err
	}

	cells := []string{escapeCell(name)}
	for _, v := range problem.Verdicts() {
		cells = append(cells, v.String())
	}
	if r.mirrors {
		cells = append(cells, FormatMirrors(problem.Mirrors))
	}
	writeCells(b, cells)
	return nil
}

func (r *Renderer) relName(p string) string {
	p = path.Clean(p)
	if p == "." {
		return r.rootName
	}
	return p
}

func (r *Renderer) baseName(p string) string {
	p = path.Clean(p)
	if p == "." {
		return r.rootName
	}
	return path.Base(p)
}

func writeCells(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
