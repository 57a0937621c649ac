package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/problem-summary/pkg/model"
	"gopkg.in/yaml.v3"
)

// DisplayTree writes the pruned tree and its problems in the given format
func DisplayTree(w io.Writer, summary *model.Summary, format string) error {
	switch format {
	case "json":
		return displayJSON(w, summary)
	case "yaml":
		return displayYAML(w, summary)
	case "human":
		fallthrough
	default:
		displayHuman(w, summary)
	}
	return nil
}

func displayJSON(w io.Writer, summary *model.Summary) error {
	output, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, summary *model.Summary) error {
	output, err := yaml.Marshal(summary)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(output))
	return nil
}

func displayHuman(w io.Writer, summary *model.Summary) {
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	if len(summary.Nodes) == 0 {
		fmt.Fprintf(w, "No problems found under %s\n", summary.Root)
		return
	}

	problems := make(map[string]model.Problem, len(summary.Problems))
	for _, p := range summary.Problems {
		problems[p.Path] = p
	}

	for _, n := range summary.Nodes {
		indent := strings.Repeat("  ", model.Depth(n.Path)-1)
		name := path.Base(n.Path)
		if n.Path == "." {
			name = summary.Root
		}

		if n.Kind == model.Branch {
			fmt.Fprintf(w, "%s📂 %s\n", indent, cyan.Sprint(name))
			continue
		}

		p := problems[n.Path]
		fmt.Fprintf(w, "%s📄 %s", indent, white.Sprint(name))
		for i, v := range p.Verdicts() {
			fmt.Fprintf(w, " %s:%s", tableColumns[i+1], verdictColor(v).Sprint(v))
		}
		fmt.Fprintln(w)

		if len(p.Mirrors) > 0 {
			fmt.Fprintf(w, "%s   🔗 %s\n", indent, color.HiBlackString(FormatMirrors(p.Mirrors)))
		}
	}

	total, complete := len(summary.Problems), 0
	for _, p := range summary.Problems {
		if isComplete(p) {
			complete++
		}
	}
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "%d problems, %d complete\n", total, complete)
}

func verdictColor(v model.Verdict) *color.Color {
	switch v {
	case model.Empty:
		return color.New(color.FgRed)
	case model.Incomplete:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func isComplete(p model.Problem) bool {
	for _, v := range p.Verdicts() {
		if v != model.Ok {
			return false
		}
	}
	return true
}
