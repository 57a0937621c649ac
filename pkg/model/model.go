package model

import (
	"path"
	"strings"
)

// Kind tells a Branch node apart from a Leaf node
type Kind int

const (
	Branch Kind = iota
	Leaf
)

func (k Kind) String() string {
	if k == Leaf {
		return "leaf"
	}
	return "branch"
}

// MarshalText lets Kind show up as "branch"/"leaf" in json and yaml output
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Node is one entry of the pruned tree. Path is slash-separated and relative
// to the scan root, "." being the root itself.
type Node struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Path string `json:"path" yaml:"path"`
}

func NewBranch(p string) Node { return Node{Kind: Branch, Path: p} }

func NewLeaf(p string) Node { return Node{Kind: Leaf, Path: p} }

// Depth is the number of path components between p and the scan root's parent.
func Depth(p string) int {
	p = path.Clean(p)
	if p == "." {
		return 1
	}
	return strings.Count(p, "/") + 2
}

// Verdict is the completeness status of one required problem directory
type Verdict int

const (
	Empty Verdict = iota
	Incomplete
	Ok
)

func (v Verdict) String() string {
	switch v {
	case Empty:
		return "Gol"
	case Incomplete:
		return "Incomplet"
	default:
		return "Ok"
	}
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

type Mirror struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Problem holds everything a report row needs
type Problem struct {
	Path      string   `json:"path" yaml:"path"`
	Statement Verdict  `json:"enunt" yaml:"enunt"`
	Tests     Verdict  `json:"teste" yaml:"teste"`
	Editorial Verdict  `json:"editorial" yaml:"editorial"`
	Sources   Verdict  `json:"surse" yaml:"surse"`
	Mirrors   []Mirror `json:"mirrors,omitempty" yaml:"mirrors,omitempty"`
}

// Verdicts returns the verdicts in report column order
func (p Problem) Verdicts() []Verdict {
	return []Verdict{p.Statement, p.Tests, p.Editorial, p.Sources}
}

type Summary struct {
	Root     string    `json:"root" yaml:"root"`
	Nodes    []Node    `json:"nodes" yaml:"nodes"`
	Problems []Problem `json:"problems" yaml:"problems"`
}
