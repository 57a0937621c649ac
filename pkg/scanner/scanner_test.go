package scanner

import (
	"io/fs"
	"path"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/helmcode/problem-summary/pkg/model"
	"github.com/stretchr/testify/assert"
)

func addProblem(fsys fstest.MapFS, p string) {
	for _, name := range []string{"enunt", "teste", "editorial", "surse"} {
		fsys[path.Join(p, name)] = &fstest.MapFile{Mode: fs.ModeDir | 0o755}
	}
}

func corpus(problems ...string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, p := range problems {
		addProblem(fsys, p)
	}
	return fsys
}

// reversedFS lists directories in reverse order
type reversedFS struct {
	fstest.MapFS
}

func (r reversedFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := r.MapFS.ReadDir(name)
	slices.Reverse(entries)
	return entries, err
}

// failingFS refuses to list one directory
type failingFS struct {
	fstest.MapFS
	fail string
}

func (f failingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == f.fail {
		return nil, fs.ErrPermission
	}
	return f.MapFS.ReadDir(name)
}

func TestScanner_CollectProblems(t *testing.T) {
	s := New(corpus("b/c", "a"), nil)
	assert.Equal(t, []string{"a", "b/c"}, s.CollectProblems("."))
}

func TestScanner_BuildTree(t *testing.T) {
	s := New(corpus("a", "b/c"), nil)

	nodes, ok := s.BuildTree(".")
	assert.True(t, ok)
	assert.Equal(t, []model.Node{
		model.NewBranch("."),
		model.NewLeaf("a"),
		model.NewBranch("b"),
		model.NewLeaf("b/c"),
	}, nodes)
}

func TestScanner_BuildTree_PrunesBranchesWithoutProblems(t *testing.T) {
	fsys := corpus("x/y/z/p")
	fsys["empty/nested/deeper"] = &fstest.MapFile{Mode: fs.ModeDir | 0o755}
	fsys["x/notes/readme.md"] = &fstest.MapFile{Data: []byte("notes")}
	fsys["x/y/other/file.txt"] = &fstest.MapFile{Data: []byte("x")}

	nodes, ok := New(fsys, nil).BuildTree(".")
	assert.True(t, ok)
	assert.Equal(t, []model.Node{
		model.NewBranch("."),
		model.NewBranch("x"),
		model.NewBranch("x/y"),
		model.NewBranch("x/y/z"),
		model.NewLeaf("x/y/z/p"),
	}, nodes)
}

func TestScanner_BuildTree_NoProblems(t *testing.T) {
	fsys := fstest.MapFS{
		"a/b": &fstest.MapFile{Mode: fs.ModeDir | 0o755},
	}

	nodes, ok := New(fsys, nil).BuildTree(".")
	assert.False(t, ok)
	assert.Empty(t, nodes)
}

func TestScanner_BuildTree_RootIsProblem(t *testing.T) {
	fsys := corpus(".")
	addProblem(fsys, "enunt/inner")

	nodes, ok := New(fsys, nil).BuildTree(".")
	assert.True(t, ok)
	assert.Equal(t, []model.Node{model.NewLeaf(".")}, nodes)
}

func TestScanner_BranchIffLeafBelow(t *testing.T) {
	fsys := corpus("a/b/p1", "a/c/d/p2", "e/p3")
	fsys["a/empty/x"] = &fstest.MapFile{Mode: fs.ModeDir | 0o755}
	fsys["f/g/h"] = &fstest.MapFile{Mode: fs.ModeDir | 0o755}

	nodes, _ := New(fsys, nil).BuildTree(".")

	for i, n := range nodes {
		if n.Kind != model.Branch {
			continue
		}
		hasLeaf := false
		for _, m := range nodes[i+1:] {
			if m.Kind == model.Leaf && isBelow(m.Path, n.Path) {
				hasLeaf = true
				break
			}
		}
		assert.True(t, hasLeaf, "branch %s has no leaf below it", n.Path)
	}
	assert.Equal(t, []string{".", "a", "a/b", "a/c", "a/c/d", "e"}, Branches(nodes))
}

func TestScanner_SortsSiblingsByteWise(t *testing.T) {
	fsys := reversedFS{corpus("b", "B", "a", "a-1", "_x", "10", "9")}

	assert.Equal(t, []string{"10", "9", "B", "_x", "a", "a-1", "b"}, New(fsys, nil).CollectProblems("."))
}

func TestScanner_UnreadableDirectoryIsPruned(t *testing.T) {
	fsys := failingFS{MapFS: corpus("ok/p", "locked/p"), fail: "locked"}

	nodes, ok := New(fsys, nil).BuildTree(".")
	assert.True(t, ok)
	assert.Equal(t, []model.Node{
		model.NewBranch("."),
		model.NewBranch("ok"),
		model.NewLeaf("ok/p"),
	}, nodes)
	assert.Equal(t, []string{"ok/p"}, New(fsys, nil).CollectProblems("."))
}

func TestScanner_UnreadableRoot(t *testing.T) {
	fsys := failingFS{MapFS: corpus("a"), fail: "."}

	nodes, ok := New(fsys, nil).BuildTree(".")
	assert.False(t, ok)
	assert.Empty(t, nodes)
}

func TestScanner_CollectMatchesTreeLeaves(t *testing.T) {
	s := New(corpus("z", "m/n", "m/a/b", "c/d/e/f"), nil)

	nodes, _ := s.BuildTree(".")
	var leaves []string
	for _, n := range nodes {
		if n.Kind == model.Leaf {
			leaves = append(leaves, n.Path)
		}
	}
	assert.Equal(t, leaves, s.CollectProblems("."))
}

func isBelow(p, dir string) bool {
	if dir == "." {
		return true
	}
	return len(p) > len(dir) && p[:len(dir)] == dir && p[len(dir)] == '/'
}
