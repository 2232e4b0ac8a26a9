package cssclass

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGraphFixture lays out a small project with a shared import, a cycle
// and an import that cannot be resolved
func writeGraphFixture(t *testing.T) (dir, root string) {
	t.Helper()
	dir = t.TempDir()
	root = writeCSS(t, dir, "app.css", `@import "./base.css"; @import "./theme.css"; @import "lib/missing.css"; .app { }`)
	writeCSS(t, dir, "base.css", `@import "./reset.css"; .base { }`)
	writeCSS(t, dir, "theme.css", `@import "./reset.css"; @import "./app.css"; .theme { }`)
	writeCSS(t, dir, "reset.css", `.reset { }`)
	return dir, root
}

func TestBuildImportGraph(t *testing.T) {
	dir, root := writeGraphFixture(t)
	extractor := NewExtractor(NewResolver([]string{dir + "/vendor"}), WithLogger(quietLogger))

	ig, err := extractor.BuildImportGraph(root)
	require.NoError(t, err)

	assert.Equal(t, []string{dir + "/base.css", dir + "/theme.css"}, ig.Children(root))
	assert.Equal(t, []string{dir + "/reset.css"}, ig.Children(dir+"/theme.css"))

	stylesheets, err := ig.Stylesheets()
	require.NoError(t, err)
	assert.Equal(t, []string{
		dir + "/app.css",
		dir + "/base.css",
		dir + "/reset.css",
		dir + "/theme.css",
	}, stylesheets)

	assert.Equal(t, []ImportEdge{
		{From: dir + "/theme.css", To: dir + "/app.css", Specifier: "./app.css"},
	}, ig.Cycles)
	assert.Equal(t, []ImportEdge{
		{From: root, To: dir + "/vendor/lib/missing.css", Specifier: "lib/missing.css"},
	}, ig.Unresolved)
	assert.Len(t, ig.Edges(), 4)
}

func TestBuildImportGraph_MissingRoot(t *testing.T) {
	extractor := NewExtractor(NewResolver(nil), WithLogger(quietLogger))

	_, err := extractor.BuildImportGraph(t.TempDir() + "/nope.css")
	assert.ErrorIs(t, err, ErrStylesheetNotFound)
}

func TestReporter_PrintTree(t *testing.T) {
	dir, root := writeGraphFixture(t)
	extractor := NewExtractor(NewResolver([]string{dir + "/vendor"}), WithLogger(quietLogger))

	ig, err := extractor.BuildImportGraph(root)
	require.NoError(t, err)

	var buf bytes.Buffer
	NewReporter(&buf, false, dir).PrintTree(ig)

	g := goldie.New(t)
	g.Assert(t, "import_tree", buf.Bytes())
}

func TestImportGraph_WriteDOT(t *testing.T) {
	dir, root := writeGraphFixture(t)
	extractor := NewExtractor(NewResolver(nil), WithLogger(quietLogger))

	ig, err := extractor.BuildImportGraph(root)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ig.WriteDOT(&buf))

	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, dir+"/reset.css")
}

func TestReporter_PrintClasses(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false, "/proj").PrintClasses("/proj/styles/app.css", NewClassSet("btn", "card"))

	assert.Equal(t, "styles/app.css (2 classes)\n  btn\n  card\n", buf.String())
}

func TestVerboseReporter_PrintCacheStats(t *testing.T) {
	var buf bytes.Buffer
	NewVerboseReporter(&buf, false).PrintCacheStats(CacheStats{Hits: 3, Misses: 1, Entries: 1})

	out := buf.String()
	assert.Contains(t, out, "Entries:   1\n")
	assert.Contains(t, out, "Hits:      3\n")
	assert.Contains(t, out, "Hit rate:  75.0%\n")
}
