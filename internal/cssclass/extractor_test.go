package cssclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		entry string
		want  []string
	}{
		{
			name:  "no imports yields own classes",
			files: map[string]string{"a.css": ".x { } .y:hover { } #id { } div { }"},
			entry: "a.css",
			want:  []string{"x", "y"},
		},
		{
			name: "transitive chain",
			files: map[string]string{
				"a.css":        `@import "./b.css"; .a { }`,
				"b.css":        `@import "./nested/c.css"; .b { }`,
				"nested/c.css": `.c { }`,
			},
			entry: "a.css",
			want:  []string{"a", "b", "c"},
		},
		{
			name: "parent relative import",
			files: map[string]string{
				"components/button.css": `@import "../tokens.css"; .button { }`,
				"tokens.css":            `.token { }`,
			},
			entry: "components/button.css",
			want:  []string{"button", "token"},
		},
		{
			name: "module search path",
			files: map[string]string{
				"a.css":                      `@import "lib/theme.css"; .a { }`,
				"node_modules/lib/theme.css": `.theme { }`,
			},
			entry: "a.css",
			want:  []string{"a", "theme"},
		},
		{
			name: "missing import is ignored",
			files: map[string]string{
				"a.css": `@import "./gone.css"; @import "https://cdn.example.com/x.css"; .a { }`,
			},
			entry: "a.css",
			want:  []string{"a"},
		},
		{
			name: "cycle terminates",
			files: map[string]string{
				"a.css": `@import "./b.css"; .a { }`,
				"b.css": `@import "./a.css"; .b { }`,
			},
			entry: "a.css",
			want:  []string{"a", "b"},
		},
		{
			name:  "self import",
			files: map[string]string{"a.css": `@import "./a.css"; .a { }`},
			entry: "a.css",
			want:  []string{"a"},
		},
		{
			name: "diamond",
			files: map[string]string{
				"a.css": `@import "./b.css"; @import "./c.css";`,
				"b.css": `@import "./d.css"; .b { }`,
				"c.css": `@import "./d.css"; .c { }`,
				"d.css": `.d { }`,
			},
			entry: "a.css",
			want:  []string{"b", "c", "d"},
		},
		{
			name:  "nonexistent file",
			files: map[string]string{},
			entry: "nope.css",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeCSS(t, dir, name, content)
			}

			extractor := NewExtractor(
				NewResolver([]string{dir + "/node_modules"}),
				WithLogger(quietLogger),
			)

			got := extractor.Extract(dir + "/" + tt.entry)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestExtract_Directory(t *testing.T) {
	dir := t.TempDir()
	extractor := NewExtractor(NewResolver(nil), WithLogger(quietLogger))

	assert.Empty(t, extractor.Extract(dir))
}

func TestExtract_Limits(t *testing.T) {
	dir := t.TempDir()
	writeCSS(t, dir, "a.css", `@import "./b.css"; .a { }`)
	writeCSS(t, dir, "b.css", `@import "./c.css"; .b { }`)
	writeCSS(t, dir, "c.css", `@import "./d.css"; .c { }`)
	writeCSS(t, dir, "d.css", `.d { }`)

	tests := []struct {
		name   string
		limits Limits
		want   []string
	}{
		{name: "depth", limits: Limits{MaxDepth: 2}, want: []string{"a", "b"}},
		{name: "files", limits: Limits{MaxFiles: 3}, want: []string{"a", "b", "c"}},
		{name: "single file", limits: Limits{MaxFiles: 1}, want: []string{"a"}},
		{name: "unlimited", limits: Limits{}, want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := NewExtractor(NewResolver(nil), WithLimits(tt.limits), WithLogger(quietLogger))
			assert.Equal(t, tt.want, extractor.Extract(dir+"/a.css").Sorted())
		})
	}
}

func TestExtract_UnreadableImportKeepsRest(t *testing.T) {
	dir := t.TempDir()
	a := writeCSS(t, dir, "a.css", `@import "./b.css"; @import "./c.css"; .a { }`)
	b := writeCSS(t, dir, "b.css", `.b { }`)
	writeCSS(t, dir, "c.css", `.c { }`)

	fsys := &countingFS{failRead: map[string]bool{b: true}}
	extractor := NewExtractor(NewResolver(nil), WithFileSystem(fsys), WithLogger(quietLogger))

	assert.Equal(t, []string{"a", "c"}, extractor.Extract(a).Sorted())
}

func TestExtract_DoesNotCache(t *testing.T) {
	dir := t.TempDir()
	a := writeCSS(t, dir, "a.css", `.a { }`)

	fsys := &countingFS{}
	extractor := NewExtractor(NewResolver(nil), WithFileSystem(fsys), WithLogger(quietLogger))

	extractor.Extract(a)
	extractor.Extract(a)

	assert.Equal(t, int64(2), fsys.reads.Load())
}
