package cssclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStylesheet(t *testing.T) {
	tests := []struct {
		name        string
		css         string
		wantClasses []string
		wantImports []string
	}{
		{
			name:        "base class",
			css:         ".btn { color: red; }",
			wantClasses: []string{"btn"},
		},
		{
			name:        "compound and descendant selectors",
			css:         "div.card > .card__header .title:hover { margin: 0; }",
			wantClasses: []string{"card", "card__header", "title"},
		},
		{
			name:        "chained classes",
			css:         ".btn.btn--primary { color: blue; }",
			wantClasses: []string{"btn", "btn--primary"},
		},
		{
			name:        "selector list",
			css:         ".a, .b,\n.c { display: none; }",
			wantClasses: []string{"a", "b", "c"},
		},
		{
			name: "nested in at-rules",
			css: `@media (max-width: 600px) {
				.mobile-only { display: block; }
			}
			@supports (display: grid) {
				@layer components { .grid { display: grid; } }
			}`,
			wantClasses: []string{"grid", "mobile-only"},
		},
		{
			name:        "functional pseudo-classes",
			css:         ".list > :not(.hidden):is(.item, .row) { color: red; }",
			wantClasses: []string{"hidden", "item", "list", "row"},
		},
		{
			name:        "nested rules",
			css:         ".card { padding: 0; .card-title { x: y } &.is-active { x: y } } .after { }",
			wantClasses: []string{"after", "card", "card-title", "is-active"},
		},
		{
			name: "nested rules in nested at-rules",
			css: `.nav {
				color: red;
				@media (min-width: 600px) {
					& > .nav__item, .nav__link:hover { display: flex; }
				}
				.nav__icon { .nav__badge { top: 0 } }
			}`,
			wantClasses: []string{"nav", "nav__badge", "nav__icon", "nav__item", "nav__link"},
		},
		{
			name:        "stray dot before whitespace is not a class",
			css:         "a. b { color: red; }",
			wantClasses: []string{},
		},
		{
			name:        "declaration values are not selectors",
			css:         ".box { width: .5em; background: url(img/a.png); font: 12px/1.5 serif; }",
			wantClasses: []string{"box"},
		},
		{
			name:        "escaped identifiers",
			css:         `.sm\:flex { display: flex; } .w-1\/2 { width: 50%; }`,
			wantClasses: []string{"sm:flex", "w-1/2"},
		},
		{
			name: "imports in every form",
			css: `@charset "UTF-8";
			@import "./a.css";
			@import './b.css';
			@import url(c.css);
			@import url("d.css") screen and (min-width: 10px);
			.own { color: red; }`,
			wantClasses: []string{"own"},
			wantImports: []string{"./a.css", "./b.css", "c.css", "d.css"},
		},
		{
			name:        "empty stylesheet",
			css:         "",
			wantClasses: []string{},
		},
		{
			name:        "comments only",
			css:         "/* .not-a-class { } */",
			wantClasses: []string{},
		},
		{
			name:        "unclosed block keeps what was seen",
			css:         ".open { color: red;",
			wantClasses: []string{"open"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := ParseStylesheet([]byte(tt.css))
			require.NoError(t, err)
			assert.Equal(t, tt.wantClasses, sheet.Classes.Sorted())
			assert.Equal(t, tt.wantImports, sheet.Imports)
		})
	}
}

func TestParseStylesheet_RecoversAfterSyntaxError(t *testing.T) {
	sheet, err := ParseStylesheet([]byte(".a { color: red } } .b { color: blue }"))

	require.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, sheet.Classes.Sorted())
}

func TestParseStylesheet_GarbageDoesNotPanic(t *testing.T) {
	inputs := []string{
		"}}}} .b { color: red }",
		"@import ;",
		"@import",
		".",
		". {",
		"@media { .x { ",
		"\\",
		".a\\",
	}

	for _, in := range inputs {
		require.NotPanics(t, func() {
			_, _ = ParseStylesheet([]byte(in))
		}, "input %q", in)
	}
}

func TestUnescapeIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: `sm\:flex`, want: "sm:flex"},
		{in: `\31 0`, want: "10"},
		{in: `a\2e b`, want: "a.b"},
		{in: `trailing\`, want: `trailing\`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, unescapeIdent(tt.in))
		})
	}
}
