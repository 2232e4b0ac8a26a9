package classcomplete

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicalScanner(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "relative imports",
			text: "import \"./x.css\";\nimport Foo from \"./Foo\";\nimport \"../y.css\"",
			want: []string{"./x.css", "../y.css"},
		},
		{
			name: "duplicates kept in order",
			text: "import \"./a.css\";\nimport \"./b.css\";\nimport \"./a.css\";",
			want: []string{"./a.css", "./b.css", "./a.css"},
		},
		{
			name: "default import of a css module",
			text: `import styles from "./Button.module.css";`,
			want: []string{"./Button.module.css"},
		},
		{
			name: "commented out import still matches",
			text: `// import "./old.css";`,
			want: []string{"./old.css"},
		},
		{
			name: "single quotes are not seen",
			text: `import './x.css';`,
			want: nil,
		},
		{
			name: "windows line endings",
			text: "import \"./x.css\";\r\nimport \"./y.css\";\r\n",
			want: []string{"./x.css", "./y.css"},
		},
		{
			name: "no imports",
			text: "export const Button = () => <button className=\"btn\" />;",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LexicalScanner{}.Scan(tt.text))
		})
	}
}

func TestSyntaxScanner(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "relative imports",
			text: "import \"./x.css\";\nimport Foo from \"./Foo\";\nimport \"../y.css\"",
			want: []string{"./x.css", "../y.css"},
		},
		{
			name: "single quotes and css modules",
			text: "import styles from './Button.module.css';\nimport 'lib/theme.css';",
			want: []string{"./Button.module.css", "lib/theme.css"},
		},
		{
			name: "commented out import is ignored",
			text: "// import \"./old.css\";\nimport \"./new.css\";",
			want: []string{"./new.css"},
		},
		{
			name: "multi-line import",
			text: "import {\n  container,\n  header,\n} from \"./layout.module.css\";",
			want: []string{"./layout.module.css"},
		},
		{
			name: "string mentioning import is ignored",
			text: "const hint = \"import ./x.css\";\nexport default function App() { return <div className=\"app\" />; }",
			want: nil,
		},
	}

	scanner, err := NewSyntaxScanner(quietLogger)
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanner.Scan(tt.text))
		})
	}
}

func TestNewImportScanner(t *testing.T) {
	tests := []struct {
		name    string
		want    ImportScanner
		wantErr bool
	}{
		{name: "", want: LexicalScanner{}},
		{name: ScannerLexical, want: LexicalScanner{}},
		{name: "regex", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewImportScanner(tt.name, quietLogger)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := NewImportScanner(ScannerSyntax, quietLogger)
	require.NoError(t, err)
	require.IsType(t, &SyntaxScanner{}, got)
	assert.Same(t, quietLogger, got.(*SyntaxScanner).logger)
}

func TestSyntaxScanner_ConcurrentScans(t *testing.T) {
	scanner, err := NewSyntaxScanner(quietLogger)
	require.NoError(t, err)

	text := "import \"./a.css\";\nimport b from './b.module.css';\n"
	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = scanner.Scan(text)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, []string{"./a.css", "./b.module.css"}, got)
	}
}
