package classcomplete

import (
	"encoding/json"
	"io"
	"time"
)

// jsonSchemaVersion is bumped on incompatible changes to the JSON output
const jsonSchemaVersion = "1.0"

// JSONSuggestions is the JSON export of a suggest request
type JSONSuggestions struct {
	Version    string   `json:"version"`
	Timestamp  string   `json:"timestamp"`
	Document   string   `json:"document"`
	Count      int      `json:"count"`
	Classnames []string `json:"classnames"`
}

// JSONClasses is the JSON export of stylesheet classnames
type JSONClasses struct {
	Version     string           `json:"version"`
	Timestamp   string           `json:"timestamp"`
	Stylesheets []JSONStylesheet `json:"stylesheets"`
}

// JSONStylesheet lists the classnames reachable from one stylesheet
type JSONStylesheet struct {
	Path       string   `json:"path"`
	Count      int      `json:"count"`
	Classnames []string `json:"classnames"`
}

// JSONImports is the JSON export of a document's stylesheet imports
type JSONImports struct {
	Version   string           `json:"version"`
	Timestamp string           `json:"timestamp"`
	Document  string           `json:"document"`
	Imports   []ResolvedImport `json:"imports"`
}

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func buildSuggestionsJSON(document string, suggestions []string) JSONSuggestions {
	if suggestions == nil {
		suggestions = []string{}
	}
	return JSONSuggestions{
		Version:    jsonSchemaVersion,
		Timestamp:  time.Now().Format(time.RFC3339),
		Document:   document,
		Count:      len(suggestions),
		Classnames: suggestions,
	}
}

func buildClassesJSON(sheets []StylesheetClasses) JSONClasses {
	out := make([]JSONStylesheet, len(sheets))
	for i, sheet := range sheets {
		out[i] = JSONStylesheet{
			Path:       sheet.Path,
			Count:      len(sheet.Classes),
			Classnames: sheet.Classes.Sorted(),
		}
	}
	return JSONClasses{
		Version:     jsonSchemaVersion,
		Timestamp:   time.Now().Format(time.RFC3339),
		Stylesheets: out,
	}
}

func buildImportsJSON(document string, imports []ResolvedImport) JSONImports {
	if imports == nil {
		imports = []ResolvedImport{}
	}
	return JSONImports{
		Version:   jsonSchemaVersion,
		Timestamp: time.Now().Format(time.RFC3339),
		Document:  document,
		Imports:   imports,
	}
}
