// Package classcomplete suggests CSS class names for editor autocomplete.
//
// It reads the stylesheets a source document imports, follows their @import
// chains, and returns every class name they define together with a fixed set
// of global class names. Parsed stylesheets are cached and re-parsed only when
// a file they were built from changes on disk.
//
// # Completion
//
//	provider, err := classcomplete.New(classcomplete.Config{
//		Root:              "/path/to/project",
//		GlobalCSS:         []string{"src/global.css"},
//		ModuleSearchPaths: []string{"node_modules", "src"},
//	})
//	suggestions, err := provider.Complete(ctx, classcomplete.Request{
//		LinePrefix:   `<div className="btn `,
//		DocumentPath: "/path/to/project/src/Button.tsx",
//		DocumentText: source,
//	})
//
// # CLI Tool
//
// classcomplete also provides a CLI and an MCP server. Install with:
//
//	go install github.com/yacobolo/classcomplete/cmd/classcomplete@latest
package classcomplete
