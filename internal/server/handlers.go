package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/yacobolo/classcomplete"
)

type suggestionsResponse struct {
	Document   string   `json:"document"`
	Triggered  bool     `json:"triggered"`
	Count      int      `json:"count"`
	Classnames []string `json:"classnames"`
}

type classnamesResponse struct {
	Stylesheets []string `json:"stylesheets"`
	Count       int      `json:"count"`
	Classnames  []string `json:"classnames"`
}

type importsResponse struct {
	Document string                         `json:"document"`
	Imports  []classcomplete.ResolvedImport `json:"imports"`
}

func (s *Server) handleSuggestClassnames(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docPath, err := req.RequireString("document_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	docText, err := s.documentText(docPath, req.GetString("document_text", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp := suggestionsResponse{Document: docPath, Triggered: true}
	if linePrefix := req.GetString("line_prefix", ""); linePrefix != "" {
		suggestions, err := s.provider.Complete(ctx, classcomplete.Request{
			LinePrefix:   linePrefix,
			DocumentPath: docPath,
			DocumentText: docText,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		resp.Triggered = classcomplete.ShouldTrigger(linePrefix)
		resp.Classnames = suggestions
	} else {
		resp.Classnames = s.provider.Suggest(docPath, docText)
	}

	if resp.Classnames == nil {
		resp.Classnames = []string{}
	}
	resp.Count = len(resp.Classnames)
	return jsonResult(resp)
}

func (s *Server) handleListClassnames(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var resp classnamesResponse

	if stylesheet := req.GetString("stylesheet", ""); stylesheet != "" {
		resp.Stylesheets = []string{stylesheet}
		resp.Classnames = s.provider.Classnames(stylesheet).Sorted()
	} else {
		resp.Stylesheets = s.provider.GlobalStylesheets()
		resp.Classnames = s.provider.Globals().Sorted()
	}

	resp.Count = len(resp.Classnames)
	return jsonResult(resp)
}

func (s *Server) handleStylesheetImports(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docPath, err := req.RequireString("document_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	docText, err := s.documentText(docPath, req.GetString("document_text", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	imports := s.provider.Imports(docPath, docText)
	if imports == nil {
		imports = []classcomplete.ResolvedImport{}
	}
	return jsonResult(importsResponse{Document: docPath, Imports: imports})
}

// documentText returns text, or the document's content on disk when text is empty
func (s *Server) documentText(docPath, text string) (string, error) {
	if text != "" {
		return text, nil
	}
	p := docPath
	if !filepath.IsAbs(p) {
		p = filepath.Join(s.provider.Root(), p)
	}
	// #nosec G304 - documents come from the user's own project
	content, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(content), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
