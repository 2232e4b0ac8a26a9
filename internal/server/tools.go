package server

import "github.com/mark3labs/mcp-go/mcp"

func suggestClassnamesTool() mcp.Tool {
	return mcp.NewTool("suggest_classnames",
		mcp.WithDescription("Classnames available in a source document: global stylesheets first, then every stylesheet the document imports"),
		mcp.WithString("document_path", mcp.Required(), mcp.Description("Path of the source document, absolute or relative to the project root")),
		mcp.WithString("document_text", mcp.Description("Current document text; read from disk when omitted")),
		mcp.WithString("line_prefix", mcp.Description("Text of the cursor line up to the cursor; when set, nothing is returned unless the cursor is inside a className string")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func listClassnamesTool() mcp.Tool {
	return mcp.NewTool("list_classnames",
		mcp.WithDescription("Classnames defined by a stylesheet and everything it imports; the global classnames when no stylesheet is given"),
		mcp.WithString("stylesheet", mcp.Description("Path of the stylesheet, absolute or relative to the project root")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func stylesheetImportsTool() mcp.Tool {
	return mcp.NewTool("stylesheet_imports",
		mcp.WithDescription("Stylesheet imports of a source document with every candidate path and whether it exists"),
		mcp.WithString("document_path", mcp.Required(), mcp.Description("Path of the source document, absolute or relative to the project root")),
		mcp.WithString("document_text", mcp.Description("Current document text; read from disk when omitted")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}
