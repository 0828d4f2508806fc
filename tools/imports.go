package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/grayjack64/unityindex-mcp/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ImportsArgs defines the input parameters for the unityindex_imports tool.
type ImportsArgs struct {
	FilePath string `json:"filePath" jsonschema:"Relative file path whose import list to return (e.g. Assets/Scripts/Player.cs)"`
}

// ImportsHandler holds the dependencies for the imports tool.
type ImportsHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a unityindex_imports request.
func (h *ImportsHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ImportsArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.FilePath == "" {
		h.Logger.Warn("unityindex_imports called with empty filePath")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: filePath parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	imports, ok := h.Index.Imports(args.FilePath)
	if !ok {
		h.Logger.Info("unityindex_imports not found", "filePath", args.FilePath)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("File not found in index: %s", args.FilePath)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("unityindex_imports",
		"filePath", args.FilePath,
		"imports", len(imports),
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatImports(args.FilePath, imports)}},
	}, nil, nil
}
