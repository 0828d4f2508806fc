package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/grayjack64/unityindex-mcp/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FilesArgs defines the input parameters for the unityindex_files tool.
type FilesArgs struct {
	Pattern    string `json:"pattern,omitempty" jsonschema:"Glob pattern to match files (e.g. **/*.cs or Assets/Scripts/**). Empty lists every analyzed file"`
	NameOnly   bool   `json:"nameOnly,omitempty" jsonschema:"If true return only file paths without metadata"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results to return (default 50)"`
}

// FilesHandler holds the dependencies for the files tool.
type FilesHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a unityindex_files request.
func (h *FilesHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args FilesArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	pattern := args.Pattern
	if pattern == "" {
		pattern = "**"
	}

	results, err := h.Index.GlobFiles(pattern, args.MaxResults)
	if err != nil {
		h.Logger.Error("unityindex_files failed", "pattern", pattern, "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Search error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("unityindex_files",
		"pattern", pattern,
		"results", len(results),
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatFileResults(results, args.NameOnly)}},
	}, nil, nil
}
