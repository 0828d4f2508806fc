package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/grayjack64/unityindex-mcp/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReadArgs defines the input parameters for the unityindex_read tool.
type ReadArgs struct {
	FilePath  string `json:"filePath" jsonschema:"Relative file path to read from the index (e.g. Assets/Scripts/Player.cs)"`
	StartLine int    `json:"startLine,omitempty" jsonschema:"First line to return, 1-based (default 1)"`
	EndLine   int    `json:"endLine,omitempty" jsonschema:"Last line to return, inclusive (default end of file)"`
}

// ReadHandler holds the dependencies for the read tool.
type ReadHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a unityindex_read request.
func (h *ReadHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ReadArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.FilePath == "" {
		h.Logger.Warn("unityindex_read called with empty filePath")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: filePath parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	startLine := args.StartLine
	if startLine < 1 {
		startLine = 1
	}
	content, ok := h.Index.GetFileContent(args.FilePath, startLine, args.EndLine)
	if !ok {
		h.Logger.Info("unityindex_read not found", "filePath", args.FilePath)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("File not found in index: %s", args.FilePath)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("unityindex_read", "filePath", args.FilePath, "elapsed", time.Since(start))

	output := FormatFileContent(args.FilePath, content, startLine)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output}},
	}, nil, nil
}
