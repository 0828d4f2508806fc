package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/grayjack64/unityindex-mcp/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SymbolArgs defines the input parameters for the unityindex_symbol tool.
type SymbolArgs struct {
	Name string `json:"name" jsonschema:"Exact symbol name. Types are namespace-qualified (e.g. Game.Player), methods, properties, and fields are bare (e.g. TakeDamage)"`
}

// SymbolHandler holds the dependencies for the symbol lookup tool.
type SymbolHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a unityindex_symbol request.
func (h *SymbolHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SymbolArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Name == "" {
		h.Logger.Warn("unityindex_symbol called with empty name")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: name parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	results := h.Index.FindSymbol(args.Name)

	h.Logger.Info("unityindex_symbol",
		"name", args.Name,
		"results", len(results),
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatSymbolResults(args.Name, results)}},
	}, nil, nil
}
