package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/grayjack64/unityindex-mcp/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchArgs defines the input parameters for the unityindex_search tool.
type SearchArgs struct {
	Query        string `json:"query" jsonschema:"Search text. Ranked mode matches it as a case-insensitive substring. Fulltext mode additionally understands quoted phrases and /regex/ queries"`
	Fulltext     bool   `json:"fulltext,omitempty" jsonschema:"Use the tokenized fulltext engine instead of ranked substring search"`
	FilePath     string `json:"filePath,omitempty" jsonschema:"Exact relative path to restrict a fulltext search to a single file (overrides fileGlob)"`
	FileGlob     string `json:"fileGlob,omitempty" jsonschema:"Glob pattern to filter files in fulltext mode (e.g. **/*.cs)"`
	MaxResults   int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results to return (default 20)"`
	ContextLines int    `json:"contextLines,omitempty" jsonschema:"Context lines around each fulltext match (default 2)"`
}

// SearchHandler holds the dependencies for the search tool.
type SearchHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a unityindex_search request.
func (h *SearchHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Query == "" {
		h.Logger.Warn("unityindex_search called with empty query")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: query parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	var output string
	if args.Fulltext {
		contextLines := args.ContextLines
		if contextLines == 0 {
			contextLines = 2
		}
		results, totalMatches, err := h.Index.Fulltext(index.FulltextOptions{
			Query:        args.Query,
			FilePath:     args.FilePath,
			FileGlob:     args.FileGlob,
			MaxResults:   args.MaxResults,
			ContextLines: contextLines,
		})
		if err != nil {
			h.Logger.Error("unityindex_search failed", "query", args.Query, "error", err)
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Search error: %v", err)}},
				IsError: true,
			}, nil, nil
		}
		output = FormatFulltextResults(results, totalMatches)
	} else {
		results := h.Index.Search(args.Query, args.MaxResults)
		output = FormatSearchResults(results)
	}

	h.Logger.Info("unityindex_search",
		"query", args.Query,
		"fulltext", args.Fulltext,
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output}},
	}, nil, nil
}
