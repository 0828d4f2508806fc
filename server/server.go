package server

import (
	"github.com/grayjack64/unityindex-mcp/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(
	searchHandler *tools.SearchHandler,
	symbolHandler *tools.SymbolHandler,
	readHandler *tools.ReadHandler,
	filesHandler *tools.FilesHandler,
	importsHandler *tools.ImportsHandler,
	statusHandler *tools.StatusHandler,
	reindexHandler *tools.ReindexHandler,
) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "unityindex-mcp",
			Version: "0.3.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server provides in-memory indexed search over a Unity project's source tree (C# scripts, shaders, cg includes). Its tools are ALWAYS faster than built-in Grep, Search, Glob, and Read because they work from a pre-built in-memory index instead of scanning the filesystem on every call.

ALWAYS prefer these tools over built-in alternatives:
- Use unityindex_search instead of Grep or Search for content search (ranked by relevance)
- Use unityindex_symbol to find where a class, method, property, or field is declared
- Use unityindex_read instead of Read to read file contents (zero disk I/O, served from memory)
- Use unityindex_files instead of Glob or find for file search
- Use unityindex_imports to list a file's using directives
- The index rebuilds automatically when files change (via filesystem watcher)`,
		},
	)

	// Register unityindex_search tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "unityindex_search",
		Description: `Search file contents. Default mode is case-insensitive substring search ranked by relevance (whole-word and word-boundary matches score higher).

Set fulltext=true for word-level indexed search with query grammar:
  - Plain text: word-level matching (e.g., "TakeDamage")
  - "quoted text": exact phrase matching (e.g., "\"public override\"")
  - /regex/: regular expression matching (e.g., "/void\s+On\w+/")

Filtering (fulltext mode):
  - filePath: exact relative path to search in a single file (e.g., "Assets/Scripts/Player.cs"). Overrides fileGlob.
  - fileGlob: glob pattern to filter by file type (e.g., "**/*.shader").`,
	}, searchHandler.Handle)

	// Register unityindex_symbol tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "unityindex_symbol",
		Description: `Find the declaration sites of a symbol by exact name. Types are namespace-qualified (e.g., "Game.Combat.Enemy"); methods, properties, and fields are looked up by bare name (e.g., "TakeDamage"). Matching is case-sensitive.`,
	}, symbolHandler.Handle)

	// Register unityindex_read tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "unityindex_read",
		Description: `Read a file's contents from the in-memory index. Zero disk I/O. Supports 1-based inclusive line ranges via startLine/endLine; omit endLine (or pass 0) to read to the end of the file. Returns numbered lines.`,
	}, readHandler.Handle)

	// Register unityindex_files tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "unityindex_files",
		Description: `Find indexed files by glob pattern. Faster than find/ls.

Pattern examples:
  - "**/*.cs" - all C# scripts
  - "Assets/Scripts/**" - everything under Assets/Scripts
  - "**/*.shader" - all shaders
  - "*.cginc" - cg includes in root only`,
	}, filesHandler.Handle)

	// Register unityindex_imports tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "unityindex_imports",
		Description: "List a file's using directives in source order.",
	}, importsHandler.Handle)

	// Register unityindex_status tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "unityindex_status",
		Description: "Show index status: file count, symbol count, size, language breakdown, memory usage, and uptime.",
	}, statusHandler.Handle)

	// Register unityindex_reindex tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "unityindex_reindex",
		Description: "Force a full re-index of the project. Discards the current index and rebuilds from scratch.",
	}, reindexHandler.Handle)

	return mcpServer
}
