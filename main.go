package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/grayjack64/unityindex-mcp/ignore"
	"github.com/grayjack64/unityindex-mcp/index"
	"github.com/grayjack64/unityindex-mcp/scan"
	"github.com/grayjack64/unityindex-mcp/server"
	"github.com/grayjack64/unityindex-mcp/tools"
	"github.com/grayjack64/unityindex-mcp/watcher"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// stringList is a repeatable CLI flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ", ") }
func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	// Parse CLI flags
	var rootDir string
	var maxFileSizeBytes int64
	var logLevel string
	var logFile string
	var excludes stringList
	var extensions stringList

	flag.StringVar(&rootDir, "root", "", "Project root directory (default: current working directory)")
	flag.Var(&excludes, "exclude", "Extra ignore pattern (repeatable)")
	flag.Var(&extensions, "ext", "Recognized file extension, e.g. .cs (repeatable; default: .cs .js .shader .cginc)")
	flag.Int64Var(&maxFileSizeBytes, "max-file-size", 1024*1024, "Maximum file size in bytes (default: 1MB)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (default: unityindex-mcp.log in the root directory)")
	flag.Parse()

	// Resolve root directory
	if rootDir == "" {
		var err error
		rootDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
	}
	rootDir, _ = filepath.Abs(rootDir)

	if logFile == "" {
		logFile = filepath.Join(rootDir, "unityindex-mcp.log")
	}

	// Setup logger (always to file or stderr, never to stdout - stdout is for MCP stdio)
	logger := setupLogger(logLevel, logFile)

	logger.Info("starting unityindex-mcp",
		"root", rootDir,
		"maxFileSize", maxFileSizeBytes,
		"extensions", extensions.String(),
	)

	startTime := time.Now()

	ignoreMatcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:        rootDir,
		CustomPatterns: excludes,
	})

	codeIndex := index.New()
	defer codeIndex.Close()

	scanner := scan.New(scan.Config{
		RootDir:          rootDir,
		Extensions:       extensions,
		MaxFileSizeBytes: maxFileSizeBytes,
	}, ignoreMatcher, logger)

	// rebuildMu serializes rebuilds from the watcher and the reindex tool.
	var rebuildMu sync.Mutex
	rebuild := func(ctx context.Context) (scan.Stats, error) {
		rebuildMu.Lock()
		defer rebuildMu.Unlock()
		ignoreMatcher.Reload()
		return scanner.Rebuild(ctx, codeIndex)
	}

	// Perform initial indexing. A failure here is not fatal: the server still
	// starts with an empty index and reindex can be retried via the tool.
	if stats, err := rebuild(context.Background()); err != nil {
		logger.Error("initial indexing failed", "error", err)
	} else {
		logger.Info("initial indexing complete",
			"files", stats.Files,
			"totalSize", stats.TotalSizeBytes,
			"duration", stats.Duration,
		)
	}

	// Start file watcher; each settled change burst triggers a full rebuild
	fileWatcher, err := watcher.NewWatcher(rootDir, ignoreMatcher, logger)
	if err != nil {
		logger.Warn("failed to start file watcher, continuing without live updates", "error", err)
	} else {
		go fileWatcher.Start()
		go func() {
			for changeCount := range fileWatcher.RebuildRequests() {
				logger.Info("changes detected, rebuilding index", "changes", changeCount)
				if _, err := rebuild(context.Background()); err != nil {
					logger.Error("watcher-triggered rebuild failed", "error", err)
				}
			}
		}()
		defer fileWatcher.Close()
	}

	// Create tool handlers
	searchHandler := &tools.SearchHandler{Index: codeIndex, Logger: logger}
	symbolHandler := &tools.SymbolHandler{Index: codeIndex, Logger: logger}
	readHandler := &tools.ReadHandler{Index: codeIndex, Logger: logger}
	filesHandler := &tools.FilesHandler{Index: codeIndex, Logger: logger}
	importsHandler := &tools.ImportsHandler{Index: codeIndex, Logger: logger}
	statusHandler := &tools.StatusHandler{
		Index:     codeIndex,
		StartTime: startTime,
		RootDir:   rootDir,
		Logger:    logger,
	}
	reindexHandler := &tools.ReindexHandler{
		Logger: logger,
		DoReindex: func(ctx context.Context) (int, int64, string, error) {
			stats, err := rebuild(ctx)
			if err != nil {
				return 0, 0, "", err
			}
			elapsed := stats.Duration.Round(time.Millisecond).String()
			return stats.Files, stats.TotalSizeBytes, elapsed, nil
		},
	}

	// Setup and run MCP server on stdio
	mcpServer := server.Setup(
		searchHandler,
		symbolHandler,
		readHandler,
		filesHandler,
		importsHandler,
		statusHandler,
		reindexHandler,
	)

	logger.Info("MCP server starting on stdio")
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

// setupLogger creates an slog.Logger writing to stderr or a file.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			writer = os.Stderr
		} else {
			writer = f
		}
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
