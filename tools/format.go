package tools

import (
	"fmt"
	"strings"

	"github.com/grayjack64/unityindex-mcp/index"
)

// FormatSearchResults formats ranked search results, one hit per line with
// its relevance score.
func FormatSearchResults(results []index.SearchResult) string {
	if len(results) == 0 {
		return "No matches found."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d matching lines:\n\n", len(results)))

	for _, result := range results {
		builder.WriteString(fmt.Sprintf("  %s:%d  [%.1f]  %s\n",
			result.RelativePath, result.LineNumber, result.Score, result.LineText))
	}

	return builder.String()
}

// FormatSymbolResults formats symbol lookup results grouped under the name.
func FormatSymbolResults(name string, results []index.SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("Symbol not found: %s", name)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Symbol %s declared at %d location(s):\n\n", name, len(results)))

	for _, result := range results {
		builder.WriteString(fmt.Sprintf("  %s:%d  %s\n",
			result.RelativePath, result.LineNumber, result.LineText))
	}

	return builder.String()
}

// FormatFulltextResults formats fulltext matches grouped by file with line
// numbers and optional context.
func FormatFulltextResults(results []index.FulltextResult, totalMatches int) string {
	if len(results) == 0 {
		return "No matches found."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d matches in %d files:\n\n", totalMatches, len(results)))

	for i, result := range results {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("── %s ──\n", result.RelativePath))

		for _, match := range result.Matches {
			for _, ctxLine := range match.ContextBefore {
				builder.WriteString(fmt.Sprintf("  %s\n", ctxLine))
			}
			builder.WriteString(fmt.Sprintf("  %d: %s\n", match.LineNumber, match.LineText))
			for _, ctxLine := range match.ContextAfter {
				builder.WriteString(fmt.Sprintf("  %s\n", ctxLine))
			}
		}
	}

	return builder.String()
}

// FormatFileResults formats file glob results as human-readable text.
func FormatFileResults(results []*index.SourceFile, nameOnly bool) string {
	if len(results) == 0 {
		return "No files matched."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d files:\n\n", len(results)))

	for _, f := range results {
		if nameOnly {
			builder.WriteString(f.RelativePath)
			builder.WriteString("\n")
		} else {
			builder.WriteString(fmt.Sprintf("  %s  (%s, %s, %d lines, %d symbols)\n",
				f.RelativePath,
				f.Language,
				formatFileSize(f.SizeBytes),
				len(f.Lines),
				len(f.Symbols),
			))
		}
	}

	return builder.String()
}

// FormatImports formats a file's import list in source order.
func FormatImports(filePath string, imports []string) string {
	if len(imports) == 0 {
		return fmt.Sprintf("No imports recorded for %s", filePath)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s imports %d module(s):\n\n", filePath, len(imports)))
	for _, name := range imports {
		builder.WriteString(fmt.Sprintf("  %s\n", name))
	}
	return builder.String()
}

// FormatFileContent formats file content with line numbers starting at the
// given first line. Output format: header line with path, then numbered lines.
func FormatFileContent(filePath string, content string, firstLine int) string {
	lines := strings.Split(content, "\n")

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("── %s (%d lines) ──\n", filePath, len(lines)))

	lastLine := firstLine + len(lines) - 1
	width := len(fmt.Sprintf("%d", lastLine))

	for i, line := range lines {
		builder.WriteString(fmt.Sprintf("%*d│ %s\n", width, firstLine+i, line))
	}

	return builder.String()
}

// formatFileSize converts bytes to a human-readable string.
func formatFileSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
