package index

import "time"

// SourceFile is one analyzed file: the content snapshot taken at scan time
// plus everything derived from it. Replaced wholesale on rescan, never
// mutated afterwards.
type SourceFile struct {
	Path         string           // Absolute file path
	RelativePath string           // Path relative to project root (forward slashes)
	Language     string           // Detected language name
	SizeBytes    int64            // File size in bytes
	ModTime      time.Time        // Last modification time
	Content      string           // Full text at scan time
	Lines        []string         // Content split on newlines
	Symbols      map[string][]int // Symbol name -> 1-based declaration lines, scan order
	Imports      []string         // Imported module names in source order, duplicates kept
}

// SearchResult is a single query hit. Produced by Search and FindSymbol,
// never stored.
type SearchResult struct {
	RelativePath string
	LineNumber   int // 1-based
	LineText     string
	Score        float64
}
