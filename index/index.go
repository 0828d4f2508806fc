package index

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Index holds the current snapshot and serves all queries against it. A
// rebuild produces a fresh snapshot off to the side and publishes it
// atomically; queries either see the old generation or the new one, never a
// half-built state. Constructed explicitly and passed by reference — there is
// no package-level instance.
type Index struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// New creates an empty index. Queries against it return empty results until
// the first snapshot is published.
func New() *Index {
	return &Index{snap: emptySnapshot()}
}

// Publish swaps in a completed snapshot and releases the previous one.
// The snapshot must be sealed.
func (ix *Index) Publish(snap *Snapshot) {
	ix.mu.Lock()
	old := ix.snap
	ix.snap = snap
	ix.mu.Unlock()

	if old != nil {
		old.Close()
	}
}

// Close releases the current snapshot's resources.
func (ix *Index) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.snap.Close()
}

// normalizePath converts backslashes to forward slashes so Windows-style
// caller paths hit the index keys.
func normalizePath(relativePath string) string {
	return strings.ReplaceAll(relativePath, "\\", "/")
}

// GetFile returns the SourceFile for a relative path, or nil if not indexed.
func (ix *Index) GetFile(relativePath string) *SourceFile {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.snap.files[normalizePath(relativePath)]
}

// GetLineContent returns the content of one 1-based line. Returns ok=false
// for an unindexed file or an out-of-range line number, never an error.
func (ix *Index) GetLineContent(relativePath string, line int) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	f := ix.snap.files[normalizePath(relativePath)]
	if f == nil {
		return "", false
	}
	if line < 1 || line > len(f.Lines) {
		return "", false
	}
	return f.Lines[line-1], true
}

// GetFileContent returns the lines in the inclusive 1-based range
// [startLine, endLine] joined with newlines. endLine <= 0 means end of file;
// an end past the last line is clamped. Returns ok=false for an unindexed
// file or a start beyond the clamped end.
func (ix *Index) GetFileContent(relativePath string, startLine, endLine int) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	f := ix.snap.files[normalizePath(relativePath)]
	if f == nil {
		return "", false
	}

	lineCount := len(f.Lines)
	if endLine <= 0 || endLine > lineCount {
		endLine = lineCount
	}
	if startLine < 1 {
		startLine = 1
	}
	if startLine > endLine {
		return "", false
	}
	return strings.Join(f.Lines[startLine-1:endLine], "\n"), true
}

// Imports returns the recorded import list of a file in source order.
func (ix *Index) Imports(relativePath string) ([]string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	f := ix.snap.files[normalizePath(relativePath)]
	if f == nil {
		return nil, false
	}
	return f.Imports, true
}

// ListAnalyzedFiles returns the relative paths of every indexed file in
// sorted order.
func (ix *Index) ListAnalyzedFiles() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	paths := make([]string, len(ix.snap.sortedPaths))
	copy(paths, ix.snap.sortedPaths)
	return paths
}

// GlobFiles returns indexed files whose relative path matches a doublestar
// glob pattern, in sorted path order.
func (ix *Index) GlobFiles(pattern string, maxResults int) ([]*SourceFile, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if maxResults <= 0 {
		maxResults = 50
	}

	pattern = normalizePath(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	var results []*SourceFile
	for _, path := range ix.snap.sortedPaths {
		if len(results) >= maxResults {
			break
		}
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			continue
		}
		if matched {
			results = append(results, ix.snap.files[path])
		}
	}
	return results, nil
}

// FileCount returns the number of indexed files.
func (ix *Index) FileCount() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.snap.files)
}

// TotalSizeBytes returns the total size of all indexed files.
func (ix *Index) TotalSizeBytes() int64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var totalSize int64
	for _, f := range ix.snap.files {
		totalSize += f.SizeBytes
	}
	return totalSize
}

// SymbolCount returns the number of distinct symbol names recorded across
// all files.
func (ix *Index) SymbolCount() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	count := 0
	for _, f := range ix.snap.files {
		count += len(f.Symbols)
	}
	return count
}

// LanguageCounts returns a map of language -> file count.
func (ix *Index) LanguageCounts() map[string]int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	counts := make(map[string]int)
	for _, f := range ix.snap.files {
		counts[f.Language]++
	}
	return counts
}

// DocumentCount returns the number of documents in the fulltext index.
func (ix *Index) DocumentCount() uint64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if ix.snap.fulltext == nil {
		return 0
	}
	count, _ := ix.snap.fulltext.DocCount()
	return count
}
