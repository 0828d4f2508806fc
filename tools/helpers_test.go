package tools

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/grayjack64/unityindex-mcp/index"
	"github.com/grayjack64/unityindex-mcp/scan"
)

// newTestIndex builds a published index from path -> content pairs, running
// the real extractors so symbol and import tables are populated.
func newTestIndex(t *testing.T, files map[string]string) *index.Index {
	t.Helper()

	snap, err := index.NewSnapshot()
	if err != nil {
		t.Fatalf("failed to create snapshot: %v", err)
	}
	for path, content := range files {
		f := &index.SourceFile{
			Path:         "/project/" + path,
			RelativePath: path,
			Language:     "C#",
			SizeBytes:    int64(len(content)),
			Content:      content,
			Lines:        strings.Split(content, "\n"),
			Symbols:      scan.ExtractSymbols(content),
			Imports:      scan.ExtractImports(content),
		}
		if err := snap.Add(f); err != nil {
			t.Fatalf("failed to add %s: %v", path, err)
		}
	}
	snap.Seal()

	ix := index.New()
	ix.Publish(snap)
	t.Cleanup(func() { ix.Close() })
	return ix
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
