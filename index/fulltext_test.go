package index

import (
	"testing"
)

func Test_Fulltext_WordMatch(t *testing.T) {
	ix := newTestIndex(t, map[string]string{
		"Assets/Player.cs": "using UnityEngine;\n\npublic class Player {\n    void Respawn() {}\n}",
	})

	results, totalMatches, err := ix.Fulltext(FulltextOptions{Query: "Respawn", MaxResults: 10})
	if err != nil {
		t.Fatalf("fulltext error: %v", err)
	}
	if len(results) == 0 || totalMatches == 0 {
		t.Fatal("expected at least one fulltext match")
	}
	if results[0].RelativePath != "Assets/Player.cs" {
		t.Errorf("unexpected path: %s", results[0].RelativePath)
	}
	if results[0].Matches[0].LineNumber != 4 {
		t.Errorf("expected line 4, got %d", results[0].Matches[0].LineNumber)
	}
}

func Test_Fulltext_PhraseQuery(t *testing.T) {
	ix := newTestIndex(t, map[string]string{
		"a.cs": "public void spawn enemy wave() {}",
	})

	results, _, err := ix.Fulltext(FulltextOptions{Query: `"enemy wave"`, MaxResults: 10})
	if err != nil {
		t.Fatalf("fulltext error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected phrase match")
	}
}

func Test_Fulltext_GlobFilter(t *testing.T) {
	ix := newTestIndex(t, map[string]string{
		"Assets/Player.cs":            "respawn logic",
		"Assets/Shaders/Water.shader": "respawn comment",
	})

	results, _, err := ix.Fulltext(FulltextOptions{
		Query:      "respawn",
		FileGlob:   "**/*.cs",
		MaxResults: 10,
	})
	if err != nil {
		t.Fatalf("fulltext error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 file after glob filter, got %d", len(results))
	}
	if results[0].RelativePath != "Assets/Player.cs" {
		t.Errorf("unexpected path: %s", results[0].RelativePath)
	}
}

func Test_Fulltext_FilePathFilter(t *testing.T) {
	ix := newTestIndex(t, map[string]string{
		"a.cs": "target here",
		"b.cs": "target there",
	})

	results, _, err := ix.Fulltext(FulltextOptions{
		Query:      "target",
		FilePath:   "b.cs",
		MaxResults: 10,
	})
	if err != nil {
		t.Fatalf("fulltext error: %v", err)
	}
	if len(results) != 1 || results[0].RelativePath != "b.cs" {
		t.Fatalf("expected only b.cs, got %v results", len(results))
	}
}

func Test_Fulltext_ContextLines(t *testing.T) {
	ix := newTestIndex(t, map[string]string{
		"a.cs": "line1\nline2\nline3 target\nline4\nline5",
	})

	results, _, err := ix.Fulltext(FulltextOptions{
		Query:        "target",
		MaxResults:   10,
		ContextLines: 1,
	})
	if err != nil {
		t.Fatalf("fulltext error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected results")
	}

	match := results[0].Matches[0]
	if match.LineNumber != 3 {
		t.Errorf("expected line 3, got %d", match.LineNumber)
	}
	if len(match.ContextBefore) != 1 || match.ContextBefore[0] != "line2" {
		t.Errorf("unexpected context before: %v", match.ContextBefore)
	}
	if len(match.ContextAfter) != 1 || match.ContextAfter[0] != "line4" {
		t.Errorf("unexpected context after: %v", match.ContextAfter)
	}
}

func Test_Fulltext_EmptyIndex(t *testing.T) {
	ix := New()

	results, totalMatches, err := ix.Fulltext(FulltextOptions{Query: "anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 || totalMatches != 0 {
		t.Error("expected empty results on never-built index")
	}
}
