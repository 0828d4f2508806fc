package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func Test_ImportsHandler_ListsImports(t *testing.T) {
	h := &ImportsHandler{
		Index: newTestIndex(t, map[string]string{
			"Assets/UI.cs": "using UnityEngine;\nusing UnityEngine.UI;\n\nclass HUD {}",
		}),
		Logger: testLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, ImportsArgs{FilePath: "Assets/UI.cs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success, got error result")
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "UnityEngine.UI") {
		t.Errorf("expected imports in output, got:\n%s", text)
	}
}

func Test_ImportsHandler_NoImports(t *testing.T) {
	h := &ImportsHandler{
		Index:  newTestIndex(t, map[string]string{"a.cs": "class A {}"}),
		Logger: testLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, ImportsArgs{FilePath: "a.cs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("a file without imports is not an error")
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "No imports recorded") {
		t.Errorf("expected empty-imports message, got: %s", text)
	}
}

func Test_ImportsHandler_NotFound(t *testing.T) {
	h := &ImportsHandler{
		Index:  newTestIndex(t, map[string]string{"a.cs": "x"}),
		Logger: testLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, ImportsArgs{FilePath: "missing.cs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for unindexed file")
	}
}

func Test_ImportsHandler_EmptyPath(t *testing.T) {
	h := &ImportsHandler{Index: newTestIndex(t, nil), Logger: testLogger()}

	result, _, err := h.Handle(context.Background(), nil, ImportsArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for empty filePath")
	}
}
