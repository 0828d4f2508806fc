package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func Test_StatusHandler_ReportsCounts(t *testing.T) {
	h := &StatusHandler{
		Index: newTestIndex(t, map[string]string{
			"Assets/Player.cs":    "class Player {}",
			"Assets/Enemy.cs":     "class Enemy {}",
			"Assets/Water.shader": "Shader {}",
		}),
		StartTime: time.Now().Add(-90 * time.Second),
		RootDir:   "/projects/game",
		Logger:    testLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, StatusArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success, got error result")
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "Root directory: /projects/game") {
		t.Errorf("expected root directory in output, got:\n%s", text)
	}
	if !strings.Contains(text, "Indexed files: 3") {
		t.Errorf("expected file count in output, got:\n%s", text)
	}
	if !strings.Contains(text, "Uptime: 1m30s") {
		t.Errorf("expected uptime in output, got:\n%s", text)
	}
	if !strings.Contains(text, "Languages:") {
		t.Errorf("expected language breakdown, got:\n%s", text)
	}
}

func Test_StatusHandler_EmptyIndex(t *testing.T) {
	h := &StatusHandler{
		Index:     newTestIndex(t, nil),
		StartTime: time.Now(),
		RootDir:   "/projects/game",
		Logger:    testLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, StatusArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "Indexed files: 0") {
		t.Errorf("expected zero file count, got:\n%s", text)
	}
	if strings.Contains(text, "Languages:") {
		t.Errorf("expected no language section for empty index, got:\n%s", text)
	}
}

func Test_formatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{90 * time.Second, "1m30s"},
		{3*time.Hour + 5*time.Minute, "3h5m"},
	}
	for _, c := range cases {
		if got := formatDuration(c.in); got != c.want {
			t.Errorf("formatDuration(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
