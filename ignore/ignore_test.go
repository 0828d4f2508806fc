package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Matcher_DefaultPatterns_LibraryDir(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	libPath := filepath.Join(tmpDir, "Library", "PackageCache", "some.dll")
	if !matcher.ShouldIgnore(libPath) {
		t.Error("expected Library files to be ignored")
	}
}

func Test_Matcher_DefaultPatterns_GitDir(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	gitPath := filepath.Join(tmpDir, ".git", "config")
	if !matcher.ShouldIgnore(gitPath) {
		t.Error("expected .git files to be ignored")
	}
}

func Test_Matcher_DefaultPatterns_MetaFiles(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	metaPath := filepath.Join(tmpDir, "Assets", "Player.cs.meta")
	if !matcher.ShouldIgnore(metaPath) {
		t.Error("expected .meta files to be ignored")
	}
}

func Test_Matcher_DefaultPatterns_AllowsSourceFiles(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	csPath := filepath.Join(tmpDir, "Assets", "Scripts", "Player.cs")
	if matcher.ShouldIgnore(csPath) {
		t.Error("expected .cs files to NOT be ignored")
	}

	shaderPath := filepath.Join(tmpDir, "Assets", "Shaders", "Water.shader")
	if matcher.ShouldIgnore(shaderPath) {
		t.Error("expected .shader files to NOT be ignored")
	}
}

func Test_Matcher_GitignoreIntegration(t *testing.T) {
	tmpDir := t.TempDir()

	gitignoreContent := "*.generated.cs\nsecret/\n"
	os.WriteFile(filepath.Join(tmpDir, ".gitignore"), []byte(gitignoreContent), 0644)

	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	generatedPath := filepath.Join(tmpDir, "Models.generated.cs")
	if !matcher.ShouldIgnore(generatedPath) {
		t.Error("expected .gitignore pattern to ignore *.generated.cs")
	}

	normalPath := filepath.Join(tmpDir, "Models.cs")
	if matcher.ShouldIgnore(normalPath) {
		t.Error("expected normal .cs files to NOT be ignored by .gitignore")
	}
}

func Test_Matcher_AiignoreIntegration(t *testing.T) {
	tmpDir := t.TempDir()

	aiignoreContent := "Assets/ThirdParty/\n*.draft.cs\n"
	os.WriteFile(filepath.Join(tmpDir, ".aiignore"), []byte(aiignoreContent), 0644)

	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	draftPath := filepath.Join(tmpDir, "Prototype.draft.cs")
	if !matcher.ShouldIgnore(draftPath) {
		t.Error("expected .aiignore pattern to ignore *.draft.cs")
	}
}

func Test_Matcher_CustomPatterns(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{
		RootDir:        tmpDir,
		CustomPatterns: []string{"*.custom"},
	})

	customPath := filepath.Join(tmpDir, "data.custom")
	if !matcher.ShouldIgnore(customPath) {
		t.Error("expected custom pattern to ignore *.custom files")
	}
}

func Test_Matcher_ShouldIgnoreDir(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	tests := []struct {
		dirName string
		ignored bool
	}{
		{".git", true},
		{"Library", true},
		{"Temp", true},
		{"obj", true},
		{".idea", true},
		{"Assets", false},
		{"Packages", false},
	}

	for _, tt := range tests {
		dirPath := filepath.Join(tmpDir, tt.dirName)
		got := matcher.ShouldIgnoreDir(dirPath)
		if got != tt.ignored {
			t.Errorf("ShouldIgnoreDir(%s) = %v, want %v", tt.dirName, got, tt.ignored)
		}
	}
}

func Test_Matcher_Reload(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	excludedPath := filepath.Join(tmpDir, "Legacy.cs")
	if matcher.ShouldIgnore(excludedPath) {
		t.Fatal("Legacy.cs should not be ignored before .gitignore exists")
	}

	os.WriteFile(filepath.Join(tmpDir, ".gitignore"), []byte("Legacy.cs\n"), 0644)
	matcher.Reload()

	if !matcher.ShouldIgnore(excludedPath) {
		t.Error("expected reloaded .gitignore to take effect")
	}
}
