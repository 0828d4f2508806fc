package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	gitignore "github.com/denormal/go-gitignore"
)

// Matcher determines whether a file path should be excluded from scanning.
// It combines default patterns, .gitignore rules, .aiignore rules, and custom
// caller-supplied patterns.
// Thread-safe: Reload() acquires a write lock, ShouldIgnore()/ShouldIgnoreDir()
// acquire a read lock.
type Matcher struct {
	mu             sync.RWMutex
	rootDir        string
	gitIgnore      gitignore.GitIgnore
	aiIgnore       gitignore.GitIgnore
	customPatterns []string
}

// MatcherOptions configures the ignore matcher.
type MatcherOptions struct {
	RootDir        string
	CustomPatterns []string
}

// NewMatcher creates an ignore matcher that checks default patterns,
// .gitignore, .aiignore, and custom patterns.
func NewMatcher(options MatcherOptions) *Matcher {
	matcher := &Matcher{
		rootDir:        options.RootDir,
		customPatterns: options.CustomPatterns,
	}

	matcher.gitIgnore = loadIgnoreFile(filepath.Join(options.RootDir, ".gitignore"), options.RootDir)
	matcher.aiIgnore = loadIgnoreFile(filepath.Join(options.RootDir, ".aiignore"), options.RootDir)

	return matcher
}

// ShouldIgnore returns true if the given path should be excluded from scanning.
// The path should be absolute or relative to the root directory.
func (m *Matcher) ShouldIgnore(absolutePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		relativePath = absolutePath
	}
	relativePath = filepath.ToSlash(relativePath)

	if m.matchesDefaultPatterns(relativePath, absolutePath) {
		return true
	}

	// gitignore matching distinguishes files from directories
	isDir := false
	if info, err := os.Stat(absolutePath); err == nil {
		isDir = info.IsDir()
	}

	if m.gitIgnore != nil {
		match := m.gitIgnore.Relative(relativePath, isDir)
		if match != nil && match.Ignore() {
			return true
		}
	}

	if m.aiIgnore != nil {
		match := m.aiIgnore.Relative(relativePath, isDir)
		if match != nil && match.Ignore() {
			return true
		}
	}

	return m.matchesCustomPatterns(relativePath)
}

// ShouldIgnoreDir returns true if a directory should be skipped entirely
// during traversal.
func (m *Matcher) ShouldIgnoreDir(absolutePath string) bool {
	dirName := filepath.Base(absolutePath)

	// Fast check for directories that are always skipped (no lock needed)
	switch dirName {
	case ".git", ".svn", ".hg",
		"Library", "Temp", "Obj", "obj", "Build", "Builds",
		"Logs", "UserSettings", "MemoryCaptures",
		".idea", ".vscode", ".vs", "node_modules":
		return true
	}

	return m.ShouldIgnore(absolutePath)
}

// matchesDefaultPatterns checks if the path matches any hardcoded default
// ignore pattern.
func (m *Matcher) matchesDefaultPatterns(relativePath string, absolutePath string) bool {
	baseName := filepath.Base(absolutePath)
	baseNameLower := strings.ToLower(baseName)

	for _, pattern := range DefaultIgnorePatterns {
		// Plain name (no glob): check basename and every path component
		if !strings.ContainsAny(pattern, "*?[") {
			if baseNameLower == strings.ToLower(pattern) {
				return true
			}
			parts := strings.Split(relativePath, "/")
			for _, part := range parts {
				if strings.EqualFold(part, pattern) {
					return true
				}
			}
			continue
		}

		// Glob pattern: match against basename, then full relative path
		matched, err := filepath.Match(strings.ToLower(pattern), baseNameLower)
		if err == nil && matched {
			return true
		}
		matched, err = filepath.Match(strings.ToLower(pattern), strings.ToLower(relativePath))
		if err == nil && matched {
			return true
		}
	}
	return false
}

// matchesCustomPatterns checks if the path matches any caller-provided
// exclude pattern.
func (m *Matcher) matchesCustomPatterns(relativePath string) bool {
	for _, pattern := range m.customPatterns {
		matched, err := filepath.Match(pattern, relativePath)
		if err == nil && matched {
			return true
		}

		baseName := filepath.Base(relativePath)
		matched, err = filepath.Match(pattern, baseName)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// Reload re-reads .gitignore and .aiignore from disk. Called before a rebuild
// so edited ignore rules take effect on the next scan.
func (m *Matcher) Reload() {
	newGitIgnore := loadIgnoreFile(filepath.Join(m.rootDir, ".gitignore"), m.rootDir)
	newAiIgnore := loadIgnoreFile(filepath.Join(m.rootDir, ".aiignore"), m.rootDir)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.gitIgnore = newGitIgnore
	m.aiIgnore = newAiIgnore
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from it.
// Uses the io.Reader form so the file handle is closed promptly on Windows.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}
