package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/grayjack64/unityindex-mcp/ignore"
	"github.com/grayjack64/unityindex-mcp/index"
	"github.com/grayjack64/unityindex-mcp/language"
)

const (
	defaultWorkers          = 8
	defaultYieldEvery       = 50
	defaultMaxFileSizeBytes = 1024 * 1024
)

// Config holds the scanner settings.
type Config struct {
	RootDir          string
	Extensions       []string // recognized source suffixes; empty means language.DefaultExtensions
	MaxFileSizeBytes int64    // per-file size cap, default 1MB
	Workers          int      // parallel file analyzers, default 8
	YieldEvery       int      // cooperative yield cadence in files, default 50
}

// Stats summarizes one completed rebuild.
type Stats struct {
	Files          int
	TotalSizeBytes int64
	Duration       time.Duration
}

// Scanner walks the project tree and builds index snapshots. Per-file
// analysis runs on a small worker pool; all index mutations funnel through
// the snapshot's single critical section.
type Scanner struct {
	cfg        Config
	recognized map[string]bool
	matcher    *ignore.Matcher
	logger     *slog.Logger
}

// New creates a scanner for the given root. Zero-value config fields take
// their defaults.
func New(cfg Config, matcher *ignore.Matcher, logger *slog.Logger) *Scanner {
	if cfg.MaxFileSizeBytes <= 0 {
		cfg.MaxFileSizeBytes = defaultMaxFileSizeBytes
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.YieldEvery <= 0 {
		cfg.YieldEvery = defaultYieldEvery
	}
	return &Scanner{
		cfg:        cfg,
		recognized: language.RecognizedSet(cfg.Extensions),
		matcher:    matcher,
		logger:     logger,
	}
}

// Rebuild performs a full clear-and-rescan: it walks the root, analyzes every
// recognized file into a fresh snapshot, and publishes the snapshot to the
// target index only when the scan completes. On a configuration error or
// cancellation the target keeps its previous generation. A failing file is
// logged and skipped, never fatal.
func (s *Scanner) Rebuild(ctx context.Context, target *index.Index) (Stats, error) {
	start := time.Now()

	info, err := os.Stat(s.cfg.RootDir)
	if err != nil {
		return Stats{}, fmt.Errorf("scan root %s: %w", s.cfg.RootDir, err)
	}
	if !info.IsDir() {
		return Stats{}, fmt.Errorf("scan root %s: not a directory", s.cfg.RootDir)
	}

	snap, err := index.NewSnapshot()
	if err != nil {
		return Stats{}, err
	}

	var indexedCount int
	var totalSize int64
	var mu sync.Mutex

	type scanJob struct {
		path    string
		relPath string
		info    os.FileInfo
	}
	jobs := make(chan scanJob, 100)

	var wg sync.WaitGroup
	for i := 0; i < s.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				f, err := s.analyzeFile(job.path, job.relPath, job.info)
				if err != nil {
					s.logger.Debug("skipped file", "path", job.relPath, "error", err)
					continue
				}
				if err := snap.Add(f); err != nil {
					s.logger.Debug("skipped file", "path", job.relPath, "error", err)
					continue
				}
				mu.Lock()
				indexedCount++
				totalSize += job.info.Size()
				mu.Unlock()
			}
		}()
	}

	seen := 0
	walkErr := filepath.WalkDir(s.cfg.RootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != s.cfg.RootDir && s.matcher.ShouldIgnoreDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !language.IsRecognized(path, s.recognized) {
			return nil
		}
		if s.matcher.ShouldIgnore(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() > s.cfg.MaxFileSizeBytes {
			s.logger.Debug("skipped oversized file", "path", path, "size", info.Size())
			return nil
		}

		relPath, _ := filepath.Rel(s.cfg.RootDir, path)
		relPath = filepath.ToSlash(relPath)
		jobs <- scanJob{path: path, relPath: relPath, info: info}

		// Cooperative yield so a single-threaded host stays responsive.
		// Cancellation is only checked here, at the per-file boundary.
		seen++
		if seen%s.cfg.YieldEvery == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				runtime.Gosched()
			}
		}
		return nil
	})

	close(jobs)
	wg.Wait()

	if walkErr != nil {
		snap.Close()
		return Stats{}, fmt.Errorf("scan aborted: %w", walkErr)
	}

	snap.Seal()
	target.Publish(snap)

	stats := Stats{
		Files:          indexedCount,
		TotalSizeBytes: totalSize,
		Duration:       time.Since(start),
	}
	s.logger.Info("rebuild complete",
		"files", stats.Files,
		"totalSize", stats.TotalSizeBytes,
		"duration", stats.Duration,
	)
	return stats, nil
}

// analyzeFile reads one file and derives its content snapshot, symbol table,
// and import list.
func (s *Scanner) analyzeFile(absolutePath, relativePath string, info os.FileInfo) (*index.SourceFile, error) {
	data, err := readFileWithRetry(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if language.IsBinaryContent(data) {
		return nil, fmt.Errorf("binary file")
	}

	content := string(data)
	return &index.SourceFile{
		Path:         absolutePath,
		RelativePath: relativePath,
		Language:     language.DetectLanguage(absolutePath),
		SizeBytes:    info.Size(),
		ModTime:      info.ModTime(),
		Content:      content,
		Lines:        strings.Split(content, "\n"),
		Symbols:      ExtractSymbols(content),
		Imports:      ExtractImports(content),
	}, nil
}

// readFileWithRetry attempts to read a file, retrying once after a short
// delay if the file is locked (common on Windows when editors are saving).
func readFileWithRetry(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		time.Sleep(50 * time.Millisecond)
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}
