package index

import (
	"fmt"
	"sort"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Snapshot is one complete generation of the index: every analyzed file with
// its content, symbol table, and import list, plus an in-memory Bleve index
// over the same content for fulltext queries. A snapshot is built by a single
// scan and becomes immutable once published.
type Snapshot struct {
	mu          sync.Mutex
	files       map[string]*SourceFile // key: relative path (forward slashes)
	sortedPaths []string
	fulltext    bleve.Index // nil on the empty pre-build snapshot
	sealed      bool
}

// bleveDocument is the document structure stored in Bleve.
type bleveDocument struct {
	Content  string `json:"content"`
	Path     string `json:"path"`
	Language string `json:"language"`
}

// buildIndexMapping creates the Bleve index mapping for source content.
func buildIndexMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	contentFieldMapping := bleve.NewTextFieldMapping()
	contentFieldMapping.Store = false // content lives on SourceFile, not in Bleve
	contentFieldMapping.IncludeInAll = true
	docMapping.AddFieldMappingsAt("content", contentFieldMapping)

	pathFieldMapping := bleve.NewTextFieldMapping()
	pathFieldMapping.Store = true
	pathFieldMapping.IncludeInAll = false
	docMapping.AddFieldMappingsAt("path", pathFieldMapping)

	langFieldMapping := bleve.NewKeywordFieldMapping()
	langFieldMapping.Store = true
	langFieldMapping.IncludeInAll = false
	docMapping.AddFieldMappingsAt("language", langFieldMapping)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// emptySnapshot backs a never-built Index so queries return empty results
// instead of erroring.
func emptySnapshot() *Snapshot {
	return &Snapshot{files: make(map[string]*SourceFile), sealed: true}
}

// NewSnapshot creates an empty snapshot ready to receive files from a scan.
func NewSnapshot() (*Snapshot, error) {
	bleveIndex, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating fulltext index: %w", err)
	}
	return &Snapshot{
		files:    make(map[string]*SourceFile),
		fulltext: bleveIndex,
	}, nil
}

// Add records one analyzed file. Content, symbol table, and import list land
// in a single critical section so a partially visible file can never be
// observed. Safe for concurrent use by scan workers.
func (s *Snapshot) Add(f *SourceFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		return fmt.Errorf("snapshot is sealed")
	}

	if _, exists := s.files[f.RelativePath]; !exists {
		s.sortedPaths = append(s.sortedPaths, f.RelativePath)
	}
	s.files[f.RelativePath] = f

	if s.fulltext != nil {
		doc := bleveDocument{
			Content:  f.Content,
			Path:     f.RelativePath,
			Language: f.Language,
		}
		if err := s.fulltext.Index(f.RelativePath, doc); err != nil {
			return fmt.Errorf("indexing content of %s: %w", f.RelativePath, err)
		}
	}
	return nil
}

// Seal sorts the path list and freezes the snapshot. Must be called before
// Publish so iteration order is deterministic.
func (s *Snapshot) Seal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	sort.Strings(s.sortedPaths)
	s.sealed = true
}

// FileCount returns the number of files added so far.
func (s *Snapshot) FileCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

// Close releases the snapshot's Bleve index.
func (s *Snapshot) Close() error {
	if s.fulltext == nil {
		return nil
	}
	return s.fulltext.Close()
}
