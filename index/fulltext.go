package index

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/bmatcuk/doublestar/v4"
)

// FulltextOptions configures a fulltext query against the Bleve layer.
type FulltextOptions struct {
	Query        string
	FilePath     string // exact relative path, overrides FileGlob
	FileGlob     string
	MaxResults   int
	ContextLines int
}

// FulltextResult groups the matching lines of one file.
type FulltextResult struct {
	RelativePath string
	Matches      []LineMatch
}

// LineMatch is a single matching line with optional surrounding context.
type LineMatch struct {
	LineNumber    int
	LineText      string
	ContextBefore []string
	ContextAfter  []string
}

// Fulltext runs a tokenized query through the Bleve index and recovers the
// matching lines from stored content. Unlike Search, which is a pure
// substring scan with relevance scoring, this path understands the richer
// query grammar:
//   - Plain text: match query (word-level matching)
//   - "quoted text": phrase query (exact phrase match)
//   - /regex/: regexp query
func (ix *Index) Fulltext(options FulltextOptions) ([]FulltextResult, int, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if ix.snap.fulltext == nil {
		return nil, 0, nil
	}
	if options.MaxResults <= 0 {
		options.MaxResults = DefaultMaxResults
	}
	if options.ContextLines < 0 {
		options.ContextLines = 0
	}

	searchRequest := bleve.NewSearchRequest(buildQuery(options.Query))
	searchRequest.Size = options.MaxResults * 5 // over-fetch, we filter and group by file
	searchRequest.Fields = []string{"path", "language"}

	searchResults, err := ix.snap.fulltext.Search(searchRequest)
	if err != nil {
		return nil, 0, fmt.Errorf("fulltext query: %w", err)
	}

	resultMap := make(map[string]*FulltextResult)
	var orderedPaths []string
	totalMatches := 0

	normalizedFilePath := normalizePath(options.FilePath)

	for _, hit := range searchResults.Hits {
		relativePath := hit.ID
		f, ok := ix.snap.files[relativePath]
		if !ok {
			continue
		}

		if normalizedFilePath != "" {
			if relativePath != normalizedFilePath {
				continue
			}
		} else if options.FileGlob != "" {
			matched, matchErr := doublestar.Match(normalizePath(options.FileGlob), relativePath)
			if matchErr != nil || !matched {
				continue
			}
		}

		lineMatches := findMatchingLines(f.Lines, options.Query, options.ContextLines)
		if len(lineMatches) == 0 {
			continue
		}
		totalMatches += len(lineMatches)

		if _, exists := resultMap[relativePath]; !exists {
			resultMap[relativePath] = &FulltextResult{RelativePath: relativePath}
			orderedPaths = append(orderedPaths, relativePath)
		}
		resultMap[relativePath].Matches = append(resultMap[relativePath].Matches, lineMatches...)

		if len(orderedPaths) >= options.MaxResults {
			break
		}
	}

	results := make([]FulltextResult, 0, len(orderedPaths))
	for _, path := range orderedPaths {
		results = append(results, *resultMap[path])
	}
	return results, totalMatches, nil
}

// buildQuery parses the query string into a Bleve query.
func buildQuery(queryString string) query.Query {
	queryString = strings.TrimSpace(queryString)

	if strings.HasPrefix(queryString, "/") && strings.HasSuffix(queryString, "/") && len(queryString) > 2 {
		return bleve.NewRegexpQuery(queryString[1 : len(queryString)-1])
	}
	if strings.HasPrefix(queryString, "\"") && strings.HasSuffix(queryString, "\"") && len(queryString) > 2 {
		return bleve.NewMatchPhraseQuery(queryString[1 : len(queryString)-1])
	}
	return bleve.NewMatchQuery(queryString)
}

// findMatchingLines scans stored lines for the raw search term and collects
// context lines around each hit.
func findMatchingLines(lines []string, queryString string, contextLines int) []LineMatch {
	searchTermLower := strings.ToLower(extractSearchTerm(queryString))

	var matches []LineMatch
	for lineIdx, line := range lines {
		if !strings.Contains(strings.ToLower(line), searchTermLower) {
			continue
		}

		match := LineMatch{
			LineNumber: lineIdx + 1,
			LineText:   line,
		}

		if contextLines > 0 {
			startCtx := lineIdx - contextLines
			if startCtx < 0 {
				startCtx = 0
			}
			match.ContextBefore = append(match.ContextBefore, lines[startCtx:lineIdx]...)

			endCtx := lineIdx + contextLines + 1
			if endCtx > len(lines) {
				endCtx = len(lines)
			}
			match.ContextAfter = append(match.ContextAfter, lines[lineIdx+1:endCtx]...)
		}

		matches = append(matches, match)
	}
	return matches
}

// extractSearchTerm strips query syntax to get the raw term for line matching.
func extractSearchTerm(queryString string) string {
	queryString = strings.TrimSpace(queryString)

	if strings.HasPrefix(queryString, "/") && strings.HasSuffix(queryString, "/") && len(queryString) > 2 {
		return queryString[1 : len(queryString)-1]
	}
	if strings.HasPrefix(queryString, "\"") && strings.HasSuffix(queryString, "\"") && len(queryString) > 2 {
		return queryString[1 : len(queryString)-1]
	}
	return queryString
}
