package index

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Relevance scoring constants. Every matching line starts at the base score;
// bonuses stack on top of it.
const (
	baseScore         = 10.0
	wholeWordBonus    = 5.0 // query equals a whitespace-delimited token
	wordBoundaryBonus = 3.0 // query matches at a \b word boundary
	occurrenceBonus   = 2.0 // per non-overlapping occurrence on the line
	symbolScore       = 100.0
)

// DefaultMaxResults caps a search when the caller passes no limit.
const DefaultMaxResults = 20

// Search performs a case-insensitive substring search across every indexed
// file. Matching lines are scored for relevance and returned in descending
// score order; ties keep discovery order. Collection stops once maxResults
// lines have been found, even mid-file — a cheap early exit, not a fairness
// guarantee across files.
func (ix *Index) Search(query string, maxResults int) []SearchResult {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if query == "" {
		return nil
	}

	lowerQuery := strings.ToLower(query)
	boundaryRe, boundaryErr := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(query) + `\b`)

	var results []SearchResult

scan:
	for _, path := range ix.snap.sortedPaths {
		f := ix.snap.files[path]
		// Whole-file check first so non-matching files skip the line loop
		if !strings.Contains(strings.ToLower(f.Content), lowerQuery) {
			continue
		}
		for i, line := range f.Lines {
			lowerLine := strings.ToLower(line)
			if !strings.Contains(lowerLine, lowerQuery) {
				continue
			}

			score := baseScore
			for _, token := range strings.Fields(lowerLine) {
				if token == lowerQuery {
					score += wholeWordBonus
					break
				}
			}
			if boundaryErr == nil && boundaryRe.MatchString(line) {
				score += wordBoundaryBonus
			}
			score += occurrenceBonus * float64(strings.Count(lowerLine, lowerQuery))

			results = append(results, SearchResult{
				RelativePath: path,
				LineNumber:   i + 1,
				LineText:     strings.TrimSpace(line),
				Score:        score,
			})
			if len(results) >= maxResults {
				break scan
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// FindSymbol returns every recorded declaration site of an exactly matching
// symbol name. No case folding, no fuzzy matching. Results carry a fixed
// maximal score and follow file-then-line iteration order, deterministic for
// a given build.
func (ix *Index) FindSymbol(name string) []SearchResult {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var results []SearchResult
	for _, path := range ix.snap.sortedPaths {
		f := ix.snap.files[path]
		lines, ok := f.Symbols[name]
		if !ok {
			continue
		}
		for _, lineNumber := range lines {
			text := fmt.Sprintf("<line %d unavailable>", lineNumber)
			if lineNumber >= 1 && lineNumber <= len(f.Lines) {
				text = strings.TrimSpace(f.Lines[lineNumber-1])
			}
			results = append(results, SearchResult{
				RelativePath: path,
				LineNumber:   lineNumber,
				LineText:     text,
				Score:        symbolScore,
			})
		}
	}
	return results
}
