package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"docview/internal/viewport"
)

// FilterConfig bundles tuning parameters for filtering and search operations.
type FilterConfig struct {
	MinCoverage float64 // minimal share of the query that must match
	MaxSpread   int     // maximal distance between first and last match index
	MaxResults  int     // upper limit of returned results
}

// filterAnnotations returns the indices of anns matching q, best first.
// An empty query keeps everything in list order. Title hits rank above
// content hits; fuzzy matching only runs when no substring matched.
func filterAnnotations(q string, anns []viewport.Annotation, cfg FilterConfig) []int {
	if q == "" {
		idx := make([]int, len(anns))
		for i := range anns {
			idx[i] = i
		}
		return idx
	}

	titles := make([]string, len(anns))
	contents := make([]string, len(anns))
	for i, a := range anns {
		titles[i] = strings.ToLower(a.Title)
		contents[i] = strings.ToLower(a.Content)
	}

	seen := make(map[int]bool)
	hits := substringHits(q, titles, seen, cfg.MaxResults)
	hits = append(hits, substringHits(q, contents, seen, cfg.MaxResults-len(hits))...)
	if len(hits) > 0 {
		return hits
	}
	if hits = fuzzyHits(q, titles, cfg); len(hits) > 0 {
		return hits
	}
	return fuzzyHits(q, contents, cfg)
}

// substringHits returns up to limit indices of fields containing q that
// are not yet in seen, and marks them seen.
func substringHits(q string, fields []string, seen map[int]bool, limit int) []int {
	var hits []int
	for i, f := range fields {
		if len(hits) >= limit {
			break
		}
		if seen[i] || !strings.Contains(f, q) {
			continue
		}
		seen[i] = true
		hits = append(hits, i)
	}
	return hits
}

// fuzzyHits ranks fuzzy matches of q in fields. Scattered matches (low
// coverage or wide spread) are returned only when no tight match exists.
func fuzzyHits(q string, fields []string, cfg FilterConfig) []int {
	var tight, loose []int
	for _, mt := range fuzzy.Find(q, fields) {
		if coverage(q, mt) >= cfg.MinCoverage && spread(mt) <= cfg.MaxSpread {
			tight = append(tight, mt.Index)
		} else {
			loose = append(loose, mt.Index)
		}
	}
	if len(tight) == 0 {
		tight = loose
	}
	if len(tight) > cfg.MaxResults {
		tight = tight[:cfg.MaxResults]
	}
	return tight
}

// coverage is the share of q's bytes that took part in the match.
func coverage(q string, m fuzzy.Match) float64 {
	if q == "" {
		return 1
	}
	return float64(len(m.MatchedIndexes)) / float64(len(q))
}

// spread is the distance between the first and last matched byte.
func spread(m fuzzy.Match) int {
	if n := len(m.MatchedIndexes); n > 1 {
		return m.MatchedIndexes[n-1] - m.MatchedIndexes[0]
	}
	return 0
}
