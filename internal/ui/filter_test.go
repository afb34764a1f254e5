package ui

import (
	"reflect"
	"testing"

	"github.com/sahilm/fuzzy"

	"docview/internal/viewport"
)

var testFilterConfig = FilterConfig{MinCoverage: 0.6, MaxSpread: 40, MaxResults: 10}

func TestSubstringHitsSkipsSeen(t *testing.T) {
	fields := []string{"hello world", "foo bar", "hello bar"}
	seen := map[int]bool{0: true}
	if got := substringHits("hello", fields, seen, 10); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("substring hits mismatch: got %v", got)
	}
	if !seen[2] {
		t.Fatal("hit should be marked seen")
	}
	if got := substringHits("bar", fields, map[int]bool{}, 1); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("limit not applied: got %v", got)
	}
}

func TestFuzzyHitsPrefersTightMatches(t *testing.T) {
	fields := []string{"abc", "axc", "ac"}
	cfg := FilterConfig{MinCoverage: 1, MaxSpread: 1, MaxResults: 10}
	if got := fuzzyHits("ac", fields, cfg); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("fuzzy hits mismatch: got %v", got)
	}
}

func TestFuzzyHitsFallsBackToLooseMatches(t *testing.T) {
	fields := []string{"abcd", "abxd"}
	cfg := FilterConfig{MinCoverage: 1, MaxSpread: 0, MaxResults: 1}
	if got := fuzzyHits("ad", fields, cfg); len(got) != 1 {
		t.Fatalf("expected one loose match, got %v", got)
	}
}

func TestCoverageAndSpread(t *testing.T) {
	if c := coverage("abcd", fuzzy.Match{MatchedIndexes: []int{0, 2}}); c != 0.5 {
		t.Fatalf("coverage want 0.5 got %v", c)
	}
	if s := spread(fuzzy.Match{MatchedIndexes: []int{1, 4}}); s != 3 {
		t.Fatalf("spread want 3 got %d", s)
	}
	if s := spread(fuzzy.Match{MatchedIndexes: []int{7}}); s != 0 {
		t.Fatalf("single match spread want 0 got %d", s)
	}
}

func TestFilterAnnotations(t *testing.T) {
	anns := []viewport.Annotation{
		{ID: "a", Title: "Budget 2", Content: "travel costs"},
		{ID: "b", Title: "Intro"},
		{ID: "c", Title: "Budget 10"},
	}
	tests := []struct {
		q    string
		want []int
	}{
		{"", []int{0, 1, 2}},
		{"budget", []int{0, 2}},
		{"travel", []int{0}},
		{"itr", []int{1}},
	}
	for _, tc := range tests {
		if got := filterAnnotations(tc.q, anns, testFilterConfig); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("filterAnnotations(%q) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestFilterAnnotationsRanksTitleHitsFirst(t *testing.T) {
	anns := []viewport.Annotation{
		{ID: "a", Title: "Budget", Content: "see the intro first"},
		{ID: "b", Title: "Intro", Content: "intro text"},
		{ID: "c", Title: "Summary"},
	}
	if got := filterAnnotations("intro", anns, testFilterConfig); !reflect.DeepEqual(got, []int{1, 0}) {
		t.Fatalf("title hit should rank first, got %v", got)
	}
}
