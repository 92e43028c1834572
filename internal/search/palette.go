// Package search backs the command palette's fuzzy filtering.
package search

import (
	"strings"

	lev "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// Kind classifies a palette entry.
type Kind int

const (
	KindPage Kind = iota
	KindFeature
	KindLearning
)

func (k Kind) String() string {
	switch k {
	case KindFeature:
		return "feature"
	case KindLearning:
		return "learning"
	default:
		return "page"
	}
}

// Item is one selectable palette entry. Value is the precomputed match
// target ("id name"); it is what the palette renders and highlights.
type Item struct {
	Kind  Kind
	ID    string
	Name  string
	Path  string // navigation target
	Value string
}

// Result is a ranked match with highlightable character positions in Value.
type Result struct {
	Item
	Score          int
	MatchedIndexes []int
}

// Index implements fuzzy.Source over the lowercased match values for
// zero-allocation matching.
type Index struct {
	items  []Item
	values []string // pre-computed lowercase values
}

// NewIndex creates an empty palette index.
func NewIndex() *Index {
	return &Index{}
}

// String returns the lowercase value at i (implements fuzzy.Source).
func (idx *Index) String(i int) string { return idx.values[i] }

// Len returns the number of items (implements fuzzy.Source).
func (idx *Index) Len() int { return len(idx.items) }

// Add appends items, deriving the "id name" match value when unset.
func (idx *Index) Add(items ...Item) {
	for _, item := range items {
		if item.Value == "" {
			item.Value = strings.TrimSpace(item.ID + " " + item.Name)
		}
		idx.items = append(idx.items, item)
		idx.values = append(idx.values, strings.ToLower(item.Value))
	}
}

// Reset drops all indexed items, for reloading after a refresh.
func (idx *Index) Reset() {
	idx.items = idx.items[:0]
	idx.values = idx.values[:0]
}

// Filter returns entries matching the query, best first. An empty query
// returns everything in insertion order so the palette opens populated.
// Matching is case-insensitive and at least as permissive as containment.
func (idx *Index) Filter(query string) []Result {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		results := make([]Result, len(idx.items))
		for i, item := range idx.items {
			results[i] = Result{Item: item}
		}
		return results
	}

	matches := fuzzy.FindFrom(query, idx)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Item:           idx.items[m.Index],
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		}
	}

	// Equal fuzzy scores: prefer the value closest to the query by edit
	// distance, so short exact-ish hits beat long scattered ones.
	sortResults(results, query)
	return results
}

func sortResults(results []Result, query string) {
	for i := 1; i < len(results); i++ {
		j := i
		for j > 0 && lessResult(results[j], results[j-1], query) {
			results[j], results[j-1] = results[j-1], results[j]
			j--
		}
	}
}

func lessResult(a, b Result, query string) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	da := lev.LevenshteinDistance(query, strings.ToLower(a.Value))
	db := lev.LevenshteinDistance(query, strings.ToLower(b.Value))
	return da < db
}
