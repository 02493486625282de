// Package catalog expands icon metadata into the suggestion table the pickers search.
package catalog

import (
	"fmt"

	"fapicker/internal/domain"
)

// Index is the read-only table of suggestions, one per (icon, style) pair.
// It is built once at startup and shared by reference.
type Index struct {
	items   []domain.Suggestion
	byValue map[string]int
}

// Build expands every icon into one suggestion per supported style, in icon
// order and then style order. Styles without a known class prefix are skipped.
func Build(icons []domain.Icon) *Index {
	idx := &Index{
		items:   make([]domain.Suggestion, 0, len(icons)*2),
		byValue: make(map[string]int, len(icons)*2),
	}
	for _, icon := range icons {
		terms := icon.Terms
		if terms == nil {
			terms = []string{}
		}
		for _, style := range icon.Styles {
			if !style.Valid() {
				continue
			}
			s := domain.Suggestion{
				Name:        fmt.Sprintf("%s (%s)", icon.Key, style.Label()),
				Value:       ComposeValue(style, icon.Key),
				SearchTerms: terms,
				Style:       style,
				Key:         icon.Key,
				Unicode:     icon.Unicode,
			}
			// first occurrence wins, matching a front-to-back scan
			if _, dup := idx.byValue[s.Value]; !dup {
				idx.byValue[s.Value] = len(idx.items)
			}
			idx.items = append(idx.items, s)
		}
	}
	return idx
}

// ComposeValue builds the class expression written to the field
func ComposeValue(style domain.Style, key string) string {
	return style.Prefix() + " fa-" + key
}

// Len returns the number of suggestions
func (idx *Index) Len() int {
	return len(idx.items)
}

// At returns the i-th suggestion
func (idx *Index) At(i int) domain.Suggestion {
	return idx.items[i]
}

// All returns a copy of the suggestion sequence
func (idx *Index) All() []domain.Suggestion {
	out := make([]domain.Suggestion, len(idx.items))
	copy(out, idx.items)
	return out
}

// Lookup resolves a composed value by exact match
func (idx *Index) Lookup(value string) (domain.Suggestion, bool) {
	i, ok := idx.byValue[value]
	if !ok {
		return domain.Suggestion{}, false
	}
	return idx.items[i], true
}
