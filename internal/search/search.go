// Package search filters the suggestion table for the field editor's pick list.
package search

import (
	"slices"
	"strings"
	"unicode/utf8"

	"fapicker/internal/catalog"
	"fapicker/internal/config"
	"fapicker/internal/domain"
)

// Match returns the first MaxSuggestions suggestions matching query, in table
// order. A query shorter than MinSearchChars yields no results; that is the
// "not searching yet" state rather than a failure. Match has no side effects
// and is safe to call on every keystroke.
func Match(query string, idx *catalog.Index, p config.Parameters) []domain.Suggestion {
	if !Ready(query, p) {
		return nil
	}
	limit, ok := p.MaxSuggestions.Int()
	if !ok || limit <= 0 {
		return nil
	}

	styles := p.EffectiveStyles()
	lower := strings.ToLower(query)
	var out []domain.Suggestion
	for i := 0; i < idx.Len() && len(out) < limit; i++ {
		s := idx.At(i)
		if !slices.Contains(styles, s.Style) {
			continue
		}
		if matchesChannels(s, lower, p) {
			out = append(out, s)
		}
	}
	return out
}

// Ready reports whether query is long enough to search. A minimum that is
// not a number never holds a search back.
func Ready(query string, p config.Parameters) bool {
	if p.MinSearchChars.IsNaN() {
		return true
	}
	return float64(utf8.RuneCountInString(query)) >= float64(p.MinSearchChars)
}

// Matches reports whether s passes the style allow-list and matches query on
// at least one enabled channel
func Matches(s domain.Suggestion, query string, p config.Parameters) bool {
	if !slices.Contains(p.EffectiveStyles(), s.Style) {
		return false
	}
	return matchesChannels(s, strings.ToLower(query), p)
}

func matchesChannels(s domain.Suggestion, lower string, p config.Parameters) bool {
	if p.SearchInNames && strings.Contains(strings.ToLower(s.Name), lower) {
		return true
	}
	if p.SearchInValues && strings.Contains(strings.ToLower(s.Value), lower) {
		return true
	}
	if p.SearchInTerms {
		for _, term := range s.SearchTerms {
			if strings.Contains(strings.ToLower(term), lower) {
				return true
			}
		}
	}
	return false
}

// Highlight splits text around the first case-insensitive occurrence of query.
// ok is false when query is empty or absent.
func Highlight(text, query string) (before, match, after string, ok bool) {
	if query == "" {
		return text, "", "", false
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)
	i := strings.Index(lowerText, lowerQuery)
	if i < 0 || len(lowerText) != len(text) {
		return text, "", "", false
	}
	end := i + len(lowerQuery)
	return text[:i], text[i:end], text[end:], true
}
