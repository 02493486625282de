package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fapicker/internal/catalog"
	"fapicker/internal/config"
	"fapicker/internal/domain"
	"fapicker/internal/icons"
)

var index = catalog.Build(icons.FontAwesome)

var queries = []string{"", "a", "ar", "arrow", "arrow-l", "ARROW-L", "fas", "fab fa-", "fa-h", "home", "sav", "zz", "(solid)", "duotone", "e", "user"}

func configs() map[string]config.Parameters {
	base := config.Defaults()

	namesOnly := base
	namesOnly.SearchInTerms, namesOnly.SearchInValues = false, false

	valuesOnly := base
	valuesOnly.SearchInTerms, valuesOnly.SearchInNames = false, false

	termsOnly := base
	termsOnly.SearchInNames, termsOnly.SearchInValues = false, false

	brandsOnly := base
	brandsOnly.AllowedStyles = []domain.Style{domain.StyleBrands}

	wide := base
	wide.MaxSuggestions = 1000
	wide.MinSearchChars = 0

	strict := base
	strict.MinSearchChars = 4
	strict.MaxSuggestions = 3

	return map[string]config.Parameters{
		"defaults":    base,
		"names only":  namesOnly,
		"values only": valuesOnly,
		"terms only":  termsOnly,
		"brands only": brandsOnly,
		"wide":        wide,
		"strict":      strict,
	}
}

func TestShortQueriesYieldNothing(t *testing.T) {
	for name, p := range configs() {
		min, _ := p.MinSearchChars.Int()
		for _, q := range queries {
			if len(q) < min {
				assert.Empty(t, Match(q, index, p), "%s: query %q below minimum %d", name, q, min)
			}
		}
	}
}

func TestResultsNeverExceedCap(t *testing.T) {
	for name, p := range configs() {
		limit, _ := p.MaxSuggestions.Int()
		for _, q := range queries {
			assert.LessOrEqual(t, len(Match(q, index, p)), limit, "%s: query %q", name, q)
		}
	}
}

func TestEveryResultSatisfiesPredicate(t *testing.T) {
	for name, p := range configs() {
		for _, q := range queries {
			for _, s := range Match(q, index, p) {
				assert.True(t, Matches(s, q, p), "%s: %q returned non-matching %s", name, q, s.Value)
				assert.True(t, p.Allows(s.Style), "%s: %q returned disallowed style %s", name, q, s.Style)
			}
		}
	}
}

func TestResultsPreserveTableOrderAndAreComplete(t *testing.T) {
	p := config.Defaults()
	p.MaxSuggestions = 1000

	got := Match("arrow", index, p)

	var want []domain.Suggestion
	for _, s := range index.All() {
		if Matches(s, "arrow", p) {
			want = append(want, s)
		}
	}
	require.NotEmpty(t, want)
	require.Equal(t, want, got)
}

func TestCapKeepsFirstMatches(t *testing.T) {
	p := config.Defaults()
	p.MaxSuggestions = 1000
	all := Match("arrow", index, p)

	p.MaxSuggestions = 5
	require.Equal(t, all[:5], Match("arrow", index, p))
}

func TestNamesOnlyExample(t *testing.T) {
	p := config.Defaults()
	p.MinSearchChars = 2
	p.SearchInNames = true
	p.SearchInTerms = false
	p.SearchInValues = false
	p.MaxSuggestions = 5

	got := Match("arrow-l", index, p)
	require.NotEmpty(t, got)
	require.LessOrEqual(t, len(got), 5)
	for _, s := range got {
		require.Contains(t, s.Name, "arrow-l")
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	p := config.Defaults()
	require.Equal(t, Match("house", index, p), Match("HoUsE", index, p))
}

func TestChannels(t *testing.T) {
	p := config.Defaults()
	p.MaxSuggestions = 1000
	p.SearchInNames, p.SearchInValues, p.SearchInTerms = false, false, true

	// "abode" is only a search term of house
	got := Match("abode", index, p)
	require.NotEmpty(t, got)
	for _, s := range got {
		require.Equal(t, "house", s.Key)
	}

	p.SearchInTerms = false
	require.Empty(t, Match("abode", index, p))

	// "fab fa-" only appears in composed values
	p.SearchInValues = true
	for _, s := range Match("fab fa-", index, p) {
		require.Equal(t, domain.StyleBrands, s.Style)
	}
	p.SearchInValues = false
	p.SearchInNames = true
	require.Empty(t, Match("fab fa-", index, p))
}

func TestStyleFilterUsesSuggestionStyle(t *testing.T) {
	// Deriving the style from the composed value ("fad" -> "fad") would never
	// equal "duotone"; the allow-list must be checked against the suggestion's
	// own style.
	p := config.Defaults()
	p.AllowedStyles = []domain.Style{domain.StyleDuotone}
	p.MaxSuggestions = 1000

	got := Match("house", index, p)
	require.Len(t, got, 1)
	require.Equal(t, "fad fa-house", got[0].Value)
	require.False(t, strings.HasPrefix(got[0].Value, string(domain.StyleDuotone)))
}

func TestEmptyAllowListFallsBackToDefaultStyle(t *testing.T) {
	p := config.Defaults()
	p.AllowedStyles = []domain.Style{}
	p.DefaultStyle = domain.StyleRegular

	got := Match("house", index, p)
	require.Len(t, got, 1)
	require.Equal(t, "far fa-house", got[0].Value)

	p.DefaultStyle = ""
	require.Empty(t, Match("house", index, p))
}

func TestNaNLimits(t *testing.T) {
	p := config.Defaults()
	p.MaxSuggestions = config.NaN()
	require.Empty(t, Match("house", index, p), "a cap that is not a number admits nothing")

	p = config.Defaults()
	p.MinSearchChars = config.NaN()
	require.True(t, Ready("", p))
	require.NotEmpty(t, Match("h", index, p))
}

func TestNonPositiveCap(t *testing.T) {
	p := config.Defaults()
	p.MaxSuggestions = 0
	require.Empty(t, Match("house", index, p))
	p.MaxSuggestions = -2
	require.Empty(t, Match("house", index, p))
}

func TestMatchDoesNotMutateIndex(t *testing.T) {
	before := index.All()
	p := config.Defaults()
	p.MaxSuggestions = 1000
	res := Match("a", index, p)
	if len(res) > 0 {
		res[0].Name = "changed"
		res[0].SearchTerms = nil
	}
	require.Equal(t, before, index.All())
}

func TestHighlight(t *testing.T) {
	before, match, after, ok := Highlight("arrow-left (solid)", "LEFT")
	require.True(t, ok)
	require.Equal(t, "arrow-", before)
	require.Equal(t, "left", match)
	require.Equal(t, " (solid)", after)

	_, _, _, ok = Highlight("house", "")
	require.False(t, ok)
	_, _, _, ok = Highlight("house", "zz")
	require.False(t, ok)
}

func TestFractionalMinimumIsNotTruncated(t *testing.T) {
	p := config.Defaults()
	p.MinSearchChars = 2.5

	assert.False(t, Ready("ho", p))
	assert.Empty(t, Match("ho", index, p))
	assert.True(t, Ready("hou", p))
	assert.NotEmpty(t, Match("hou", index, p))
}
