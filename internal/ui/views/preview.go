package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fapicker/internal/config"
	"fapicker/internal/domain"
	"fapicker/internal/search"
)

// pixels per terminal row used to scale the configured icon size
const pixelsPerCell = 12

// PreviewCells converts the configured icon size in pixels to a box height
// in terminal rows, between 1 and 8
func PreviewCells(size config.Number) int {
	n, ok := size.Int()
	if !ok || n <= 0 {
		return 1
	}
	cells := (n + pixelsPerCell/2) / pixelsPerCell
	return min(max(cells, 1), 8)
}

// RenderPreview draws the glyph inside a box colored from the configuration
func RenderPreview(glyph string, p config.Parameters) string {
	cells := PreviewCells(p.IconSize)
	if glyph == "" {
		glyph = " "
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.PreviewBorder)).
		Background(lipgloss.Color(p.PreviewBackground)).
		Foreground(lipgloss.Color("0")).
		Width(cells*2).
		Height(cells).
		Align(lipgloss.Center, lipgloss.Center).
		Render(glyph)
}

// RenderSuggestion renders one pick list row: glyph, label with the query
// highlighted, and the composed value
func (s *Styles) RenderSuggestion(sug domain.Suggestion, query string, current bool) string {
	var b strings.Builder
	if current {
		b.WriteString(s.Cursor.Render("> "))
	} else {
		b.WriteString("  ")
	}

	glyph := sug.Glyph()
	if glyph == "" {
		glyph = " "
	}
	b.WriteString(glyph)
	b.WriteString("  ")
	b.WriteString(s.RenderHighlighted(sug.Name, query))
	b.WriteString("  ")
	b.WriteString(s.Value.Render(sug.Value))

	line := b.String()
	if current {
		return s.SelectionBg.Render(line)
	}
	return line
}

// RenderHighlighted renders text with the first case-insensitive occurrence
// of query emphasized
func (s *Styles) RenderHighlighted(text, query string) string {
	before, match, after, ok := search.Highlight(text, query)
	if !ok {
		return s.Label.Render(text)
	}
	return s.Label.Render(before) + s.Highlight.Render(match) + s.Label.Render(after)
}
