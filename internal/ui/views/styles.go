package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Cursor        lipgloss.Style
	Section       lipgloss.Style
	Focused       lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help:          lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Value:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Cursor:        lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Section:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
