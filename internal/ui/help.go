package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpSection is a titled group of key bindings
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title string
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(title string) *HelpRenderer {
	return &HelpRenderer{title: title}
}

// Render generates help content with colors for the pager
func (r *HelpRenderer) Render(sections []HelpSection) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	width := 0
	for _, s := range sections {
		for _, b := range s.Bindings {
			width = max(width, lipgloss.Width(b.Help().Key))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render(r.title))
	help.WriteString("\n")

	for i, s := range sections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(s.Title))
		help.WriteString("\n")
		for _, b := range s.Bindings {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			pad := strings.Repeat(" ", width-lipgloss.Width(h.Key))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", keyStyle.Render(h.Key), pad, descStyle.Render(h.Desc)))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

// Pager shows long content in ov while the Bubble Tea program is suspended
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a pager; it cannot run until SetProgram is called
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show shows content using the ov pager
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// Cmd returns a command that shows content in the pager, pausing and
// resuming rendering around it
func (p *Pager) Cmd(content string) tea.Cmd {
	return func() tea.Msg {
		if p.program == nil {
			return HelpPagerMsg{Err: fmt.Errorf("program not set")}
		}
		p.program.Send(PauseRenderingMsg{})
		err := p.Show(content)
		p.program.Send(ResumeRenderingMsg{})
		return HelpPagerMsg{Err: err}
	}
}
