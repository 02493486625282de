package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PauseRenderingMsg signals that an external pager is taking the terminal
type PauseRenderingMsg struct{}

// ResumeRenderingMsg signals that the terminal is back
type ResumeRenderingMsg struct{}

// HelpPagerMsg contains the result of a help pager command
type HelpPagerMsg struct {
	Err error
}

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}

// StatusTimeout is how long transient status messages stay visible
const StatusTimeout = 3 * time.Second

// ClearStatusAfter returns a command that clears the status line after d
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}
