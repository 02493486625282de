// Package field is the entry field editor: a search box over the icon
// catalog whose pick is written back to the host as the field value.
package field

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"fapicker/internal/catalog"
	"fapicker/internal/config"
	"fapicker/internal/domain"
	"fapicker/internal/host"
	"fapicker/internal/search"
	"fapicker/internal/selection"
	"fapicker/internal/ui"
	"fapicker/internal/ui/views"
)

// hostTimeout bounds every call into the host
const hostTimeout = 5 * time.Second

// Options configures the field editor
type Options struct {
	Field  host.FieldSDK
	Index  *catalog.Index
	Params config.Parameters
	Log    zerolog.Logger
	// Pager shows help full screen; without one help expands inline
	Pager *ui.Pager
	// Clipboard defaults to the system clipboard
	Clipboard func(string) error
	// OnReady is called once the persisted value has been resolved
	OnReady func()
}

type mountedMsg struct {
	value string
	err   error
}

// ValueChangedMsg carries a field value changed outside this editor
type ValueChangedMsg struct {
	Value string
}

type writeResultMsg struct {
	value string
	err   error
}

type copyResultMsg struct {
	value string
	err   error
}

// Model is the field editor screen
type Model struct {
	field     host.FieldSDK
	index     *catalog.Index
	params    config.Parameters
	machine   *selection.Machine
	input     textinput.Model
	help      help.Model
	keys      keyMap
	styles    *views.Styles
	log       zerolog.Logger
	pager     *ui.Pager
	clipboard func(string) error
	onReady   func()

	// send delivers messages from outside the update loop
	send func(tea.Msg)

	cursor    int
	status    string
	statusErr bool
	mounted   bool
	paused    bool
	detach    func()
	width     int
}

// New creates the field editor
func New(opts Options) *Model {
	input := textinput.New()
	input.Placeholder = opts.Params.PlaceholderText
	input.Prompt = "Search: "
	input.Focus()

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	return &Model{
		field:     opts.Field,
		index:     opts.Index,
		params:    opts.Params,
		machine:   selection.New(opts.Index),
		input:     input,
		help:      help.New(),
		keys:      defaultKeyMap(),
		styles:    views.NewStyles(),
		log:       opts.Log.With().Str("component", "field").Logger(),
		pager:     opts.Pager,
		clipboard: clip,
		onReady:   opts.OnReady,
		send:      func(tea.Msg) {},
	}
}

// SetProgram sets the program that outside value changes are delivered to
func (m *Model) SetProgram(p *tea.Program) {
	m.send = p.Send
	if m.pager != nil {
		m.pager.SetProgram(p)
	}
}

// Init reads the persisted value
func (m *Model) Init() tea.Cmd {
	return m.mount()
}

// Close releases the value change subscription
func (m *Model) Close() {
	if m.detach != nil {
		m.detach()
		m.detach = nil
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case mountedMsg:
		return m, m.handleMounted(msg)

	case ValueChangedMsg:
		m.log.Debug().Str("value", msg.Value).Msg("value changed outside editor")
		m.machine.ExternalChange(msg.Value)
		return m, nil

	case writeResultMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("value", msg.value).Msg("failed to write field value")
			return m, m.setStatus(fmt.Sprintf("Failed to save value: %v", msg.err), true)
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("clipboard write failed")
			return m, m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
		}
		return m, m.setStatus("Copied "+msg.value, false)

	case ui.HelpPagerMsg:
		if msg.Err != nil {
			// pager failed, fall back to inline help
			m.log.Warn().Err(msg.Err).Msg("help pager failed")
			m.help.ShowAll = true
		}
		return m, nil

	case ui.PauseRenderingMsg:
		m.paused = true
		return m, nil

	case ui.ResumeRenderingMsg:
		m.paused = false
		return m, nil

	case ui.ClearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.paused {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Help) && (msg.String() != "?" || m.input.Value() == ""):
		if m.pager == nil {
			m.help.ShowAll = !m.help.ShowAll
			return nil
		}
		content := ui.NewHelpRenderer("Font Awesome Icon Picker").Render(m.keys.sections())
		return m.pager.Cmd(content)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.machine.Results())-1 {
			m.cursor++
		}
		return nil

	case key.Matches(msg, m.keys.Pick):
		results := m.machine.Results()
		if len(results) == 0 {
			return nil
		}
		return m.pick(results[min(m.cursor, len(results)-1)])

	case key.Matches(msg, m.keys.Clear):
		m.input.Reset()
		m.refresh()
		return nil

	case key.Matches(msg, m.keys.Copy):
		value := m.machine.Value()
		if value == "" {
			return m.setStatus("No icon selected", true)
		}
		return m.copy(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.machine.Query() {
		m.refresh()
	}
	return cmd
}

// refresh re-runs the search for the current input. An empty query has no
// results, whatever the minimum length.
func (m *Model) refresh() {
	query := m.input.Value()
	var results []domain.Suggestion
	if query != "" {
		results = search.Match(query, m.index, m.params)
	}
	m.machine.SetQuery(query, results)
	m.cursor = 0
}

func (m *Model) pick(s domain.Suggestion) tea.Cmd {
	value := m.machine.Pick(s)
	m.input.Reset()
	m.cursor = 0
	m.log.Info().Str("value", value).Msg("icon picked")
	return m.write(value)
}

func (m *Model) handleMounted(msg mountedMsg) tea.Cmd {
	var cmds []tea.Cmd
	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("failed to read field value")
		cmds = append(cmds, m.setStatus(fmt.Sprintf("Failed to load value: %v", msg.err), true))
	} else {
		m.machine.Mount(msg.value)
		if msg.value == "" {
			// a field that was never set starts out as an empty string
			cmds = append(cmds, m.write(""))
		}
	}

	if !m.mounted {
		m.mounted = true
		m.detach = m.field.OnValueChanged(func(v string) {
			m.send(ValueChangedMsg{Value: v})
		})
		if m.onReady != nil {
			m.onReady()
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) mount() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), hostTimeout)
		defer cancel()
		value, _, err := m.field.GetValue(ctx)
		return mountedMsg{value: value, err: err}
	}
}

func (m *Model) write(value string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), hostTimeout)
		defer cancel()
		return writeResultMsg{value: value, err: m.field.SetValue(ctx, value)}
	}
}

func (m *Model) copy(value string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{value: value, err: m.clipboard(value)}
	}
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	return ui.ClearStatusAfter(ui.StatusTimeout)
}

// View renders the editor
func (m *Model) View() string {
	if m.paused {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Font Awesome Icon"))
	b.WriteString("\n")
	b.WriteString(m.renderSelection())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderResults())

	if m.status != "" {
		style := m.styles.StatusSuccess
		if m.statusErr {
			style = m.styles.StatusError
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Inherit(style).Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return m.styles.Main.Render(b.String())
}

func (m *Model) renderSelection() string {
	s, ok := m.machine.Selected()
	if !ok {
		return lipgloss.JoinHorizontal(lipgloss.Center,
			views.RenderPreview("", m.params),
			"  ",
			m.styles.Dim.Render("No icon selected"),
		)
	}
	details := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Label.Render(s.Name),
		m.styles.Value.Render(s.Value),
	)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		views.RenderPreview(s.Glyph(), m.params),
		"  ",
		details,
	)
}

func (m *Model) renderResults() string {
	query := m.machine.Query()
	if query == "" {
		return ""
	}
	if !search.Ready(query, m.params) {
		if n, ok := config.Number(math.Ceil(float64(m.params.MinSearchChars))).Int(); ok {
			return m.styles.Dim.Render(fmt.Sprintf("Type at least %d characters", n))
		}
		return ""
	}

	results := m.machine.Results()
	if len(results) == 0 {
		return m.styles.Dim.Render("No matching icons")
	}

	lines := make([]string, len(results))
	for i, s := range results {
		lines[i] = m.styles.RenderSuggestion(s, query, i == m.cursor)
	}
	return strings.Join(lines, "\n")
}
