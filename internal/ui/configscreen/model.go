// Package configscreen is the installation configuration form.
package configscreen

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"fapicker/internal/config"
	"fapicker/internal/domain"
	"fapicker/internal/host"
	"fapicker/internal/ui"
	"fapicker/internal/ui/views"
)

// Location is the name this screen reports when it becomes ready
const Location = "config"

const hostTimeout = 5 * time.Second

// sample glyph shown in the appearance preview (font-awesome flag)
const previewGlyph = "\uf2b4"

type fieldKind int

const (
	kindStyle fieldKind = iota
	kindDefaultStyle
	kindNumber
	kindToggle
	kindText
)

type formField struct {
	kind    fieldKind
	section string
	label   string
	style   domain.Style // kindStyle
	key     string       // parameter name for number, toggle and text fields
	input   textinput.Model
}

func (f *formField) editable() bool {
	return f.kind == kindNumber || f.kind == kindText
}

// Options configures the form
type Options struct {
	App     host.AppSDK
	Log     zerolog.Logger
	OnReady func()
}

type loadedMsg struct {
	stored *config.StoredParameters
	err    error
}

type savedMsg struct {
	err error
}

// Model is the configuration screen
type Model struct {
	app     host.AppSDK
	log     zerolog.Logger
	onReady func()
	styles  *views.Styles
	help    help.Model
	keys    keyMap

	params config.Parameters
	fields []formField
	focus  int
	loaded bool
	saving bool

	status    string
	statusErr bool

	// snapshot is what the configure hook hands back; it is read from the
	// goroutine running Configure
	mu       sync.Mutex
	snapshot *config.StoredParameters
}

// New creates the form showing defaults until the stored parameters load
func New(opts Options) *Model {
	m := &Model{
		app:     opts.App,
		log:     opts.Log.With().Str("component", "configscreen").Logger(),
		onReady: opts.OnReady,
		styles:  views.NewStyles(),
		help:    help.New(),
		keys:    defaultKeyMap(),
		params:  config.Defaults(),
		fields:  buildFields(),
	}
	m.syncInputs()
	m.publish()
	m.setFocus(0)
	return m
}

func buildFields() []formField {
	title := cases.Title(language.English)

	var fields []formField
	for _, s := range domain.Styles {
		fields = append(fields, formField{
			kind:    kindStyle,
			section: "Icon Styles",
			label:   fmt.Sprintf("Enable %s icons", title.String(string(s))),
			style:   s,
		})
	}
	fields = append(fields,
		formField{kind: kindDefaultStyle, section: "Icon Styles", label: "Default style"},
		numberField("Search Settings", "Maximum suggestions to show", "maxSuggestions"),
		numberField("Search Settings", "Minimum characters to trigger search", "minSearchChars"),
		formField{kind: kindToggle, section: "Search Settings", label: "Search in icon terms", key: "searchInTerms"},
		formField{kind: kindToggle, section: "Search Settings", label: "Search in icon names", key: "searchInNames"},
		formField{kind: kindToggle, section: "Search Settings", label: "Search in icon values", key: "searchInValues"},
		numberField("Appearance", "Icon size (px)", "iconSize"),
		textField("Appearance", "Search placeholder text", "placeholderText"),
		textField("Appearance", "Icon preview background color", "previewBackground"),
		textField("Appearance", "Icon preview border color", "previewBorder"),
	)
	return fields
}

func numberField(section, label, key string) formField {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 12
	in.Width = 12
	return formField{kind: kindNumber, section: section, label: label, key: key, input: in}
}

func textField(section, label, key string) formField {
	in := textinput.New()
	in.Prompt = ""
	in.Width = 48
	return formField{kind: kindText, section: section, label: label, key: key, input: in}
}

func (m *Model) number(key string) *config.Number {
	switch key {
	case "maxSuggestions":
		return &m.params.MaxSuggestions
	case "minSearchChars":
		return &m.params.MinSearchChars
	case "iconSize":
		return &m.params.IconSize
	}
	panic("configscreen: unknown number field " + key)
}

func (m *Model) toggle(key string) *bool {
	switch key {
	case "searchInTerms":
		return &m.params.SearchInTerms
	case "searchInNames":
		return &m.params.SearchInNames
	case "searchInValues":
		return &m.params.SearchInValues
	}
	panic("configscreen: unknown toggle field " + key)
}

func (m *Model) text(key string) *string {
	switch key {
	case "placeholderText":
		return &m.params.PlaceholderText
	case "previewBackground":
		return &m.params.PreviewBackground
	case "previewBorder":
		return &m.params.PreviewBorder
	}
	panic("configscreen: unknown text field " + key)
}

// Params returns the parameters currently shown in the form
func (m *Model) Params() config.Parameters {
	return m.params
}

// Init loads the stored parameters
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), hostTimeout)
		defer cancel()
		stored, err := m.app.GetParameters(ctx)
		return loadedMsg{stored: stored, err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		return m, m.handleLoaded(msg)

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("failed to save configuration")
			return m, m.setStatus(fmt.Sprintf("Failed to save: %v", msg.err), true)
		}
		return m, m.setStatus("Configuration saved", false)

	case ui.ClearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if f := m.focused(); f.editable() {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleLoaded(msg loadedMsg) tea.Cmd {
	var cmd tea.Cmd
	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("failed to load parameters")
		cmd = m.setStatus(fmt.Sprintf("Failed to load configuration: %v", msg.err), true)
	} else {
		m.params = config.ApplyDefaults(msg.stored)
		m.log.Debug().Bool("installed", msg.stored != nil).Msg("parameters loaded")
	}
	m.syncInputs()
	m.publish()

	if !m.loaded {
		m.loaded = true
		m.app.OnConfigure(m.configure)
		m.app.SetReady(Location)
		if m.onReady != nil {
			m.onReady()
		}
	}
	return cmd
}

// configure is the save-time hook: it hands back the whole form state
func (m *Model) configure(context.Context) (*config.StoredParameters, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot.Clone(), nil
}

func (m *Model) save() tea.Cmd {
	m.saving = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), hostTimeout)
		defer cancel()
		return savedMsg{err: m.app.Configure(ctx)}
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	f := m.focused()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Save):
		if m.saving {
			return nil
		}
		return m.save()

	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % len(m.fields))
		return nil

	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus - 1 + len(m.fields)) % len(m.fields))
		return nil
	}

	if f.editable() {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		m.applyInput(f)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Toggle):
		switch f.kind {
		case kindStyle:
			m.params.ToggleStyle(f.style, !m.params.Allows(f.style))
		case kindToggle:
			v := m.toggle(f.key)
			*v = !*v
		case kindDefaultStyle:
			m.cycleDefaultStyle(1)
		}
		m.publish()

	case key.Matches(msg, m.keys.Left):
		if f.kind == kindDefaultStyle {
			m.cycleDefaultStyle(-1)
			m.publish()
		}

	case key.Matches(msg, m.keys.Right):
		if f.kind == kindDefaultStyle {
			m.cycleDefaultStyle(1)
			m.publish()
		}
	}
	return nil
}

func (m *Model) cycleDefaultStyle(step int) {
	i := slices.Index(domain.Styles, m.params.DefaultStyle)
	n := len(domain.Styles)
	m.params.DefaultStyle = domain.Styles[((i+step)%n+n)%n]
}

// applyInput copies an edited input back into the parameters. Numbers are
// parsed leniently and an unparsable entry is kept as NaN.
func (m *Model) applyInput(f *formField) {
	switch f.kind {
	case kindNumber:
		*m.number(f.key) = config.ParseNumber(f.input.Value())
	case kindText:
		*m.text(f.key) = f.input.Value()
	}
	m.publish()
}

// syncInputs shows the current parameters in the text inputs
func (m *Model) syncInputs() {
	for i := range m.fields {
		f := &m.fields[i]
		switch f.kind {
		case kindNumber:
			f.input.SetValue(m.number(f.key).String())
		case kindText:
			f.input.SetValue(*m.text(f.key))
		}
	}
}

func (m *Model) publish() {
	stored := m.params.Stored()
	m.mu.Lock()
	m.snapshot = stored
	m.mu.Unlock()
}

func (m *Model) focused() *formField {
	return &m.fields[m.focus]
}

func (m *Model) setFocus(i int) {
	if f := m.focused(); f.editable() {
		f.input.Blur()
	}
	m.focus = i
	if f := m.focused(); f.editable() {
		f.input.Focus()
	}
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	return ui.ClearStatusAfter(ui.StatusTimeout)
}

// View renders the form
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Font Awesome Icon Picker Configuration"))

	section := ""
	for i := range m.fields {
		f := &m.fields[i]
		if f.section != section {
			section = f.section
			b.WriteString("\n")
			b.WriteString(m.styles.Section.Render(section))
		}
		b.WriteString("\n")
		b.WriteString(m.renderField(f, i == m.focus))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		views.RenderPreview(previewGlyph, m.params),
		"  ",
		m.styles.Dim.Render("Preview"),
	))

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

func (m *Model) renderField(f *formField, focused bool) string {
	prefix := "  "
	if focused {
		prefix = m.styles.Cursor.Render("> ")
	}

	var line string
	switch f.kind {
	case kindStyle:
		line = checkbox(m.params.Allows(f.style)) + " " + f.label
	case kindToggle:
		line = checkbox(*m.toggle(f.key)) + " " + f.label
	case kindDefaultStyle:
		label := cases.Title(language.English).String(string(m.params.DefaultStyle))
		line = fmt.Sprintf("%s: ‹ %s ›", f.label, label)
	case kindNumber, kindText:
		line = f.label + ": " + f.input.View()
	}

	if focused {
		return prefix + m.styles.Focused.Render(line)
	}
	return prefix + m.styles.Label.Render(line)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
