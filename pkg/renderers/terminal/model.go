package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-parameditor/pkg/model"
	"github.com/goliatone/go-parameditor/pkg/render"
)

const defaultHelp = "tab/shift+tab: move • ctrl+s: get model • esc: cancel"

// Model is the bubbletea model of a parameter form. Every change to the
// focused input's text is forwarded to the editor as an input change.
type Model struct {
	editor  render.Editor
	params  []model.Param
	inputs  []textinput.Model
	focused int

	title       string
	actionLabel string
	styles      Styles

	submitted bool
	aborted   bool
}

var _ tea.Model = (*Model)(nil)

// NewModel builds one text input per param, seeded with the editor's values.
// The first input starts focused.
func NewModel(ed render.Editor, opts render.RenderOptions) *Model {
	params := ed.Params()
	inputs := make([]textinput.Model, len(params))
	for i, param := range params {
		input := textinput.New()
		input.Prompt = ""
		input.Width = 40
		input.SetValue(ed.Value(param.ID))
		input.CursorEnd()
		inputs[i] = input
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return &Model{
		editor:      ed,
		params:      params,
		inputs:      inputs,
		title:       opts.Title,
		actionLabel: opts.ActionLabel,
		styles:      DefaultStyles(),
	}
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles navigation keys and routes everything else to the focused
// input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "ctrl+s":
			m.submitted = true
			return m, tea.Quit
		case "enter":
			if m.focused >= len(m.inputs)-1 {
				m.submitted = true
				return m, tea.Quit
			}
			return m, m.move(1)
		case "tab", "down":
			return m, m.move(1)
		case "shift+tab", "up":
			return m, m.move(-1)
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}

	before := m.inputs[m.focused].Value()
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	if after := m.inputs[m.focused].Value(); after != before {
		m.editor.SetValue(m.params[m.focused].ID, after)
	}
	return m, cmd
}

func (m *Model) move(delta int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focused].Blur()
	m.focused = (m.focused + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focused].Focus()
}

// View renders the title, one `label  input` row per param and a help line.
func (m *Model) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n")
	}

	labelWidth := 0
	for _, param := range m.params {
		if w := lipgloss.Width(param.Name); w > labelWidth {
			labelWidth = w
		}
	}

	for i, param := range m.params {
		style := m.styles.Label
		if i == m.focused {
			style = m.styles.FocusedLabel
		}
		b.WriteString(style.Width(labelWidth + 2).Render(param.Name))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	help := defaultHelp
	if m.actionLabel != "" {
		help = strings.Replace(help, "get model", m.actionLabel, 1)
	}
	b.WriteString(m.styles.Help.Render(help))
	b.WriteString("\n")
	return b.String()
}

// Focused returns the index of the focused input.
func (m *Model) Focused() int {
	return m.focused
}

// Submitted reports whether the user asked for the model.
func (m *Model) Submitted() bool {
	return m.submitted
}

// Aborted reports whether the user cancelled the session.
func (m *Model) Aborted() bool {
	return m.aborted
}
