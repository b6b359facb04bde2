package ui

import (
	"context"
	"strings"

	"github.com/Alias1177/heartform/internal/form"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formChangedMsg is sent whenever the form changed outside the UI loop,
// e.g. a marker cleared by its timer.
type formChangedMsg struct{}

// submitDoneMsg is sent when a submission finished
type submitDoneMsg struct{}

// Options configure the form view
type Options struct {
	Endpoint string
}

// Model is the bubbletea model of the form
type Model struct {
	form    *form.Form
	names   []string
	inputs  []textinput.Model
	focus   int // len(inputs) is the submit button
	changes chan struct{}
	unwatch func()
	styles  Styles
	opts    Options
	ctx     context.Context
}

// New builds a model over f. Call Close when the program exits.
func New(ctx context.Context, f *form.Form, opts Options) Model {
	m := Model{
		form:    f,
		changes: make(chan struct{}, 1),
		styles:  DefaultStyles(),
		opts:    opts,
		ctx:     ctx,
	}

	for _, el := range f.Elements() {
		if el.Type != form.TypeNumber || el.Name == "" {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "—"
		ti.CharLimit = 16
		ti.Width = 16
		ti.SetValue(el.Value)
		m.names = append(m.names, el.Name)
		m.inputs = append(m.inputs, ti)
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}

	changes := m.changes
	m.unwatch = f.Watch(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	return m
}

// Close detaches the model from the form
func (m Model) Close() {
	if m.unwatch != nil {
		m.unwatch()
	}
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return formChangedMsg{}
	}
}

// Init starts the cursor blink and the change listener
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(m.changes))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "enter", "ctrl+s":
			return m, m.submit()
		}
		return m.updateInput(msg)

	case formChangedMsg:
		return m, waitForChange(m.changes)

	case submitDoneMsg:
		return m, nil
	}

	return m.updateInput(msg)
}

func (m *Model) setFocus(i int) {
	n := len(m.inputs) + 1
	m.focus = ((i % n) + n) % n
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		// fires the field's input listeners
		_ = m.form.SetValue(m.names[m.focus], after)
	}
	return m, cmd
}

// submit returns nil while the control is disabled
func (m Model) submit() tea.Cmd {
	if m.form.SubmitControl().Disabled {
		return nil
	}
	f, ctx := m.form, m.ctx
	return func() tea.Msg {
		f.Submit(ctx)
		return submitDoneMsg{}
	}
}

// View renders the form.
func (m Model) View() string {
	state := m.form.Snapshot()
	invalid := make(map[string]bool, len(state.Elements))
	for _, el := range state.Elements {
		invalid[el.Name] = el.Invalid
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("♥ Heart Disease Risk Check"))
	sb.WriteString("\n")

	for i, name := range m.names {
		label := Labels[name]
		if label == "" {
			label = name
		}
		field := m.styles.Field
		if invalid[name] {
			field = m.styles.FieldInvalid
		}
		line := m.styles.Label.Render(label) + field.Render(m.inputs[i].View())
		if invalid[name] {
			line += " " + m.styles.Hint.Render("out of range")
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")

	button := m.styles.Button
	switch {
	case state.Submit.Disabled:
		button = m.styles.ButtonBusy
	case m.focus == len(m.inputs):
		button = m.styles.ButtonFocus
	}
	sb.WriteString(button.Render(state.Submit.Label))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderPanel(state.Result))
	sb.WriteString("\n")

	footer := "tab/shift+tab move • enter analyze • esc quit"
	if m.opts.Endpoint != "" {
		footer = "endpoint " + m.opts.Endpoint + "\n" + footer
	}
	sb.WriteString(m.styles.Footer.Render(footer))
	return sb.String()
}

func (m Model) renderPanel(p form.Panel) string {
	style, ok := m.styles.Panel[p.Class]
	if !ok {
		style = m.styles.Panel[form.ClassDefault]
	}

	var lines []string
	headline := p.Headline
	if g := Glyph(p.Icon); g != "" {
		headline = g + " " + headline
	}
	lines = append(lines, headline)
	if p.Detail != "" {
		lines = append(lines, p.Detail)
	}
	if p.Advice != "" {
		lines = append(lines, "♥ "+p.Advice)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Run starts the interactive program and blocks until the user quits
func Run(ctx context.Context, f *form.Form, opts Options) error {
	m := New(ctx, f, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
