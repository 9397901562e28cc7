// Package consumer is the terminal greeting consumer: a Bubble Tea program
// that fetches the greeting once on start and renders it above a themed
// button.
package consumer

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/janisto/huma-greeter/internal/service/greeting"
	"github.com/janisto/huma-greeter/internal/theme"
)

// Texts shared with the browser consumer.
const (
	Heading        = "Frontend conectado"
	ButtonLabel    = "Haz clic aquí"
	Acknowledgment = "¡Haz clic!"
)

// greetingMsg carries a fetched message into the update loop.
type greetingMsg string

// fetchFailedMsg carries a fetch error into the update loop.
type fetchFailedMsg struct{ err error }

// Model is the Bubble Tea model for the greeting consumer.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	svc    greeting.Service
	theme  theme.Theme

	state        FetchState
	acknowledged bool
	focused      bool
	quitting     bool
}

// NewModel creates a consumer bound to svc. The fetch runs under a child of
// ctx that is cancelled when the consumer quits.
func NewModel(ctx context.Context, svc greeting.Service, t theme.Theme) Model {
	ctx, cancel := context.WithCancel(ctx)
	return Model{
		ctx:    ctx,
		cancel: cancel,
		svc:    svc,
		theme:  t,
	}
}

// Init issues the one greeting fetch.
func (m Model) Init() tea.Cmd {
	return fetchGreeting(m.ctx, m.svc)
}

func fetchGreeting(ctx context.Context, svc greeting.Service) tea.Cmd {
	return func() tea.Msg {
		g, err := svc.Hello(ctx)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return greetingMsg(g.Message)
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			m.quitting = true
			return m, tea.Quit
		case "enter", " ":
			m.acknowledged = true
		case "esc":
			m.acknowledged = false
		case "tab", "shift+tab":
			m.focused = !m.focused
		}

	case greetingMsg:
		if m.ctx.Err() == nil && m.state.Phase == Loading {
			m.state = loaded(string(msg))
		}

	case fetchFailedMsg:
		if m.ctx.Err() == nil && m.state.Phase == Loading {
			m.state = failed(msg.err)
		}
	}

	return m, nil
}

// State returns the fetch state.
func (m Model) State() FetchState {
	return m.state
}

// Acknowledged reports whether the button acknowledgment is showing.
func (m Model) Acknowledged() bool {
	return m.acknowledged
}

// Close cancels an in-flight fetch. It is safe to call more than once.
func (m Model) Close() {
	m.cancel()
}

// View renders the consumer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	c := m.theme.Colors
	var sections []string

	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Text)).
		Render(Heading)
	sections = append(sections, heading, "")

	sections = append(sections, lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)).Render(m.state.Text()))
	if m.state.Phase == Failed {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Danger)).
			Render("Error: "+m.state.Reason))
	}
	sections = append(sections, "")

	variant := theme.Primary
	if m.focused {
		variant = theme.Hover
	}
	sections = append(sections, theme.ButtonStyle(m.theme, variant).Lipgloss().Render(ButtonLabel))

	if m.acknowledged {
		alert := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Primary)).
			Padding(0, 2).
			Render(Acknowledgment)
		sections = append(sections, "", alert)
	}

	help := lipgloss.NewStyle().Faint(true).Render("enter/espacio: pulsar  esc: cerrar  tab: foco  q: salir")
	sections = append(sections, "", help)

	return strings.Join(sections, "\n")
}

// Run starts the consumer against svc and blocks until the user quits.
func Run(ctx context.Context, svc greeting.Service, t theme.Theme, opts ...tea.ProgramOption) error {
	model := NewModel(ctx, svc, t)
	defer model.Close()

	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("consumer: %w", err)
	}
	return nil
}
