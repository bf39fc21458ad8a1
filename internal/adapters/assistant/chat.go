package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type chatStyles struct {
	title     lipgloss.Style
	user      lipgloss.Style
	bot       lipgloss.Style
	hint      lipgloss.Style
	errorText lipgloss.Style
}

func newChatStyles() chatStyles {
	return chatStyles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		user:      lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		bot:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		hint:      lipgloss.NewStyle().Faint(true),
		errorText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

type replyMsg struct {
	text    string
	pending bool
	err     error
}

type chatModel struct {
	ctx       context.Context
	responder *Responder
	input     textinput.Model
	spinner   spinner.Model
	styles    chatStyles
	history   []string
	waiting   bool
	pending   bool
	quitting  bool
}

func newChatModel(ctx context.Context, responder *Responder) chatModel {
	input := textinput.New()
	input.Placeholder = "Ask me anything..."
	input.Focus()
	input.CharLimit = 200

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	styles := newChatStyles()

	return chatModel{
		ctx:       ctx,
		responder: responder,
		input:     input,
		spinner:   s,
		styles:    styles,
		history:   []string{styles.bot.Render(Greeting)},
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			return m.submit()
		}

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.history = append(m.history, m.styles.errorText.Render("error: "+msg.err.Error()))
			return m, nil
		}
		m.pending = msg.pending
		m.history = append(m.history, m.styles.bot.Render(msg.text))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.input.Reset()
	m.history = append(m.history, m.styles.user.Render("you: "+text))
	m.waiting = true

	if m.pending {
		return m, m.resolvePending(text)
	}

	responder := m.responder
	ctx := m.ctx
	return m, func() tea.Msg {
		reply, err := responder.Respond(ctx, text)
		return replyMsg{text: reply.Text, pending: reply.Pending, err: err}
	}
}

// resolvePending routes the next message to the confirmation state
// machine: yes-like input confirms, anything else cancels.
func (m chatModel) resolvePending(text string) tea.Cmd {
	responder := m.responder
	ctx := m.ctx

	return func() tea.Msg {
		switch strings.ToLower(text) {
		case "y", "yes", "confirm":
			text, err := responder.Confirm(ctx)
			return replyMsg{text: text, err: err}
		default:
			return replyMsg{text: responder.Cancel()}
		}
	}
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{m.styles.title.Render("Registration Assistant"), ""}
	lines = append(lines, m.history...)
	lines = append(lines, "")

	if m.waiting {
		lines = append(lines, m.spinner.View()+" thinking...")
	} else if m.pending {
		lines = append(lines, m.styles.hint.Render("confirm? (y/n)"), m.input.View())
	} else {
		lines = append(lines, m.input.View())
	}

	lines = append(lines, m.styles.hint.Render("esc or ctrl+c to quit"))

	return strings.Join(lines, "\n")
}

// RunChat starts the interactive assistant session and blocks until the
// user quits.
func RunChat(ctx context.Context, responder *Responder) error {
	p := tea.NewProgram(newChatModel(ctx, responder))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run chat program: %w", err)
	}

	return nil
}
