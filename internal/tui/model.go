// Package tui implements the interactive chat terminal interface.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ChatPort is the TUI-facing subset of the chatbot engine.
type ChatPort interface {
	Process(ctx context.Context, message string) string
}

// message is a single entry in the conversation transcript.
type message struct {
	fromUser bool
	text     string
}

// replyMsg carries a finished engine response back into the update loop.
type replyMsg struct {
	text string
}

// Model is the Bubble Tea model for the chat application.
type Model struct {
	engine   ChatPort
	input    textinput.Model
	viewport viewport.Model
	history  []message
	status   string
	waiting  bool
	ready    bool
}

// New creates a new chat model instance.
func New(engine ChatPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about your documents and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{engine: engine, input: ti, viewport: vp, status: "Ready. Type a question, Ctrl+C to quit."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around transcript and input boxes
		_, th := transcriptBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + ih + 1 // header, status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" && !m.waiting {
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				m.history = append(m.history, message{fromUser: true, text: q})
				m.input.Reset()
				m.waiting = true
				m.status = "Thinking..."
				m.viewport.SetContent(m.renderHistory())
				m.viewport.GotoBottom()
				return m, m.askCmd(q)
			}
		}
	case replyMsg:
		m.history = append(m.history, message{fromUser: false, text: msg.text})
		m.waiting = false
		m.status = "Ready."
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// askCmd runs the engine off the update loop so the UI stays responsive
// while the model call is in flight.
func (m Model) askCmd(question string) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		return replyMsg{text: engine.Process(context.Background(), question)}
	}
}

// View renders the chat layout and transcript.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Document Chat")
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return "No messages yet. Ask a question about your documents."
	}
	var sb strings.Builder
	for i, msg := range m.history {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if msg.fromUser {
			sb.WriteString(userStyle.Render("You: ") + msg.text)
		} else {
			sb.WriteString(botStyle.Render("Bot: ") + msg.text)
		}
	}
	return sb.String()
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
