// Package tui is the full-screen terminal shell built on Bubble Tea.
// https://github.com/charmbracelet/bubbletea
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/cory-johannsen/adventure/internal/game/session"
)

const (
	Title           = "THE RUINS"
	PlaceHolderText = "Type a command and press Enter..."
)

var (
	panelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

// Model is the Bubble Tea model for one session.
type Model struct {
	sess     *session.Session
	viewport viewport.Model
	input    textinput.Model
	ready    bool
	width    int
	height   int
}

// New creates the model for sess.
//
// Precondition: sess must be non-nil.
func New(sess *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 200
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	return Model{
		sess:     sess,
		viewport: vp,
		input:    ti,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 5
		m.input.Width = msg.Width - 8
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit") {
				return m, tea.Quit
			}
			if !m.sess.HasWon() {
				m.sess.Submit(line)
			}
			m.refresh()
			return m, nil
		}
	}

	m.input, tiCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

// View renders the transcript above the input line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return panelStyle.Render(m.viewport.View()) + "\n" + m.input.View()
}

// refresh rebuilds the transcript for the current width and scrolls to the end.
func (m *Model) refresh() {
	m.viewport.SetContent(RenderTranscript(m.sess.Transcript(), m.viewport.Width, m.sess.HasWon()))
	m.viewport.GotoBottom()
}

// RenderTranscript formats entries for a panel of the given width.
func RenderTranscript(entries []session.Entry, width int, won bool) string {
	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(Title) + "\n")
	b.WriteString("Type commands like \"go south\" or \"examine door\". Esc quits.\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", wrap)) + "\n\n")

	for _, e := range entries {
		switch e.Author {
		case session.AuthorPlayer:
			b.WriteString(playerStyle.Render("> "+e.Text) + "\n")
		default:
			b.WriteString(systemStyle.Render(wordwrap.String(e.Text, wrap)) + "\n")
		}
	}
	if won {
		b.WriteString("\n" + wonStyle.Render("THE END") + "\n")
	}
	return b.String()
}
