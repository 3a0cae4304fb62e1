// Package tui implements the interactive tally REPL.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/pengelbrecht/tally/internal/session"
	"github.com/pengelbrecht/tally/internal/styles"
)

const (
	defaultWidth = 80

	// Rows reserved for the header, input, status, and help lines.
	chromeHeight = 6
)

// line is one row of REPL scrollback.
type line struct {
	text  string
	alert bool
	err   bool
}

// Model is the bubbletea model for the REPL.
type Model struct {
	sess     *session.Session
	input    textinput.Model
	lines    []line
	status   string
	width    int
	height   int
	quitting bool
}

// New returns a REPL model bound to sess.
func New(sess *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "5 * 3"
	ti.Prompt = "> "
	ti.PromptStyle = styles.PromptStyle
	ti.CharLimit = 64
	ti.Focus()

	return Model{
		sess:  sess,
		input: ti,
		width: defaultWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit evaluates the current input line and appends the outcome to the
// scrollback. Blank input is ignored.
func (m Model) submit() Model {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m
	}

	outcome, err := m.sess.EvalLine(raw)
	if err != nil {
		m.lines = append(m.lines, line{text: fmt.Sprintf("%s: %v", raw, err), err: true})
		m.status = ""
		m.input.Reset()
		return m
	}

	m.lines = append(m.lines, line{
		text:  fmt.Sprintf("%s = %d", outcome.Expr, outcome.Value),
		alert: outcome.Alert,
	})
	m.status = outcome.Message
	m.input.Reset()
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	for _, ln := range m.visibleLines() {
		b.WriteString(m.renderLine(ln))
		b.WriteString("\n")
	}
	if len(m.lines) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.statusView())
		b.WriteString("\n")
	}
	b.WriteString(styles.RenderDim("enter evaluate · esc quit"))

	return b.String()
}

func (m Model) headerView() string {
	summary := fmt.Sprintf("  threshold %d · %d ops", m.sess.Threshold(), len(m.sess.History()))
	return styles.BoldStyle.Render("tally") + styles.RenderDim(summary)
}

func (m Model) statusView() string {
	if strings.HasPrefix(m.status, "Threshold exceeded") {
		return styles.RenderAlert(styles.IconAlert + " " + m.status)
	}
	return styles.RenderDim(m.status)
}

// visibleLines returns the scrollback rows that fit the window height,
// keeping the most recent ones.
func (m Model) visibleLines() []line {
	limit := m.height - chromeHeight
	if m.height == 0 || limit <= 0 || len(m.lines) <= limit {
		return m.lines
	}
	return m.lines[len(m.lines)-limit:]
}

// renderLine styles one scrollback row, truncated to the window width.
func (m Model) renderLine(ln line) string {
	width := m.width
	if width < 20 {
		width = 20
	}
	text := ansi.Truncate(ln.text, width, "…")

	switch {
	case ln.err:
		return styles.RenderError(text)
	case ln.alert:
		return styles.RenderAlert(text)
	}
	return styles.RenderResult(text)
}

// Run starts the REPL and blocks until the user quits.
func Run(sess *session.Session) error {
	if _, err := tea.NewProgram(New(sess)).Run(); err != nil {
		return fmt.Errorf("run repl: %w", err)
	}
	return nil
}
