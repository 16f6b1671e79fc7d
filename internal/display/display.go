// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type manages a status bar (recipe count and grand total) and
// an input prompt at the bottom of the terminal. All application output
// is printed above the rendered area via Program.Println / Printf, so
// writes from the command loop never garble the display.
package display

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Status bar.
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))
	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))
	draftStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))
	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle renders the startup banner and the line under it.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Scrollback: replies to commands, recipe names, rows, hints, errors
	// and the echoed input.
	replyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)
	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))
	echoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))
)

// Status is what the bar at the bottom shows.
type Status struct {
	Recipes    int
	GrandTotal float64
	Drafting   bool
}

// StatusFunc reports the current status. It is called from the Bubble
// Tea goroutine, so it must be safe for concurrent use.
type StatusFunc func() Status

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may safely
// call [UI.Println], [UI.Printf], and read from [UI.InputChan] at any
// time after [UI.WaitReady] returns.
type UI struct {
	program  *tea.Program
	inputCh  chan string
	readyCh  chan struct{}
	quitCh   chan struct{}
	status   StatusFunc
	currency string
	done     atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI(status StatusFunc, currency string) *UI {
	return &UI{
		status:   status,
		currency: currency,
		inputCh:  make(chan string, 16),
		readyCh:  make(chan struct{}),
		quitCh:   make(chan struct{}),
	}
}

// Println prints a line above the prompt. Thread-safe.
// If the program hasn't started yet, falls back to fmt.Println.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt. Thread-safe.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format, a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// PrintReply prints the book's answer to a command.
func (u *UI) PrintReply(text string) {
	u.Println(replyStyle.Render("  " + text))
}

// PrintHeading prints a recipe name or section header.
func (u *UI) PrintHeading(text string) {
	u.Println(headingStyle.Render("  " + text))
}

// PrintLine prints a regular output row.
func (u *UI) PrintLine(text string) {
	u.Println(rowStyle.Render("  " + text))
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(hintStyle.Render("  " + text))
}

// PrintError prints a refused command or a failure.
func (u *UI) PrintError(text string) {
	u.Println(errorStyle.Render("  " + text))
}

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("book") + hintStyle.Render("> ") + echoStyle.Render(text))
}

// PrintLines prints rendered lines: the first as a heading, the rest as rows.
func (u *UI) PrintLines(lines []string) {
	for i, l := range lines {
		if i == 0 {
			u.PrintHeading(l)
			continue
		}
		u.PrintLine(l)
	}
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	// Plain-text prompt keeps the textinput width math correct; styled
	// prompts add invisible ANSI bytes that break offset calculations.
	ti.Prompt = "book> "
	ti.PromptStyle = promptStyle
	ti.TextStyle = echoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		statusFn: u.status,
		currency: u.currency,
		input:    ti,
		inputCh:  u.inputCh,
		readyCh:  u.readyCh,
		echoFn: func(v string) {
			u.PrintUserInput(v)
		},
	}
	if m.statusFn != nil {
		m.status = m.statusFn()
	}

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

type model struct {
	statusFn StatusFunc
	currency string
	input    textinput.Model
	inputCh  chan<- string
	readyCh  chan struct{}
	echoFn   func(string) // prints user input into scrollback
	status   Status
	width    int
}

// Messages.
type tickMsg time.Time

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		signalReady(m.readyCh),
		tea.SetWindowTitle("Recipe Book"),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) != "" {
				m.inputCh <- v
				// Echo from a Cmd so it runs outside Update.
				echoFn := m.echoFn
				return m, func() tea.Msg {
					echoFn(v)
					return nil
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		const promptLen = 6 // "book> "
		if msg.Width > promptLen {
			m.input.Width = msg.Width - promptLen
		}
		return m, nil

	case tickMsg:
		if m.statusFn != nil {
			m.status = m.statusFn()
		}
		return m, tickCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.renderBar())
	b.WriteByte('\n')
	// Blank line before prompt for visual separation.
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	parts := []string{
		labelStyle.Render("recipes: ") + countStyle.Render(fmt.Sprint(m.status.Recipes)),
		labelStyle.Render("total: ") + totalStyle.Render(FormatPrice(m.status.GrandTotal, m.currency)),
	}
	if m.status.Drafting {
		parts = append(parts, draftStyle.Render("adding a recipe"))
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}
