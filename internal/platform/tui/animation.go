package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// animation phases and messages shown by the fun command.
var animationLines = []string{
	"Warming up the deck...",
	"Shuffling bits...",
	"Polishing pixels...",
	"Untangling cables...",
	"Done!",
}

// frameMsg drives the progress bar forward.
type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/10, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// AnimationModel is a short spinner + progress diversion with no purpose
// beyond looking busy.
type AnimationModel struct {
	spinner  spinner.Model
	progress progress.Model
	percent  float64
	width    int
	done     bool
}

// NewAnimationModel creates the animation model.
func NewAnimationModel() AnimationModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return AnimationModel{
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
		width:    60,
	}
}

// Init starts the spinner and the frame ticker.
func (m AnimationModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, frameCmd())
}

// Update handles messages.
func (m AnimationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case frameMsg:
		m.percent += 0.02
		if m.percent >= 1.0 {
			m.percent = 1.0
			m.done = true
			// Linger for a moment on the finished state before exiting.
			return m, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tea.QuitMsg{}
			})
		}
		return m, frameCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the animation.
func (m AnimationModel) View() string {
	line := animationLines[len(animationLines)-1]
	if !m.done {
		idx := int(m.percent * float64(len(animationLines)-1))
		line = animationLines[idx]
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString("  " + m.spinner.View() + " " + line + "\n\n")
	b.WriteString("  " + m.progress.ViewAs(m.percent) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("  q to skip"))
	return b.String()
}

// RunAnimation runs the fun animation until it completes or is skipped.
func RunAnimation() error {
	p := tea.NewProgram(NewAnimationModel())
	_, err := p.Run()
	return err
}
