package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

type tickMsg struct{}

type spinnerMsg struct {
	status string
	final  bool
}

// spinnerModel is a minimal bubbletea model showing the toolkit's
// current pipeline phase for long-running noding/polygonize runs.
type spinnerModel struct {
	frame  int
	status string
	quit   bool
}

func (m spinnerModel) Init() tea.Cmd { return tickCmd() }

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quit {
			return m, tea.Quit
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, tickCmd()
	case spinnerMsg:
		m.status = msg.status
		m.quit = msg.final
		return m, nil
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.quit {
		return ""
	}
	return fmt.Sprintf("%s %s\n", spinnerStyle.Render(spinnerFrames[m.frame]), m.status)
}

// progress reports pipeline phase transitions, either as a bubbletea
// spinner on an interactive run or as plain log lines under --verbose,
// where a live-redrawing spinner would just noise up the debug log.
type progress struct {
	logger  *log.Logger
	program *tea.Program
	doneCh  chan struct{}
}

func newProgress(logger *log.Logger, verbose bool) *progress {
	p := &progress{logger: logger}
	if verbose {
		return p
	}
	p.program = tea.NewProgram(spinnerModel{status: "starting"}, tea.WithOutput(os.Stderr))
	p.doneCh = make(chan struct{})
	go func() {
		_, _ = p.program.Run()
		close(p.doneCh)
	}()
	return p
}

func (p *progress) step(status string) {
	if p.program != nil {
		p.program.Send(spinnerMsg{status: status})
		return
	}
	p.logger.Info(status)
}

func (p *progress) done() {
	if p.program == nil {
		return
	}
	p.program.Send(spinnerMsg{final: true})
	<-p.doneCh
}
