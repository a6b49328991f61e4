// Package tui shows live run progress in the terminal while the
// simulator advances.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

var sparks = []rune("▁▂▃▄▅▆▇█")

// StepMsg reports one completed timestep.
type StepMsg struct {
	Iter   int
	AvgVel float64
}

// DoneMsg reports run completion.
type DoneMsg struct {
	Err error
}

// Model is the bubbletea model for the progress view.
type Model struct {
	total   int
	iter    int
	avgVel  float64
	history []float64
	width   int
	done    bool
	err     error
}

func NewModel(totalIters int) Model {
	return Model{
		total:   totalIters,
		history: make([]float64, 0, 64),
		width:   80,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case StepMsg:
		m.iter = msg.Iter + 1
		m.avgVel = msg.AvgVel
		if len(m.history) == cap(m.history) {
			m.history = m.history[1:]
		}
		m.history = append(m.history, msg.AvgVel)
	case DoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("latticeflow"))
	b.WriteString(dim.Render("  d2q9-bgk lattice-boltzmann\n\n"))

	barWidth := m.width - 20
	if barWidth < 10 {
		barWidth = 10
	}
	frac := 0.0
	if m.total > 0 {
		frac = float64(m.iter) / float64(m.total)
	}
	filled := int(frac * float64(barWidth))
	bar := green.Render(strings.Repeat("█", filled)) + dim.Render(strings.Repeat("░", barWidth-filled))
	fmt.Fprintf(&b, "  %s %5.1f%%\n\n", bar, frac*100)

	fmt.Fprintf(&b, "  %s %d / %d\n", dim.Render("iteration"), m.iter, m.total)
	fmt.Fprintf(&b, "  %s %.6E\n\n", dim.Render("avg vel  "), m.avgVel)

	b.WriteString("  " + yellow.Render(sparkline(m.history, barWidth)) + "\n\n")

	if m.done {
		if m.err != nil {
			b.WriteString(dim.Render("  stopped: ") + m.err.Error() + "\n")
		} else {
			b.WriteString(green.Render("  done\n"))
		}
	} else {
		b.WriteString(dim.Render("  q to quit view\n"))
	}
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	var b strings.Builder
	for _, v := range data {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparks)-1))
		}
		b.WriteRune(sparks[idx])
	}
	return b.String()
}

// Relay forwards simulator steps into a running bubbletea program; it
// satisfies the simulator's Observer interface.
type Relay struct {
	Program *tea.Program
}

func (r *Relay) OnStep(iter int, avgVel float64) {
	r.Program.Send(StepMsg{Iter: iter, AvgVel: avgVel})
}
