// Package tui provides the live terminal view: the loop ticks at a fixed
// rate while the chart tracks plant output against the setpoint, and gains
// can be retuned from the keyboard between ticks.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/nkato/regulab/internal/control"
	"github.com/nkato/regulab/internal/loop"
)

const historyCapacity = 240

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model owns a running loop and the chart history for the live view.
type Model struct {
	lp        *loop.Loop
	pid       *control.PID
	plantName string
	dt        float64
	fps       int

	running   bool
	selected  int
	paramKeys []string

	outputs []float64
	last    loop.Sample
	ticked  bool
}

func NewModel(lp *loop.Loop, pid *control.PID, plantName string, dt float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		lp:        lp,
		pid:       pid,
		plantName: plantName,
		dt:        dt,
		fps:       fps,
		running:   true,
		paramKeys: []string{"kp", "ki", "kd", "target"},
		outputs:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.lp.Reset()
			m.outputs = m.outputs[:0]
			m.ticked = false
		case "tab":
			m.selected = (m.selected + 1) % len(m.paramKeys)
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		}
	case TickMsg:
		if m.running {
			m.last = m.lp.Tick(m.dt)
			m.ticked = true
			m.outputs = append(m.outputs, m.last.Output)
			if len(m.outputs) > historyCapacity {
				m.outputs = m.outputs[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// adjustParam retunes the selected gain between two ticks; the controller
// keeps its accumulated state, matching a live operator turning a knob.
func (m *Model) adjustParam(factor float64) {
	key := m.paramKeys[m.selected]
	val := m.pid.GetParams()[key]
	if val == 0 {
		if factor > 1 {
			val = 0.1
		} else {
			val = -0.1
		}
	} else {
		val *= factor
	}
	m.pid.SetParam(key, val)
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.plantName)) + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	if len(m.outputs) > 1 {
		chart := asciigraph.Plot(m.outputs,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("output (target %.2f)", m.pid.Setpoint())),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.lp.Time())) + "\n")
	if m.ticked {
		s.WriteString(labelStyle.Render("Output") + valueStyle.Render(fmt.Sprintf("%.4f", m.last.Output)) + "\n")
		s.WriteString(labelStyle.Render("Control") + valueStyle.Render(fmt.Sprintf("%.4f", m.last.Control)) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	params := m.pid.GetParams()
	for i, k := range m.paramKeys {
		line := fmt.Sprintf("%-8s %10.4f", k, params[k])
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Reset Tab:Select ↑↓:Tune Q:Quit"))
	return s.String()
}
