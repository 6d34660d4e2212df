// Package tui renders a live view of a running scenario: per-joint
// tracking state and the engine's force output, refreshed at the
// terminal frame rate while the host steps the world underneath.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/ming751/servokit/internal/config"
	"github.com/ming751/servokit/internal/engine"
	"github.com/ming751/servokit/internal/hostsim"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const historyLen = 120

type model struct {
	sc      *config.Scenario
	world   *hostsim.World
	eng     *engine.Engine
	handles []int

	paused  bool
	done    bool
	history []float64
	width   int
}

type tickMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// NewLive builds the live view around an already classified engine and
// its created instance handles.
func NewLive(sc *config.Scenario, world *hostsim.World, eng *engine.Engine, handles []int) tea.Model {
	return &model{
		sc:      sc,
		world:   world,
		eng:     eng,
		handles: handles,
		history: make([]float64, 0, historyLen),
		width:   80,
	}
}

func (m *model) Init() tea.Cmd { return frame() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if m.paused || m.done {
			return m, frame()
		}
		// advance one frame's worth of sim time
		steps := int(0.033 / m.sc.Dt)
		if steps < 1 {
			steps = 1
		}
		for i := 0; i < steps; i++ {
			if m.world.Data.Time >= m.sc.Duration {
				m.done = true
				break
			}
			m.world.Step(m.sc.Dt, m.eng.Step)
		}

		q, _ := m.world.Joint(0)
		m.history = append(m.history, q)
		if len(m.history) > historyLen {
			m.history = m.history[1:]
		}
		return m, frame()
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	status := green.Render("running")
	if m.paused {
		status = yellow.Render("paused")
	}
	if m.done {
		status = dim.Render("finished")
	}
	b.WriteString(fmt.Sprintf("%s  %s  t=%s  %s  %s\n\n",
		cyan.Render("servokit"),
		white.Render(m.sc.Name),
		white.Render(fmt.Sprintf("%.2fs", m.world.Data.Time)),
		status,
		dim.Render(fmt.Sprintf("%d/%d instances", len(m.handles), len(m.sc.Joints)))))

	d := m.world.Data
	for i, js := range m.sc.Joints {
		q, qd := m.world.Joint(i)
		qref := d.Ctrl[3*i]
		tau := d.ChannelForce[3*i+2]
		b.WriteString(fmt.Sprintf("  %s  q=%s qd=%s  ref=%s  err=%s  tau=%s\n",
			cyan.Render(fmt.Sprintf("%-8s", js.Name)),
			white.Render(fmt.Sprintf("%7.3f", q)),
			white.Render(fmt.Sprintf("%7.3f", qd)),
			dim.Render(fmt.Sprintf("%7.3f", qref)),
			yellow.Render(fmt.Sprintf("%7.3f", qref-q)),
			green.Render(fmt.Sprintf("%8.3f", tau))))
	}

	if len(m.history) > 2 {
		w := m.width - 12
		if w > historyLen {
			w = historyLen
		}
		if w > 10 {
			b.WriteString("\n")
			b.WriteString(asciigraph.Plot(m.history,
				asciigraph.Height(8),
				asciigraph.Width(w),
				asciigraph.Caption(m.sc.Joints[0].Name+" q")))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + dim.Render("space pause · q quit") + "\n")
	return b.String()
}

// Run starts the live view and blocks until the user quits.
func Run(sc *config.Scenario, world *hostsim.World, eng *engine.Engine, handles []int) error {
	p := tea.NewProgram(NewLive(sc, world, eng, handles))
	_, err := p.Run()
	return err
}
