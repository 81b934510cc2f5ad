package viz

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/r7vme/ripple/internal/config"
	"github.com/r7vme/ripple/internal/drops"
	"github.com/r7vme/ripple/internal/field"
	"github.com/r7vme/ripple/internal/wave"
)

const (
	heatmapRows     = 24
	heatmapCols     = 72
	historyCapacity = 600
	stepsPerTick    = 4
)

var (
	pondStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives the interactive pond view.
type Model struct {
	cfg    *config.Config
	sim    *wave.Simulator
	params wave.Params
	rng    *rand.Rand

	// scratch recycles the grids read back from the simulator each frame.
	scratch *field.GridPool

	running       bool
	err           error
	energyHistory []float64
	showHelp      bool
}

// NewModel seeds a pond from cfg and prepares the view.
func NewModel(cfg *config.Config) (Model, error) {
	m := Model{
		cfg:           cfg,
		params:        wave.Params{Eps: cfg.Eps, Damping: cfg.Damping, WaveSpeed: cfg.WaveSpeed},
		rng:           rand.New(rand.NewSource(cfg.Seed)),
		scratch:       field.NewGridPool(cfg.Size, cfg.Size),
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) reset() error {
	u0 := drops.Random(m.cfg.Size, m.cfg.Drops, m.rng)
	sim, err := wave.New(m.cfg.Size, u0, drops.StillWater(m.cfg.Size))
	if err != nil {
		return err
	}
	m.sim = sim
	m.energyHistory = m.energyHistory[:0]
	return nil
}

// addDrop splashes one random impulse into the running simulation.
func (m *Model) addDrop() {
	if err := m.sim.Splash(m.rng.Intn(m.cfg.Size), m.rng.Intn(m.cfg.Size), m.rng.Float64()); err != nil {
		m.err = err
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
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
			if err := m.reset(); err != nil {
				m.err = err
			}
		case "d":
			m.addDrop()
		case "+", "=":
			m.params.Damping *= 1.25
		case "-":
			m.params.Damping *= 0.8
		case "]":
			m.params.WaveSpeed *= 1.05
		case "[":
			m.params.WaveSpeed *= 0.95
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < stepsPerTick; i++ {
				if err := m.sim.Step(m.params); err != nil {
					m.err = err
					break
				}
			}
			u := m.scratch.Get()
			v := m.scratch.Get()
			m.sim.CopyDisplacement(u)
			m.sim.CopyVelocity(v)
			energy := wave.FieldEnergy(u, v, m.params.WaveSpeed)
			m.scratch.Put(u)
			m.scratch.Put(v)
			if len(m.energyHistory) >= historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
			m.energyHistory = append(m.energyHistory, energy)
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\npress q to quit\n", m.err)
	}

	header := headerStyle.Render(fmt.Sprintf("ripple — %dx%d pond", m.cfg.Size, m.cfg.Size))

	u := m.scratch.Get()
	m.sim.CopyDisplacement(u)
	pond := pondStyle.Render(Heatmap(u, heatmapRows, heatmapCols, 0, m.cfg.Render.High))
	m.scratch.Put(u)

	status := "running"
	if !m.running {
		status = "paused"
	}
	stats := fmt.Sprintf("%s%s\n%s%s\n%s%s\n%s%s",
		labelStyle.Render("status"), valueStyle.Render(status),
		labelStyle.Render("step"), valueStyle.Render(fmt.Sprintf("%d  (t=%.2f)", m.sim.StepsTaken(), m.sim.Time())),
		labelStyle.Render("damping"), valueStyle.Render(fmt.Sprintf("%.4f", m.params.Damping)),
		labelStyle.Render("wave speed"), valueStyle.Render(fmt.Sprintf("%.2f", m.params.WaveSpeed)),
	)

	var graph string
	if len(m.energyHistory) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6),
			asciigraph.Width(70),
			asciigraph.Caption("field energy"),
		))
	}

	help := helpStyle.Render("space pause · d drop · r reset · +/- damping · [/] speed · q quit")
	if m.showHelp {
		help = helpStyle.Render(
			"space  pause/resume\n" +
				"d      splash a random drop\n" +
				"r      reseed the pond\n" +
				"+/-    raise/lower damping\n" +
				"[/]    slow down/speed up waves\n" +
				"?      toggle this help\n" +
				"q      quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, pond, stats, graph, help)
}

// RunInteractive starts the live terminal view.
func RunInteractive(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
