package viz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/metrics"
	"github.com/san-kum/collide/internal/physics"
	"github.com/san-kum/collide/internal/rng"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 300
	tickInterval    = time.Second / 60
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model holds the world being shown and the terminal view state.
type Model struct {
	cfg    *config.Config
	src    *rng.Source
	world  *physics.World
	canvas *Canvas
	fps    *metrics.RollingAverage
	theme  Theme
	styles styles

	width, height int
	running       bool
	lastTick      time.Time
	frames        int
	totals        dynamo.FrameStats
	energyHistory []float64
	err           error
}

// NewModel places the bodies described by cfg and returns a running model.
func NewModel(cfg *config.Config) (Model, error) {
	m := Model{
		cfg:     cfg,
		src:     rng.New(cfg.Seed),
		canvas:  NewCanvas(width, height),
		fps:     metrics.NewRollingAverage(cfg.FPSWindow),
		theme:   ThemeClassic,
		styles:  newStyles(ThemeClassic),
		width:   width,
		height:  height,
		running: true,
	}
	if err := m.place(); err != nil {
		return m, err
	}
	m.draw()
	return m, nil
}

func (m Model) Init() tea.Cmd { return tick() }

// World exposes the simulated world.
func (m Model) World() *physics.World { return m.world }

func (m Model) Running() bool { return m.running }

func (m Model) Frames() int { return m.frames }

func (m Model) Seed() int64 { return m.src.Seed() }

// Update handles input and advances the world by the wall-clock time
// measured between ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.err = m.place()
			m.draw()
		case "t":
			m.theme = nextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		}
	case TickMsg:
		now := time.Time(msg)
		var dt float64
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick).Seconds()
		}
		m.lastTick = now
		if m.running && m.err == nil {
			m.step(dt)
		}
		m.draw()
		return m, tick()
	}
	return m, nil
}

// place runs placement into a fresh world. The source keeps advancing so
// each call yields a new layout.
func (m *Model) place() error {
	bodies, err := physics.Place(m.src, m.cfg.Placement())
	if err != nil {
		return err
	}
	m.world = physics.NewWorld(bodies, m.cfg.Bounds(), m.cfg.Options())
	m.frames = 0
	m.totals = dynamo.FrameStats{}
	m.energyHistory = m.energyHistory[:0]
	m.fps.Reset()
	return nil
}

func (m *Model) step(dt float64) {
	if dt > 0 {
		m.fps.Push(1 / dt)
	}
	stats := m.world.Step(dt)
	m.totals.Merge(stats)
	m.frames++

	m.energyHistory = append(m.energyHistory, dynamo.TotalKineticEnergy(m.world.Bodies))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// project returns the sub-pixel scale and offsets that fit the world
// bounds into the canvas while keeping circles round.
func (m *Model) project() (scale, ox, oy float64) {
	cw, ch := float64(m.width*2), float64(m.height*4)
	b := m.world.Bounds
	scale = math.Min((cw-1)/b.Width, (ch-1)/b.Height)
	ox = (cw - b.Width*scale) / 2
	oy = (ch - b.Height*scale) / 2
	return scale, ox, oy
}

func (m *Model) draw() {
	m.canvas.Clear()
	if m.world == nil {
		return
	}
	scale, ox, oy := m.project()
	vp := m.world.Bounds
	m.canvas.DrawRect(int(ox), int(oy), int(ox+vp.Width*scale), int(oy+vp.Height*scale))
	for _, b := range m.world.Bodies {
		m.canvas.FillCircle(ox+b.Position.X*scale, oy+b.Position.Y*scale, b.Radius*scale)
	}
}

func (m Model) View() string {
	canvasView := m.styles.canvas.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(m.styles.header.Render("BALL COLLISION") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if m.err != nil {
		s.WriteString(m.styles.alert.Render(m.err.Error()) + "\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Kinetic energy"))
		s.WriteString(m.styles.graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}
	if m.world != nil {
		row("Bodies", fmt.Sprintf("%d", len(m.world.Bodies)))
		row("Time", fmt.Sprintf("%.2fs", m.world.Time()))
		row("Energy", fmt.Sprintf("%.4g", dynamo.TotalKineticEnergy(m.world.Bodies)))
	}
	row("Frames", fmt.Sprintf("%d", m.frames))
	row("FPS", fmt.Sprintf("%.1f", m.fps.Value()))
	row("Contacts", fmt.Sprintf("%d", m.totals.Contacts))
	row("Wall hits", fmt.Sprintf("%d", m.totals.WallHits))
	if m.totals.Degenerate > 0 {
		row("Degenerate", fmt.Sprintf("%d", m.totals.Degenerate))
	}
	row("Seed", fmt.Sprintf("%d", m.src.Seed()))
	row("Theme", m.theme.Name)

	s.WriteString(m.styles.help.Render("SP:Pause R:Reset T:Theme Q:Quit"))

	statsView := m.styles.stats.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run shows the world in the terminal until the user quits or ctx is done.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	m, err := NewModel(cfg)
	if err != nil {
		return fmt.Errorf("place bodies (seed %d): %w", m.Seed(), err)
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		fmt.Fprintf(out, "quit after %d frames (seed %d)\n", fm.Frames(), fm.Seed())
	}
	return nil
}
