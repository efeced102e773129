package viz

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitsim/internal/nbody"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/vec"
)

const (
	width           = 80
	height          = 24
	sidebarWidth    = 42
	historyCapacity = 600
	maxSpeed        = 64
)

type TickMsg time.Time

type Options struct {
	Focus     string
	Scale     float64
	Highlight bool
	FPS       int
	// Paused starts the view paused.
	Paused bool
	// ScreenshotDir receives SVG snapshots; empty means the working directory.
	ScreenshotDir string
}

// Model drives a simulator at a fixed tick rate and draws it.
type Model struct {
	sim    *sim.Simulator
	bodies []nbody.Celestial
	scene  Scene

	fps           int
	speed         int
	width, height int
	canvas        *Canvas

	initialEnergy float64
	drift         []float64
	message       string
	screenshotDir string
}

func NewModel(s *sim.Simulator, opts Options) Model {
	bodies := s.Snapshot()

	focus := nbody.Index(bodies, opts.Focus)
	if focus < 0 {
		focus = 0
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	scale := opts.Scale
	if !(scale > 0) {
		scale = 3.0e-9
	}

	s.SetPaused(opts.Paused)

	return Model{
		sim:    s,
		bodies: bodies,
		scene: Scene{
			Focus:     focus,
			Scale:     scale,
			Highlight: opts.Highlight,
		},
		fps:           fps,
		speed:         1,
		width:         width,
		height:        height,
		canvas:        NewCanvas(width, height),
		initialEnergy: s.Energy(),
		drift:         make([]float64, 0, historyCapacity),
		screenshotDir: opts.ScreenshotDir,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the simulator on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(20, msg.Width-sidebarWidth-4)
		m.height = max(8, msg.Height-2)
		m.canvas = NewCanvas(m.width, m.height)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			if m.sim.TogglePause() {
				m.message = "Simulation paused."
			} else {
				m.message = "Simulation unpaused."
			}
		case "h":
			m.scene.Highlight = !m.scene.Highlight
			if m.scene.Highlight {
				m.message = "Highlighting on."
			} else {
				m.message = "Highlighting off."
			}
		case "left":
			m.scene.Focus = NextFocus(m.scene.Focus, -1, len(m.bodies))
			m.message = "Focus: " + m.bodies[m.scene.Focus].Name
		case "right":
			m.scene.Focus = NextFocus(m.scene.Focus, 1, len(m.bodies))
			m.message = "Focus: " + m.bodies[m.scene.Focus].Name
		case "+", "=", "up":
			m.scene.Scale *= ZoomFactor
		case "-", "_", "down":
			m.scene.Scale /= ZoomFactor
		case "]":
			m.speed = min(maxSpeed, m.speed*2)
			m.message = fmt.Sprintf("Speed x%d.", m.speed)
		case "[":
			m.speed = max(1, m.speed/2)
			m.message = fmt.Sprintf("Speed x%d.", m.speed)
		case "v":
			if m.scene.Plane == PlaneXY {
				m.scene.Plane = PlaneXZ
			} else {
				m.scene.Plane = PlaneXY
			}
			m.message = "View plane " + m.scene.Plane.String() + "."
		case "s":
			m.message = m.screenshot()
		}
	case TickMsg:
		m.advance()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	var info sim.FrameInfo
	for i := 0; i < m.speed; i++ {
		info = m.sim.Frame()
		if info.Paused {
			break
		}
	}
	m.bodies = m.sim.Snapshot()

	if info.Paused {
		return
	}
	drift := 0.0
	if m.initialEnergy != 0 {
		drift = math.Abs(nbody.TotalEnergy(m.bodies, nbody.G)-m.initialEnergy) / math.Abs(m.initialEnergy)
	}
	m.drift = append(m.drift, drift)
	if len(m.drift) > historyCapacity {
		m.drift = m.drift[1:]
	}
}

func (m *Model) screenshot() string {
	m.scene.Draw(m.canvas, m.bodies)

	info := m.sim.Info()
	name := fmt.Sprintf("orbitsim-day%04d-%s.svg", info.Day, strings.ToLower(m.bodies[m.scene.Focus].Name))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(CanvasToSVG(m.canvas, 4)), 0644); err != nil {
		return "Screenshot failed: " + err.Error()
	}
	return "Saved " + path
}

// Focus returns the focused body's index.
func (m Model) Focus() int { return m.scene.Focus }

// Scale returns the current zoom in dots per metre.
func (m Model) Scale() float64 { return m.scene.Scale }

func (m Model) Highlight() bool { return m.scene.Highlight }

func (m Model) Speed() int { return m.speed }

// View renders the canvas next to a status panel.
func (m Model) View() string {
	m.scene.Draw(m.canvas, m.bodies)
	canvasView := canvasStyle.Render(m.canvas.Render())

	info := m.sim.Info()
	focus := m.bodies[m.scene.Focus]

	var s strings.Builder
	s.WriteString(headerStyle.Render("KERBOLAR") + "\n")
	if info.Paused {
		s.WriteString(StatusPaused.Render("PAUSED"))
	} else {
		s.WriteString(StatusRunning.Render("RUNNING"))
	}
	s.WriteString(fmt.Sprintf("  x%d\n\n", m.speed))

	dayFrac := math.Mod(info.Time, sim.SecondsPerDay) / sim.SecondsPerDay
	s.WriteString(labelStyle.Render("Day") + valueStyle.Render(fmt.Sprintf("%d ", info.Day)) + ProgressBar(dayFrac, 12) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(formatDuration(info.Time)) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", info.Steps)) + "\n")
	s.WriteString(labelStyle.Render("Focus") + focusStyle.Render(focus.Name) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.1f m/s", vec.Magnitude(focus.Orbit.Velocity))) + "\n")
	s.WriteString(labelStyle.Render("Scale") + valueStyle.Render(fmt.Sprintf("%.3g dot/m", m.scene.Scale)) + "\n")
	s.WriteString(labelStyle.Render("Plane") + valueStyle.Render(m.scene.Plane.String()) + "\n")

	if len(m.drift) > 1 {
		chart := asciigraph.Plot(m.drift, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Energy drift"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.message != "" {
		s.WriteString("\n" + valueStyle.Render(m.message) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nP/SP:Pause  H:Highlight  Q:Quit\n←→:Focus  +-:Zoom  []:Speed\nV:Plane  S:Screenshot"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

func formatDuration(seconds float64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d.Hours()) / 24
	d -= time.Duration(days) * 24 * time.Hour
	return fmt.Sprintf("%dd %02d:%02d:%02d", days, int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}

// Run starts the view in the terminal's alternate screen.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
