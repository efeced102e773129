package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/orbitsim/internal/nbody"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/system"
	"github.com/san-kum/orbitsim/internal/vec"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	bodies, err := system.Default()
	if err != nil {
		t.Fatal(err)
	}
	s, err := sim.New(bodies, sim.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(s, opts)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestFocusWraps(t *testing.T) {
	m := newTestModel(t, Options{})

	m = press(m, "left")
	if m.Focus() != 16 {
		t.Errorf("left from 0: got %d, want 16", m.Focus())
	}
	m = press(m, "right")
	if m.Focus() != 0 {
		t.Errorf("right from 16: got %d, want 0", m.Focus())
	}
	m = press(m, "right", "right")
	if m.Focus() != 2 {
		t.Errorf("got %d, want 2", m.Focus())
	}
}

func TestInitialFocusByName(t *testing.T) {
	m := newTestModel(t, Options{Focus: "Minmus"})
	if m.Focus() != 6 {
		t.Errorf("got %d, want 6", m.Focus())
	}
	if m := newTestModel(t, Options{Focus: "Nowhere"}); m.Focus() != 0 {
		t.Errorf("unknown focus: got %d, want 0", m.Focus())
	}
}

func TestZoom(t *testing.T) {
	m := newTestModel(t, Options{Scale: 1e-9})

	m = press(m, "+")
	if got := m.Scale(); got != 1e-9*ZoomFactor {
		t.Errorf("zoom in: got %g", got)
	}
	m = press(m, "-")
	if got := m.Scale(); got != 1e-9*ZoomFactor/ZoomFactor {
		t.Errorf("zoom out: got %g", got)
	}
}

func TestPauseAndTick(t *testing.T) {
	m := newTestModel(t, Options{Paused: true})

	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Error("tick should schedule another tick")
	}
	if got := m.sim.Info().Steps; got != 0 {
		t.Errorf("paused tick stepped %d times", got)
	}

	m = press(m, "p")
	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if got := m.sim.Info().Steps; got != 60 {
		t.Errorf("expected 60 steps after one tick, got %d", got)
	}
	if len(m.drift) != 1 {
		t.Errorf("expected one drift sample, got %d", len(m.drift))
	}

	m = press(m, " ")
	if !m.sim.Paused() {
		t.Error("space should pause")
	}
}

func TestSpeed(t *testing.T) {
	m := newTestModel(t, Options{})

	m = press(m, "]", "]")
	if m.Speed() != 4 {
		t.Errorf("got speed %d, want 4", m.Speed())
	}
	next, _ := m.Update(TickMsg{})
	m = next.(Model)
	if got := m.sim.Info().Frame; got != 4 {
		t.Errorf("expected 4 frames per tick, got %d", got)
	}

	m = press(m, "[", "[", "[")
	if m.Speed() != 1 {
		t.Errorf("speed floor: got %d", m.Speed())
	}
}

func TestHighlightToggle(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(m, "h")
	if !m.Highlight() {
		t.Error("expected highlight on")
	}
	m = press(m, "h")
	if m.Highlight() {
		t.Error("expected highlight off")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, Options{Focus: "Kerbin", Paused: true})
	out := m.View()

	for _, want := range []string{"KERBOLAR", "Kerbin", "PAUSED", "Day"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t, Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = next.(Model)
	if m.canvas.Width != 140-sidebarWidth-4 || m.canvas.Height != 38 {
		t.Errorf("canvas %dx%d", m.canvas.Width, m.canvas.Height)
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{ScreenshotDir: dir})
	m = press(m, "s")

	matches, err := filepath.Glob(filepath.Join(dir, "*.svg"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("screenshot is not svg")
	}
}

func TestSceneDraw(t *testing.T) {
	bodies := []nbody.Celestial{
		{Name: "Big", Radius: 10, Color: vec.Vec3[float32]{X: 1}},
		{Name: "Small", Radius: 0.1, Orbit: orbit.StateVectors{Position: vec.Vector{X: 20, Y: 8}}},
	}
	c := NewCanvas(40, 10)
	cw, ch := c.Dots()

	s := Scene{Focus: 0, Scale: 0.5}
	s.Draw(c, bodies)

	if !c.IsSet(cw/2, ch/2) || !c.IsSet(cw/2+5, ch/2) {
		t.Error("focused body not drawn as a disk of radius 5")
	}
	if !c.IsSet(cw/2+10, ch/2-4) {
		t.Error("small body not drawn, or y not flipped")
	}
	if c.IsSet(cw/2+10+highlightRadius, ch/2-4) {
		t.Error("ring drawn without highlight")
	}

	s.Highlight = true
	s.Draw(c, bodies)
	if !c.IsSet(cw/2+10+highlightRadius, ch/2-4) {
		t.Error("highlight ring missing")
	}

	s.Focus = 1
	s.Draw(c, bodies)
	if !c.IsSet(cw/2, ch/2) {
		t.Error("refocused body not at centre")
	}
}

func TestScenePlane(t *testing.T) {
	bodies := []nbody.Celestial{
		{Name: "A"},
		{Name: "B", Orbit: orbit.StateVectors{Position: vec.Vector{Y: 4, Z: -6}}},
	}
	c := NewCanvas(20, 10)
	cw, ch := c.Dots()

	s := Scene{Scale: 1}
	if _, y, _ := s.Project(c, bodies, 1); y != ch/2-4 {
		t.Errorf("x-y plane: y=%d", y)
	}
	s.Plane = PlaneXZ
	if x, y, _ := s.Project(c, bodies, 1); x != cw/2 || y != ch/2+6 {
		t.Errorf("x-z plane: (%d, %d)", x, y)
	}

	bodies[1].Orbit.Position.X = 1e30
	if _, _, ok := s.Project(c, bodies, 1); ok {
		t.Error("far body should not project")
	}
}

func TestNextFocus(t *testing.T) {
	tests := []struct{ focus, delta, n, want int }{
		{0, -1, 17, 16},
		{16, 1, 17, 0},
		{3, 1, 17, 4},
		{0, 1, 0, 0},
	}
	for _, tt := range tests {
		if got := NextFocus(tt.focus, tt.delta, tt.n); got != tt.want {
			t.Errorf("NextFocus(%d, %d, %d) = %d, want %d", tt.focus, tt.delta, tt.n, got, tt.want)
		}
	}
}

func TestHexColor(t *testing.T) {
	if got := HexColor(vec.Vec3[float32]{X: 1, Y: 0.5, Z: 0}); got != "#ff8000" {
		t.Errorf("got %s", got)
	}
}
