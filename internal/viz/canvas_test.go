package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	c.Set(3, 3)
	if got := c.Grid[0][0]; got != blank+0x1 {
		t.Errorf("cell 0: got %U", got)
	}
	if got := c.Grid[0][1]; got != blank+0x80 {
		t.Errorf("cell 1: got %U", got)
	}
	if !c.IsSet(0, 0) || c.IsSet(1, 0) {
		t.Error("IsSet mismatch")
	}

	// Out of range dots are ignored.
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)

	c.Clear()
	if want := string([]rune{blank, blank}) + "\n"; c.String() != want {
		t.Errorf("clear left %q", c.String())
	}
}

func TestCanvasColor(t *testing.T) {
	c := NewCanvas(1, 1)
	c.SetColor(0, 0, "#ff0000")
	c.Set(1, 1)

	if c.Colors[0][0] != "#ff0000" {
		t.Errorf("colour overwritten: %q", c.Colors[0][0])
	}
	if !strings.Contains(c.Render(), string(c.Grid[0][0])) {
		t.Error("render lost the cell")
	}
}

func TestCanvasDiskAndRing(t *testing.T) {
	c := NewCanvas(10, 5)
	cx, cy := 10, 10

	c.Disk(cx, cy, 2, "")
	if !c.IsSet(cx, cy) || !c.IsSet(cx+2, cy) || c.IsSet(cx+2, cy+2) {
		t.Error("disk shape wrong")
	}

	c.Clear()
	c.Ring(cx, cy, 3, "")
	if c.IsSet(cx, cy) {
		t.Error("ring filled its centre")
	}
	for _, p := range [][2]int{{3, 0}, {-3, 0}, {0, 3}, {0, -3}} {
		if !c.IsSet(cx+p[0], cy+p[1]) {
			t.Errorf("ring missing %v", p)
		}
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0, "")
	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("dot %d not set", x)
		}
	}
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1) != "" {
		t.Error("nil canvas should render empty")
	}

	c := NewCanvas(2, 1)
	c.SetColor(0, 0, "#00ff00")
	c.Set(2, 0)

	svg := CanvasToSVG(c, 2)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Errorf("malformed svg:\n%s", svg)
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 circles, got %d", n)
	}
	if !strings.Contains(svg, `fill="#00ff00"`) || !strings.Contains(svg, `fill="#ffffff"`) {
		t.Errorf("colours missing:\n%s", svg)
	}
}
