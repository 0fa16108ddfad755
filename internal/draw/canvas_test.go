package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestCanvas_RenderOnlyChanges(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.SetColor(Red)
	c.SetFloat(2, 2)

	var out bytes.Buffer
	if err := c.Render(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[2;3H") {
		t.Errorf("first render did not paint the set cell: %q", out.String())
	}
	if !strings.Contains(out.String(), FG(Red)) {
		t.Errorf("first render did not use the pen colour: %q", out.String())
	}

	out.Reset()
	if err := c.Render(&out); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("unchanged canvas rendered %q", out.String())
	}

	c.Clear()
	out.Reset()
	if err := c.Render(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[2;3H"+ColorReset+" ") {
		t.Errorf("cleared cell not erased: %q", out.String())
	}
}

func TestCanvas_HalfBlocks(t *testing.T) {
	c := NewScaledCanvas(3, 1, 3, 2)
	c.SetColor(White)
	c.SetFloat(0, 0)
	c.SetFloat(1, 1)
	c.SetFloat(2, 0)
	c.SetColor(Green)
	c.SetFloat(2, 1)

	var out bytes.Buffer
	if err := c.Render(&out); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, want := range []string{
		"\033[1;1H\033[49m" + FG(White) + "▀",
		"\033[1;2H\033[49m" + FG(White) + "▄",
		"\033[1;3H" + FG(White) + "\033[48;2;60;200;90m▀",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output %q missing %q", s, want)
		}
	}
}

func TestCanvas_MarkTextDirtyRepaintsRow(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var out bytes.Buffer
	_ = c.Render(&out)

	c.MarkTextDirty(2)
	out.Reset()
	_ = c.Render(&out)
	if got := strings.Count(out.String(), ColorReset+" "); got != 4 {
		t.Errorf("dirty row repainted %d cells, want 4: %q", got, out.String())
	}
}

func TestCanvas_FillRectAndHealthBar(t *testing.T) {
	c := NewScaledCanvas(10, 1, 10, 2)
	c.DrawHealthBar(0, 0, 10, 1, 0.5, Green, Red)

	for x := range 10 {
		want := Red
		if x < 5 {
			want = Green
		}
		if p := c.pixels[x]; !p.on || p.c != want {
			t.Errorf("pixel %d = %+v, want %v", x, p, want)
		}
	}
	if c.pen != White {
		t.Errorf("pen changed to %v", c.pen)
	}
}

func TestCanvas_FillCircle(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.FillCircle(Point{X: 10, Y: 10}, 3)

	if !c.pixels[10*20+10].on {
		t.Error("circle centre not filled")
	}
	if c.pixels[10*20+14].on || c.pixels[5*20+10].on {
		t.Error("pixels outside the radius filled")
	}
}

func TestCanvas_FillCircleSubPixel(t *testing.T) {
	// One pixel covers 10x10 logical units, so a light bullet is smaller
	// than a pixel.
	c := NewScaledCanvas(10, 5, 100, 100)
	c.FillCircle(Point{X: 52, Y: 41}, 2)

	on := 0
	for _, p := range c.pixels {
		if p.on {
			on++
		}
	}
	if on != 1 || !c.pixels[4*10+5].on {
		t.Errorf("sub-pixel circle set %d pixels, want only the centre", on)
	}
}

func TestColor_Scale(t *testing.T) {
	c := Color{R: 200, G: 100, B: 50}
	if got := c.Scale(0.5); got != (Color{R: 100, G: 50, B: 25}) {
		t.Errorf("Scale(0.5) = %v", got)
	}
	if got := c.Scale(2); got != c {
		t.Errorf("Scale(2) = %v, want unchanged", got)
	}
	if got := c.Scale(-1); got != (Color{}) {
		t.Errorf("Scale(-1) = %v, want black", got)
	}
}
