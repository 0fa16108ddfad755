package physics

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func square(x, y, size float64) Polygon {
	return Polygon{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want bool
	}{
		{"overlapping squares", square(0, 0, 10), square(5, 5, 10), true},
		{"identical squares", square(0, 0, 10), square(0, 0, 10), true},
		{"contained square", square(0, 0, 10), square(2, 2, 3), true},
		{"touching edges", square(0, 0, 10), square(10, 0, 10), false},
		{"touching corners", square(0, 0, 10), square(10, 10, 10), false},
		{"apart", square(0, 0, 10), square(20, 20, 5), false},
		{"bounds overlap but separated on diagonal",
			Polygon{{0, 0}, {10, 0}, {0, 10}},
			Polygon{{10, 10}, {10, 4}, {4, 10}}, false},
		{"circle inside square", square(0, 0, 10), Circle{Vec{5, 5}, 1}, true},
		{"circle crossing edge", square(0, 0, 10), Circle{Vec{12, 5}, 3}, true},
		{"circle tangent to edge", square(0, 0, 10), Circle{Vec{13, 5}, 3}, false},
		{"circle near corner outside", square(0, 0, 10), Circle{Vec{12, 12}, 2.5}, false},
		{"circle over corner", square(0, 0, 10), Circle{Vec{11, 11}, 2}, true},
		{"circles overlap", Circle{Vec{0, 0}, 2}, Circle{Vec{3, 0}, 2}, true},
		{"circles touch", Circle{Vec{0, 0}, 2}, Circle{Vec{4, 0}, 2}, false},
		{"degenerate polygon", Polygon{{0, 0}, {10, 0}}, square(0, 0, 10), false},
		{"collinear polygon", Polygon{{0, 0}, {5, 0}, {10, 0}}, square(0, -5, 10), false},
		{"zero radius", Circle{Vec{5, 5}, 0}, square(0, 0, 10), false},
		{"nan vertex", Polygon{{math.NaN(), 0}, {10, 0}, {0, 10}}, square(0, 0, 10), false},
		{"nil shape", nil, square(0, 0, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects(a, b) = %v, want %v", got, tt.want)
			}
			if got := Intersects(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersects(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransform_RotatesAboutPivotBeforeTranslating(t *testing.T) {
	local := Polygon{{10, 5}, {20, 5}, {10, 15}}
	got := Transform(local, Vec{10, 5}, 90, Vec{100, 200})

	want := Polygon{{110, 205}, {110, 215}, {100, 205}}
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > 1e-9 || math.Abs(got[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("vertex %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if local[1] != (Vec{20, 5}) {
		t.Error("Transform modified its input")
	}
}

func TestTransform_ZeroAngleIsTranslation(t *testing.T) {
	got := Transform(square(0, 0, 4), Vec{2, 2}, 0, Vec{7, -3})
	want := square(7, -3, 4)
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > 1e-9 || math.Abs(got[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("vertex %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPolygonBounds(t *testing.T) {
	b := Polygon{{3, -1}, {7, 2}, {-2, 5}}.Bounds()
	if b.Min != (Vec{-2, -1}) || b.Max != (Vec{7, 5}) {
		t.Errorf("Bounds() = %+v", b)
	}
	if b.Width() != 9 || b.Height() != 6 {
		t.Errorf("size = %vx%v, want 9x6", b.Width(), b.Height())
	}
}

func genPolygon(t *rapid.T, label string) Polygon {
	cx := rapid.Float64Range(-200, 200).Draw(t, label+"_cx")
	cy := rapid.Float64Range(-200, 200).Draw(t, label+"_cy")
	r := rapid.Float64Range(1, 80).Draw(t, label+"_r")
	n := rapid.IntRange(3, 8).Draw(t, label+"_n")
	rot := rapid.Float64Range(0, 360).Draw(t, label+"_rot")
	p := make(Polygon, n)
	for i := range p {
		a := Radians(rot + float64(i)*360/float64(n))
		p[i] = Vec{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
	}
	return p
}

func genShape(t *rapid.T, label string) Shape {
	if rapid.Bool().Draw(t, label+"_circle") {
		return Circle{
			Center: Vec{rapid.Float64Range(-200, 200).Draw(t, label+"_x"), rapid.Float64Range(-200, 200).Draw(t, label+"_y")},
			Radius: rapid.Float64Range(0.5, 40).Draw(t, label+"_radius"),
		}
	}
	return genPolygon(t, label)
}

func TestIntersects_Symmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genShape(t, "a")
		b := genShape(t, "b")
		if Intersects(a, b) != Intersects(b, a) {
			t.Fatalf("asymmetric result for %+v and %+v", a, b)
		}
	})
}

func TestIntersects_ShapeOverlapsItself(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genShape(t, "s")
		if !Intersects(s, s) {
			t.Fatalf("shape %+v does not intersect itself", s)
		}
	})
}

func TestIntersects_DisjointBoundsNeverIntersect(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genShape(t, "a")
		b := genShape(t, "b")
		if !a.Bounds().Overlaps(b.Bounds()) && Intersects(a, b) {
			t.Fatalf("intersection reported for disjoint bounds %+v %+v", a.Bounds(), b.Bounds())
		}
	})
}

func TestAdvance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1000, 1000).Draw(t, "x")
		y := rapid.Float64Range(-1000, 1000).Draw(t, "y")
		angle := rapid.Float64Range(0, 360).Draw(t, "angle")
		speed := rapid.Float64Range(0, 10).Draw(t, "speed")

		nx, ny := Advance(x, y, angle, speed)
		wantX := x + math.Cos(angle*math.Pi/180)*speed
		wantY := y + math.Sin(angle*math.Pi/180)*speed
		if nx != wantX || ny != wantY {
			t.Fatalf("Advance = (%v, %v), want (%v, %v)", nx, ny, wantX, wantY)
		}
	})
}
