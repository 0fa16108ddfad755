package object

import (
	"math"
	"testing"

	"github.com/tomz197/rocketraid/internal/draw"
	"pgregory.net/rapid"
)

var testArena = Arena{Width: 800, Height: 600}

func TestBullet_Outside(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 100, 100, false},
		{"left edge exactly -size", -5, 100, true},
		{"partly off left", -4.9, 100, false},
		{"top exactly -size", 100, -5, false},
		{"above top", 100, -5.1, true},
		{"right edge", 800, 100, false},
		{"past right", 800.1, 100, true},
		{"past bottom", 100, 600.1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBullet(tt.x, tt.y, 0, LightBulletSize, BulletSpeed)
			if got := b.Outside(testArena); got != tt.want {
				t.Errorf("Outside() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBullet_UpdateCullsBeforeMoving(t *testing.T) {
	ctx := UpdateContext{Arena: testArena}

	// Heading back into the arena does not save a bullet that is already out.
	b := NewBullet(801, 100, 180, LightBulletSize, BulletSpeed)
	if !b.Update(ctx) {
		t.Error("out-of-arena bullet not removed")
	}
	if b.X != 801 {
		t.Errorf("removed bullet moved to %v", b.X)
	}

	b = NewBullet(100, 100, 0, LightBulletSize, BulletSpeed)
	if b.Update(ctx) {
		t.Error("bullet inside the arena removed")
	}
	if b.X != 100+BulletSpeed {
		t.Errorf("bullet x = %v, want %v", b.X, 100+BulletSpeed)
	}
}

func TestBullet_Hull(t *testing.T) {
	b := NewBullet(10, 20, 0, HeavyBulletSize, BulletSpeed)
	h := b.Hull()
	if h.Center.X != 20 || h.Center.Y != 30 || h.Radius != 10 {
		t.Errorf("Hull() = %+v", h)
	}
	if b.Damage() != HeavyBulletSize {
		t.Errorf("Damage() = %v", b.Damage())
	}
}

func TestRocket_Motion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(0, 700).Draw(t, "x")
		y := rapid.Float64Range(0, 500).Draw(t, "y")
		angle := rapid.SampledFrom([]float64{0, 180}).Draw(t, "angle")

		r := NewRocket(x, y, angle)
		if r.Update(UpdateContext{Arena: testArena}) {
			t.Fatal("rocket inside the arena removed")
		}
		wantX := x + math.Cos(angle*math.Pi/180)*RocketSpeed
		if math.Abs(r.X-wantX) > 1e-9 || math.Abs(r.Y-y) > 1e-9 {
			t.Fatalf("rocket moved to (%v, %v), want (%v, %v)", r.X, r.Y, wantX, y)
		}
	})
}

func TestRocket_OutsideUsesHullExtent(t *testing.T) {
	r := NewRocket(0, 100, 0)
	w := r.Hull().Bounds().Width()
	r.X = -w + 0.1
	if r.Outside(testArena) {
		t.Error("rocket still overlapping the left edge counted as outside")
	}
	r.X = -w
	if !r.Outside(testArena) {
		t.Error("rocket fully past the left edge not counted as outside")
	}
}

func TestRocket_Defaults(t *testing.T) {
	r := NewRocket(0, 0, 0)
	if r.HP != (HitPoints{Max: 20, Current: 20}) || r.Speed != RocketSpeed {
		t.Errorf("rocket = %+v", r)
	}
	if r.HP.Damaged() {
		t.Error("new rocket reports damage")
	}
	if NewRocket(0, 0, 0).ID == r.ID {
		t.Error("rockets share an ID")
	}
}

func TestRocketSpawner_Spawn(t *testing.T) {
	s := NewRocketSpawner(testArena)
	s.intn = func(n int) int { return n - 1 }
	rockets := s.Spawn()
	if len(rockets) != 2 {
		t.Fatalf("Spawn() returned %d rockets", len(rockets))
	}
	left, right := rockets[0], rockets[1]
	if left.X != 0 || left.Angle != 0 {
		t.Errorf("left rocket = (%v, angle %v)", left.X, left.Angle)
	}
	if right.X != float64(testArena.Width) || right.Angle != 180 {
		t.Errorf("right rocket = (%v, angle %v)", right.X, right.Angle)
	}
	if left.Y != 574 || right.Y != 574 {
		t.Errorf("max draw spawned at y=%v and %v, want 574", left.Y, right.Y)
	}
}

func TestRocketSpawner_HeightRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := rapid.IntRange(51, 2000).Draw(t, "height")
		s := NewRocketSpawner(Arena{Width: 400, Height: h})
		for _, r := range s.Spawn() {
			if r.Y < 25 || r.Y >= float64(h-25) {
				t.Fatalf("rocket y=%v outside [25, %d)", r.Y, h-25)
			}
		}
	})
}

func TestRocketSpawner_ShortArena(t *testing.T) {
	s := NewRocketSpawner(Arena{Width: 400, Height: 40})
	for _, r := range s.Spawn() {
		if r.Y != 20 {
			t.Errorf("rocket y = %v, want 20", r.Y)
		}
	}
}

func TestEffect_Generation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		spec := EffectSpec{
			Distance: 50,
			Size:     rapid.IntRange(1, 60).Draw(t, "size"),
			Count:    rapid.IntRange(1, 400).Draw(t, "count"),
			Speed:    0.3,
			Color:    draw.Color{R: 230, G: 207, B: 105},
		}
		e := NewEffect(5, 5, spec)
		defer e.Release()

		if len(e.Booms) != spec.Count {
			t.Fatalf("%d particles, want %d", len(e.Booms), spec.Count)
		}
		per := 360 / float64(spec.Count)
		jitter := max(int(per), 1)
		for i, b := range e.Booms {
			offset := b.Angle - float64(i)*per
			if offset < 1-1e-9 || offset > float64(jitter)+1e-9 {
				t.Fatalf("particle %d offset %v outside [1, %d]", i, offset, jitter)
			}
			if b.Size < 1 || b.Size > float64(spec.Size) {
				t.Fatalf("particle %d size %v outside [1, %d]", i, b.Size, spec.Size)
			}
		}
	})
}

func TestEffect_Lifecycle(t *testing.T) {
	e := newEffect(0, 0, EffectSpec{Distance: 1, Size: 4, Count: 4, Speed: 0.3}, func(int) int { return 0 })
	defer e.Release()

	want := []Boom{{1, 1}, {1, 91}, {1, 181}, {1, 271}}
	for i, b := range want {
		if e.Booms[i] != b {
			t.Errorf("boom %d = %+v, want %+v", i, e.Booms[i], b)
		}
	}

	ticks := 0
	for !e.Update(UpdateContext{}) {
		ticks++
		if ticks > 10 {
			t.Fatal("effect never finished")
		}
	}
	if ticks+1 != 4 {
		t.Errorf("effect finished on tick %d, want 4", ticks+1)
	}
}

func TestEffect_Alpha(t *testing.T) {
	tests := []struct {
		current, want float64
	}{
		{0, 1},
		{20, 1},
		{30, 1},
		{65, 0.5},
		{100, 0},
		{120, 0},
	}
	for _, tt := range tests {
		e := &Effect{MaxDistance: 100, Current: tt.current}
		if got := e.Alpha(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Alpha at %v = %v, want %v", tt.current, got, tt.want)
		}
	}
}

func TestSweep(t *testing.T) {
	a := NewBullet(0, 0, 0, 5, 3)
	b := NewBullet(0, 0, 0, 5, 3)
	c := NewBullet(0, 0, 0, 5, 3)
	b.MarkDestroyed()
	got := Sweep([]*Bullet{a, b, c})
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("Sweep kept %v", got)
	}
}
