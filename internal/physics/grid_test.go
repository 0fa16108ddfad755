package physics

import (
	"slices"
	"testing"
)

func TestSpatialGrid_Candidates(t *testing.T) {
	g := NewSpatialGrid(400, 300, 50)
	g.Insert(10, 10, 0)   // cell (0,0)
	g.Insert(60, 20, 1)   // cell (1,0)
	g.Insert(210, 210, 2) // cell (4,4)
	g.Insert(-40, 5, 3)   // clamped to (0,0)

	got := g.Candidates(30, 30, nil)
	if want := []int{0, 1, 3}; !slices.Equal(got, want) {
		t.Errorf("Candidates near origin = %v, want %v", got, want)
	}

	got = g.Candidates(230, 190, nil)
	if want := []int{2}; !slices.Equal(got, want) {
		t.Errorf("Candidates near (230,190) = %v, want %v", got, want)
	}
}

func TestSpatialGrid_CandidatesAppendsSorted(t *testing.T) {
	g := NewSpatialGrid(100, 100, 50)
	g.Insert(90, 90, 7)
	g.Insert(10, 10, 2)
	g.Insert(60, 10, 5)

	got := g.Candidates(50, 50, []int{99})
	if want := []int{99, 2, 5, 7}; !slices.Equal(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestSpatialGrid_Clear(t *testing.T) {
	g := NewSpatialGrid(100, 100, 25)
	g.Insert(10, 10, 0)
	g.Clear()
	if got := g.Candidates(10, 10, nil); len(got) != 0 {
		t.Errorf("Candidates after Clear = %v, want none", got)
	}
}

func TestSpatialGrid_OutOfArenaPositions(t *testing.T) {
	g := NewSpatialGrid(100, 100, 25)
	g.Insert(1e9, 1e9, 1)
	g.Insert(-1e9, -1e9, 2)

	if got := g.Candidates(99, 99, nil); !slices.Equal(got, []int{1}) {
		t.Errorf("far corner candidates = %v, want [1]", got)
	}
	if got := g.Candidates(0, 0, nil); !slices.Equal(got, []int{2}) {
		t.Errorf("origin candidates = %v, want [2]", got)
	}
}
