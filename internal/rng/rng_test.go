package rng

import "testing"

func TestLCG_Deterministic(t *testing.T) {
	a := NewLCG(12345)
	b := NewLCG(12345)

	for i := 0; i < 1000; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("Expected identical draws at %d, got %v and %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("Expected draw in [0,1), got %v", va)
		}
	}
}

func TestLCG_FirstDraw(t *testing.T) {
	l := NewLCG(0)
	// 0*1664525 + 1013904223
	want := 1013904223.0 / 4294967296.0
	if got := l.Float64(); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSeeded_Reproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("Expected seeded sources to match at draw %d", i)
		}
	}
}

func TestSequence_WrapsAndCounts(t *testing.T) {
	s := NewSequence(0.1, 0.2)
	got := []float64{s.Float64(), s.Float64(), s.Float64()}
	want := []float64{0.1, 0.2, 0.1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Draw %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if s.Draws != 3 {
		t.Errorf("Expected 3 draws, got %d", s.Draws)
	}

	empty := NewSequence()
	if v := empty.Float64(); v != 0 {
		t.Errorf("Expected empty sequence to yield 0, got %v", v)
	}
}

func TestFunc_Adapter(t *testing.T) {
	var src Source = Func(func() float64 { return 0.75 })
	if v := src.Float64(); v != 0.75 {
		t.Errorf("Expected 0.75, got %v", v)
	}
}
