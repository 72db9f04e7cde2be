package model

import "testing"

func TestStagnationStillLife(t *testing.T) {
	w := mustNew(t, 4, 4, make([]Cell, 16))
	w.Place(Block, 1, 1)
	s := NewStagnation(0)

	if s.Observe(w.Hash()) {
		t.Fatalf("first observation reported stagnant")
	}
	w.Tick()
	if !s.Observe(w.Hash()) {
		t.Errorf("block not detected as stagnant")
	}
}

func TestStagnationOscillator(t *testing.T) {
	w := mustNew(t, 5, 5, make([]Cell, 25))
	w.Place(Blinker, 1, 1)
	s := NewStagnation(5)

	s.Observe(w.Hash())
	w.Tick()
	if s.Observe(w.Hash()) {
		t.Fatalf("second phase reported stagnant")
	}
	w.Tick()
	if !s.Observe(w.Hash()) {
		t.Errorf("period-2 blinker not detected")
	}
}

func TestStagnationWindowSetsCyclePeriod(t *testing.T) {
	cycle := []string{"a", "b", "c", "d"}

	tests := []struct {
		window int
		want   bool
	}{
		{3, false},
		{4, true},
		{10, true},
	}

	for _, tt := range tests {
		s := NewStagnation(tt.window)
		for _, h := range cycle {
			if s.Observe(h) {
				t.Fatalf("window %d: %q reported stagnant", tt.window, h)
			}
		}
		if got := s.Observe("a"); got != tt.want {
			t.Errorf("window %d: period-4 repeat stagnant = %v, want %v", tt.window, got, tt.want)
		}
	}
}

func TestStagnationReset(t *testing.T) {
	s := NewStagnation(5)
	s.Observe("a")

	s.Reset()
	if s.Observe("a") {
		t.Errorf("hash remembered after Reset")
	}
}

func TestStagnationWindowIsBounded(t *testing.T) {
	s := NewStagnation(2)
	s.Observe("a")
	s.Observe("b")
	s.Observe("c")

	if len(s.hashes) != 2 {
		t.Errorf("kept %d hashes, want 2", len(s.hashes))
	}
}
