package model

const defaultStagnationWindow = 5

// Stagnation remembers recent world fingerprints to spot still lifes and short cycles
type Stagnation struct {
	window int
	hashes []string
}

// NewStagnation keeps up to window fingerprints, detecting cycles of period window or less.
// Non-positive values use the default of 5.
func NewStagnation(window int) *Stagnation {
	if window <= 0 {
		window = defaultStagnationWindow
	}
	return &Stagnation{window: window}
}

// Observe records hash and reports whether it repeats one of the remembered hashes
func (s *Stagnation) Observe(hash string) bool {
	stagnant := false
	for _, h := range s.hashes {
		if h == hash {
			stagnant = true
			break
		}
	}

	s.hashes = append(s.hashes, hash)
	if len(s.hashes) > s.window {
		s.hashes = s.hashes[1:]
	}
	return stagnant
}

// Reset forgets every observed fingerprint
func (s *Stagnation) Reset() {
	s.hashes = nil
}
