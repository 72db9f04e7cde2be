package model

import "sync"

// SharedWorld serialises access to a World between the loop that ticks it and the
// loops that render it, so a generation is never observed half-updated.
type SharedWorld struct {
	mu         sync.Mutex
	world      *World
	generation int
}

func NewSharedWorld(w *World) *SharedWorld {
	return &SharedWorld{world: w}
}

// Tick advances one generation and returns the new generation number
func (s *SharedWorld) Tick() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.world.Tick()
	s.generation++
	return s.generation
}

// Refresh re-randomises the world and restarts the generation count
func (s *SharedWorld) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.world.Refresh()
	s.generation = 0
}

// Regenerate re-randomises the world and, when seed is not nil, runs it on the fresh cells.
// Both happen under the lock, so the world's random source is never drawn from concurrently.
func (s *SharedWorld) Regenerate(seed func(w *World)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.world.Refresh()
	if seed != nil {
		seed(s.world)
	}
	s.generation = 0
}

// Reset swaps in a new world and restarts the generation count
func (s *SharedWorld) Reset(w *World) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.world = w
	s.generation = 0
}

// Generation returns the number of ticks since the last refresh
func (s *SharedWorld) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Text returns the text projection of the current generation
func (s *SharedWorld) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.String()
}

// View runs fn with the world locked. fn must not retain w.
func (s *SharedWorld) View(fn func(w *World, generation int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.world, s.generation)
}

// Snapshot copies the current generation into a world taken from pool.
// Return it with pool.Put once rendered.
func (s *SharedWorld) Snapshot(pool *FramePool) (*World, int) {
	snap := pool.Get()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.world.CopyTo(snap)
	return snap, s.generation
}
