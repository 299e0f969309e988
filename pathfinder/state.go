package pathfinder

import "sync"

// searchState is the only mutable state shared by workers: whether an exit
// was found and the best distance so far. Every access goes through mu, so
// readers never observe a torn (exitFound, shortest) pair.
//
// Invariant: exitFound == (shortest was set by tryImprove); shortest never increases.
type searchState struct {
	mu        sync.RWMutex
	exitFound bool
	shortest  float64
}

func newSearchState() *searchState {
	return &searchState{shortest: NoExit}
}

// read returns a consistent snapshot.
func (s *searchState) read() (bool, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.exitFound, s.shortest
}

// tryImprove stores candidate if no exit is known yet or candidate is
// strictly smaller than the current best. Ties keep the first writer.
func (s *searchState) tryImprove(candidate float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exitFound && !(candidate < s.shortest) {
		return false
	}
	s.exitFound = true
	s.shortest = candidate

	return true
}
