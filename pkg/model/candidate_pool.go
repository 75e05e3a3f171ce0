package model

import "math/rand/v2"

// candidatePool is a shrinking set of candidates sampled uniformly without replacement.
// Every successful Draw removes one candidate, so a draw loop over a pool of n items ends after at most n iterations.
type candidatePool[T any] struct {
	candidates []T
}

func newCandidatePool[T any](candidates []T) *candidatePool[T] {
	return &candidatePool[T]{candidates: append([]T(nil), candidates...)}
}

func (pool *candidatePool[T]) Len() int {
	return len(pool.candidates)
}

// Draw removes and returns a uniformly chosen candidate; ok is false when the pool is empty
func (pool *candidatePool[T]) Draw(random *rand.Rand) (candidate T, ok bool) {
	if len(pool.candidates) == 0 {
		return candidate, false
	}
	i := random.IntN(len(pool.candidates))
	last := len(pool.candidates) - 1
	candidate = pool.candidates[i]
	pool.candidates[i] = pool.candidates[last]
	pool.candidates = pool.candidates[:last]
	return candidate, true
}

// Remaining returns the candidates that were never drawn
func (pool *candidatePool[T]) Remaining() []T {
	return pool.candidates
}
