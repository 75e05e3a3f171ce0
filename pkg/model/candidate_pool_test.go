package model

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidatePool(t *testing.T) {
	random := rand.New(rand.NewPCG(1, 2))
	pool := newCandidatePool([]int{1, 2, 3, 4, 5})

	drawn := make([]int, 0)
	for {
		candidate, ok := pool.Draw(random)
		if !ok {
			break
		}
		drawn = append(drawn, candidate)
	}

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, drawn)
	assert.Zero(t, pool.Len())
	assert.Empty(t, pool.Remaining())
}

func TestCandidatePoolDoesNotAlias(t *testing.T) {
	source := []int{1, 2, 3}
	pool := newCandidatePool(source)

	pool.Draw(rand.New(rand.NewPCG(3, 4)))

	assert.Equal(t, []int{1, 2, 3}, source)
	assert.Equal(t, 2, pool.Len())
	assert.Len(t, pool.Remaining(), 2)
}

func TestCandidatePoolIsReproducible(t *testing.T) {
	drawAll := func(seed uint64) []int {
		random := rand.New(rand.NewPCG(seed, seed))
		pool := newCandidatePool([]int{1, 2, 3, 4, 5, 6, 7, 8})
		order := make([]int, 0, 8)
		for candidate, ok := pool.Draw(random); ok; candidate, ok = pool.Draw(random) {
			order = append(order, candidate)
		}
		return order
	}

	assert.Equal(t, drawAll(9), drawAll(9))
}
