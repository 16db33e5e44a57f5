// Package generator builds randomized word orders.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/vocabtype/internal/model"
)

// Generator produces randomized practice orders.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with seed, or with the current time when seed is 0.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a uniformly random permutation of words.
// The input slice is left untouched.
func (g *Generator) Shuffle(words []model.VocabularyWord) []model.VocabularyWord {
	out := make([]model.VocabularyWord, len(words))
	copy(out, words)
	for i := len(out) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
