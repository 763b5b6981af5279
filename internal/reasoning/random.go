package reasoning

import (
	"hash/fnv"
	"math/rand/v2"
)

// KeyedSource is a RandomSource whose draws depend only on the seed and
// the key, so repeated calls with the same key agree.
type KeyedSource struct {
	seed uint64
}

func NewKeyedSource(seed uint64) *KeyedSource {
	return &KeyedSource{seed: seed}
}

// NewRandomSource returns a KeyedSource with a random seed. A zero seed
// selects this behaviour in configuration.
func NewRandomSource() *KeyedSource {
	return &KeyedSource{seed: rand.Uint64()}
}

func (s *KeyedSource) Intn(key string, n int) int {
	if n <= 1 {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	r := rand.New(rand.NewPCG(s.seed, h.Sum64()))
	return r.IntN(n)
}
