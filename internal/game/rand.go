package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Source is the random-number surface the engine depends on. Shuffles
// and draws go through it so tests can supply a fixed seed.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a seeded source. A zero seed draws a high-entropy
// seed from crypto/rand.
func NewSource(seed int64) Source {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(b[:]))
		} else {
			seed = 1
		}
	}
	return rand.New(rand.NewSource(seed))
}

// Pick returns a uniformly drawn element of items.
func Pick[T any](rng Source, items []T) T {
	return items[rng.Intn(len(items))]
}
