package design

import (
	"math/rand"
	"time"
)

// replicate concatenates the valid set with itself factor times, preserving
// intra-block order. A factor of 1 returns a copy of the input.
func replicate(rows []Formula, factor int) []Formula {
	out := make([]Formula, 0, len(rows)*factor)
	for block := 0; block < factor; block++ {
		for i := range rows {
			out = append(out, rows[i].clone())
		}
	}
	return out
}

// shuffle permutes rows uniformly at random. This is the engine's only
// source of non-determinism; a seed of 0 falls back to the wall clock.
func shuffle(rows []Formula, seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
}
