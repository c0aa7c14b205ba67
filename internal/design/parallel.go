package design

import (
	"runtime"
	"sync"
)

// parallelThreshold is the lattice size above which mass-balance
// computation fans out across workers. Small designs stay sequential;
// the goroutine overhead exceeds the work below this point.
const parallelThreshold = 512

// computeFormulas evaluates the mass balance and classification for every
// lattice tuple. Each row lands at its tuple index, so the output order is
// identical on the sequential and parallel paths.
func computeFormulas(p Params, tuples [][]int, solvent int) []Formula {
	rows := make([]Formula, len(tuples))

	if len(tuples) < parallelThreshold {
		for i, tuple := range tuples {
			rows[i] = computeFormula(p, tuple, solvent)
			classify(&rows[i], p, solvent)
		}
		return rows
	}

	workers := runtime.NumCPU()
	chunk := (len(tuples) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(tuples) {
			break
		}
		end := start + chunk
		if end > len(tuples) {
			end = len(tuples)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				rows[i] = computeFormula(p, tuples[i], solvent)
				classify(&rows[i], p, solvent)
			}
		}(start, end)
	}
	wg.Wait()

	return rows
}
