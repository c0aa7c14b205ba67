package design

// EnumerateLattice returns every non-negative integer n-tuple summing to
// degree, in ascending lexicographic order. Each tuple maps to a lattice
// composition z_i = k_i/degree. The order is deterministic so that, absent
// randomization, formula numbering is stable run to run.
func EnumerateLattice(degree, n int) [][]int {
	if degree < 1 || n < 1 {
		return nil
	}
	out := make([][]int, 0, LatticeSize(degree, n))
	tuple := make([]int, n)

	var walk func(pos, remaining int)
	walk = func(pos, remaining int) {
		if pos == n-1 {
			tuple[pos] = remaining
			out = append(out, append([]int(nil), tuple...))
			return
		}
		for k := 0; k <= remaining; k++ {
			tuple[pos] = k
			walk(pos+1, remaining-k)
		}
	}
	walk(0, degree)
	return out
}

// LatticeSize returns C(degree+n-1, n-1), the number of lattice points,
// without enumerating them.
func LatticeSize(degree, n int) int {
	if degree < 1 || n < 1 {
		return 0
	}
	// Multiplicative binomial; divides at every step to stay exact.
	size := 1
	for i := 1; i < n; i++ {
		size = size * (degree + i) / i
	}
	return size
}

// fractions converts an integer lattice tuple to its composition vector.
func fractions(tuple []int, degree int) []float64 {
	z := make([]float64, len(tuple))
	for i, k := range tuple {
		z[i] = float64(k) / float64(degree)
	}
	return z
}
