package design

import (
	"fmt"
	"reflect"
	"sort"
	"testing"
)

func replicateParams(factor int, randomize bool, seed int64) Params {
	return Params{
		Ingredients: []Ingredient{
			{Name: "A", PurityPct: 100, MaxActivePct: 100, Density: 1.0},
			{Name: "B", PurityPct: 100, MaxActivePct: 100, Density: 1.0},
			{Name: "C", PurityPct: 100, MaxActivePct: 100, Density: 1.0},
		},
		Degree:    3,
		TotalMass: 100,
		Replicate: factor,
		Randomize: randomize,
		Seed:      seed,
		Variant:   VariantSolventFiller,
	}
}

// rowKey identifies a formula by its payload, ignoring the number.
func rowKey(f *Formula) string {
	return fmt.Sprintf("%v|%v|%.6f", f.Fractions, f.ProductMass, f.SumActiveWtPct)
}

func TestReplicate_RowCount(t *testing.T) {
	base, err := Compute(replicateParams(1, false, 0))
	if err != nil {
		t.Fatal(err)
	}

	for _, k := range []int{1, 2, 5} {
		r, err := Compute(replicateParams(k, false, 0))
		if err != nil {
			t.Fatal(err)
		}
		if len(r.Valid) != k*len(base.Valid) {
			t.Errorf("replicate %d: expected %d rows, got %d", k, k*len(base.Valid), len(r.Valid))
		}
	}
}

func TestReplicate_FirstBlockMatchesBase(t *testing.T) {
	base, err := Compute(replicateParams(1, false, 0))
	if err != nil {
		t.Fatal(err)
	}
	r, err := Compute(replicateParams(3, false, 0))
	if err != nil {
		t.Fatal(err)
	}

	for i := range base.Valid {
		if rowKey(&base.Valid[i]) != rowKey(&r.Valid[i]) {
			t.Errorf("row %d of first block differs from replicate=1 run", i)
		}
	}
	// Blocks repeat verbatim.
	n := len(base.Valid)
	for i := range base.Valid {
		if rowKey(&r.Valid[i]) != rowKey(&r.Valid[i+n]) {
			t.Errorf("row %d: second block differs from first", i)
		}
	}
}

func TestRandomize_SameMultiset(t *testing.T) {
	plain, err := Compute(replicateParams(2, false, 0))
	if err != nil {
		t.Fatal(err)
	}
	shuffled, err := Compute(replicateParams(2, true, 7))
	if err != nil {
		t.Fatal(err)
	}

	if len(plain.Valid) != len(shuffled.Valid) {
		t.Fatalf("row counts differ: %d vs %d", len(plain.Valid), len(shuffled.Valid))
	}

	a := make([]string, len(plain.Valid))
	b := make([]string, len(shuffled.Valid))
	for i := range plain.Valid {
		a[i] = rowKey(&plain.Valid[i])
		b[i] = rowKey(&shuffled.Valid[i])
	}
	sort.Strings(a)
	sort.Strings(b)
	if !reflect.DeepEqual(a, b) {
		t.Error("randomized run is not a permutation of the plain run")
	}
}

func TestRandomize_SeedReproducible(t *testing.T) {
	r1, err := Compute(replicateParams(2, true, 42))
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Compute(replicateParams(2, true, 42))
	if err != nil {
		t.Fatal(err)
	}

	for i := range r1.Valid {
		if rowKey(&r1.Valid[i]) != rowKey(&r2.Valid[i]) {
			t.Fatalf("row %d differs between two runs with the same seed", i)
		}
	}
}

func TestFormulaNumbers_SequentialAfterShuffle(t *testing.T) {
	r, err := Compute(replicateParams(2, true, 11))
	if err != nil {
		t.Fatal(err)
	}
	for i, f := range r.Valid {
		if f.Number != i+1 {
			t.Errorf("row %d numbered %d", i, f.Number)
		}
	}
}

func TestReplicate_DeepCopies(t *testing.T) {
	r, err := Compute(replicateParams(2, false, 0))
	if err != nil {
		t.Fatal(err)
	}
	n := len(r.Valid) / 2
	r.Valid[0].ProductMass[0] = -1
	if r.Valid[n].ProductMass[0] == -1 {
		t.Error("replicated rows share backing slices")
	}
}
