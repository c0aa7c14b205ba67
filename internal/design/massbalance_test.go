package design

import (
	"math"
	"testing"
)

const tol = 1e-9

func closeTo(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestCompute_TwoIngredientsNoSolvent(t *testing.T) {
	p := Params{
		Ingredients: []Ingredient{
			{Name: "A", PurityPct: 100, MaxActivePct: 100, Density: 1.0},
			{Name: "B", PurityPct: 100, MaxActivePct: 100, Density: 1.0},
		},
		Degree:    2,
		TotalMass: 100,
		Replicate: 1,
		Variant:   VariantSolventFiller,
	}

	r, err := Compute(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Removed) != 0 {
		t.Fatalf("expected no removed formulas, got %d", len(r.Removed))
	}
	if len(r.Valid) != 3 {
		t.Fatalf("expected 3 valid formulas, got %d", len(r.Valid))
	}

	wantWt := [][2]float64{{0, 100}, {50, 50}, {100, 0}}
	for i, f := range r.Valid {
		if !closeTo(f.ProductWtPct[0], wantWt[i][0], tol) || !closeTo(f.ProductWtPct[1], wantWt[i][1], tol) {
			t.Errorf("formula %d: product wt (%.4f, %.4f), want (%.0f, %.0f)",
				i+1, f.ProductWtPct[0], f.ProductWtPct[1], wantWt[i][0], wantWt[i][1])
		}
		if !closeTo(f.SumProductMass, 100, tol) {
			t.Errorf("formula %d: sum product mass %.6f, want 100", i+1, f.SumProductMass)
		}
		if f.Number != i+1 {
			t.Errorf("formula %d numbered %d", i+1, f.Number)
		}
	}
}

func TestCompute_ImpurityRedistribution(t *testing.T) {
	p := Params{
		Ingredients: []Ingredient{
			{Name: "A", PurityPct: 90, MaxActivePct: 50, Density: 1.2},
			{Name: "B", PurityPct: 100, MaxActivePct: 100, Density: 1.0, Solvent: true},
		},
		Degree:    1,
		TotalMass: 100,
		Replicate: 1,
		Variant:   VariantImpurityRedistribution,
	}

	r, err := Compute(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Valid) != 2 {
		t.Fatalf("expected 2 valid formulas, got %d", len(r.Valid))
	}

	// Lexicographic enumeration: (0,1) first, (1,0) second.
	f := r.Valid[1]
	if !closeTo(f.Fractions[0], 1.0, tol) {
		t.Fatalf("expected z=(1,0) in second position, got %v", f.Fractions)
	}

	wantMassA := 0.5 * 100 / 0.9
	if !closeTo(f.ProductMass[0], wantMassA, 1e-6) {
		t.Errorf("product mass A = %.6f, want %.6f", f.ProductMass[0], wantMassA)
	}
	if !closeTo(f.ProductMass[1], 100-wantMassA, 1e-6) {
		t.Errorf("solvent mass = %.6f, want %.6f", f.ProductMass[1], 100-wantMassA)
	}
	if !closeTo(f.ImpurityMass[0], wantMassA*0.1, 1e-6) {
		t.Errorf("impurity A = %.6f, want %.6f", f.ImpurityMass[0], wantMassA*0.1)
	}
	wantSolventActive := (100 - wantMassA) + wantMassA*0.1
	if !closeTo(f.ActiveMass[1], wantSolventActive, 1e-6) {
		t.Errorf("solvent active mass = %.6f, want %.6f", f.ActiveMass[1], wantSolventActive)
	}
	if !closeTo(wantSolventActive, 50.0, 1e-9) {
		t.Fatalf("test arithmetic broken: solvent active should be exactly 50, got %.9f", wantSolventActive)
	}
	if !closeTo(f.SumActiveWtPct, 100.0, 1e-6) {
		t.Errorf("sum active wt = %.6f, want 100", f.SumActiveWtPct)
	}
	if !f.Valid() {
		t.Errorf("boundary formula rejected: %s", f.Reason)
	}
}

func TestCompute_SolventFillerRedistribution(t *testing.T) {
	p := Params{
		Ingredients: []Ingredient{
			{Name: "A", PurityPct: 80, MaxActivePct: 40, Density: 1.0},
			{Name: "S", PurityPct: 100, MaxActivePct: 100, Density: 1.0, Solvent: true},
		},
		Degree:    1,
		TotalMass: 100,
		Replicate: 1,
		Variant:   VariantSolventFiller,
	}

	r, err := Compute(p)
	if err != nil {
		t.Fatal(err)
	}
	f := r.Valid[1] // z = (1, 0)

	massA := 0.4 * 100 / 0.8 // 50 g
	if !closeTo(f.ProductMass[0], massA, tol) {
		t.Fatalf("product mass A = %.6f, want %.6f", f.ProductMass[0], massA)
	}
	if !closeTo(f.ProductMass[1], 50, tol) {
		t.Errorf("solvent mass = %.6f, want 50", f.ProductMass[1])
	}
	// A's impurity (10 g) is credited to the solvent's active total.
	if !closeTo(f.ExtraSolventMass, 10, tol) {
		t.Errorf("extra solvent = %.6f, want 10", f.ExtraSolventMass)
	}
	if !closeTo(f.TotalSolventActive, 60, tol) {
		t.Errorf("total solvent active = %.6f, want 60", f.TotalSolventActive)
	}
	if !closeTo(f.ActiveMass[1], 60, tol) {
		t.Errorf("solvent active mass = %.6f, want 60", f.ActiveMass[1])
	}
	if f.ImpurityMass != nil {
		t.Error("solvent-filler formulas should not carry impurity columns")
	}
}

func TestCompute_NoSolventActivesAreIntrinsic(t *testing.T) {
	p := Params{
		Ingredients: []Ingredient{
			{Name: "A", PurityPct: 50, MaxActivePct: 25, Density: 1.0},
			{Name: "B", PurityPct: 100, MaxActivePct: 100, Density: 2.0},
		},
		Degree:    2,
		TotalMass: 100,
		Replicate: 1,
		Variant:   VariantSolventFiller,
	}

	r, err := Compute(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range r.Valid {
		for i, in := range p.Ingredients {
			want := f.ProductMass[i] * in.PurityPct / 100
			if !closeTo(f.ActiveMass[i], want, tol) {
				t.Errorf("active mass[%d] = %.6f, want intrinsic %.6f", i, f.ActiveMass[i], want)
			}
		}
		if f.ExtraSolventMass != 0 || f.TotalSolventActive != 0 {
			t.Error("no-solvent formula carries solvent redistribution figures")
		}
		// z=(1,0): product mass 50 g, well short of the total. Accepted:
		// total mass is advisory without a solvent.
		if !f.Valid() {
			t.Errorf("no-solvent formula rejected: %s", f.Reason)
		}
	}
}

func TestCompute_ZeroPurityYieldsZeroMass(t *testing.T) {
	p := Params{
		Ingredients: []Ingredient{
			{Name: "A", PurityPct: 0, MaxActivePct: 0, Density: 1.0},
			{Name: "B", PurityPct: 100, MaxActivePct: 100, Density: 1.0},
		},
		Degree:    2,
		TotalMass: 100,
		Replicate: 1,
		Variant:   VariantSolventFiller,
	}

	r, err := Compute(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range r.Valid {
		if f.ProductMass[0] != 0 {
			t.Errorf("zero-purity ingredient got product mass %.6f", f.ProductMass[0])
		}
	}
}

func TestCompute_VolumeUsesDensity(t *testing.T) {
	p := Params{
		Ingredients: []Ingredient{
			{Name: "A", PurityPct: 100, MaxActivePct: 100, Density: 2.0},
			{Name: "B", PurityPct: 100, MaxActivePct: 100, Density: 0.5},
		},
		Degree:    1,
		TotalMass: 100,
		Replicate: 1,
		Variant:   VariantSolventFiller,
	}

	r, err := Compute(p)
	if err != nil {
		t.Fatal(err)
	}
	f := r.Valid[1] // z = (1, 0): 100 g of A
	if !closeTo(f.ProductVolume[0], 50, tol) {
		t.Errorf("volume A = %.6f, want 50", f.ProductVolume[0])
	}
	f = r.Valid[0] // z = (0, 1): 100 g of B
	if !closeTo(f.ProductVolume[1], 200, tol) {
		t.Errorf("volume B = %.6f, want 200", f.ProductVolume[1])
	}
}

func TestCompute_MassClosureWithSolvent(t *testing.T) {
	for _, v := range []Variant{VariantSolventFiller, VariantImpurityRedistribution} {
		p := Params{
			Ingredients: []Ingredient{
				{Name: "A", PurityPct: 90, MaxActivePct: 45, Density: 1.1},
				{Name: "B", PurityPct: 75, MaxActivePct: 30, Density: 1.3},
				{Name: "W", PurityPct: 100, MaxActivePct: 100, Density: 1.0, Solvent: true},
			},
			Degree:    5,
			TotalMass: 250,
			Replicate: 1,
			Variant:   v,
		}

		r, err := Compute(p)
		if err != nil {
			t.Fatal(err)
		}
		for _, f := range r.Valid {
			if math.Abs(f.SumProductMass-p.TotalMass) > 0.01*p.TotalMass {
				t.Errorf("%s: valid formula violates mass closure: sum %.6f vs total %.1f",
					v, f.SumProductMass, p.TotalMass)
			}
		}
	}
}
