package storage

import (
	"testing"

	"github.com/formlab/simplexd/internal/design"
)

func testParams() design.Params {
	return design.Params{
		Ingredients: []design.Ingredient{
			{Name: "Surfactant", PurityPct: 70, MaxActivePct: 30, Density: 1.05},
			{Name: "Water", PurityPct: 100, MaxActivePct: 100, Density: 1.0, Solvent: true},
		},
		Degree:    3,
		TotalMass: 100,
		Replicate: 1,
		Variant:   design.VariantSolventFiller,
	}
}

func computeResult(t *testing.T) *design.Result {
	t.Helper()
	result, err := design.Compute(testParams())
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestSaveAndLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	result := computeResult(t)
	runID, err := store.Save(result)
	if err != nil {
		t.Fatal(err)
	}
	if runID == "" {
		t.Fatal("empty run ID")
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.ID != runID {
		t.Errorf("metadata ID = %s, want %s", meta.ID, runID)
	}
	if meta.Variant != string(design.VariantSolventFiller) {
		t.Errorf("variant = %s", meta.Variant)
	}
	if meta.Degree != 3 || meta.TotalMass != 100 {
		t.Errorf("globals not persisted: %+v", meta)
	}
	if meta.Solvent != "Water" {
		t.Errorf("solvent = %q, want Water", meta.Solvent)
	}
	if meta.ValidCount != len(result.Valid) || meta.RemovedCount != len(result.Removed) {
		t.Errorf("counts = %d/%d, want %d/%d",
			meta.ValidCount, meta.RemovedCount, len(result.Valid), len(result.Removed))
	}
	if len(meta.Ingredients) != 2 {
		t.Fatalf("expected 2 stored ingredients, got %d", len(meta.Ingredients))
	}
	if !meta.Ingredients[1].Solvent {
		t.Error("solvent flag lost in metadata")
	}
}

func TestLoadValidRoundtrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	result := computeResult(t)
	runID, err := store.Save(result)
	if err != nil {
		t.Fatal(err)
	}

	header, records, err := store.LoadValid(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(header) != len(result.Columns) {
		t.Errorf("header width = %d, want %d", len(header), len(result.Columns))
	}
	for i, col := range result.Columns {
		if header[i] != col {
			t.Errorf("header[%d] = %q, want %q", i, header[i], col)
		}
	}
	want := result.ValidRecords()
	if len(records) != len(want) {
		t.Fatalf("record count = %d, want %d", len(records), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if records[i][j] != want[i][j] {
				t.Fatalf("record[%d][%d] = %q, want %q", i, j, records[i][j], want[i][j])
			}
		}
	}
}

func TestLoadRemovedRoundtrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := store.Save(computeResult(t))
	if err != nil {
		t.Fatal(err)
	}

	header, records, err := store.LoadRemoved(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(header) == 0 {
		t.Fatal("removed table should keep its header even when empty")
	}
	if header[len(header)-1] != design.ColReasonRemoved {
		t.Errorf("last removed column = %q", header[len(header)-1])
	}
	if len(records) != 0 {
		t.Errorf("expected no removed rows for this design, got %d", len(records))
	}
}

func TestMetadataParamsReconstruct(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := store.Save(computeResult(t))
	if err != nil {
		t.Fatal(err)
	}
	meta, err := store.Load(runID)
	if err != nil {
		t.Fatal(err)
	}

	p := meta.Params()
	if err := design.ValidateParams(p); err != nil {
		t.Fatalf("reconstructed params should validate: %v", err)
	}
	recomputed, err := design.Compute(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(recomputed.Valid) != meta.ValidCount {
		t.Errorf("recompute valid count = %d, want %d", len(recomputed.Valid), meta.ValidCount)
	}
}

func TestListEmptyAndPopulated(t *testing.T) {
	store := New(t.TempDir())

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs before init, got %d", len(runs))
	}

	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Save(computeResult(t)); err != nil {
		t.Fatal(err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestLoad_MissingRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("design_0"); err == nil {
		t.Error("expected error for missing run")
	}
}
