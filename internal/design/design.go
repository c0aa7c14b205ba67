package design

// Compute runs the full design pipeline: parameter validation, lattice
// enumeration, per-composition mass balance, classification, replication
// and optional randomization of the valid set, formula numbering, and
// column schema assembly. Each invocation is independent; no state is held
// between calls.
func Compute(p Params) (*Result, error) {
	if err := ValidateParams(p); err != nil {
		return nil, err
	}
	solvent := p.SolventIndex()

	tuples := EnumerateLattice(p.Degree, len(p.Ingredients))
	rows := computeFormulas(p, tuples, solvent)

	var valid, removed []Formula
	for _, f := range rows {
		if f.Valid() {
			valid = append(valid, f)
		} else {
			removed = append(removed, f)
		}
	}

	valid = replicate(valid, p.Replicate)
	if p.Randomize {
		shuffle(valid, p.Seed)
	}
	for i := range valid {
		valid[i].Number = i + 1
	}

	return &Result{
		Params:       p,
		SolventIndex: solvent,
		Valid:        valid,
		Removed:      removed,
		Columns:      buildColumns(p.Ingredients, p.Variant, solvent),
	}, nil
}
