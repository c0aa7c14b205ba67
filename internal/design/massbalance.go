package design

// computeFormula runs the purity/impurity mass balance for one lattice
// tuple. solvent is the solvent's ingredient index, or -1.
//
// Non-solvent product masses are fixed by the active target:
//
//	targetActive_i = z_i * maxActive_i * totalMass
//	productMass_i  = targetActive_i / purity_i   (0 when purity_i == 0)
//
// The solvent, when designated, fills the remainder up to totalMass. The
// two variants differ only in how impurity mass is redistributed into the
// solvent's active total.
func computeFormula(p Params, tuple []int, solvent int) Formula {
	n := len(p.Ingredients)
	f := Formula{
		Fractions:     fractions(tuple, p.Degree),
		ProductMass:   make([]float64, n),
		ProductVolume: make([]float64, n),
		ActiveMass:    make([]float64, n),
		ProductWtPct:  make([]float64, n),
		ActiveWtPct:   make([]float64, n),
	}
	if p.Variant == VariantImpurityRedistribution {
		f.ImpurityMass = make([]float64, n)
	}

	sumNonSolvent := 0.0
	for i, in := range p.Ingredients {
		if i == solvent {
			continue
		}
		targetActive := f.Fractions[i] * in.maxActive() * p.TotalMass
		if purity := in.purity(); purity > 0 {
			f.ProductMass[i] = targetActive / purity
		}
		sumNonSolvent += f.ProductMass[i]
	}
	if solvent >= 0 {
		f.ProductMass[solvent] = p.TotalMass - sumNonSolvent
	}

	switch p.Variant {
	case VariantImpurityRedistribution:
		totalImpurity := 0.0
		for i, in := range p.Ingredients {
			f.ActiveMass[i] = f.ProductMass[i] * in.purity()
			f.ImpurityMass[i] = f.ProductMass[i] * (1.0 - in.purity())
			totalImpurity += f.ImpurityMass[i]
		}
		if solvent >= 0 {
			f.ActiveMass[solvent] += totalImpurity
		}
	default: // solvent-filler
		for i, in := range p.Ingredients {
			f.ActiveMass[i] = f.ProductMass[i] * in.purity()
			if i != solvent {
				f.ExtraSolventMass += f.ProductMass[i] * (1.0 - in.purity())
			}
		}
		if solvent >= 0 {
			f.TotalSolventActive = f.ActiveMass[solvent] + f.ExtraSolventMass
			f.ActiveMass[solvent] = f.TotalSolventActive
		} else {
			f.ExtraSolventMass = 0
		}
	}

	for i, in := range p.Ingredients {
		f.ProductVolume[i] = f.ProductMass[i] / in.Density
		f.ProductWtPct[i] = f.ProductMass[i] / p.TotalMass * 100.0
		f.ActiveWtPct[i] = f.ActiveMass[i] / p.TotalMass * 100.0
		f.SumProductMass += f.ProductMass[i]
		f.SumProductWtPct += f.ProductWtPct[i]
		f.SumActiveWtPct += f.ActiveWtPct[i]
	}
	return f
}
