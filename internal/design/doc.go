// Package design implements the Simplex-Lattice mixture design engine.
//
// A design run takes an ordered list of ingredients (purity, maximum active
// concentration, density, optional solvent role), enumerates every lattice
// composition for a given degree, converts each composition into product
// masses, volumes and active-content percentages, and classifies each
// formula as valid or removed:
//
//	params := design.Params{
//	    Ingredients: []design.Ingredient{
//	        {Name: "API", PurityPct: 90, MaxActivePct: 50, Density: 1.2},
//	        {Name: "Water", PurityPct: 100, MaxActivePct: 100, Density: 1.0, Solvent: true},
//	    },
//	    Degree:    3,
//	    TotalMass: 100,
//	    Replicate: 1,
//	    Variant:   design.VariantSolventFiller,
//	}
//	result, err := design.Compute(params)
//
// Two active-content models are supported, selected by [Variant]:
//
//   - [VariantSolventFiller]: non-solvent impurities are folded into the
//     solvent's active total; the solvent's own impurity is ignored.
//   - [VariantImpurityRedistribution]: impurity mass is tracked for every
//     ingredient and the entire impurity pool, including the solvent's own,
//     is credited to the solvent's active total.
//
// Everything in this package is a pure computation except the optional
// shuffle of the valid set, which draws from a seeded rand.Rand.
package design
