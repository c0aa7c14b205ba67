package design

// Variant selects the active-content model used by the mass balance.
type Variant string

const (
	// VariantSolventFiller treats every non-solvent ingredient's impurity
	// as chemically identical to the solvent's active species.
	VariantSolventFiller Variant = "solvent-filler"
	// VariantImpurityRedistribution credits the impurity of every
	// ingredient, the solvent's own included, to the solvent's active total.
	VariantImpurityRedistribution Variant = "impurity-redistribution"
)

// ParseVariant maps a user-facing name to a Variant. The short aliases
// "a" and "b" are accepted for the filler and redistribution models.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case string(VariantSolventFiller), "a", "A":
		return VariantSolventFiller, nil
	case string(VariantImpurityRedistribution), "b", "B":
		return VariantImpurityRedistribution, nil
	default:
		return "", &ConfigError{Err: ErrUnknownVariant, Detail: s}
	}
}

// Ingredient describes one raw material of the formulation. Slice order is
// semantically meaningful: it fixes the column and report order.
type Ingredient struct {
	Name         string
	PurityPct    float64 // active fraction of product mass, percent
	MaxActivePct float64 // upper bound on contributed active content, percent of total mass
	Density      float64 // g/mL
	Solvent      bool
}

func (in Ingredient) purity() float64    { return in.PurityPct / 100.0 }
func (in Ingredient) maxActive() float64 { return in.MaxActivePct / 100.0 }

// Params is the immutable input of one design computation.
type Params struct {
	Ingredients []Ingredient
	Degree      int     // lattice resolution, step size 1/Degree
	TotalMass   float64 // total formula mass in grams
	Replicate   int     // valid set is repeated this many times
	Randomize   bool
	Seed        int64 // shuffle seed; 0 draws from the wall clock
	Variant     Variant
}

// Names returns the ingredient names in canonical order.
func (p Params) Names() []string {
	names := make([]string, len(p.Ingredients))
	for i, in := range p.Ingredients {
		names[i] = in.Name
	}
	return names
}

// SolventIndex returns the position of the solvent ingredient, or -1.
func (p Params) SolventIndex() int {
	for i, in := range p.Ingredients {
		if in.Solvent {
			return i
		}
	}
	return -1
}

// Formula is one computed row of the design. All per-ingredient slices are
// indexed by ingredient position. A Formula is created once by the mass
// balance, annotated once by the classifier and never mutated afterwards,
// except for verbatim duplication during replication and the final
// assignment of Number.
type Formula struct {
	Number    int       // 1-based, valid table only
	Fractions []float64 // lattice composition z, sums to 1

	ProductMass   []float64 // g
	ProductVolume []float64 // mL
	ActiveMass    []float64 // g
	ImpurityMass  []float64 // g, impurity-redistribution variant only
	ProductWtPct  []float64
	ActiveWtPct   []float64

	// Solvent-filler variant with a designated solvent only.
	ExtraSolventMass   float64 // impurity mass contributed by the other ingredients, g
	TotalSolventActive float64 // solvent-as-active mass, g

	SumProductMass  float64
	SumProductWtPct float64
	SumActiveWtPct  float64

	Reason string // empty for valid formulas
}

// Valid reports whether the formula passed classification.
func (f *Formula) Valid() bool { return f.Reason == "" }

func (f *Formula) clone() Formula {
	c := *f
	c.Fractions = append([]float64(nil), f.Fractions...)
	c.ProductMass = append([]float64(nil), f.ProductMass...)
	c.ProductVolume = append([]float64(nil), f.ProductVolume...)
	c.ActiveMass = append([]float64(nil), f.ActiveMass...)
	if f.ImpurityMass != nil {
		c.ImpurityMass = append([]float64(nil), f.ImpurityMass...)
	}
	c.ProductWtPct = append([]float64(nil), f.ProductWtPct...)
	c.ActiveWtPct = append([]float64(nil), f.ActiveWtPct...)
	return c
}

// Result is the output of one design computation: the valid and removed
// tables plus the canonical column schema shared by all downstream
// rendering and export collaborators.
type Result struct {
	Params       Params
	SolventIndex int // -1 when no solvent is designated

	Valid   []Formula
	Removed []Formula

	// Columns is the valid-table schema. The removed table uses
	// RemovedColumns, which drops the formula number and appends the
	// rejection reason.
	Columns []string
}
