package design

import "strings"

// Rejection reasons recorded in the removed table. Rejections are
// classification outcomes, never errors, and never halt the run.
const (
	ReasonMassExceeded    = "Sum(Product) > Total Mass"
	ReasonNegativeSolvent = "Negative Solvent Required"
	ReasonActiveExceeded  = "Sum(Active) > 100%"
)

// Mass closure and active limit tolerances. These are fixed design
// constants, not configuration.
const (
	massCloseHigh  = 1.01
	massCloseLow   = 0.99
	activeLimitPct = 100.01
)

// classify tags a formula with a rejection reason, or leaves it valid.
// A formula without a designated solvent whose product masses fall short of
// the total is accepted: total mass is advisory in that case. The active
// limit always wins over any mass-closure reason.
func classify(f *Formula, p Params, solvent int) {
	switch {
	case f.SumProductMass > p.TotalMass*massCloseHigh:
		f.Reason = ReasonMassExceeded
	case p.Variant == VariantImpurityRedistribution && solvent >= 0 &&
		f.SumProductMass < p.TotalMass*massCloseLow && f.ProductMass[solvent] < 0:
		f.Reason = ReasonNegativeSolvent
	}
	if f.SumActiveWtPct > activeLimitPct {
		f.Reason = ReasonActiveExceeded
	}
}

// ValidateParams checks every pre-condition of a design computation and
// fails fast with a *ConfigError before any lattice point is generated.
func ValidateParams(p Params) error {
	if len(p.Ingredients) < 2 {
		return &ConfigError{Err: ErrTooFewIngredients}
	}
	if p.Degree < 1 {
		return &ConfigError{Err: ErrDegreeRange}
	}
	if p.TotalMass <= 0 {
		return &ConfigError{Err: ErrTotalMassRange}
	}
	if p.Replicate < 1 {
		return &ConfigError{Err: ErrReplicateRange}
	}
	if _, err := ParseVariant(string(p.Variant)); err != nil {
		return err
	}

	seen := make(map[string]bool, len(p.Ingredients))
	solvents := 0
	for _, in := range p.Ingredients {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return &ConfigError{Err: ErrEmptyName}
		}
		if seen[name] {
			return &ConfigError{Ingredient: name, Err: ErrDuplicateName}
		}
		seen[name] = true

		if in.PurityPct < 0 || in.PurityPct > 100 || in.MaxActivePct < 0 || in.MaxActivePct > 100 {
			return &ConfigError{Ingredient: name, Err: ErrPercentRange}
		}
		if in.Density <= 0 {
			return &ConfigError{Ingredient: name, Err: ErrDensityRange}
		}
		if in.MaxActivePct > in.PurityPct {
			return &ConfigError{Ingredient: name, Err: ErrMaxAbovePurity}
		}
		if in.Solvent {
			solvents++
		}
	}
	if solvents > 1 {
		return &ConfigError{Err: ErrMultipleSolvents}
	}
	return nil
}
