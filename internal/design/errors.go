package design

import "errors"

var (
	// ErrTooFewIngredients indicates fewer than two ingredients were supplied.
	ErrTooFewIngredients = errors.New("design: at least two ingredients are required")
	// ErrMultipleSolvents indicates more than one ingredient is flagged as solvent.
	ErrMultipleSolvents = errors.New("design: only one ingredient may be marked as solvent")
	// ErrDegreeRange indicates a non-positive lattice degree.
	ErrDegreeRange = errors.New("design: degree must be at least 1")
	// ErrTotalMassRange indicates a non-positive total formula mass.
	ErrTotalMassRange = errors.New("design: total formula mass must be positive")
	// ErrReplicateRange indicates a replicate factor below 1.
	ErrReplicateRange = errors.New("design: replicate must be at least 1")
	// ErrUnknownVariant indicates an unrecognized variant name.
	ErrUnknownVariant = errors.New("design: unknown variant")
	// ErrEmptyName indicates an ingredient with a blank name.
	ErrEmptyName = errors.New("design: ingredient name must not be empty")
	// ErrDuplicateName indicates two ingredients sharing a name.
	ErrDuplicateName = errors.New("design: ingredient names must be unique")
	// ErrPercentRange indicates a purity or max-active value outside [0,100].
	ErrPercentRange = errors.New("design: percentages must be within [0,100]")
	// ErrDensityRange indicates a non-positive density.
	ErrDensityRange = errors.New("design: density must be positive")
	// ErrMaxAbovePurity indicates a max-active limit the ingredient's purity
	// cannot deliver.
	ErrMaxAbovePurity = errors.New("design: max active exceeds purity")
)

// ConfigError is a fatal configuration failure detected before any lattice
// point is generated. Ingredient names the offending ingredient when the
// rule is ingredient-scoped.
type ConfigError struct {
	Ingredient string
	Detail     string
	Err        error
}

func (e *ConfigError) Error() string {
	msg := e.Err.Error()
	if e.Ingredient != "" {
		msg += ": " + e.Ingredient
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }
