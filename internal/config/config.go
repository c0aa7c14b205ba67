package config

import (
	"os"

	"github.com/formlab/simplexd/internal/design"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDegree    = 3
	DefaultTotalMass = 100.0
	DefaultReplicate = 1
	DefaultPurity    = 100.0
	DefaultMaxActive = 100.0
	DefaultDensity   = 1.0
)

type Config struct {
	Variant     string             `yaml:"variant"`
	Degree      int                `yaml:"degree"`
	TotalMass   float64            `yaml:"total_mass"`
	Replicate   int                `yaml:"replicate"`
	Randomize   bool               `yaml:"randomize"`
	Seed        int64              `yaml:"seed"`
	Ingredients []IngredientConfig `yaml:"ingredients"`
}

type IngredientConfig struct {
	Name      string  `yaml:"name"`
	Purity    float64 `yaml:"purity"`
	MaxActive float64 `yaml:"max_active"`
	Density   float64 `yaml:"density"`
	Solvent   bool    `yaml:"solvent"`
}

func DefaultConfig() *Config {
	return &Config{
		Variant:   string(design.VariantSolventFiller),
		Degree:    DefaultDegree,
		TotalMass: DefaultTotalMass,
		Replicate: DefaultReplicate,
		Ingredients: []IngredientConfig{
			{Name: "Ingredient 1", Purity: DefaultPurity, MaxActive: DefaultMaxActive, Density: DefaultDensity},
			{Name: "Ingredient 2", Purity: DefaultPurity, MaxActive: DefaultMaxActive, Density: DefaultDensity},
			{Name: "Ingredient 3", Purity: DefaultPurity, MaxActive: DefaultMaxActive, Density: DefaultDensity},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Ingredients = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the file representation to engine parameters. The
// conversion itself never fails; design.ValidateParams reports any
// configuration error with the offending rule and ingredient.
func (c *Config) Params() design.Params {
	ings := make([]design.Ingredient, len(c.Ingredients))
	for i, in := range c.Ingredients {
		ings[i] = design.Ingredient{
			Name:         in.Name,
			PurityPct:    in.Purity,
			MaxActivePct: in.MaxActive,
			Density:      in.Density,
			Solvent:      in.Solvent,
		}
	}
	return design.Params{
		Ingredients: ings,
		Degree:      c.Degree,
		TotalMass:   c.TotalMass,
		Replicate:   c.Replicate,
		Randomize:   c.Randomize,
		Seed:        c.Seed,
		Variant:     design.Variant(c.Variant),
	}
}
