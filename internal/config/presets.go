package config

import "sort"

var Presets = map[string]*Config{
	"binary": {
		Variant: "solvent-filler", Degree: 2, TotalMass: 100.0, Replicate: 1,
		Ingredients: []IngredientConfig{
			{Name: "Ingredient 1", Purity: 100, MaxActive: 100, Density: 1.0},
			{Name: "Ingredient 2", Purity: 100, MaxActive: 100, Density: 1.0},
		},
	},
	"ternary": {
		Variant: "solvent-filler", Degree: 3, TotalMass: 100.0, Replicate: 1,
		Ingredients: []IngredientConfig{
			{Name: "Ingredient 1", Purity: 100, MaxActive: 100, Density: 1.0},
			{Name: "Ingredient 2", Purity: 100, MaxActive: 100, Density: 1.0},
			{Name: "Ingredient 3", Purity: 100, MaxActive: 100, Density: 1.0},
		},
	},
	"aqueous": {
		Variant: "solvent-filler", Degree: 4, TotalMass: 100.0, Replicate: 1,
		Ingredients: []IngredientConfig{
			{Name: "Surfactant", Purity: 70, MaxActive: 30, Density: 1.05},
			{Name: "Polymer", Purity: 95, MaxActive: 20, Density: 1.1},
			{Name: "Water", Purity: 100, MaxActive: 100, Density: 1.0, Solvent: true},
		},
	},
	"impurity": {
		Variant: "impurity-redistribution", Degree: 4, TotalMass: 100.0, Replicate: 1,
		Ingredients: []IngredientConfig{
			{Name: "Active A", Purity: 90, MaxActive: 50, Density: 1.2},
			{Name: "Active B", Purity: 80, MaxActive: 40, Density: 1.15},
			{Name: "Solvent", Purity: 100, MaxActive: 100, Density: 1.0, Solvent: true},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
