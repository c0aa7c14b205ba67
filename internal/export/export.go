package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"

	"github.com/formlab/simplexd/internal/design"
)

// ExportData bundles one design run for JSON export: the full parameter
// set alongside both tables, so a run can be audited without the data dir.
type ExportData struct {
	Variant        string       `json:"variant"`
	Degree         int          `json:"degree"`
	TotalMass      float64      `json:"total_mass"`
	Replicate      int          `json:"replicate"`
	Randomize      bool         `json:"randomize"`
	Seed           int64        `json:"seed"`
	Ingredients    []Ingredient `json:"ingredients"`
	Columns        []string     `json:"columns"`
	RemovedColumns []string     `json:"removed_columns"`
	Valid          [][]string   `json:"valid"`
	Removed        [][]string   `json:"removed"`
}

type Ingredient struct {
	Name      string  `json:"name"`
	Purity    float64 `json:"purity"`
	MaxActive float64 `json:"max_active"`
	Density   float64 `json:"density"`
	Solvent   bool    `json:"solvent"`
}

// FromResult assembles the export bundle from a live computation.
func FromResult(result *design.Result) ExportData {
	p := result.Params
	ings := make([]Ingredient, len(p.Ingredients))
	for i, in := range p.Ingredients {
		ings[i] = Ingredient{
			Name:      in.Name,
			Purity:    in.PurityPct,
			MaxActive: in.MaxActivePct,
			Density:   in.Density,
			Solvent:   in.Solvent,
		}
	}
	return ExportData{
		Variant:        string(p.Variant),
		Degree:         p.Degree,
		TotalMass:      p.TotalMass,
		Replicate:      p.Replicate,
		Randomize:      p.Randomize,
		Seed:           p.Seed,
		Ingredients:    ings,
		Columns:        result.Columns,
		RemovedColumns: result.RemovedColumns(),
		Valid:          result.ValidRecords(),
		Removed:        result.RemovedRecords(),
	}
}

// WriteData writes an assembled bundle as indented JSON.
func WriteData(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteJSON writes the full run bundle as indented JSON.
func WriteJSON(w io.Writer, result *design.Result) error {
	return WriteData(w, FromResult(result))
}

// ExportJSON writes the run bundle to a file.
func ExportJSON(path string, result *design.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, result)
}

// WriteCSV writes the valid table, header first, schema-ordered.
func WriteCSV(w io.Writer, result *design.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(result.Columns); err != nil {
		return err
	}
	for _, rec := range result.ValidRecords() {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the valid table to a file.
func ExportCSV(path string, result *design.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, result)
}
