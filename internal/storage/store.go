package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/formlab/simplexd/internal/design"
)

// Store persists design runs under a base directory, one subdirectory per
// run holding metadata.json plus the valid and removed tables as CSV.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string           `json:"id"`
	Timestamp    time.Time        `json:"timestamp"`
	Variant      string           `json:"variant"`
	Degree       int              `json:"degree"`
	TotalMass    float64          `json:"total_mass"`
	Replicate    int              `json:"replicate"`
	Randomize    bool             `json:"randomize"`
	Seed         int64            `json:"seed"`
	Ingredients  []IngredientMeta `json:"ingredients"`
	Solvent      string           `json:"solvent,omitempty"`
	ValidCount   int              `json:"valid_count"`
	RemovedCount int              `json:"removed_count"`
}

type IngredientMeta struct {
	Name      string  `json:"name"`
	Purity    float64 `json:"purity"`
	MaxActive float64 `json:"max_active"`
	Density   float64 `json:"density"`
	Solvent   bool    `json:"solvent"`
}

// Params reconstructs the engine parameters of a stored run, so plots and
// exports can recompute the design without the original config file.
func (m *RunMetadata) Params() design.Params {
	ings := make([]design.Ingredient, len(m.Ingredients))
	for i, in := range m.Ingredients {
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
		Degree:      m.Degree,
		TotalMass:   m.TotalMass,
		Replicate:   m.Replicate,
		Randomize:   m.Randomize,
		Seed:        m.Seed,
		Variant:     design.Variant(m.Variant),
	}
}

const (
	metadataFile = "metadata.json"
	validFile    = "valid.csv"
	removedFile  = "removed.csv"
)

// Save writes a completed design run and returns its run ID.
func (s *Store) Save(result *design.Result) (string, error) {
	runID := fmt.Sprintf("design_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	ings := make([]IngredientMeta, len(result.Params.Ingredients))
	for i, in := range result.Params.Ingredients {
		ings[i] = IngredientMeta{
			Name:      in.Name,
			Purity:    in.PurityPct,
			MaxActive: in.MaxActivePct,
			Density:   in.Density,
			Solvent:   in.Solvent,
		}
	}
	meta := RunMetadata{
		ID:           runID,
		Timestamp:    time.Now(),
		Variant:      string(result.Params.Variant),
		Degree:       result.Params.Degree,
		TotalMass:    result.Params.TotalMass,
		Replicate:    result.Params.Replicate,
		Randomize:    result.Params.Randomize,
		Seed:         result.Params.Seed,
		Ingredients:  ings,
		ValidCount:   len(result.Valid),
		RemovedCount: len(result.Removed),
	}
	if result.SolventIndex >= 0 {
		meta.Solvent = result.Params.Ingredients[result.SolventIndex].Name
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeTable(filepath.Join(runDir, validFile), result.Columns, result.ValidRecords()); err != nil {
		return "", err
	}
	if err := writeTable(filepath.Join(runDir, removedFile), result.RemovedColumns(), result.RemovedRecords()); err != nil {
		return "", err
	}

	return runID, nil
}

func writeTable(path string, header []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns metadata for every stored run.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), metadataFile))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

// Load returns the metadata of one run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadValid reads back a run's valid table as header plus records.
func (s *Store) LoadValid(runID string) ([]string, [][]string, error) {
	return readTable(filepath.Join(s.baseDir, runID, validFile))
}

// LoadRemoved reads back a run's removed table as header plus records.
func (s *Store) LoadRemoved(runID string) ([]string, [][]string, error) {
	return readTable(filepath.Join(s.baseDir, runID, removedFile))
}

func readTable(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return []string{}, [][]string{}, nil
	}
	return records[0], records[1:], nil
}
