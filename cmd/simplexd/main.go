package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/formlab/simplexd/internal/config"
	"github.com/formlab/simplexd/internal/design"
	"github.com/formlab/simplexd/internal/export"
	"github.com/formlab/simplexd/internal/storage"
	"github.com/formlab/simplexd/internal/tui"
	"github.com/formlab/simplexd/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	configFile  string
	preset      string
	degree      int
	totalMass   float64
	replicate   int
	randomize   bool
	seed        int64
	variant     string
	ingredients []string
	csvOut      string
	jsonOut     string
	showTable   bool
	// Plot axes (ingredient indices)
	xAxis   int
	yAxis   int
	zAxis   int
	profile int
	// Plot canvas size in terminal cells / SVG pixels
	plotWidth  int
	plotHeight int
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simplexd",
		Short: "simplex-lattice mixture design toolkit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".simplexd", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute a design and store the run",
		RunE:  runDesign,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().IntVar(&degree, "degree", config.DefaultDegree, "lattice degree")
	runCmd.Flags().Float64Var(&totalMass, "mass", config.DefaultTotalMass, "total formula mass (g)")
	runCmd.Flags().IntVar(&replicate, "replicate", config.DefaultReplicate, "replicate factor")
	runCmd.Flags().BoolVar(&randomize, "randomize", false, "shuffle the valid formulas")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed (0 = wall clock)")
	runCmd.Flags().StringVar(&variant, "variant", string(design.VariantSolventFiller), "active-content model: solvent-filler or impurity-redistribution")
	runCmd.Flags().StringArrayVar(&ingredients, "ingredient", nil, "name:purity:max_active:density[:solvent]; repeatable")
	runCmd.Flags().StringVar(&csvOut, "export-csv", "", "also write the valid table to a CSV file")
	runCmd.Flags().StringVar(&jsonOut, "export-json", "", "also write the full run bundle to a JSON file")
	runCmd.Flags().BoolVar(&showTable, "table", true, "print the design tables")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "check a config file without computing",
		RunE:  validateConfig,
	}
	validateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a stored run's tables",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "terminal scatter plot of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&xAxis, "x", 0, "ingredient index for x-axis")
	plotCmd.Flags().IntVar(&yAxis, "y", 1, "ingredient index for y-axis")
	plotCmd.Flags().IntVar(&zAxis, "z", -1, "third ingredient index for a ternary plot")
	plotCmd.Flags().IntVar(&profile, "profile", -1, "plot one ingredient's active wt % per formula instead")
	plotCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width (cells)")
	plotCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height (cells)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a stored run's valid table as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}
	exportCSVCmd.Flags().StringVar(&csvOut, "out", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a stored run's full bundle as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}
	exportJSONCmd.Flags().StringVar(&jsonOut, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "write a scatter plot of a stored run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVGRun,
	}
	exportSVGCmd.Flags().IntVar(&xAxis, "x", 0, "ingredient index for x-axis")
	exportSVGCmd.Flags().IntVar(&yAxis, "y", 1, "ingredient index for y-axis")
	exportSVGCmd.Flags().IntVar(&zAxis, "z", -1, "third ingredient index for a ternary plot")
	exportSVGCmd.Flags().IntVar(&plotWidth, "width", 1000, "SVG width (px)")
	exportSVGCmd.Flags().IntVar(&plotHeight, "height", 625, "SVG height (px)")
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "design.svg", "output file")

	browseCmd := &cobra.Command{
		Use:   "browse [run_id]",
		Short: "interactively browse a stored run's tables",
		Args:  cobra.ExactArgs(1),
		RunE:  browseRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if preset != "" {
				cfg = config.GetPreset(preset)
				if cfg == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
				}
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")

	rootCmd.AddCommand(runCmd, validateCmd, listCmd, showCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, browseCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildParams merges preset, config file and CLI flags into engine
// parameters. CLI flags override the file; the file overrides the preset.
func buildParams(cmd *cobra.Command) (design.Params, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		pc := config.GetPreset(preset)
		if pc == nil {
			return design.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = pc
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return design.Params{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fc
	}

	if cmd.Flags().Changed("degree") {
		cfg.Degree = degree
	}
	if cmd.Flags().Changed("mass") {
		cfg.TotalMass = totalMass
	}
	if cmd.Flags().Changed("replicate") {
		cfg.Replicate = replicate
	}
	if cmd.Flags().Changed("randomize") {
		cfg.Randomize = randomize
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("variant") {
		v, err := design.ParseVariant(variant)
		if err != nil {
			return design.Params{}, err
		}
		cfg.Variant = string(v)
	}
	if len(ingredients) > 0 {
		cfg.Ingredients = nil
		for _, spec := range ingredients {
			in, err := parseIngredient(spec)
			if err != nil {
				return design.Params{}, err
			}
			cfg.Ingredients = append(cfg.Ingredients, in)
		}
	}

	return cfg.Params(), nil
}

// parseIngredient parses "name:purity:max_active:density[:solvent]".
func parseIngredient(spec string) (config.IngredientConfig, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 4 || len(parts) > 5 {
		return config.IngredientConfig{}, fmt.Errorf("invalid ingredient %q: want name:purity:max_active:density[:solvent]", spec)
	}
	in := config.IngredientConfig{Name: strings.TrimSpace(parts[0])}
	vals := make([]float64, 3)
	for i, field := range parts[1:4] {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return config.IngredientConfig{}, fmt.Errorf("invalid ingredient %q: %w", spec, err)
		}
		vals[i] = v
	}
	in.Purity, in.MaxActive, in.Density = vals[0], vals[1], vals[2]
	if len(parts) == 5 {
		solvent, err := strconv.ParseBool(strings.TrimSpace(parts[4]))
		if err != nil {
			return config.IngredientConfig{}, fmt.Errorf("invalid ingredient %q: %w", spec, err)
		}
		in.Solvent = solvent
	}
	return in, nil
}

func runDesign(cmd *cobra.Command, args []string) error {
	params, err := buildParams(cmd)
	if err != nil {
		return err
	}

	result, err := design.Compute(params)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(result)
	if err != nil {
		return err
	}

	fmt.Print(viz.RenderSummary("Simplex-Lattice Design", [][2]string{
		{"run id", runID},
		{"variant", string(params.Variant)},
		{"degree", strconv.Itoa(params.Degree)},
		{"lattice points", strconv.Itoa(design.LatticeSize(params.Degree, len(params.Ingredients)))},
		{"valid formulas", strconv.Itoa(len(result.Valid))},
		{"removed formulas", strconv.Itoa(len(result.Removed))},
	}))

	if showTable {
		if len(result.Removed) > 0 {
			fmt.Printf("\n%d formulas removed:\n", len(result.Removed))
			fmt.Print(viz.RenderTable(result.RemovedColumns(), displayRecords(result.RemovedRecords()), true))
		}
		if len(result.Valid) > 0 {
			fmt.Println("\nvalid formulas:")
			fmt.Print(viz.RenderTable(result.Columns, displayRecords(result.ValidRecords()), false))
		}
	}

	if csvOut != "" {
		if err := export.ExportCSV(csvOut, result); err != nil {
			return err
		}
		fmt.Printf("csv exported: %s\n", csvOut)
	}
	if jsonOut != "" {
		if err := export.ExportJSON(jsonOut, result); err != nil {
			return err
		}
		fmt.Printf("json exported: %s\n", jsonOut)
	}
	return nil
}

func displayRecords(records [][]string) [][]string {
	out := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(rec))
		for j, cell := range rec {
			row[j] = viz.FormatCell(cell)
		}
		out[i] = row
	}
	return out
}

func validateConfig(cmd *cobra.Command, args []string) error {
	if configFile == "" {
		return fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := design.ValidateParams(cfg.Params()); err != nil {
		return err
	}
	fmt.Printf("%s: ok (%d ingredients, %d lattice points)\n",
		configFile, len(cfg.Ingredients), design.LatticeSize(cfg.Degree, len(cfg.Ingredients)))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tVARIANT\tDEGREE\tMASS\tVALID\tREMOVED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1fg\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Variant,
			run.Degree,
			run.TotalMass,
			run.ValidCount,
			run.RemovedCount,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	validHeader, valid, err := st.LoadValid(args[0])
	if err != nil {
		return err
	}
	removedHeader, removed, err := st.LoadRemoved(args[0])
	if err != nil {
		return err
	}

	fmt.Print(viz.RenderSummary(meta.ID, [][2]string{
		{"variant", meta.Variant},
		{"degree", strconv.Itoa(meta.Degree)},
		{"total mass", fmt.Sprintf("%.2f g", meta.TotalMass)},
		{"valid", strconv.Itoa(meta.ValidCount)},
		{"removed", strconv.Itoa(meta.RemovedCount)},
	}))
	if len(removed) > 0 {
		fmt.Println("\nremoved formulas:")
		fmt.Print(viz.RenderTable(removedHeader, displayRecords(removed), true))
	}
	if len(valid) > 0 {
		fmt.Println("\nvalid formulas:")
		fmt.Print(viz.RenderTable(validHeader, displayRecords(valid), false))
	}
	return nil
}

// recompute rebuilds a stored run's result for plotting. Row order may
// differ for unseeded randomized runs; scatter plots do not depend on it.
func recompute(runID string) (*design.Result, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, err
	}
	return design.Compute(meta.Params())
}

func checkAxis(result *design.Result, idx ...int) error {
	for _, i := range idx {
		if i < 0 || i >= len(result.Params.Ingredients) {
			return fmt.Errorf("ingredient index %d out of range (have %d ingredients)", i, len(result.Params.Ingredients))
		}
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	result, err := recompute(args[0])
	if err != nil {
		return err
	}

	if profile >= 0 {
		if err := checkAxis(result, profile); err != nil {
			return err
		}
		fmt.Print(viz.ActiveProfile(result, profile))
		return nil
	}

	if zAxis >= 0 {
		if err := checkAxis(result, xAxis, yAxis, zAxis); err != nil {
			return err
		}
		fmt.Print(viz.TernaryScatter(result, xAxis, yAxis, zAxis, plotWidth, plotHeight))
		return nil
	}

	if err := checkAxis(result, xAxis, yAxis); err != nil {
		return err
	}
	fmt.Print(viz.BinaryScatter(result, xAxis, yAxis, plotWidth, plotHeight))
	return nil
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	header, records, err := st.LoadValid(args[0])
	if err != nil {
		return err
	}

	out := os.Stdout
	if csvOut != "" {
		file, err := os.Create(csvOut)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	w := csv.NewWriter(out)
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

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	validHeader, valid, err := st.LoadValid(args[0])
	if err != nil {
		return err
	}
	removedHeader, removed, err := st.LoadRemoved(args[0])
	if err != nil {
		return err
	}

	ings := make([]export.Ingredient, len(meta.Ingredients))
	for i, in := range meta.Ingredients {
		ings[i] = export.Ingredient{
			Name:      in.Name,
			Purity:    in.Purity,
			MaxActive: in.MaxActive,
			Density:   in.Density,
			Solvent:   in.Solvent,
		}
	}
	data := export.ExportData{
		Variant:        meta.Variant,
		Degree:         meta.Degree,
		TotalMass:      meta.TotalMass,
		Replicate:      meta.Replicate,
		Randomize:      meta.Randomize,
		Seed:           meta.Seed,
		Ingredients:    ings,
		Columns:        validHeader,
		RemovedColumns: removedHeader,
		Valid:          valid,
		Removed:        removed,
	}

	out := os.Stdout
	if jsonOut != "" {
		file, err := os.Create(jsonOut)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	return export.WriteData(out, data)
}

func exportSVGRun(cmd *cobra.Command, args []string) error {
	result, err := recompute(args[0])
	if err != nil {
		return err
	}

	var svg string
	if zAxis >= 0 {
		if err := checkAxis(result, xAxis, yAxis, zAxis); err != nil {
			return err
		}
		svg = export.TernarySVG(viz.TernaryPoints(result, xAxis, yAxis, zAxis), plotWidth, plotHeight)
	} else {
		if err := checkAxis(result, xAxis, yAxis); err != nil {
			return err
		}
		svg = export.ScatterSVG(viz.BinaryPoints(result, xAxis, yAxis), plotWidth, plotHeight)
	}

	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("svg exported: %s\n", svgOut)
	return nil
}

func browseRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	validHeader, valid, err := st.LoadValid(args[0])
	if err != nil {
		return err
	}
	removedHeader, removed, err := st.LoadRemoved(args[0])
	if err != nil {
		return err
	}
	return tui.Run(tui.NewModel(meta, validHeader, valid, removedHeader, removed))
}
