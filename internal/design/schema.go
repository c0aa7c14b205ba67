package design

import (
	"fmt"
	"strconv"
)

// Shared summary column names.
const (
	ColFormulaNumber = "Formula Number"
	ColSumMass       = "Sum (Product mass) [g]"
	ColSumProductWt  = "Sum (Product weight) [%]"
	ColSumActiveWt   = "Sum (Active weight) [%]"
	ColExtraSolvent  = "Extra Solvent from Ingredients [g]"
	ColTotalSolvent  = "Total Solvent [g]"
	ColReasonRemoved = "Reason Removed"
)

// ProductMassCol returns the product-mass column name of an ingredient.
func ProductMassCol(name string) string { return fmt.Sprintf("%s (Product mass) [g]", name) }

// ProductVolumeCol returns the product-volume column name of an ingredient.
func ProductVolumeCol(name string) string { return fmt.Sprintf("%s (Product volume) [mL]", name) }

// ProductWtCol returns the product weight-percent column name of an ingredient.
func ProductWtCol(name string) string { return fmt.Sprintf("%s (Product wt) [%%]", name) }

// ImpurityMassCol returns the impurity-mass column name of an ingredient.
func ImpurityMassCol(name string) string { return fmt.Sprintf("%s (Impurity Mass) [g]", name) }

// ActiveMassCol returns the active-mass column name. The solvent ingredient
// carries a composite name under the impurity-redistribution variant to
// signal that redistributed impurities are included in the figure.
func ActiveMassCol(name string, solventComposite bool) string {
	if solventComposite {
		return fmt.Sprintf("%s (Active Mass + Solvent as active) [g]", name)
	}
	return fmt.Sprintf("%s (Active Mass) [g]", name)
}

// ActiveWtCol returns the active weight-percent column name, renamed for
// the solvent under the impurity-redistribution variant.
func ActiveWtCol(name string, solventComposite bool) string {
	if solventComposite {
		return fmt.Sprintf("%s (Component Active + Solvent as active, wt) [%%]", name)
	}
	return fmt.Sprintf("%s (Active wt) [%%]", name)
}

// buildColumns assembles the canonical valid-table schema: formula number,
// per-ingredient blocks, then the trailing summary columns.
func buildColumns(ings []Ingredient, v Variant, solvent int) []string {
	cols := []string{ColFormulaNumber}
	for _, in := range ings {
		cols = append(cols, ProductMassCol(in.Name))
	}
	for _, in := range ings {
		cols = append(cols, ProductVolumeCol(in.Name))
	}
	for i, in := range ings {
		composite := v == VariantImpurityRedistribution && i == solvent
		cols = append(cols, ActiveMassCol(in.Name, composite))
	}
	if v == VariantImpurityRedistribution {
		for _, in := range ings {
			cols = append(cols, ImpurityMassCol(in.Name))
		}
	}
	for _, in := range ings {
		cols = append(cols, ProductWtCol(in.Name))
	}
	for i, in := range ings {
		composite := v == VariantImpurityRedistribution && i == solvent
		cols = append(cols, ActiveWtCol(in.Name, composite))
	}
	cols = append(cols, ColSumMass, ColSumProductWt, ColSumActiveWt)
	if v == VariantSolventFiller && solvent >= 0 {
		cols = append(cols, ColExtraSolvent, ColTotalSolvent)
	}
	return cols
}

// RemovedColumns is the removed-table schema: the valid schema without the
// formula number, with the rejection reason appended.
func (r *Result) RemovedColumns() []string {
	cols := append([]string(nil), r.Columns[1:]...)
	return append(cols, ColReasonRemoved)
}

// Record flattens one formula to strings in valid-table column order.
func (r *Result) Record(f *Formula) []string {
	rec := []string{strconv.Itoa(f.Number)}
	return append(rec, r.values(f)...)
}

// RemovedRecord flattens one formula to strings in removed-table column order.
func (r *Result) RemovedRecord(f *Formula) []string {
	return append(r.values(f), f.Reason)
}

// ValidRecords returns the valid table as string records, schema-ordered.
func (r *Result) ValidRecords() [][]string {
	recs := make([][]string, len(r.Valid))
	for i := range r.Valid {
		recs[i] = r.Record(&r.Valid[i])
	}
	return recs
}

// RemovedRecords returns the removed table as string records, schema-ordered.
func (r *Result) RemovedRecords() [][]string {
	recs := make([][]string, len(r.Removed))
	for i := range r.Removed {
		recs[i] = r.RemovedRecord(&r.Removed[i])
	}
	return recs
}

func (r *Result) values(f *Formula) []string {
	n := len(r.Params.Ingredients)
	vals := make([]string, 0, len(r.Columns))
	appendAll := func(xs []float64) {
		for _, x := range xs {
			vals = append(vals, formatValue(x))
		}
	}
	appendAll(f.ProductMass[:n])
	appendAll(f.ProductVolume[:n])
	appendAll(f.ActiveMass[:n])
	if r.Params.Variant == VariantImpurityRedistribution {
		appendAll(f.ImpurityMass[:n])
	}
	appendAll(f.ProductWtPct[:n])
	appendAll(f.ActiveWtPct[:n])
	vals = append(vals, formatValue(f.SumProductMass), formatValue(f.SumProductWtPct), formatValue(f.SumActiveWtPct))
	if r.Params.Variant == VariantSolventFiller && r.SolventIndex >= 0 {
		vals = append(vals, formatValue(f.ExtraSolventMass), formatValue(f.TotalSolventActive))
	}
	return vals
}

func formatValue(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
