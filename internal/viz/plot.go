package viz

import (
	"fmt"
	"strings"

	"github.com/formlab/simplexd/internal/design"
	"github.com/guptarohit/asciigraph"
)

// Point is a projected 2D plot coordinate.
type Point struct {
	X, Y float64
}

// sliceMassCutoff hides formulas where a non-selected ingredient
// contributes product mass, so a 2- or 3-ingredient plot shows a true
// slice of the design.
const sliceMassCutoff = 0.01

// slice returns the valid formulas where every ingredient outside the
// selection has product mass at or below the cutoff.
func slice(r *design.Result, selected ...int) []*design.Formula {
	isSelected := make(map[int]bool, len(selected))
	for _, idx := range selected {
		isSelected[idx] = true
	}
	var rows []*design.Formula
	for i := range r.Valid {
		f := &r.Valid[i]
		keep := true
		for j := range r.Params.Ingredients {
			if !isSelected[j] && f.ProductMass[j] > sliceMassCutoff {
				keep = false
				break
			}
		}
		if keep {
			rows = append(rows, f)
		}
	}
	return rows
}

// BinaryPoints projects the sliced valid set onto two ingredients'
// product weight-percent axes.
func BinaryPoints(r *design.Result, xi, yi int) []Point {
	rows := slice(r, xi, yi)
	pts := make([]Point, 0, len(rows))
	for _, f := range rows {
		pts = append(pts, Point{X: f.ProductWtPct[xi], Y: f.ProductWtPct[yi]})
	}
	return pts
}

// TernaryPoints projects the sliced valid set into a unit-square ternary
// triangle: first ingredient at the apex, second bottom-left, third
// bottom-right. Rows whose three selected weights sum to zero are skipped.
func TernaryPoints(r *design.Result, ai, bi, ci int) []Point {
	rows := slice(r, ai, bi, ci)
	pts := make([]Point, 0, len(rows))
	for _, f := range rows {
		a, b, c := f.ProductWtPct[ai], f.ProductWtPct[bi], f.ProductWtPct[ci]
		sum := a + b + c
		if sum <= 0 {
			continue
		}
		a, b, c = a/sum, b/sum, c/sum
		pts = append(pts, Point{X: a*0.5 + c, Y: a})
	}
	return pts
}

// BinaryScatter renders a Braille scatter of two ingredients' product
// weight-percent over the 0..100 range.
func BinaryScatter(r *design.Result, xi, yi, width, height int) string {
	pts := BinaryPoints(r, xi, yi)
	names := r.Params.Names()

	c := NewCanvas(width, height)
	maxX := width*2 - 1
	maxY := height*4 - 1
	c.DrawLine(0, 0, 0, maxY)
	c.DrawLine(0, maxY, maxX, maxY)

	for _, p := range pts {
		x := int(p.X / 100.0 * float64(maxX-2))
		y := maxY - 1 - int(p.Y/100.0*float64(maxY-2))
		c.Mark(x+1, y)
	}

	var b strings.Builder
	b.WriteString(Title.Render(fmt.Sprintf("%s vs %s (Product wt %%)", names[xi], names[yi])))
	b.WriteString("\n")
	b.WriteString(c.String())
	b.WriteString(Subtle.Render(fmt.Sprintf("x: %s 0.0..100.0   y: %s 0.0..100.0   points: %d", names[xi], names[yi], len(pts))))
	b.WriteString("\n")
	return b.String()
}

// TernaryScatter renders a Braille ternary diagram of three ingredients.
func TernaryScatter(r *design.Result, ai, bi, ci, width, height int) string {
	pts := TernaryPoints(r, ai, bi, ci)
	names := r.Params.Names()

	c := NewCanvas(width, height)
	maxX := width*2 - 1
	maxY := height*4 - 1

	// Triangle vertices in sub-pixel space: apex centered on top.
	apexX, apexY := maxX/2, 0
	leftX, leftY := 0, maxY
	rightX, rightY := maxX, maxY
	c.DrawLine(apexX, apexY, leftX, leftY)
	c.DrawLine(apexX, apexY, rightX, rightY)
	c.DrawLine(leftX, leftY, rightX, rightY)

	for _, p := range pts {
		x := int(p.X * float64(maxX))
		y := maxY - int(p.Y*float64(maxY))
		c.Mark(x, y)
	}

	var b strings.Builder
	b.WriteString(Title.Render(fmt.Sprintf("Simplex-Lattice (%s; %s; %s)", names[ai], names[bi], names[ci])))
	b.WriteString("\n")
	b.WriteString(c.String())
	b.WriteString(Subtle.Render(fmt.Sprintf("apex: %s   bottom-left: %s   bottom-right: %s   points: %d",
		names[ai], names[bi], names[ci], len(pts))))
	b.WriteString("\n")
	return b.String()
}

// ActiveProfile plots one ingredient's active weight-percent across the
// valid formulas, in formula-number order.
func ActiveProfile(r *design.Result, idx int) string {
	if len(r.Valid) == 0 {
		return Subtle.Render("no valid formulas to plot") + "\n"
	}
	data := make([]float64, len(r.Valid))
	for i := range r.Valid {
		data[i] = r.Valid[i].ActiveWtPct[idx]
	}
	name := r.Params.Ingredients[idx].Name
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s active wt %% per formula", name)),
	) + "\n"
}
