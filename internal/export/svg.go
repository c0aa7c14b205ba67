package export

import (
	"fmt"
	"strings"

	"github.com/formlab/simplexd/internal/viz"
)

const (
	svgBackground = "#0a0a0a"
	svgPoint      = "#1f77b4"
	svgFrame      = "#00ff00"
	svgDotRadius  = 4.0
)

// ScatterSVG renders binary design points (product wt % on both axes,
// 0..100) as an SVG scatter with a framed plot area.
func ScatterSVG(points []viz.Point, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<rect x="0.5" y="0.5" width="%d" height="%d" fill="none" stroke="%s" stroke-width="1"/>
<g fill="%s" stroke="black" stroke-width="1">
`, width, height, width, height, svgBackground, width-1, height-1, svgFrame, svgPoint))

	for _, p := range points {
		cx := p.X / 100.0 * float64(width)
		cy := float64(height) - p.Y/100.0*float64(height)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, svgDotRadius))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TernarySVG renders ternary design points (already projected to the unit
// square by viz.TernaryPoints) inside a triangle outline.
func TernarySVG(points []viz.Point, width, height int) string {
	var sb strings.Builder

	apexX := float64(width) / 2
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1" d="M%.1f,0 L0,%d L%d,%d Z"/>
<g fill="%s" stroke="black" stroke-width="1">
`, width, height, width, height, svgBackground, svgFrame, apexX, height, width, height, svgPoint))

	for _, p := range points {
		cx := p.X * float64(width)
		cy := float64(height) - p.Y*float64(height)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, svgDotRadius))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
