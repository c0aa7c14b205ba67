package viz

import (
	"fmt"
	"strings"
)

// maxColWidth keeps very long composite column headers from blowing up
// the terminal layout; headers are truncated with an ellipsis.
const maxColWidth = 38

// RenderTable renders header plus records as a styled text table. removed
// selects the red header used for the rejected-formulas table and
// highlights the trailing reason column.
func RenderTable(header []string, records [][]string, removed bool) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(clip(h))
	}
	for _, rec := range records {
		for i, cell := range rec {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headStyle := HeaderCell
	if removed {
		headStyle = RemovedHeaderCell
	}

	var b strings.Builder
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = headStyle.Render(pad(clip(h), widths[i]))
	}
	b.WriteString(strings.Join(cells, " "))
	b.WriteString("\n")

	for n, rec := range records {
		rowStyle := OddRow
		if n%2 == 0 {
			rowStyle = EvenRow
		}
		cells = cells[:0]
		for i, cell := range rec {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			style := rowStyle
			if removed && i == len(header)-1 {
				style = ReasonCell
			}
			cells = append(cells, style.Render(pad(cell, w)))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSummary renders label/value pairs inside a panel.
func RenderSummary(title string, pairs [][2]string) string {
	var b strings.Builder
	b.WriteString(Title.Render(title))
	for _, kv := range pairs {
		b.WriteString("\n")
		b.WriteString(ValueLabel.Render(kv[0] + ": "))
		b.WriteString(Value.Render(kv[1]))
	}
	return Panel.Render(b.String()) + "\n"
}

func clip(s string) string {
	if len(s) <= maxColWidth {
		return s
	}
	return s[:maxColWidth-1] + "…"
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

// FormatCell trims a stored 6-decimal value for display at the original
// 4-decimal table precision. Non-numeric cells pass through unchanged.
func FormatCell(s string) string {
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return s
	}
	if !strings.Contains(s, ".") {
		return s
	}
	return fmt.Sprintf("%.4f", v)
}
