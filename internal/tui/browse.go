// Package tui provides an interactive terminal browser for stored design
// runs: the valid and removed tables side by side, scrollable, switchable.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/formlab/simplexd/internal/storage"
	"github.com/formlab/simplexd/internal/viz"
)

const pageSize = 10

type table struct {
	title   string
	header  []string
	records [][]string
	removed bool
}

type Model struct {
	meta   *storage.RunMetadata
	tables []table
	active int
	cursor int
	width  int
	height int
}

// NewModel builds a browser over one stored run.
func NewModel(meta *storage.RunMetadata, validHeader []string, valid [][]string, removedHeader []string, removed [][]string) Model {
	return Model{
		meta: meta,
		tables: []table{
			{title: "Valid Formulas", header: validHeader, records: valid},
			{title: "Removed Formulas", header: removedHeader, records: removed, removed: true},
		},
		width:  120,
		height: 30,
	}
}

// Run starts the browser and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.tables[m.active]
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.active = (m.active + 1) % len(m.tables)
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(t.records)-1 {
			m.cursor++
		}
	case "pgup":
		m.cursor -= pageSize
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "pgdown":
		m.cursor += pageSize
		if m.cursor >= len(t.records) {
			m.cursor = len(t.records) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(t.records) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	}
	return m, nil
}

func (m Model) View() string {
	t := m.tables[m.active]

	var b strings.Builder
	b.WriteString(viz.Title.Render(fmt.Sprintf("%s / %s", m.meta.ID, t.title)))
	b.WriteString("\n")
	b.WriteString(viz.Subtle.Render(fmt.Sprintf("variant %s  degree %d  total mass %.2f g  rows %d",
		m.meta.Variant, m.meta.Degree, m.meta.TotalMass, len(t.records))))
	b.WriteString("\n\n")

	if len(t.records) == 0 {
		b.WriteString(viz.Subtle.Render("(empty)"))
		b.WriteString("\n")
	} else {
		start := m.cursor
		end := start + pageSize
		if end > len(t.records) {
			end = len(t.records)
		}
		window := make([][]string, 0, end-start)
		for _, rec := range t.records[start:end] {
			display := make([]string, len(rec))
			for i, cell := range rec {
				display[i] = viz.FormatCell(cell)
			}
			window = append(window, display)
		}
		b.WriteString(viz.RenderTable(t.header, window, t.removed))
		b.WriteString(viz.Subtle.Render(fmt.Sprintf("rows %d-%d of %d", start+1, end, len(t.records))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(viz.KeyHint.Render("up/down scroll  pgup/pgdn page  tab switch table  q quit"))
	return b.String()
}
