// Package viz provides the interactive terminal view of the plasma beta
// calculation: pick a region, nudge its parameters and watch the regime
// change.
package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/plasmalab/internal/atmosphere"
	"github.com/san-kum/plasmalab/internal/formulary"
	"github.com/san-kum/plasmalab/internal/units"
)

const (
	historyCapacity = 120
	nudgeFactor     = 1.25
)

var paramNames = []string{"temperature", "density", "field"}

// Model holds the current parameter set and the beta history.
type Model struct {
	regions   []atmosphere.Region
	regionIdx int

	temp  units.Quantity
	dens  units.Quantity
	field units.Quantity

	selected int
	history  []float64
	width    int
}

// New builds the view starting at the named region.
func New(regions []atmosphere.Region, start int) Model {
	m := Model{
		regions:   regions,
		regionIdx: start,
		width:     80,
		history:   make([]float64, 0, historyCapacity),
	}
	m.loadRegion()
	m.record()
	return m
}

func (m *Model) loadRegion() {
	r := m.regions[m.regionIdx]
	m.temp = r.Temperature
	m.dens = r.Density
	m.field = r.Field
}

func (m *Model) record() {
	beta, err := formulary.Beta(m.temp, m.dens, m.field)
	if err != nil || math.IsInf(beta, 0) {
		return
	}
	m.history = append(m.history, math.Log10(beta))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(paramNames)-1 {
				m.selected++
			}
		case "left", "h":
			m.nudge(1 / nudgeFactor)
		case "right", "l":
			m.nudge(nudgeFactor)
		case "tab":
			m.regionIdx = (m.regionIdx + 1) % len(m.regions)
			m.loadRegion()
			m.history = m.history[:0]
			m.record()
		case "r":
			m.loadRegion()
			m.record()
		}
	}
	return m, nil
}

func (m *Model) nudge(factor float64) {
	switch m.selected {
	case 0:
		m.temp = m.temp.Scale(factor)
	case 1:
		m.dens = m.dens.Scale(factor)
	case 2:
		m.field = m.field.Scale(factor)
	}
	m.record()
}

func (m Model) View() string {
	r := m.regions[m.regionIdx]

	var params strings.Builder
	values := []string{
		formatIn(m.temp, "K"),
		formatIn(m.dens, "cm^-3"),
		formatIn(m.field, "G"),
	}
	for i, name := range paramNames {
		cursor := "  "
		style := valueStyle
		if i == m.selected {
			cursor = "▸ "
			style = activeStyle
		}
		params.WriteString(cursor + labelStyle.Render(name) + style.Render(values[i]) + "\n")
	}

	var results strings.Builder
	beta, err := formulary.Beta(m.temp, m.dens, m.field)
	if err != nil {
		results.WriteString(activeStyle.Render(err.Error()))
	} else {
		tp, _ := formulary.ThermalPressure(m.temp, m.dens)
		mp, _ := formulary.MagneticPressure(m.field)
		va, _ := formulary.AlfvenSpeed(m.field, m.dens)
		ld, _ := formulary.DebyeLength(m.temp, m.dens)
		vaKms, _ := va.In("km/s")
		ldM, _ := ld.In("m")

		regime := formulary.Regime(beta)
		regimeStyle := regimeMid
		if beta < 0.1 {
			regimeStyle = regimeLow
		} else if beta > 10 {
			regimeStyle = regimeHigh
		}

		results.WriteString(labelStyle.Render("beta") + betaStyle.Render(fmt.Sprintf("%.3e", beta)) + "\n")
		results.WriteString(labelStyle.Render("regime") + regimeStyle.Render(regime) + "\n")
		results.WriteString(labelStyle.Render("p_thermal") + valueStyle.Render(fmt.Sprintf("%.3e Pa", tp.SI())) + "\n")
		results.WriteString(labelStyle.Render("p_magnetic") + valueStyle.Render(fmt.Sprintf("%.3e Pa", mp.SI())) + "\n")
		results.WriteString(labelStyle.Render("v_alfven") + valueStyle.Render(fmt.Sprintf("%.1f km/s", vaKms)) + "\n")
		results.WriteString(labelStyle.Render("debye length") + valueStyle.Render(fmt.Sprintf("%.3e m", ldM)))
	}

	header := headerStyle.Render(fmt.Sprintf("plasmalab — %s (%s)", r.Name, r.Description))
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(params.String()),
		panelStyle.Render(results.String()),
	)

	graph := ""
	if len(m.history) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(m.history,
			asciigraph.Height(8),
			asciigraph.Width(max(20, min(m.width-10, 70))),
			asciigraph.Caption("log10(beta) history"),
		))
	}

	help := helpStyle.Render("↑/↓ select  ←/→ nudge ×1.25  tab region  r reset  q quit")

	return header + "\n" + panels + "\n" + graph + "\n" + help + "\n"
}

func formatIn(q units.Quantity, symbol string) string {
	v, err := q.In(symbol)
	if err != nil {
		return q.String()
	}
	return fmt.Sprintf("%.4g %s", v, symbol)
}
