package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}

	// Header: title, or the hovered bar when there is one
	header := titleStyle.Render(" candleplot ─ terminal OHLC viewer ")
	if m.hoverHit {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, tooltipStyle.Render(" "+describeEntry(m.hoverEntry)+" "))
	}
	header = lipgloss.NewStyle().Width(lo.contentW).MaxWidth(lo.contentW).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	var chartView string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, lo.contentW-6)
		}
		maxW := min(lo.chartW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.chartH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		chartView = lipgloss.Place(lo.chartW, lo.chartH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(lo.chartW)
		m.ta.SetHeight(min(lo.chartH, 12))
		chartView = lipgloss.NewStyle().Width(lo.chartW).Height(lo.chartH).Render(m.ta.View())
	default:
		chartView = lipgloss.NewStyle().Width(lo.chartW).Height(lo.chartH).Render(m.renderChart(lo.chartW, lo.chartH))
	}

	body := chartView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", chartView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%s y=%.4f  ", formatX(m.hoverX), m.hoverY))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"k kind",
		"Tab files",
		"Enter open",
		"p paste",
		"a records",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
