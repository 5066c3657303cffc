package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-kit/kit/log/level"

	"candleplot/internal/dataset"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				d, err := dataset.ParseCSV(strings.NewReader(text), m.loadOptions())
				if err != nil {
					_ = level.Warn(m.logger).Log("msg", "paste rejected", "err", err)
					m.status = "csv error: " + err.Error()
					return m, nil
				}
				m.setData(d, "")
				m.status = fmt.Sprintf("rendered pasted rows  series=%d points=%d", len(d.Series), d.Points())
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "k":
			m.kindMode = (m.kindMode + 1) % numKindModes
			m.status = "kind: " + m.kindLabel()
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.updateHover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateHover resolves the mouse position against the boxes cached by the
// last render.
func (m *Model) updateHover(x, y int) {
	lo := m.layout()
	if x < lo.chartX || x >= lo.chartX+lo.chartW || y < lo.chartY || y >= lo.chartY+lo.chartH || m.showAttrs || m.pasteMode {
		m.hovering = false
		m.hoverHit = false
		return
	}
	m.hovering = true
	m.hoverCellX = x - lo.chartX
	m.hoverCellY = y - lo.chartY
	if dx, dy, ok := m.cellToData(m.hoverCellX, m.hoverCellY, lo.chartW, lo.chartH); ok {
		m.hoverX, m.hoverY = dx, dy
	}
	m.hoverEntry, m.hoverHit = m.overlay.HitTestRect(cellRect(m.hoverCellX, m.hoverCellY))
}

// setData swaps the dataset and resets the viewport.
func (m *Model) setData(d dataset.Data, path string) {
	m.data = d
	m.selPath = path
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.hovering, m.hoverHit = false, false
	m.overlay.Reset()
}
