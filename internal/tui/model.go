package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-kit/kit/log"

	"candleplot/internal/config"
	"candleplot/internal/dataset"
	"candleplot/internal/ohlc"
)

// kind display modes cycled with "k"
const (
	kindAsLoaded = iota
	kindAllCandle
	kindAllOHLC
	numKindModes
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	cfg     *config.Config
	logger  log.Logger
	overlay *ohlc.Overlay
	pal     *palette

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	data     dataset.Data
	kindMode int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverHit   bool
	hoverEntry ohlc.CachedEntry
	hoverX     float64
	hoverY     float64

	// records table
	showAttrs bool
	tbl       table.Model
}

func New(cfg *config.Config, logger log.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "candleplot ready",
		cfg:         cfg,
		logger:      logger,
		overlay:     ohlc.NewOverlay(cfg.Candlestick),
		pal:         newPalette(),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste CSV rows here (x,avg,open,close,high,low,x1). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(cfg *config.Config, logger log.Logger, path string) Model {
	m := New(cfg, logger)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) loadOptions() dataset.Options {
	return dataset.Options{
		Kind:      ohlc.Kind(m.cfg.Plot.Kind),
		Color:     m.cfg.Plot.SeriesColor,
		LineWidth: m.cfg.Plot.TermLineWidth,
	}
}

// series returns what gets drawn, with the kind override applied.
func (m Model) series() []*ohlc.Series {
	switch m.kindMode {
	case kindAllCandle:
		return m.data.WithKind(ohlc.KindCandle)
	case kindAllOHLC:
		return m.data.WithKind(ohlc.KindOHLC)
	}
	return m.data.Series
}

func (m Model) kindLabel() string {
	switch m.kindMode {
	case kindAllCandle:
		return "candle"
	case kindAllOHLC:
		return "ohlc"
	}
	return "as loaded"
}

// layout is shared by View and mouse handling so both agree on where the chart is.
type layout struct {
	contentW, contentH int
	sidebarW           int
	chartX, chartY     int
	chartW, chartH     int
}

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

func (m Model) layout() layout {
	var lo layout
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
		lo.chartX = sidebarWidth + 1
	}
	lo.chartY = headerHeight
	lo.chartW = max(10, lo.contentW-lo.sidebarW-1)
	lo.chartH = lo.contentH
	return lo
}
