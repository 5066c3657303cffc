package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/go-kit/kit/log/level"

	"candleplot/internal/dataset"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if slices.Contains(dataset.Extensions, ext) {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a dataset into the model; failures land in the status line.
func (m *Model) loadPath(p string) {
	d, err := dataset.Load(p, m.loadOptions())
	if err != nil {
		_ = level.Error(m.logger).Log("msg", "load failed", "path", p, "err", err)
		m.status = "load error: " + err.Error()
		return
	}
	m.setData(d, p)
	_ = level.Info(m.logger).Log("msg", "loaded", "path", p, "series", len(d.Series), "points", d.Points())
	m.status = "loaded: " + filepath.Base(p) +
		fmt.Sprintf("  series=%d points=%d", len(d.Series), d.Points())
	// If the table is open, rebuild it for the new dataset
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}
