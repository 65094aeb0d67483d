package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"bodymap/internal/body"
	"bodymap/internal/logging"
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
		name := e.Name()
		if e.IsDir() || !body.IsDataFile(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 && m.showSidebar {
		m.status = "no data files in current directory"
	}
}

// loadPath loads caller intensity data and rebuilds the diagram.
func (m *Model) loadPath(p string) {
	data, err := body.LoadData(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		logging.Logger().Error("load data", "path", p, "err", err)
		return
	}
	m.selPath = p
	m.data = data
	m.status = fmt.Sprintf("loaded: %s  parts=%d", filepath.Base(p), len(data))
	logging.Logger().Info("loaded data", "path", p, "parts", len(data))
	m.rebuild()
}
