package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dmsift/internal/classify"
)

// Model is the root menu state for Bubble Tea.
type Model struct {
	buckets classify.Buckets
	pager   string

	entries []menuEntry
	cursor  int
	keys    keyMap
	styles  Styles
}

// New creates the menu model.
func New(opts Options) Model {
	return Model{
		buckets: opts.Buckets,
		pager:   opts.Pager,
		entries: buildEntries(opts.Buckets, opts.Rules),
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			entry := m.entries[m.cursor]
			if entry.exit {
				return m, tea.Quit
			}
			content := strings.Join(m.buckets.Lines(entry.category), "\n")
			return m, openPager(m.pager, content)
		}
	case pagerDoneMsg:
		if msg.err != nil {
			// The pager could not run; dump the section inline instead of
			// failing the whole session.
			return m, tea.Println(msg.content)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Choose a section to view"))
	b.WriteString("\n")
	for i, entry := range m.entries {
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("▸ " + entry.label))
		} else {
			b.WriteString(m.styles.Item.Render(entry.label))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("↑/↓ move · enter open · q/esc quit"))
	b.WriteString("\n")
	return b.String()
}
