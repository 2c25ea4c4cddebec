// Package ui provides the Bubble Tea menu for browsing classified buckets.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dmsift/internal/classify"
	"github.com/five82/dmsift/internal/rules"
)

// Options configure the menu UI.
type Options struct {
	Context context.Context
	Buckets classify.Buckets
	Rules   rules.RuleSet
	Pager   string // pager command line, e.g. "less -R"
}

// Run blocks until the user exits the menu or the context is cancelled.
// A user-initiated exit, Esc included, is a normal return, and so is a
// cancellation arriving through the context.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(New(opts), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// menuEntry is one selectable row: a bucket, or the exit row.
type menuEntry struct {
	label    string
	category rules.Category
	exit     bool
}

func buildEntries(buckets classify.Buckets, rs rules.RuleSet) []menuEntry {
	titles := map[rules.Category]string{
		rules.Critical: "Criticals",
		rules.Error:    "Errors",
		rules.Warning:  "Warnings",
		rules.Info:     "Ok",
	}
	entries := make([]menuEntry, 0, len(rules.Categories)+1)
	for _, c := range rules.Categories {
		entries = append(entries, menuEntry{
			label:    fmt.Sprintf("%s %s (%d)", rs.Rule(c).Icon, titles[c], len(buckets.Lines(c))),
			category: c,
		})
	}
	return append(entries, menuEntry{label: "🚪 Exit", exit: true})
}

// RenderBuckets returns all four buckets as one printable block, severity
// order, with section headers. Used by --no-ui mode and by the pager
// fallback when no pager can be launched.
func RenderBuckets(buckets classify.Buckets, rs rules.RuleSet) string {
	var b strings.Builder
	for _, entry := range buildEntries(buckets, rs) {
		if entry.exit {
			continue
		}
		b.WriteString(entry.label)
		b.WriteString("\n")
		for _, line := range buckets.Lines(entry.category) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
