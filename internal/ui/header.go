package ui

import (
	"fmt"
	"strings"

	"github.com/five82/carlot/internal/listing"
)

const appTitle = "Cars for Sale"

// renderHeader renders the title bar with load status and counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("carlot", styles.Title),
		bg.Render(appTitle, styles.Text.Bold(true)),
	}
	if m.source != "" && m.width >= LayoutSplitWidth {
		parts = append(parts, bg.Render(m.source, styles.FaintText))
	}

	snap := m.snapshot
	switch {
	case snap.Loading():
		parts = append(parts, bg.Render("Loading...", styles.WarningText.Bold(true)))
	case snap.Failed():
		parts = append(parts, bg.Render("Load failed", styles.DangerText))
	default:
		parts = append(parts,
			bg.Render("Showing", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d of %d", len(snap.Filtered), len(snap.Canonical)), styles.Text))
		if summary := querySummary(snap.Query); summary != "" {
			parts = append(parts, bg.Render("Filters:", styles.MutedText)+bg.Space()+bg.Render(summary, styles.AccentText))
		}
	}
	if m.statusMsg != "" {
		parts = append(parts, bg.Render(m.statusMsg, styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  ") + sep)
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var hints [][2]string
	switch {
	case m.search.open:
		hints = [][2]string{{"tab", "next"}, {"enter", "search"}, {"ctrl+c", "clear"}, {"esc", "close"}}
	case m.currentView == ViewLogs:
		hints = [][2]string{{"j/k", "scroll"}, {"space", "follow"}, {"l/esc", "listings"}, {"e", "quit"}}
	default:
		hints = [][2]string{{"/", "search"}, {"b", "buy"}, {"l", "logs"}, {"T", "theme"}, {"h", "help"}, {"e", "quit"}}
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, bg.Render("<"+h[0]+">", styles.AccentText)+bg.Space()+bg.Render(h[1], styles.MutedText))
	}
	return styles.Footer.Width(m.width).Render(bg.Join(parts, "  "))
}

// querySummary lists the active query fields, e.g. "Car Name~toy Year~2019".
func querySummary(q listing.Query) string {
	var parts []string
	for _, f := range listing.Fields() {
		if v := q.Get(f); v != "" {
			parts = append(parts, f.Label()+"~"+v)
		}
	}
	return strings.Join(parts, " ")
}
