package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/carlot/internal/listing"
)

// Messages shown instead of the list.
const (
	loadingText = "Loading car listings..."
	emptyText   = "No car listings available."
)

// handleListingsKey moves the selection and starts buy or search actions.
func (m Model) handleListingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Search) {
		if m.snapshot.Loading() || m.snapshot.Failed() {
			return m, nil
		}
		cmd := m.search.Open(m.snapshot.Query)
		return m, cmd
	}
	if key.Matches(msg, m.keys.Buy) {
		rec, ok := m.selectedRecord()
		if !ok {
			return m, nil
		}
		return m, buyCmd(m.ctx, m.buyer, rec)
	}

	count := len(m.snapshot.Filtered)
	if count == 0 {
		return m, nil
	}
	page := max(m.listHeight(), 1)
	switch {
	case key.Matches(msg, m.keys.Down):
		m.selectedRow++
	case key.Matches(msg, m.keys.Up):
		m.selectedRow--
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = count - 1
	case key.Matches(msg, m.keys.PageDown):
		m.selectedRow += page
	case key.Matches(msg, m.keys.PageUp):
		m.selectedRow -= page
	}
	m.clampSelection()
	return m, nil
}

// selectedRecord returns the highlighted record of the filtered set.
func (m Model) selectedRecord() (listing.CarRecord, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.snapshot.Filtered) {
		return listing.CarRecord{}, false
	}
	return m.snapshot.Filtered[m.selectedRow], true
}

// clampSelection keeps the selection inside the filtered set and scrolls the
// list window so it stays visible.
func (m *Model) clampSelection() {
	count := len(m.snapshot.Filtered)
	if count == 0 {
		m.selectedRow, m.listOffset = 0, 0
		return
	}
	m.selectedRow = min(max(m.selectedRow, 0), count-1)

	visible := max(m.listHeight(), 1)
	if m.selectedRow < m.listOffset {
		m.listOffset = m.selectedRow
	}
	if m.selectedRow >= m.listOffset+visible {
		m.listOffset = m.selectedRow - visible + 1
	}
	m.listOffset = min(max(m.listOffset, 0), max(count-visible, 0))
}

// bodyHeight is the space below the header, command bar and search panel.
func (m Model) bodyHeight() int {
	h := m.height - 2
	if m.search.open {
		h -= searchPanelHeight
	}
	return max(h, 3)
}

// splitLayout reports whether list and detail sit side by side.
func (m Model) splitLayout() bool {
	return m.width >= LayoutSplitWidth
}

// listHeight is the number of rows visible in the list pane.
func (m Model) listHeight() int {
	if m.splitLayout() {
		return m.bodyHeight() - 2
	}
	return m.bodyHeight()/2 - 2
}

// renderListings renders the search panel (when open) and the body.
func (m Model) renderListings() string {
	var b strings.Builder
	if m.search.open {
		b.WriteString(m.renderSearchPanel())
		b.WriteString("\n")
	}
	b.WriteString(m.renderBody())
	return b.String()
}

// renderBody renders the loading, failure, empty or populated state.
func (m Model) renderBody() string {
	styles := m.theme.Styles()
	height := m.bodyHeight()
	snap := m.snapshot

	switch {
	case snap.Loading():
		return m.renderTitledBox(appTitle, m.spinner.View()+" "+styles.MutedText.Render(loadingText), m.width, height, false)
	case snap.Failed():
		return m.renderTitledBox(appTitle, styles.DangerText.Render(snap.ErrorMessage()), m.width, height, false)
	case snap.Empty():
		return m.renderTitledBox(appTitle, styles.MutedText.Render(emptyText), m.width, height, false)
	}

	if m.splitLayout() {
		listWidth := int(float64(m.width) * LayoutListRatio)
		detailWidth := m.width - listWidth
		list := m.renderList(listWidth, height)
		detail := m.renderDetail(detailWidth, height)
		return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
	}
	listH := height / 2
	return m.renderList(m.width, listH) + "\n" + m.renderDetail(m.width, height-listH)
}

// renderList renders the visible window of the filtered set.
func (m Model) renderList(width, height int) string {
	styles := m.theme.Styles()
	rows := m.snapshot.Filtered
	visible := max(height-2, 0)
	inner := width - 2

	var lines []string
	end := min(m.listOffset+visible, len(rows))
	for i := m.listOffset; i < end; i++ {
		label := truncate(rowLabel(rows[i]), inner-2)
		if i == m.selectedRow {
			lines = append(lines, styles.Selected.Width(inner).Render("▸ "+label))
			continue
		}
		lines = append(lines, styles.Text.Render("  "+label))
	}

	title := fmt.Sprintf("Listings %d/%d", m.selectedRow+1, len(rows))
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, true)
}

// renderDetail renders the selected record the way a listing card shows it.
func (m Model) renderDetail(width, height int) string {
	rec, ok := m.selectedRecord()
	if !ok {
		return m.renderTitledBox("Details", "", width, height, false)
	}
	styles := m.theme.Styles()
	label := func(s string) string { return styles.MutedText.Render(s) }

	lines := []string{
		styles.Text.Bold(true).Render(rowLabel(rec)),
		"",
		label("Price: ") + styles.Text.Render(formatPrice(rec.Price)),
		label("Condition: ") + styles.Text.Render(attrOr(rec, listing.FieldCondition)),
		label("Mileage: ") + styles.Text.Render(formatMileage(rec.Mileage)),
		"",
		label("Image: ") + styles.InfoText.Render(orNA(truncate(rec.ImageURI, width-12))),
		label("ID: ") + styles.FaintText.Render(rec.ID),
		"",
		styles.AccentText.Bold(true).Render("[b] Buy Now"),
	}
	return m.renderTitledBox("Details", strings.Join(lines, "\n"), width, height, false)
}

// rowLabel formats "carname model (year)", skipping missing parts.
func rowLabel(rec listing.CarRecord) string {
	var parts []string
	if v, ok := rec.Attr(listing.FieldCarName); ok && v != "" {
		parts = append(parts, v)
	}
	if v, ok := rec.Attr(listing.FieldModel); ok && v != "" {
		parts = append(parts, v)
	}
	if v, ok := rec.Attr(listing.FieldYear); ok && v != "" {
		parts = append(parts, "("+v+")")
	}
	if len(parts) == 0 {
		return rec.ID
	}
	return strings.Join(parts, " ")
}

// formatPrice renders 15000 as "15,000 USD".
func formatPrice(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return humanize.Commaf(*v) + " USD"
}

// formatMileage renders 30000 as "30,000 km".
func formatMileage(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return humanize.Commaf(*v) + " km"
}

func attrOr(rec listing.CarRecord, f listing.Field) string {
	v, ok := rec.Attr(f)
	if !ok {
		return "n/a"
	}
	return orNA(v)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "n/a"
	}
	return s
}
