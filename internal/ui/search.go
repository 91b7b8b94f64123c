package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/carlot/internal/listing"
)

// searchPanelHeight is the rendered height of the open panel: one row per
// field, a hint row and two border rows.
const searchPanelHeight = 6 + 3

var searchPlaceholders = map[listing.Field]string{
	listing.FieldCarName:   "e.g. toyota",
	listing.FieldModel:     "e.g. corolla",
	listing.FieldYear:      "e.g. 2019",
	listing.FieldPrice:     "e.g. 15000",
	listing.FieldCondition: "e.g. used",
	listing.FieldMileage:   "e.g. 30000",
}

// searchPanel is the collapsible "Search Cars..." form with one input per
// query field.
type searchPanel struct {
	open     bool
	fields   []listing.Field
	inputs   []textinput.Model
	focusIdx int
}

func newSearchPanel() searchPanel {
	fields := listing.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = searchPlaceholders[f]
		ti.CharLimit = 64
		ti.Width = 30
		ti.Prompt = ""
		inputs[i] = ti
	}
	return searchPanel{fields: fields, inputs: inputs}
}

// Open shows the panel pre-filled with the current query and focuses the
// first field.
func (p *searchPanel) Open(q listing.Query) tea.Cmd {
	for i, f := range p.fields {
		p.inputs[i].SetValue(q.Get(f))
		p.inputs[i].Blur()
	}
	p.open = true
	p.focusIdx = 0
	return p.inputs[0].Focus()
}

// Close hides the panel without touching the query.
func (p *searchPanel) Close() {
	p.open = false
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
}

// Query builds a query from the inputs. Values are trimmed so stray spaces
// never turn into constraints.
func (p searchPanel) Query() listing.Query {
	var q listing.Query
	for i, f := range p.fields {
		q.Set(f, strings.TrimSpace(p.inputs[i].Value()))
	}
	return q
}

// Clear empties every input.
func (p *searchPanel) Clear() {
	for i := range p.inputs {
		p.inputs[i].SetValue("")
	}
}

func (p *searchPanel) move(delta int) tea.Cmd {
	p.inputs[p.focusIdx].Blur()
	n := len(p.inputs)
	p.focusIdx = (p.focusIdx + delta + n) % n
	return p.inputs[p.focusIdx].Focus()
}

// handleSearchKey handles keyboard input while the search panel is open.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.search.Close()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.runSearch(m.search.Query())
		m.search.Close()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m, m.search.move(1)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.search.move(-1)

	case key.Matches(msg, m.keys.ClearQuery):
		m.search.Clear()
		return m, nil
	}

	var cmd tea.Cmd
	idx := m.search.focusIdx
	m.search.inputs[idx], cmd = m.search.inputs[idx].Update(msg)
	return m, cmd
}

// runSearch stores q and recomputes the filtered set from the canonical set.
func (m *Model) runSearch(q listing.Query) {
	if m.store == nil {
		return
	}
	m.store.SetQuery(q)
	n := m.store.Search()
	m.logger.Debug("search", zap.Int("matches", n), zap.Int("constrained_fields", q.Active()))
	m.applySnapshot(m.store.Snapshot())
}

// renderSearchPanel renders the open search form.
func (m Model) renderSearchPanel() string {
	styles := m.theme.Styles()
	labelWidth := 0
	for _, f := range m.search.fields {
		labelWidth = max(labelWidth, len(f.Label()))
	}

	lines := make([]string, 0, len(m.search.fields)+1)
	for i, f := range m.search.fields {
		label := f.Label() + ":" + strings.Repeat(" ", labelWidth-len(f.Label())+1)
		if i == m.search.focusIdx {
			label = styles.AccentText.Render(label)
		} else {
			label = styles.MutedText.Render(label)
		}
		lines = append(lines, label+m.search.inputs[i].View())
	}
	lines = append(lines, styles.FaintText.Render("Enter: Search  •  Esc: Close  •  Ctrl+C: Clear"))

	return m.renderTitledBox("Search Cars...", strings.Join(lines, "\n"), m.width, searchPanelHeight, true)
}
