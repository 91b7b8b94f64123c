package listing

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the canonical records matching every non-empty field of q,
// in their canonical order. The input slice is never modified and the result
// never aliases it.
func Filter(canonical []CarRecord, q Query) []CarRecord {
	out := make([]CarRecord, 0, len(canonical))
	if len(canonical) == 0 {
		return out
	}

	m := newMatcher(q)
	for _, rec := range canonical {
		if m.match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether rec satisfies q.
func Matches(rec CarRecord, q Query) bool {
	return newMatcher(q).match(rec)
}

type constraint struct {
	field  Field
	needle string
}

type matcher struct {
	fold        cases.Caser
	constraints []constraint
}

func newMatcher(q Query) *matcher {
	m := &matcher{fold: cases.Fold()}
	for _, f := range fields {
		needle := q.Get(f)
		if needle == "" {
			continue
		}
		if f.caseFolded() {
			needle = m.fold.String(needle)
		}
		m.constraints = append(m.constraints, constraint{field: f, needle: needle})
	}
	return m
}

func (m *matcher) match(rec CarRecord) bool {
	for _, c := range m.constraints {
		value, ok := rec.Attr(c.field)
		if !ok {
			return false
		}
		if c.field.caseFolded() {
			value = m.fold.String(value)
		}
		if !strings.Contains(value, c.needle) {
			return false
		}
	}
	return true
}
