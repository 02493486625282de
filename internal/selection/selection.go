// Package selection tracks which suggestion a field currently shows.
package selection

import (
	"fapicker/internal/catalog"
	"fapicker/internal/domain"
)

// Machine holds the field editor's selection together with the in-progress
// query and its result list. The zero selection means "no icon selected".
type Machine struct {
	index    *catalog.Index
	selected *domain.Suggestion
	query    string
	results  []domain.Suggestion
}

// New creates a machine with no selection
func New(index *catalog.Index) *Machine {
	return &Machine{index: index}
}

// Mount resolves the value persisted in the field. A value that matches no
// suggestion leaves the machine without a selection and is not an error.
func (m *Machine) Mount(value string) {
	m.resolve(value)
}

// ExternalChange re-resolves after the host reports a new field value
func (m *Machine) ExternalChange(value string) {
	m.resolve(value)
}

// Pick selects s, clears the query and results, and returns the value to
// write to the field
func (m *Machine) Pick(s domain.Suggestion) string {
	m.selected = &s
	m.query = ""
	m.results = nil
	return s.Value
}

// SetQuery records the in-progress query and its results
func (m *Machine) SetQuery(query string, results []domain.Suggestion) {
	m.query = query
	m.results = results
}

// Selected returns the current selection
func (m *Machine) Selected() (domain.Suggestion, bool) {
	if m.selected == nil {
		return domain.Suggestion{}, false
	}
	return *m.selected, true
}

// Value returns the composed value of the selection, or "" when none
func (m *Machine) Value() string {
	if m.selected == nil {
		return ""
	}
	return m.selected.Value
}

// Query returns the in-progress query
func (m *Machine) Query() string {
	return m.query
}

// Results returns the current result list
func (m *Machine) Results() []domain.Suggestion {
	return m.results
}

func (m *Machine) resolve(value string) {
	if value == "" {
		m.selected = nil
		return
	}
	s, ok := m.index.Lookup(value)
	if !ok {
		m.selected = nil
		return
	}
	m.selected = &s
}
