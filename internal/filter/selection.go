package filter

import (
	"github.com/ytget/recipe-browser/internal/model"
)

// Model tracks which filter labels are active for one UI session.
// It is not safe for concurrent use; the view mutates it from the UI thread.
type Model struct {
	catalog  *Catalog
	selected map[model.Label]struct{}
}

// NewModel creates a model over catalog with nothing selected.
// A nil catalog means DefaultCatalog.
func NewModel(catalog *Catalog) *Model {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Model{
		catalog:  catalog,
		selected: make(map[model.Label]struct{}),
	}
}

// Toggle flips the membership of label and returns the new state.
// Labels outside the catalog are ignored.
func (m *Model) Toggle(label model.Label) bool {
	if !m.catalog.Contains(label) {
		return false
	}

	if _, ok := m.selected[label]; ok {
		delete(m.selected, label)
		return false
	}
	m.selected[label] = struct{}{}
	return true
}

// IsSelected reports whether label is active
func (m *Model) IsSelected(label model.Label) bool {
	_, ok := m.selected[label]
	return ok
}

// Categories exposes the static label universe for rendering
func (m *Model) Categories() []Group {
	return m.catalog.Categories()
}

// Catalog returns the catalog backing the model
func (m *Model) Catalog() *Catalog {
	return m.catalog
}

// Selected returns the active labels in catalog order
func (m *Model) Selected() []model.Label {
	if len(m.selected) == 0 {
		return nil
	}

	out := make([]model.Label, 0, len(m.selected))
	for _, g := range m.catalog.groups {
		for _, label := range g.Labels {
			if _, ok := m.selected[label]; ok {
				out = append(out, label)
			}
		}
	}
	return out
}

// Len returns the number of active labels
func (m *Model) Len() int {
	return len(m.selected)
}
