package filter

import (
	"fmt"
	"slices"

	"github.com/ytget/recipe-browser/internal/model"
)

// Group is one category together with its ordered labels
type Group struct {
	Category model.Category
	Labels   []model.Label
}

// Catalog is the immutable universe of selectable labels
type Catalog struct {
	groups []Group
	owner  map[model.Label]model.Category
}

// NewCatalog builds a catalog from groups in the given order. Every group must
// use a known category, and labels must be non-empty and unique across the
// whole catalog.
func NewCatalog(groups ...Group) (*Catalog, error) {
	c := &Catalog{
		groups: make([]Group, 0, len(groups)),
		owner:  make(map[model.Label]model.Category),
	}

	known := model.Categories()
	for _, g := range groups {
		if !slices.Contains(known, g.Category) {
			return nil, fmt.Errorf("unknown category %d", int(g.Category))
		}
		for _, label := range g.Labels {
			if label == "" {
				return nil, fmt.Errorf("empty label in category %s", g.Category)
			}
			if prev, exists := c.owner[label]; exists {
				return nil, fmt.Errorf("label %q appears in both %s and %s", label, prev, g.Category)
			}
			c.owner[label] = g.Category
		}
		c.groups = append(c.groups, Group{Category: g.Category, Labels: slices.Clone(g.Labels)})
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on an invalid universe
func MustCatalog(groups ...Group) *Catalog {
	c, err := NewCatalog(groups...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = MustCatalog(
	Group{Category: model.CategoryMealType, Labels: []model.Label{
		"Breakfast", "Lunch", "Dinner",
	}},
	Group{Category: model.CategoryCuisineType, Labels: []model.Label{
		"American", "Asian", "Caribbean", "Chinese", "French", "Indian", "Italian",
		"Japanese", "Mediterranean", "Mexican", "Middle Eastern",
	}},
	Group{Category: model.CategoryDiet, Labels: []model.Label{
		"high-fiber", "high-protein", "low-carb", "low-fat", "low-sodium",
	}},
	Group{Category: model.CategoryHealth, Labels: []model.Label{
		"dairy-free", "gluten-free", "keto-friendly", "kosher", "low-sugar", "paleo",
		"peanut-free", "vegan", "vegetarian",
	}},
)

// DefaultCatalog returns the built-in recipe filter catalog
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Categories returns copies of all groups in catalog order
func (c *Catalog) Categories() []Group {
	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		out[i] = Group{Category: g.Category, Labels: slices.Clone(g.Labels)}
	}
	return out
}

// Labels returns the labels of a single category, or nil if it is absent
func (c *Catalog) Labels(category model.Category) []model.Label {
	for _, g := range c.groups {
		if g.Category == category {
			return slices.Clone(g.Labels)
		}
	}
	return nil
}

// Contains reports whether label belongs to the catalog
func (c *Catalog) Contains(label model.Label) bool {
	_, ok := c.owner[label]
	return ok
}

// CategoryOf returns the category that owns label
func (c *Catalog) CategoryOf(label model.Label) (model.Category, bool) {
	category, ok := c.owner[label]
	return category, ok
}

// Size returns the total number of labels in the catalog
func (c *Catalog) Size() int {
	return len(c.owner)
}
