package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/recipe-browser/internal/model"
)

func TestDefaultCatalog_Sizes(t *testing.T) {
	groups := DefaultCatalog().Categories()
	require.Len(t, groups, 4)

	expected := []struct {
		category model.Category
		size     int
	}{
		{model.CategoryMealType, 3},
		{model.CategoryCuisineType, 11},
		{model.CategoryDiet, 5},
		{model.CategoryHealth, 9},
	}

	for i, want := range expected {
		assert.Equal(t, want.category, groups[i].Category, "category %d", i)
		assert.Len(t, groups[i].Labels, want.size, "labels of %s", want.category)
	}
	assert.Equal(t, 28, DefaultCatalog().Size())
}

func TestDefaultCatalog_LabelOrder(t *testing.T) {
	assert.Equal(t,
		[]model.Label{"Breakfast", "Lunch", "Dinner"},
		DefaultCatalog().Labels(model.CategoryMealType))
	assert.Equal(t,
		[]model.Label{"high-fiber", "high-protein", "low-carb", "low-fat", "low-sodium"},
		DefaultCatalog().Labels(model.CategoryDiet))
}

func TestCatalog_CategoriesAreCopies(t *testing.T) {
	groups := DefaultCatalog().Categories()
	groups[0].Labels[0] = "Brunch"

	assert.Equal(t, model.Label("Breakfast"), DefaultCatalog().Labels(model.CategoryMealType)[0])
	assert.False(t, DefaultCatalog().Contains("Brunch"))
}

func TestCatalog_CategoryOf(t *testing.T) {
	category, ok := DefaultCatalog().CategoryOf("kosher")
	require.True(t, ok)
	assert.Equal(t, model.CategoryHealth, category)

	_, ok = DefaultCatalog().CategoryOf("spicy")
	assert.False(t, ok)
}

func TestNewCatalog_RejectsDuplicateLabel(t *testing.T) {
	_, err := NewCatalog(
		Group{Category: model.CategoryDiet, Labels: []model.Label{"vegan"}},
		Group{Category: model.CategoryHealth, Labels: []model.Label{"vegan"}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vegan")
}

func TestNewCatalog_RejectsEmptyLabel(t *testing.T) {
	_, err := NewCatalog(Group{Category: model.CategoryDiet, Labels: []model.Label{""}})
	assert.Error(t, err)
}

func TestMustCatalog_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustCatalog(
			Group{Category: model.CategoryMealType, Labels: []model.Label{"Lunch", "Lunch"}},
		)
	})
}

func TestCatalog_LabelsUnknownCategory(t *testing.T) {
	c := MustCatalog(Group{Category: model.CategoryDiet, Labels: []model.Label{"low-fat"}})
	assert.Nil(t, c.Labels(model.CategoryHealth))
}

func TestNewCatalog_RejectsUnknownCategory(t *testing.T) {
	_, err := NewCatalog(Group{Category: model.Category(42), Labels: []model.Label{"spicy"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category 42")
}

func TestDefaultCatalog_CoversEveryCategory(t *testing.T) {
	groups := DefaultCatalog().Categories()
	require.Len(t, groups, len(model.Categories()))
	for i, category := range model.Categories() {
		assert.Equal(t, category, groups[i].Category)
	}
}
