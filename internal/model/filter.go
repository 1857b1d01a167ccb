package model

// Category identifies one fixed grouping of selectable filter labels
type Category int

const (
	CategoryMealType Category = iota
	CategoryCuisineType
	CategoryDiet
	CategoryHealth
)

// String returns the heading shown above the category in the filter panel
func (c Category) String() string {
	switch c {
	case CategoryMealType:
		return "Meal Type"
	case CategoryCuisineType:
		return "Cuisine Type"
	case CategoryDiet:
		return "Diet"
	case CategoryHealth:
		return "Health"
	default:
		return "Unknown"
	}
}

// Categories returns all categories in panel order
func Categories() []Category {
	return []Category{CategoryMealType, CategoryCuisineType, CategoryDiet, CategoryHealth}
}

// Label is one selectable filter option. Labels are unique across every
// category, so selection state is keyed by the label alone.
type Label string

// String returns the raw label text
func (l Label) String() string {
	return string(l)
}
