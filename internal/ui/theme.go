package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// RecipeTheme tints the default theme with kitchen colours and tightens padding
// so more recipe tiles fit on screen.
type RecipeTheme struct{}

// NewRecipeTheme creates the application theme
func NewRecipeTheme() fyne.Theme {
	return &RecipeTheme{}
}

// Color returns theme colors
func (t *RecipeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 230, G: 110, B: 40, A: 255} // Paprika for primary actions
	case theme.ColorNameHyperlink:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 167, B: 112, A: 255}
		}
		return color.RGBA{R: 191, G: 84, B: 20, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *RecipeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *RecipeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *RecipeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameSubHeadingText:
		return 15
	}

	return theme.DefaultTheme().Size(name)
}
