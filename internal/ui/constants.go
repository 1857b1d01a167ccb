package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	AppTitle            = "Recipe Browser"
	FiltersTitle        = "FILTERS"
	FiltersCountFormat  = "FILTERS (%d)"
	QueryPlaceholder    = "Enter Key Ingredient"
	SearchButtonText    = "Search Recipe"
	SettingsText        = "Settings"
	StatusSearching     = "Searching recipes..."
	StatusNoResults     = "No recipes found"
	StatusOneResult     = "1 recipe found"
	StatusResultsFormat = "%d recipes found"
	StatusFailedFormat  = "Search failed: %s"
)

// Layout sizing
const (
	TileImageWidth  float32 = 240
	TileImageHeight float32 = 160

	WindowWidth  float32 = 900
	WindowHeight float32 = 700

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 380
)
