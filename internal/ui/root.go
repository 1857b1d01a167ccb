package ui

import (
	"context"
	"fmt"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/config"
	"github.com/ytget/recipe-browser/internal/filter"
	"github.com/ytget/recipe-browser/internal/logging"
	"github.com/ytget/recipe-browser/internal/model"
	"github.com/ytget/recipe-browser/internal/search"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	filters  *filter.Model
	searcher search.Searcher
	logger   *zap.Logger

	filterPanel *FilterPanel
	queryEntry  *widget.Entry
	searchBtn   *widget.Button
	statusLabel *widget.Label
	spinner     *widget.ProgressBarInfinite
	resultsGrid *fyne.Container

	rendered []model.Recipe

	// dispatch runs UI mutations on the Fyne main goroutine
	dispatch func(func())

	onSettingsChanged func(*config.Settings)
}

// NewRootUI creates and initializes the main UI. Each window gets its own
// filter selection model.
func NewRootUI(window fyne.Window, app fyne.App, searcher search.Searcher, logger *zap.Logger) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: config.NewSettings(app),
		filters:  filter.NewModel(nil),
		searcher: searcher,
		logger:   logging.OrNop(logger).Named("ui"),
		dispatch: fyne.Do,
	}

	window.SetTitle(AppTitle)

	// Renders read the searcher's state when they run, not when they are
	// queued, so out-of-order dispatch cannot show a stale result list
	ui.searcher.SetUpdateCallback(func(model.SearchState) {
		ui.dispatch(func() { ui.render(ui.searcher.State()) })
	})

	ui.setupUI()
	ui.logger.Info("UI setup completed")
	return ui
}

// SetSettingsChangedCallback sets the hook run after settings are saved
func (ui *RootUI) SetSettingsChangedCallback(callback func(*config.Settings)) {
	ui.onSettingsChanged = callback
}

// Filters returns the window's filter selection model
func (ui *RootUI) Filters() *filter.Model {
	return ui.filters
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.filterPanel = NewFilterPanel(ui.filters, ui.logger)
	ui.filterPanel.SetOnChange(ui.onFilterChanged)

	ui.queryEntry = widget.NewEntry()
	ui.queryEntry.SetPlaceHolder(QueryPlaceholder)
	ui.queryEntry.SetText(ui.searcher.QueryText())
	ui.queryEntry.OnChanged = ui.searcher.SetQueryText
	// Trigger search when user presses Enter in the query field
	ui.queryEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	ui.searchBtn = widget.NewButton(SearchButtonText, ui.onSearchClick)
	ui.searchBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	searchRow := container.NewBorder(nil, nil, settingsBtn, ui.searchBtn, ui.queryEntry)

	// Status row under the search box
	ui.statusLabel = widget.NewLabel("")
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()
	statusRow := container.NewBorder(nil, nil, nil, nil, container.NewVBox(ui.spinner, ui.statusLabel))

	top := container.NewVBox(ui.filterPanel.Container(), searchRow, statusRow)

	ui.resultsGrid = container.NewGridWithColumns(ui.settings.GetResultColumns())

	content := container.NewBorder(
		top,                                  // top
		nil,                                  // bottom
		nil,                                  // left
		nil,                                  // right
		container.NewVScroll(ui.resultsGrid), // center - recipe tiles
	)

	ui.window.SetContent(content)
	ui.render(ui.searcher.State())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(SettingsText, ui.onShowSettings)
	ui.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File", settingsItem)))
}

// onFilterChanged records the active filter set after each toggle
func (ui *RootUI) onFilterChanged(model.Label, bool) {
	ui.logger.Debug("active filters changed",
		zap.Int("active", ui.filters.Len()),
		zap.Stringers("filters", ui.filters.Selected()),
	)
}

// onSearchClick starts a search without blocking the UI thread
func (ui *RootUI) onSearchClick() {
	if selected := ui.filters.Selected(); len(selected) > 0 {
		// Filters are collected but not part of the service request yet
		ui.logger.Debug("search issued with active filters", zap.Int("filters", len(selected)))
	}
	go ui.runSearch()
}

// runSearch performs one blocking search. Rendering happens through the
// searcher's update callback so the last resolved response is what is shown.
func (ui *RootUI) runSearch() {
	if _, err := ui.searcher.Search(context.Background()); err != nil {
		ui.logger.Warn("search failed", zap.Error(err))
	}
}

// render applies a search state snapshot to the widgets
func (ui *RootUI) render(state model.SearchState) {
	if state.Status.IsActive() {
		ui.spinner.Show()
		ui.spinner.Start()
	} else {
		ui.spinner.Stop()
		ui.spinner.Hide()
	}

	ui.statusLabel.SetText(statusText(state))

	if !slices.Equal(ui.rendered, state.Results) {
		ui.renderResults(state.Results)
	}
}

func (ui *RootUI) renderResults(recipes []model.Recipe) {
	ui.rendered = slices.Clone(recipes)

	tiles := make([]fyne.CanvasObject, 0, len(recipes))
	for _, recipe := range recipes {
		tile := NewRecipeTile(recipe, ui.logger)
		tiles = append(tiles, tile)
		if tile.hasRemoteImage() {
			go tile.loadThumbnail(ui.dispatch)
		}
	}

	ui.resultsGrid.Objects = tiles
	ui.resultsGrid.Refresh()
}

// statusText returns the message shown under the search box
func statusText(state model.SearchState) string {
	switch {
	case state.Status.IsActive():
		return StatusSearching
	case state.Status == model.SearchStatusError:
		return fmt.Sprintf(StatusFailedFormat, state.LastError)
	case state.Status == model.SearchStatusCompleted && len(state.Results) == 0:
		return StatusNoResults
	case state.Status == model.SearchStatusCompleted && len(state.Results) == 1:
		return StatusOneResult
	case state.Status == model.SearchStatusCompleted:
		return fmt.Sprintf(StatusResultsFormat, len(state.Results))
	default:
		return ""
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.applySettings).Show()
}

// applySettings re-lays the grid and notifies the settings hook
func (ui *RootUI) applySettings() {
	ui.resultsGrid.Layout = layout.NewGridLayoutWithColumns(ui.settings.GetResultColumns())
	ui.resultsGrid.Refresh()

	if ui.onSettingsChanged != nil {
		ui.onSettingsChanged(ui.settings)
	}
}
