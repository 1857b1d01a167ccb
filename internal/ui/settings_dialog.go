package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-browser/internal/config"
	"github.com/ytget/recipe-browser/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// showError reports rejected fields, dialog.ShowError by default
	showError func(error)

	// UI components
	serviceURLEntry *widget.Entry
	timeoutEntry    *widget.Entry
	columnsSelect   *widget.Select
	logLevelSelect  *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}
	sd.showError = func(err error) { dialog.ShowError(err, sd.window) }

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.serviceURLEntry = widget.NewEntry()
	sd.serviceURLEntry.SetPlaceHolder(config.DefaultServiceURL)
	sd.serviceURLEntry.Validator = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := platform.ParseWebURL(s)
		return err
	}

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinRequestTimeout, config.MaxRequestTimeout))
	sd.timeoutEntry.Validator = validateTimeout

	columnOptions := []string{}
	for n := config.MinResultColumns; n <= config.MaxResultColumns; n++ {
		columnOptions = append(columnOptions, strconv.Itoa(n))
	}
	sd.columnsSelect = widget.NewSelect(columnOptions, nil)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	form := container.NewVBox(
		widget.NewLabel("Recipe Service"),
		widget.NewSeparator(),

		widget.NewLabel("Service URL:"),
		sd.serviceURLEntry,

		widget.NewLabel("Request Timeout (seconds):"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel("Results"),
		widget.NewSeparator(),

		widget.NewLabel("Grid Columns:"),
		sd.columnsSelect,

		widget.NewSeparator(),
		widget.NewLabel("Log Level:"),
		sd.logLevelSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		SettingsText,
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serviceURLEntry.SetText(sd.settings.GetServiceURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))
	sd.columnsSelect.SetSelected(strconv.Itoa(sd.settings.GetResultColumns()))
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
}

// onSave handles saving the settings. Invalid fields are reported and keep
// their stored values; the remaining fields are still saved.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	var problems []error

	if err := sd.serviceURLEntry.Validate(); err != nil {
		problems = append(problems, fmt.Errorf("service URL: %w", err))
	} else {
		sd.settings.SetServiceURL(sd.serviceURLEntry.Text)
	}

	if err := sd.timeoutEntry.Validate(); err != nil {
		problems = append(problems, fmt.Errorf("request timeout: %w", err))
	} else {
		timeout, _ := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text))
		sd.settings.SetRequestTimeoutSeconds(timeout)
	}

	if columns, err := strconv.Atoi(sd.columnsSelect.Selected); err == nil {
		sd.settings.SetResultColumns(columns)
	}

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}

	if len(problems) > 0 {
		sd.showError(errors.Join(problems...))
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// validateTimeout accepts whole seconds within the configured range
func validateTimeout(s string) error {
	seconds, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%q is not a whole number of seconds", s)
	}
	if seconds < config.MinRequestTimeout || seconds > config.MaxRequestTimeout {
		return fmt.Errorf("must be between %d and %d seconds", config.MinRequestTimeout, config.MaxRequestTimeout)
	}
	return nil
}
