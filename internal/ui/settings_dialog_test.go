package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/recipe-browser/internal/config"
)

// newTestSettingsDialog returns a dialog whose error reports are collected
func newTestSettingsDialog(t *testing.T, onSaved func()) (*SettingsDialog, *config.Settings, *[]error) {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("settings")
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, window, onSaved)
	var reported []error
	sd.showError = func(err error) { reported = append(reported, err) }
	sd.loadCurrentSettings()
	return sd, settings, &reported
}

func TestSettingsDialog_SaveAppliesValues(t *testing.T) {
	saved := false
	sd, settings, reported := newTestSettingsDialog(t, func() { saved = true })

	assert.Equal(t, config.DefaultServiceURL, sd.serviceURLEntry.Text)
	assert.Equal(t, "15", sd.timeoutEntry.Text)
	assert.Equal(t, "2", sd.columnsSelect.Selected)
	assert.Equal(t, config.DefaultLogLevel, sd.logLevelSelect.Selected)

	sd.serviceURLEntry.SetText("https://recipes.example.com")
	sd.timeoutEntry.SetText("45")
	sd.columnsSelect.SetSelected("3")
	sd.logLevelSelect.SetSelected("debug")
	sd.onSave(true)

	assert.True(t, saved)
	assert.Empty(t, *reported)
	assert.Equal(t, "https://recipes.example.com", settings.GetServiceURL())
	assert.Equal(t, 45, settings.GetRequestTimeoutSeconds())
	assert.Equal(t, 3, settings.GetResultColumns())
	assert.Equal(t, "debug", settings.GetLogLevel())
}

func TestSettingsDialog_LogLevelOptions(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t, nil)
	assert.Equal(t, settings.GetLogLevelOptions(), sd.logLevelSelect.Options)
}

func TestSettingsDialog_InvalidInputReported(t *testing.T) {
	saved := false
	sd, settings, reported := newTestSettingsDialog(t, func() { saved = true })

	sd.serviceURLEntry.SetText("ftp://recipes")
	sd.timeoutEntry.SetText("soon")
	sd.columnsSelect.SetSelected("4")
	sd.onSave(true)

	assert.Equal(t, config.DefaultServiceURL, settings.GetServiceURL())
	assert.Equal(t, config.DefaultRequestTimeout, settings.GetRequestTimeoutSeconds())
	assert.Equal(t, 4, settings.GetResultColumns())
	assert.True(t, saved)

	require.Len(t, *reported, 1)
	msg := (*reported)[0].Error()
	assert.Contains(t, msg, "service URL")
	assert.Contains(t, msg, "request timeout")
}

func TestSettingsDialog_TimeoutOutOfRangeReported(t *testing.T) {
	sd, settings, reported := newTestSettingsDialog(t, nil)

	sd.timeoutEntry.SetText("500")
	sd.onSave(true)

	assert.Equal(t, config.DefaultRequestTimeout, settings.GetRequestTimeoutSeconds())
	require.Len(t, *reported, 1)
	assert.Contains(t, (*reported)[0].Error(), "between 1 and 120")
}

func TestSettingsDialog_CancelKeepsValues(t *testing.T) {
	sd, settings, reported := newTestSettingsDialog(t, func() { t.Error("onSaved must not run on cancel") })

	sd.timeoutEntry.SetText("90")
	sd.onSave(false)

	assert.Equal(t, config.DefaultRequestTimeout, settings.GetRequestTimeoutSeconds())
	assert.Empty(t, *reported)
}

func TestValidateTimeout(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"1", false},
		{"120", false},
		{" 30 ", false},
		{"0", true},
		{"121", true},
		{"", true},
		{"1.5", true},
	}

	for _, test := range tests {
		err := validateTimeout(test.input)
		if test.wantErr {
			assert.Error(t, err, "input %q", test.input)
		} else {
			assert.NoError(t, err, "input %q", test.input)
		}
	}
}
