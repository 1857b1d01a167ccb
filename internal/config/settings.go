package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyServiceURL     = "service_base_url"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyResultColumns  = "result_columns"
	KeyLogLevel       = "log_level"
)

// Default values
const (
	DefaultServiceURL     = "http://localhost:4567"
	DefaultRequestTimeout = 15 // seconds
	DefaultResultColumns  = 2
	DefaultLogLevel       = "info"
)

// Bounds
const (
	MinRequestTimeout = 1
	MaxRequestTimeout = 120
	MinResultColumns  = 1
	MaxResultColumns  = 6
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServiceURL returns the recipe service base URL
func (s *Settings) GetServiceURL() string {
	u := s.app.Preferences().String(KeyServiceURL)
	if u == "" {
		s.SetServiceURL(DefaultServiceURL)
		return DefaultServiceURL
	}
	return u
}

// SetServiceURL sets the recipe service base URL; empty resets to default
func (s *Settings) SetServiceURL(u string) {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	if u == "" {
		u = DefaultServiceURL
	}
	s.app.Preferences().SetString(KeyServiceURL, u)
}

// GetRequestTimeoutSeconds returns the search request timeout in seconds
func (s *Settings) GetRequestTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return value
}

// GetRequestTimeout returns the search request timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSeconds()) * time.Second
}

// SetRequestTimeoutSeconds sets the search request timeout in seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyRequestTimeout, clamp(seconds, MinRequestTimeout, MaxRequestTimeout))
}

// GetResultColumns returns the number of columns in the result grid
func (s *Settings) GetResultColumns() int {
	value := s.app.Preferences().Int(KeyResultColumns)
	if value <= 0 {
		s.SetResultColumns(DefaultResultColumns)
		return DefaultResultColumns
	}
	return value
}

// SetResultColumns sets the number of columns in the result grid
func (s *Settings) SetResultColumns(count int) {
	s.app.Preferences().SetInt(KeyResultColumns, clamp(count, MinResultColumns, MaxResultColumns))
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLogLevelOptions returns available log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ApplyDefaults seeds preferences the user has not set yet from file defaults
func (s *Settings) ApplyDefaults(d *FileDefaults) {
	if d == nil {
		return
	}
	prefs := s.app.Preferences()

	if d.ServiceURL != "" && prefs.String(KeyServiceURL) == "" {
		s.SetServiceURL(d.ServiceURL)
	}
	if d.RequestTimeoutSeconds > 0 && prefs.Int(KeyRequestTimeout) <= 0 {
		s.SetRequestTimeoutSeconds(d.RequestTimeoutSeconds)
	}
	if d.ResultColumns > 0 && prefs.Int(KeyResultColumns) <= 0 {
		s.SetResultColumns(d.ResultColumns)
	}
	if d.LogLevel != "" && prefs.String(KeyLogLevel) == "" {
		s.SetLogLevel(d.LogLevel)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
