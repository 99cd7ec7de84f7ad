// Package configuration reads the widget's startup settings from an
// env-format configuration file. Settings cover operational knobs only; all
// user-facing state lives in the preferences store. A missing file or key
// falls back to the documented default.
package configuration

import (
	"log/slog"
	"strconv"
	"time"
)

const (
	// SettingInterval is the polling interval in seconds.
	SettingInterval = "SPACEWATCH_INTERVAL"

	// SettingDebounce is the preference-write debounce delay in milliseconds.
	SettingDebounce = "SPACEWATCH_DEBOUNCE_MS"

	// SettingPreferencesPath overrides the preferences file location.
	SettingPreferencesPath = "SPACEWATCH_PREFS"

	// SettingPowerShell overrides the PowerShell executable.
	SettingPowerShell = "SPACEWATCH_POWERSHELL"
)

const (
	// DefaultInterval is the default polling cadence.
	DefaultInterval = time.Minute

	// DefaultDebounce is the default preference-write debounce delay.
	DefaultDebounce = 1500 * time.Millisecond
)

// Settings holds the resolved application settings.
type Settings struct {
	// Interval is the polling cadence for storage refreshes.
	Interval time.Duration

	// Debounce is the quiet period before mutated preferences are written.
	Debounce time.Duration

	// PreferencesPath is the preferences file location; empty means the
	// platform default location.
	PreferencesPath string

	// PowerShell is the PowerShell executable; empty means the platform
	// default.
	PowerShell string
}

// DefaultSettings returns a [Settings] with all documented defaults.
func DefaultSettings() Settings {
	return Settings{
		Interval: DefaultInterval,
		Debounce: DefaultDebounce,
	}
}

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal implementation of the configuration reader.
type Handler struct {
	configHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(configHandler genericConfigProvider) *Handler {
	return &Handler{
		configHandler: configHandler,
	}
}

// ReadSettings reads the configuration file into a [Settings]. A missing or
// unreadable file yields defaults; individual malformed values fall back to
// their respective default.
func (c *Handler) ReadSettings(filename string) Settings {
	settings := DefaultSettings()

	envMap, err := c.configHandler.Read(filename)
	if err != nil {
		slog.Debug("No configuration file read, using defaults.", "file", filename, "err", err)

		return settings
	}

	if seconds := mapKeyToInt(envMap, SettingInterval); seconds > 0 {
		settings.Interval = time.Duration(seconds) * time.Second
	}

	if millis := mapKeyToInt(envMap, SettingDebounce); millis > 0 {
		settings.Debounce = time.Duration(millis) * time.Millisecond
	}

	settings.PreferencesPath = mapKeyToString(envMap, SettingPreferencesPath)
	settings.PowerShell = mapKeyToString(envMap, SettingPowerShell)

	return settings
}

// mapKeyToString returns a key's value, or the empty string when unset.
func mapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// mapKeyToInt returns a key's integer value, or -1 when unset or malformed.
func mapKeyToInt(envMap map[string]string, key string) int {
	value := mapKeyToString(envMap, key)
	if value == "" {
		return -1
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}
