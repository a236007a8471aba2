// Package constants defines shared constants, environment variable names, and
// configuration defaults used throughout shellnav.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by shellnav and the demo binary.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	LogLevelEnvVar     = "SHELLNAV_LOG_LEVEL"
	LogPathEnvVar      = "SHELLNAV_LOG_PATH"
	SettingsDirEnvVar  = "SHELLNAV_SETTINGS_DIR"
	BackDeviceEnvVar   = "SHELLNAV_BACK_DEVICE"
	LanguageEnvVar     = "SHELLNAV_LANGUAGE"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// ThemeSettingsKey is the settings key the requested theme is persisted under.
const ThemeSettingsKey = "AppBackgroundRequestedTheme"

// Settings and persistence defaults.
const (
	SettingsFileName  = "settings.toml"
	JSONFileExtension = ".json"
)

// Navigation defaults.
const (
	DefaultPageCacheSize = 10 // Constructed pages kept alive for pages registered with caching
)

// Input defaults.
const (
	DefaultBackDevicePath = "/dev/input/event1"
	DefaultFrameDelay     = 16 * time.Millisecond // ~60fps pacing for the SDL loop
)
