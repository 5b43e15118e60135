package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Block-Engineering-Inc/mc-status-bot/internal/interfaces"
)

// Manager implements the SettingsManager interface
type Manager struct {
	v     *viper.Viper
	flags map[string]interface{} // Store flag values for precedence
}

// NewManager creates a new settings manager
func NewManager() *Manager {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("MCSETUP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults(v)

	return &Manager{
		v:     v,
		flags: make(map[string]interface{}),
	}
}

// setDefaults sets the default settings values
func setDefaults(v *viper.Viper) {
	v.SetDefault("config_path", "config.yml")
	v.SetDefault("log_level", "warn")
}

// Load loads settings from the specified path
func (m *Manager) Load(path string) (*interfaces.Settings, error) {
	if path == "" {
		// Use default settings path
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".config", "mcsetup", "config.toml")
	}

	path = expandPath(path)

	// A missing settings file is fine, the defaults apply
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m.getSettingsFromViper(), nil
	}

	m.v.SetConfigFile(path)

	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	return m.getSettingsFromViper(), nil
}

// SetFlag sets a flag value for precedence resolution
func (m *Manager) SetFlag(key string, value interface{}) {
	m.flags[key] = value
}

// Resolve applies precedence rules (flags > env > settings file > defaults)
func (m *Manager) Resolve() (*interfaces.Settings, error) {
	settings := m.getSettingsFromViper()

	// Apply flag overrides (highest precedence)
	m.applyFlagOverrides(settings)

	return settings, nil
}

// applyFlagOverrides applies flag values over the settings
func (m *Manager) applyFlagOverrides(settings *interfaces.Settings) {
	if val, exists := m.flags["config_path"]; exists && val != nil {
		if str, ok := val.(string); ok && str != "" {
			settings.ConfigPath = expandPath(str)
		}
	}

	if val, exists := m.flags["log_level"]; exists && val != nil {
		if str, ok := val.(string); ok && str != "" {
			settings.LogLevel = str
		}
	}
}

// Validate validates the settings values
func (m *Manager) Validate(settings *interfaces.Settings) error {
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}

	if settings.ConfigPath == "" {
		return fmt.Errorf("config_path must not be empty")
	}

	// Validate log level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}
	if !validLevels[strings.ToLower(settings.LogLevel)] {
		return fmt.Errorf("invalid log_level: %s (must be 'debug', 'info', 'warn', 'error', or 'fatal')", settings.LogLevel)
	}

	return nil
}

// getSettingsFromViper converts viper state to a Settings struct
// This handles env > settings file > defaults precedence (flags are applied separately)
func (m *Manager) getSettingsFromViper() *interfaces.Settings {
	return &interfaces.Settings{
		ConfigPath: expandPath(m.v.GetString("config_path")),
		LogLevel:   m.v.GetString("log_level"),
	}
}

// expandPath expands ~ to user home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path // Return original path if we can't get home dir
	}

	return filepath.Join(homeDir, path[2:])
}
