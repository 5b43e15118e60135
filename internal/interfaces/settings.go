package interfaces

// Settings represents the tool's own configuration, as opposed to the bot
// config file the wizard edits
type Settings struct {
	ConfigPath string `toml:"config_path"`
	LogLevel   string `toml:"log_level"`
}

// SettingsManager handles settings loading and resolution
type SettingsManager interface {
	// Load loads settings from the specified path
	Load(path string) (*Settings, error)

	// Resolve applies precedence rules (flags > env > settings file > defaults)
	Resolve() (*Settings, error)

	// Validate validates the settings values
	Validate(settings *Settings) error
}
