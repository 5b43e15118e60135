package models

// SetupRequest carries the command-line overrides for a single wizard run
type SetupRequest struct {
	ConfigPath   string // bot config file, overrides the config_path setting
	SettingsPath string // tool settings file (default ~/.config/mcsetup/config.toml)
	LogLevel     string // diagnostics level, overrides the log_level setting
}

// NewSetupRequest creates an empty request; unset fields fall through to
// settings-file, environment, and built-in defaults
func NewSetupRequest() *SetupRequest {
	return &SetupRequest{}
}
