package app

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Block-Engineering-Inc/mc-status-bot/internal/document"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/interfaces"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/logging"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/options"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/settings"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/terminal"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/wizard"
	"github.com/Block-Engineering-Inc/mc-status-bot/pkg/models"
)

// storageAttempts bounds how often Run probes the config file's storage
// before giving up: one probe, one repair, one re-probe.
const storageAttempts = 2

// Run executes the setup wizard
func Run(request *models.SetupRequest) error {
	cfg, logger, err := loadSettings(request)
	if err != nil {
		return err
	}

	term := terminal.New(os.Stdin, os.Stdout)
	store := document.NewStore(cfg.ConfigPath)

	term.Printf("Starting...\n")

	if err := ensureStorage(store, term, logger); err != nil {
		return err
	}

	w := wizard.New(options.Defaults(), store, term, logger)
	if err := w.Run(); err != nil {
		return err
	}

	term.Printf("Done. You may now run the bot.\n")
	return nil
}

// Show prints the current config without prompting or writing
func Show(request *models.SetupRequest) error {
	cfg, _, err := loadSettings(request)
	if err != nil {
		return err
	}

	store := document.NewStore(cfg.ConfigPath)
	if !store.Exists() {
		fmt.Printf("No config file found at %s. Run mcsetup to create one.\n", store.Path())
		return nil
	}

	doc, err := store.Load()
	if err != nil {
		return wizard.NewDocumentError(store.Path(), err)
	}

	fmt.Printf("Config file: %s\n\n", store.Path())

	reg := options.Defaults()
	for _, opt := range reg.Options() {
		fmt.Printf("  %s: %s\n", opt.Name(), displayValue(doc, opt.Name()))
	}

	extras := unknownKeys(doc, reg)
	if len(extras) > 0 {
		fmt.Printf("\nUnrecognized keys:\n")
		for _, key := range extras {
			fmt.Printf("  %s: %s\n", key, doc.GetString(key))
		}
	}

	return nil
}

// loadSettings loads, resolves, and validates tool settings, and builds
// the diagnostics logger from the resolved level
func loadSettings(request *models.SetupRequest) (*interfaces.Settings, *log.Logger, error) {
	mgr := settings.NewManager()

	if _, err := mgr.Load(request.SettingsPath); err != nil {
		return nil, nil, fmt.Errorf("settings error: %w", err)
	}

	mgr.SetFlag("config_path", request.ConfigPath)
	mgr.SetFlag("log_level", request.LogLevel)

	cfg, err := mgr.Resolve()
	if err != nil {
		return nil, nil, fmt.Errorf("settings error: %w", err)
	}

	if err := mgr.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid settings: %w", err)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Prefix: "mcsetup"})
	logger.Debug("settings resolved", "config_path", cfg.ConfigPath, "log_level", cfg.LogLevel)

	return cfg, logger, nil
}

// ensureStorage probes the store and tries one repair before giving up
func ensureStorage(store interfaces.DocumentStore, term interfaces.Terminal, logger *log.Logger) error {
	var err error
	for attempt := 1; attempt <= storageAttempts; attempt++ {
		if err = store.Ready(); err == nil {
			if attempt > 1 {
				logger.Info("storage repaired", "path", store.Path())
			}
			return nil
		}

		if attempt < storageAttempts {
			term.Printf("Config storage is not ready. Trying to fix...\n")
			logger.Warn("storage probe failed", "path", store.Path(), "error", err)

			if perr := store.Provision(); perr != nil {
				logger.Debug("storage repair failed", "error", perr)
			}
		}
	}

	return wizard.NewStorageError(store.Path(), err)
}

// displayValue formats one option value for display. The bot token is
// masked down to its last four characters.
func displayValue(doc document.Document, name string) string {
	value, ok := doc[name]

	switch {
	case !ok:
		return "(unset)"
	case value == nil:
		return "(none)"
	case name == "bot-token":
		return maskSecret(doc.GetString(name))
	default:
		return doc.GetString(name)
	}
}

// unknownKeys returns document keys no registry option claims, sorted
func unknownKeys(doc document.Document, reg *options.Registry) []string {
	var extras []string
	for _, key := range doc.Keys() {
		if _, ok := reg.Get(key); !ok {
			extras = append(extras, key)
		}
	}
	return extras
}

// maskSecret hides all but the last four characters of a secret
func maskSecret(s string) string {
	runes := []rune(s)
	if len(runes) <= 4 {
		return "****"
	}
	return "****" + string(runes[len(runes)-4:])
}
