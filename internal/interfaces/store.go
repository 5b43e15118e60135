package interfaces

import "github.com/Block-Engineering-Inc/mc-status-bot/internal/document"

// DocumentStore handles persistence of the bot config file
type DocumentStore interface {
	// Path returns the config file location
	Path() string

	// Exists reports whether a config file is present
	Exists() bool

	// Load reads and parses the config file
	Load() (document.Document, error)

	// Dump replaces the config file with the given document
	Dump(doc document.Document) error

	// Ready probes whether the store can operate
	Ready() error

	// Provision attempts a one-shot repair after a failed Ready
	Provision() error
}
