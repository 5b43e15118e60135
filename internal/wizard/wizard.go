package wizard

import (
	"github.com/charmbracelet/log"

	"github.com/Block-Engineering-Inc/mc-status-bot/internal/document"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/interfaces"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/options"
)

// Wizard walks an operator through creating and maintaining the bot
// config file.
type Wizard struct {
	opts  *options.Registry
	store interfaces.DocumentStore
	term  interfaces.Terminal
	log   *log.Logger
}

// New creates a wizard over the given registry, store, and terminal.
func New(opts *options.Registry, store interfaces.DocumentStore, term interfaces.Terminal, logger *log.Logger) *Wizard {
	return &Wizard{
		opts:  opts,
		store: store,
		term:  term,
		log:   logger,
	}
}

// Run executes one wizard pass. Without a config file it runs first-time
// setup; with one it backfills missing options and then offers to change
// existing values.
func (w *Wizard) Run() error {
	if !w.store.Exists() {
		return w.firstRun()
	}

	doc, err := w.store.Load()
	if err != nil {
		return NewDocumentError(w.store.Path(), err)
	}
	w.log.Debug("loaded config", "path", w.store.Path(), "keys", len(doc))

	if err := w.Reconcile(doc); err != nil {
		return err
	}

	return w.Edit(doc)
}

// firstRun prompts for every option in registry order and writes a fresh
// config file.
func (w *Wizard) firstRun() error {
	w.term.Printf("Config file not found, initiating setup...\n")

	doc := document.Document{}
	for _, opt := range w.opts.Options() {
		value, err := opt.Prompt(w.term)
		if err != nil {
			return err
		}
		doc[opt.Name()] = value
	}

	if err := w.store.Dump(doc); err != nil {
		return NewWriteError(w.store.Path(), err)
	}
	w.log.Info("created config", "path", w.store.Path(), "keys", len(doc))

	w.term.Printf("Successfully created and setup config\n")
	return nil
}
