package wizard

import (
	"strings"

	"github.com/Block-Engineering-Inc/mc-status-bot/internal/document"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/prompt"
)

// Reconcile backfills options that are missing from the document, added
// to the bot since the config file was written. A document that already
// has every option is reported up-to-date and nothing is written.
func (w *Wizard) Reconcile(doc document.Document) error {
	missing := w.missingNames(doc)
	if len(missing) == 0 {
		w.term.Printf("Config is up-to-date\n")
		return nil
	}
	w.log.Info("config is missing options", "count", len(missing))

	w.term.Printf("There are missing options in your config file: %s\n", strings.Join(missing, ", "))

	useDefaults, err := prompt.Confirm(w.term,
		"Automatically set these options to default? You can come back and change these later.")
	if err != nil {
		return err
	}

	for _, name := range missing {
		opt, _ := w.opts.Get(name)

		if useDefaults {
			// An option without a default is stored as an explicit
			// null here; the editor can fill it in later.
			doc[name] = opt.Default()
			continue
		}

		value, err := opt.Prompt(w.term)
		if err != nil {
			return err
		}
		doc[name] = value
	}

	if err := w.store.Dump(doc); err != nil {
		return NewWriteError(w.store.Path(), err)
	}

	w.term.Printf("Successfully updated config\n")
	return nil
}

// missingNames returns the registry options absent from the document, in
// registry order. A key present with a nil value is not missing.
func (w *Wizard) missingNames(doc document.Document) []string {
	var missing []string
	for _, name := range w.opts.Names() {
		if !doc.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
