package wizard

import (
	"fmt"
	"strings"

	"github.com/Block-Engineering-Inc/mc-status-bot/internal/document"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/options"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/prompt"
)

const optionDocs = "View more about each option here: " +
	"https://github.com/Block-Engineering-Inc/mc-status-bot#setup-details"

// Edit offers to change existing values. Key selection is
// case-insensitive and re-asks until it names a known option; the config
// file is written once, after the operator stops changing things.
func (w *Wizard) Edit(doc document.Document) error {
	change, err := prompt.Confirm(w.term, "Change info in config file?")
	if err != nil {
		return err
	}
	if !change {
		return nil
	}

	formatted := strings.Join(w.opts.Names(), ", ")

	for {
		var opt options.Option
		for {
			key, err := prompt.Required(w.term,
				fmt.Sprintf("Options: %s\n%s\nEnter option to change", formatted, optionDocs))
			if err != nil {
				return err
			}

			if found, ok := w.opts.Get(strings.ToLower(key)); ok {
				opt = found
				break
			}
		}

		value, err := opt.Prompt(w.term)
		if err != nil {
			return err
		}
		doc[opt.Name()] = value

		again, err := prompt.Confirm(w.term, "Change another option?")
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	if err := w.store.Dump(doc); err != nil {
		return NewWriteError(w.store.Path(), err)
	}
	w.log.Info("updated config", "path", w.store.Path())

	w.term.Printf("Successfully updated your config\n")
	return nil
}
