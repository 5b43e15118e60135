package prompt

import (
	"strings"

	"github.com/Block-Engineering-Inc/mc-status-bot/internal/interfaces"
)

// Line asks for a single value. When a default is given it is shown in
// brackets and an empty answer accepts it.
func Line(t interfaces.Terminal, text, def string) (string, error) {
	printPrompt(t, text, def)

	line, err := t.ReadLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Required asks for a value that must not be empty, re-asking until the
// operator provides one.
func Required(t interfaces.Terminal, text string) (string, error) {
	for {
		printPrompt(t, text, "")

		line, err := t.ReadLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

// Confirm asks a yes/no question and keeps asking until it gets one of
// yes, y, no, or n in any case.
func Confirm(t interfaces.Terminal, question string) (bool, error) {
	for {
		t.Printf("%s (y/n): ", question)

		line, err := t.ReadLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
	}
}

func printPrompt(t interfaces.Terminal, text, def string) {
	if def != "" {
		t.Printf("%s [%s]: ", text, def)
	} else {
		t.Printf("%s: ", text)
	}
}
