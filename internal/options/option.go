package options

import (
	"strconv"
	"strings"

	"github.com/Block-Engineering-Inc/mc-status-bot/internal/interfaces"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/prompt"
)

// Option is a single entry in the bot config. Each implementation fixes
// the prompting rule for one kind of value; the set of kinds is closed.
type Option interface {
	// Name is the config key, unique within a registry
	Name() string

	// Help is the base prompt text shown when asking for a value
	Help() string

	// Default returns the value stored when the operator accepts the
	// default, or nil when the option has none
	Default() any

	// Prompt solicits a value on the terminal, re-asking until the
	// option's rule is satisfied. Invalid input never aborts; only a
	// terminal read failure does.
	Prompt(t interfaces.Terminal) (any, error)
}

// TextOption is required free text: empty answers re-ask, anything else
// is accepted verbatim. The optional detail is appended to the prompt at
// presentation time and never stored.
type TextOption struct {
	name   string
	help   string
	detail string
}

// NewTextOption creates a required free-text option. detail may be empty.
func NewTextOption(name, help, detail string) *TextOption {
	return &TextOption{name: name, help: help, detail: detail}
}

func (o *TextOption) Name() string { return o.name }

func (o *TextOption) Help() string { return o.help }

func (o *TextOption) Default() any { return nil }

func (o *TextOption) Prompt(t interfaces.Terminal) (any, error) {
	value, err := prompt.Required(t, o.help+o.detail)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// DefaultOption is free text with a fallback: an empty answer stores the
// default instead.
type DefaultOption struct {
	name string
	help string
	def  string
}

// NewDefaultOption creates a free-text option with a default.
func NewDefaultOption(name, help, def string) *DefaultOption {
	return &DefaultOption{name: name, help: help, def: def}
}

func (o *DefaultOption) Name() string { return o.name }

func (o *DefaultOption) Help() string { return o.help }

func (o *DefaultOption) Default() any { return o.def }

func (o *DefaultOption) Prompt(t interfaces.Terminal) (any, error) {
	value, err := prompt.Line(t, o.help, o.def)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// ChoiceOption accepts one of a fixed set of values, compared
// case-insensitively. The stored value is always lowercase; rejected
// answers print the hint and re-ask.
type ChoiceOption struct {
	name    string
	help    string
	def     string
	choices []string
	hint    string
}

// NewChoiceOption creates an enumerated option. choices must be lowercase.
func NewChoiceOption(name, help, def string, choices []string, hint string) *ChoiceOption {
	return &ChoiceOption{name: name, help: help, def: def, choices: choices, hint: hint}
}

func (o *ChoiceOption) Name() string { return o.name }

func (o *ChoiceOption) Help() string { return o.help }

func (o *ChoiceOption) Default() any { return o.def }

func (o *ChoiceOption) Prompt(t interfaces.Terminal) (any, error) {
	for {
		value, err := prompt.Line(t, o.help, o.def)
		if err != nil {
			return nil, err
		}

		value = strings.ToLower(value)
		for _, choice := range o.choices {
			if value == choice {
				return value, nil
			}
		}

		t.Printf("%s\n", o.hint)
	}
}

// IntOption accepts an integer no smaller than min. Answers that do not
// parse as an integer re-ask silently; integers below the minimum print
// the hint first.
type IntOption struct {
	name string
	help string
	def  int
	min  int
	hint string
}

// NewIntOption creates a bounded integer option.
func NewIntOption(name, help string, def, min int, hint string) *IntOption {
	return &IntOption{name: name, help: help, def: def, min: min, hint: hint}
}

func (o *IntOption) Name() string { return o.name }

func (o *IntOption) Help() string { return o.help }

func (o *IntOption) Default() any { return o.def }

func (o *IntOption) Prompt(t interfaces.Terminal) (any, error) {
	for {
		raw, err := prompt.Line(t, o.help, strconv.Itoa(o.def))
		if err != nil {
			return nil, err
		}

		value, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if value >= o.min {
			return value, nil
		}

		t.Printf("%s\n", o.hint)
	}
}

// FeatureOption gates a value behind a yes/no question. Declining stores
// nil; accepting requires a non-empty value.
type FeatureOption struct {
	name     string
	question string
	help     string
}

// NewFeatureOption creates a gated option. question is the yes/no gate,
// help prompts for the value once the feature is enabled.
func NewFeatureOption(name, question, help string) *FeatureOption {
	return &FeatureOption{name: name, question: question, help: help}
}

func (o *FeatureOption) Name() string { return o.name }

func (o *FeatureOption) Help() string { return o.help }

func (o *FeatureOption) Default() any { return nil }

func (o *FeatureOption) Prompt(t interfaces.Terminal) (any, error) {
	enable, err := prompt.Confirm(t, o.question)
	if err != nil {
		return nil, err
	}
	if !enable {
		return nil, nil
	}

	value, err := prompt.Required(t, o.help)
	if err != nil {
		return nil, err
	}
	return value, nil
}
