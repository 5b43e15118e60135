package options

import "fmt"

// Registry is an ordered, immutable collection of options with unique
// names. It is assembled once at startup and passed to the components
// that need it.
type Registry struct {
	ordered []Option
	byName  map[string]Option
}

// NewRegistry builds a registry from the given options. A duplicate name
// is a programming error and panics, like redefining a flag.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		ordered: make([]Option, 0, len(opts)),
		byName:  make(map[string]Option, len(opts)),
	}

	for _, opt := range opts {
		if _, exists := r.byName[opt.Name()]; exists {
			panic(fmt.Sprintf("options: duplicate option name %q", opt.Name()))
		}
		r.ordered = append(r.ordered, opt)
		r.byName[opt.Name()] = opt
	}

	return r
}

// Options returns the options in registration order.
func (r *Registry) Options() []Option {
	out := make([]Option, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Names returns the option names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.ordered))
	for i, opt := range r.ordered {
		names[i] = opt.Name()
	}
	return names
}

// Get looks up an option by name.
func (r *Registry) Get(name string) (Option, bool) {
	opt, ok := r.byName[name]
	return opt, ok
}

// Len returns the number of options.
func (r *Registry) Len() int {
	return len(r.ordered)
}
