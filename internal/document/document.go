package document

import (
	"sort"

	"github.com/spf13/cast"
)

// Document is the bot's configuration as a flat key/value map. Values are
// the scalars YAML hands back: string, int, or nil for explicit nulls.
// Keys the wizard does not recognize are carried through untouched.
type Document map[string]any

// Keys returns the document's keys in sorted order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether the key is present, even when its value is nil.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Clone returns an independent copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// GetString returns the value for key coerced to a string. Missing keys and
// nil values come back as the empty string.
func (d Document) GetString(key string) string {
	return cast.ToString(d[key])
}

// GetInt returns the value for key coerced to an int. YAML may store the
// same option as an int or a quoted string depending on how it was written.
func (d Document) GetInt(key string) int {
	return cast.ToInt(d[key])
}
