package document

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Feature: config file persistence
// Property 1: documents of string values survive a dump/load round trip
// Property 2: documents of integer values survive a dump/load round trip
func TestStoreRoundTripProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	store := NewStore(filepath.Join(t.TempDir(), "config.yml"))

	properties.Property("string values round trip", prop.ForAll(
		func(m map[string]string) bool {
			doc := Document{}
			for k, v := range m {
				doc[k] = v
			}

			if err := store.Dump(doc); err != nil {
				return false
			}

			loaded, err := store.Load()
			if err != nil {
				return false
			}
			return reflect.DeepEqual(loaded, doc)
		},
		gen.MapOf(gen.Identifier(), gen.Identifier()),
	))

	properties.Property("integer values round trip", prop.ForAll(
		func(m map[string]int) bool {
			doc := Document{}
			for k, v := range m {
				doc[k] = v
			}

			if err := store.Dump(doc); err != nil {
				return false
			}

			loaded, err := store.Load()
			if err != nil {
				return false
			}
			return reflect.DeepEqual(loaded, doc)
		},
		gen.MapOf(gen.Identifier(), gen.Int()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
