package wizard

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Block-Engineering-Inc/mc-status-bot/internal/document"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/logging"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/options"
	"github.com/Block-Engineering-Inc/mc-status-bot/internal/terminal"
)

// countingStore wraps a real store and counts config writes.
type countingStore struct {
	*document.Store
	dumps int
}

func (s *countingStore) Dump(doc document.Document) error {
	s.dumps++
	return s.Store.Dump(doc)
}

func newTestWizard(t *testing.T, script string) (*Wizard, *countingStore, *bytes.Buffer) {
	t.Helper()

	store := &countingStore{Store: document.NewStore(filepath.Join(t.TempDir(), "config.yml"))}
	out := &bytes.Buffer{}
	console := terminal.New(strings.NewReader(script), out)
	logger := logging.New(logging.Options{Level: "error", Output: io.Discard})

	return New(options.Defaults(), store, console, logger), store, out
}

// seedConfig writes a config file without touching the dump counter.
func seedConfig(t *testing.T, store *countingStore, doc document.Document) {
	t.Helper()

	if err := store.Store.Dump(doc); err != nil {
		t.Fatalf("Failed to seed config: %v", err)
	}
}

func fullConfig() document.Document {
	return document.Document{
		"bot-token":                  "token123",
		"prefix":                     ";",
		"server-type":                "java",
		"server-ip":                  "mc.example.com",
		"refresh-rate":               60,
		"maintenance-mode-detection": nil,
	}
}

func TestRunFirstTimeSetupWithDefaults(t *testing.T) {
	// Token, default prefix, default server type, server ip, default
	// refresh rate, maintenance mode declined.
	w, store, out := newTestWizard(t, "token123\n\n\nmc.example.com\n\nn\n")

	if err := w.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if store.dumps != 1 {
		t.Errorf("Expected 1 write, got %d", store.dumps)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() after setup failed: %v", err)
	}

	if !reflect.DeepEqual(loaded, fullConfig()) {
		t.Errorf("Expected %v, got %v", fullConfig(), loaded)
	}

	if !strings.Contains(out.String(), "Config file not found, initiating setup...\n") {
		t.Error("Expected setup banner in output")
	}

	if !strings.Contains(out.String(), "Successfully created and setup config\n") {
		t.Error("Expected success message in output")
	}
}

func TestRunFirstTimeSetupWithCustomAnswers(t *testing.T) {
	w, store, _ := newTestWizard(t, "abc\n!\nBEDROCK\nplay.example.com\n120\ny\nunder maintenance\n")

	if err := w.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() after setup failed: %v", err)
	}

	expected := document.Document{
		"bot-token":                  "abc",
		"prefix":                     "!",
		"server-type":                "bedrock",
		"server-ip":                  "play.example.com",
		"refresh-rate":               120,
		"maintenance-mode-detection": "under maintenance",
	}

	if !reflect.DeepEqual(loaded, expected) {
		t.Errorf("Expected %v, got %v", expected, loaded)
	}
}

func TestRunUpToDateConfig(t *testing.T) {
	w, store, out := newTestWizard(t, "n\n")
	seedConfig(t, store, fullConfig())

	before, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("Failed to read seeded config: %v", err)
	}

	if err := w.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !strings.Contains(out.String(), "Config is up-to-date\n") {
		t.Error("Expected up-to-date message in output")
	}

	if store.dumps != 0 {
		t.Errorf("Expected no writes, got %d", store.dumps)
	}

	after, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("Failed to re-read config: %v", err)
	}

	if !bytes.Equal(before, after) {
		t.Error("Expected config file untouched")
	}
}

func TestRunBackfillsThenOffersEdit(t *testing.T) {
	doc := fullConfig()
	delete(doc, "prefix")

	// Accept defaults for the backfill, then decline the edit.
	w, store, out := newTestWizard(t, "y\nn\n")
	seedConfig(t, store, doc)

	if err := w.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if store.dumps != 1 {
		t.Errorf("Expected 1 write, got %d", store.dumps)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() after backfill failed: %v", err)
	}

	if loaded["prefix"] != ";" {
		t.Errorf("Expected default prefix ';', got %v", loaded["prefix"])
	}

	if !strings.Contains(out.String(), "Successfully updated config\n") {
		t.Error("Expected backfill success message in output")
	}

	if !strings.Contains(out.String(), "Change info in config file? (y/n): ") {
		t.Error("Expected edit offer after backfill")
	}
}

func TestRunMalformedConfigIsFatal(t *testing.T) {
	w, store, _ := newTestWizard(t, "")

	if err := os.WriteFile(store.Path(), []byte("{invalid\n"), 0644); err != nil {
		t.Fatalf("Failed to write malformed config: %v", err)
	}

	err := w.Run()
	if err == nil {
		t.Fatal("Expected error for malformed config, got nil")
	}

	var setupErr *SetupError
	if !errors.As(err, &setupErr) {
		t.Fatalf("Expected SetupError, got %T", err)
	}

	if setupErr.Type != ErrDocumentInvalid {
		t.Errorf("Expected ErrDocumentInvalid, got %v", setupErr.Type)
	}

	data, readErr := os.ReadFile(store.Path())
	if readErr != nil {
		t.Fatalf("Failed to re-read config: %v", readErr)
	}

	if string(data) != "{invalid\n" {
		t.Error("Expected malformed config left untouched")
	}
}

func TestRunPromptFailureWritesNothing(t *testing.T) {
	w, store, _ := newTestWizard(t, "")

	if err := w.Run(); err == nil {
		t.Fatal("Expected error when input ends mid-setup, got nil")
	}

	if store.dumps != 0 {
		t.Errorf("Expected no writes, got %d", store.dumps)
	}

	if store.Exists() {
		t.Error("Expected no config file after aborted setup")
	}
}
