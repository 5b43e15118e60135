package document

import (
	"reflect"
	"testing"
)

func TestDocumentKeysSorted(t *testing.T) {
	doc := Document{"prefix": ";", "bot-token": "abc", "server-ip": "mc.example.com"}

	expected := []string{"bot-token", "prefix", "server-ip"}
	if got := doc.Keys(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected keys %v, got %v", expected, got)
	}
}

func TestDocumentHas(t *testing.T) {
	doc := Document{
		"prefix":                     ";",
		"maintenance-mode-detection": nil,
	}

	tests := []struct {
		name     string
		key      string
		expected bool
	}{
		{"present key", "prefix", true},
		{"present key with nil value", "maintenance-mode-detection", true},
		{"absent key", "bot-token", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.Has(tt.key); got != tt.expected {
				t.Errorf("Has(%q) = %v, expected %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestDocumentClone(t *testing.T) {
	doc := Document{"prefix": ";"}

	clone := doc.Clone()
	clone["prefix"] = "!"
	clone["bot-token"] = "abc"

	if doc["prefix"] != ";" {
		t.Errorf("Expected original untouched, got %v", doc["prefix"])
	}

	if doc.Has("bot-token") {
		t.Error("Expected original to not gain keys from clone")
	}
}

func TestDocumentGetString(t *testing.T) {
	doc := Document{
		"prefix":                     ";",
		"refresh-rate":               60,
		"maintenance-mode-detection": nil,
	}

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"string value", "prefix", ";"},
		{"integer value", "refresh-rate", "60"},
		{"nil value", "maintenance-mode-detection", ""},
		{"missing key", "bot-token", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.GetString(tt.key); got != tt.expected {
				t.Errorf("GetString(%q) = %q, expected %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestDocumentGetInt(t *testing.T) {
	doc := Document{
		"refresh-rate": 60,
		"port":         "25565",
	}

	tests := []struct {
		name     string
		key      string
		expected int
	}{
		{"integer value", "refresh-rate", 60},
		{"quoted integer", "port", 25565},
		{"missing key", "timeout", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.GetInt(tt.key); got != tt.expected {
				t.Errorf("GetInt(%q) = %d, expected %d", tt.key, got, tt.expected)
			}
		})
	}
}
