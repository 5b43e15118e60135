package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Block-Engineering-Inc/mc-status-bot/internal/settings"
)

func main() {
	fmt.Println("Testing mcsetup Settings System")
	fmt.Println("===============================")

	// Create a test settings file
	homeDir, _ := os.UserHomeDir()
	settingsDir := filepath.Join(homeDir, ".config", "mcsetup")
	os.MkdirAll(settingsDir, 0755)

	settingsPath := filepath.Join(settingsDir, "test-settings.toml")
	testSettings := `
config_path = "/srv/mc-status-bot/config.yml"
log_level = "debug"
`

	err := os.WriteFile(settingsPath, []byte(testSettings), 0644)
	if err != nil {
		log.Fatalf("Failed to create test settings: %v", err)
	}
	defer os.Remove(settingsPath)

	// Test 1: Load settings from file
	fmt.Println("\n1. Testing settings file loading:")
	manager := settings.NewManager()
	cfg, err := manager.Load(settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	fmt.Printf("   Config path: %s\n", cfg.ConfigPath)
	fmt.Printf("   Log level: %s\n", cfg.LogLevel)

	// Test 2: Environment variable precedence
	fmt.Println("\n2. Testing environment variable precedence:")
	os.Setenv("MCSETUP_LOG_LEVEL", "error")
	defer os.Unsetenv("MCSETUP_LOG_LEVEL")

	manager2 := settings.NewManager()
	cfg2, err := manager2.Load(settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	fmt.Printf("   Log level (env override): %s\n", cfg2.LogLevel)
	fmt.Printf("   Config path (from file): %s\n", cfg2.ConfigPath)

	// Test 3: Flag precedence
	fmt.Println("\n3. Testing flag precedence:")
	manager3 := settings.NewManager()
	manager3.Load(settingsPath)
	manager3.SetFlag("config_path", "./other-config.yml")

	cfg3, err := manager3.Resolve()
	if err != nil {
		log.Fatalf("Failed to resolve settings: %v", err)
	}

	fmt.Printf("   Config path (flag override): %s\n", cfg3.ConfigPath)
	fmt.Printf("   Log level (from env): %s\n", cfg3.LogLevel)

	// Test 4: Validation
	fmt.Println("\n4. Testing validation:")
	err = manager3.Validate(cfg3)
	if err != nil {
		fmt.Printf("   Validation failed: %v\n", err)
	} else {
		fmt.Printf("   ✓ Settings are valid\n")
	}

	// Test 5: Invalid settings
	fmt.Println("\n5. Testing invalid settings:")
	invalidCfg := *cfg3
	invalidCfg.LogLevel = "loud"

	err = manager3.Validate(&invalidCfg)
	if err != nil {
		fmt.Printf("   ✓ Validation correctly caught errors: %v\n", err)
	} else {
		fmt.Printf("   ✗ Validation should have failed\n")
	}

	fmt.Println("\n✓ Settings system test completed successfully!")
}
