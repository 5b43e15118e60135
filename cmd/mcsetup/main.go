package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Block-Engineering-Inc/mc-status-bot/internal/app"
	"github.com/Block-Engineering-Inc/mc-status-bot/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

var rootCmd = &cobra.Command{
	Use:   "mcsetup",
	Short: "Interactive setup wizard for the Minecraft status bot",
	Long: `mcsetup walks you through creating and maintaining the status bot's config
file. On first run it asks for every option and writes a fresh config.yml.
On later runs it backfills options added since the file was written, then
offers to change existing values.

The bot reads its configuration entirely from this file; run mcsetup again
whenever you want to change it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check if version flag is set
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			versionCmd.Run(cmd, args)
			return nil
		}

		request, err := buildRequestFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Run(request)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version information including build version, commit, date, and platform details.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mcsetup version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  go version: %s\n", goVersion)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current config",
	Long:  "Print every config option with its current value without prompting or writing anything. The bot token is masked.",
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildRequestFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Show(request)
	},
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(showCmd)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "bot config file path (default config.yml)")
	rootCmd.PersistentFlags().String("settings", "", "tool settings file path (default ~/.config/mcsetup/config.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "diagnostics level: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().BoolP("version", "v", false, "print version information")
}

// buildRequestFromFlags constructs a SetupRequest from command flags
func buildRequestFromFlags(cmd *cobra.Command) (*models.SetupRequest, error) {
	request := models.NewSetupRequest()

	var err error

	if request.ConfigPath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	if request.SettingsPath, err = cmd.Flags().GetString("settings"); err != nil {
		return nil, fmt.Errorf("invalid settings flag: %w", err)
	}

	if request.LogLevel, err = cmd.Flags().GetString("log-level"); err != nil {
		return nil, fmt.Errorf("invalid log-level flag: %w", err)
	}

	return request, nil
}

func main() {
	// Disable usage on error to show only our custom error messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
