package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/notedav"
	"github.com/aretw0/notedav/internal/settings"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notedav",
	Short: "Sync note documents with a WebDAV server",
	Long: `Notedav synchronizes note documents with a WebDAV server.
Every note is stored twice: as canonical JSON and as a markdown mirror
with frontmatter that stays readable in any text editor.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A local .env may carry NOTEDAV_URL / NOTEDAV_USERNAME /
		// NOTEDAV_PASSWORD; absence is fine.
		_ = godotenv.Load()

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// resolveCredentials merges stored credentials with environment overrides
// and validates the result.
func resolveCredentials(store *settings.Store) (settings.Credentials, error) {
	creds, _, err := store.Credentials()
	if err != nil {
		return settings.Credentials{}, err
	}
	if v := os.Getenv("NOTEDAV_URL"); v != "" {
		creds.URL = v
	}
	if v := os.Getenv("NOTEDAV_USERNAME"); v != "" {
		creds.Username = v
	}
	if v := os.Getenv("NOTEDAV_PASSWORD"); v != "" {
		creds.Password = v
	}
	if err := creds.Validate(); err != nil {
		return settings.Credentials{}, err
	}
	return creds, nil
}

// openSession connects to the configured server using stored credentials.
func openSession(ctx context.Context) (*notedav.Session, *settings.Store, error) {
	store, err := settings.DefaultStore()
	if err != nil {
		return nil, nil, err
	}
	creds, err := resolveCredentials(store)
	if err != nil {
		return nil, nil, err
	}
	session, err := notedav.Connect(ctx, creds.URL, creds.Username, creds.Password,
		notedav.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, nil, err
	}
	return session, store, nil
}
