package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notedav"
	"github.com/aretw0/notedav/internal/settings"
)

var (
	connectUsername string
	connectPassword string
)

var connectCmd = &cobra.Command{
	Use:   "connect <url>",
	Short: "Verify a WebDAV server and store its credentials",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := settings.DefaultStore()
		if err != nil {
			fatal("Error opening settings", err)
		}

		creds := settings.Credentials{
			URL:      args[0],
			Username: connectUsername,
			Password: connectPassword,
		}
		if creds.Password == "" {
			creds.Password = os.Getenv("NOTEDAV_PASSWORD")
		}
		if err := creds.Validate(); err != nil {
			fatal("Invalid credentials", err)
		}

		_, err = notedav.Connect(cmd.Context(), creds.URL, creds.Username, creds.Password,
			notedav.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Connection failed", err)
		}

		if err := store.SetCredentials(creds); err != nil {
			fatal("Error storing credentials", err)
		}
		fmt.Println("Connected. Credentials stored in", store.Path())
	},
}

func init() {
	connectCmd.Flags().StringVarP(&connectUsername, "username", "u", "", "Account username")
	connectCmd.Flags().StringVarP(&connectPassword, "password", "p", "", "Account password (or NOTEDAV_PASSWORD)")
	rootCmd.AddCommand(connectCmd)
}
