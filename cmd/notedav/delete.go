package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note from the server",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, _, err := openSession(cmd.Context())
		if err != nil {
			fatal("Error connecting", err)
		}

		if err := session.DeleteNote(cmd.Context(), args[0]); err != nil {
			fatal("Error deleting note", err)
		}
		fmt.Println("Deleted", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
