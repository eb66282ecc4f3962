package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notedav/pkg/core"
)

var (
	createChecklist bool
	createItems     []string
	createContent   string
)

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a note and save it to the server",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, store, err := openSession(cmd.Context())
		if err != nil {
			fatal("Error connecting", err)
		}

		deviceID, err := store.DeviceID()
		if err != nil {
			fatal("Error resolving device id", err)
		}

		var note core.Note
		if createChecklist || len(createItems) > 0 {
			note = core.NewChecklistNote(args[0], deviceID)
			for i, text := range createItems {
				note.ChecklistItems = append(note.ChecklistItems, core.NewChecklistItem(text, i))
			}
			note.Content = note.FallbackContent()
		} else {
			note = core.NewNote(args[0], deviceID)
			note.Content = createContent
		}

		saved, err := session.SaveNote(cmd.Context(), note)
		if err != nil {
			fatal("Error saving note", err)
		}
		fmt.Println(saved.ID)
	},
}

func init() {
	createCmd.Flags().BoolVar(&createChecklist, "checklist", false, "Create a checklist note")
	createCmd.Flags().StringArrayVar(&createItems, "item", nil, "Checklist item (repeatable, implies --checklist)")
	createCmd.Flags().StringVar(&createContent, "content", "", "Initial content for a text note")
	rootCmd.AddCommand(createCmd)
}
