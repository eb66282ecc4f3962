package main

import (
	"encoding/json"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/notedav/pkg/core"
	"github.com/aretw0/notedav/pkg/markdown"
)

var (
	listJSON  bool
	listMatch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, most recently updated first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		session, _, err := openSession(cmd.Context())
		if err != nil {
			fatal("Error connecting", err)
		}

		summaries, err := session.ListNotes(cmd.Context())
		if err != nil {
			fatal("Error listing notes", err)
		}

		if listMatch != "" {
			var filtered []core.NoteSummary
			for _, s := range summaries {
				matchTitle, _ := doublestar.Match(listMatch, s.Title)
				matchID, _ := doublestar.Match(listMatch, s.ID)
				if matchTitle || matchID {
					filtered = append(filtered, s)
				}
			}
			summaries = filtered
		}

		if listJSON {
			out, err := json.MarshalIndent(summaries, "", "  ")
			if err != nil {
				fatal("Error encoding listing", err)
			}
			fmt.Println(string(out))
			return
		}

		for _, s := range summaries {
			marker := " "
			if s.NoteType == core.NoteTypeChecklist {
				marker = "☑"
			}
			fmt.Printf("%s  %s %s  %s\n", s.ID, marker, markdown.ToISO(s.UpdatedAt), s.Title)
		}
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Filter by glob on title or id")
	rootCmd.AddCommand(listCmd)
}
