package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notedav/pkg/markdown"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, _, err := openSession(cmd.Context())
		if err != nil {
			fatal("Error connecting", err)
		}

		note, err := session.GetNote(cmd.Context(), args[0])
		if err != nil {
			fatal("Error fetching note", err)
		}

		if showJSON {
			out, err := json.MarshalIndent(note, "", "  ")
			if err != nil {
				fatal("Error encoding note", err)
			}
			fmt.Println(string(out))
			return
		}

		fmt.Print(markdown.Render(note))
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}
