package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Long:  `Show one note. Outputs raw markdown content by default, or the full note as JSON with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f := newFacade()
		note, err := f.GetNote(cmd.Context(), args[0])
		if err != nil {
			fail("Error reading note: %v", err)
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fail("Error encoding JSON: %v", err)
			}
			return
		}

		fmt.Printf("# %s\n\n%s\n", note.Title, note.Content)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}
