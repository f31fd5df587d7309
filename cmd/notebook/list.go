package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `List every note's id, title, and timestamps. Content is not fetched.`,
	Run: func(cmd *cobra.Command, args []string) {
		f := newFacade()
		summaries, err := f.ListNotes(cmd.Context())
		if err != nil {
			fail("Error listing notes: %v", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(summaries); err != nil {
				fail("Error encoding JSON: %v", err)
			}
			return
		}

		for _, s := range summaries {
			fmt.Printf("%s\t%s\t%s\n", s.ID, s.Title, s.UpdatedAt.Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
