package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ougotti/simplenotebook/internal/model"
)

var (
	createTitle   string
	createContent string
	createStdin   bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Long:  `Create a note from flags or stdin. An empty title becomes "Untitled".`,
	Run: func(cmd *cobra.Command, args []string) {
		content := createContent
		if createStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fail("Error reading stdin: %v", err)
			}
			content = string(data)
		}

		f := newFacade()
		note, err := f.CreateNote(cmd.Context(), model.NoteDraft{Title: createTitle, Content: content})
		if err != nil {
			fail("Error creating note: %v", err)
		}

		fmt.Printf("Created %s (%s)\n", note.ID, note.Title)
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Note title")
	createCmd.Flags().StringVar(&createContent, "content", "", "Note markdown content")
	createCmd.Flags().BoolVar(&createStdin, "stdin", false, "Read content from stdin")
	rootCmd.AddCommand(createCmd)
}
