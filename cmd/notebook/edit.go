package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ougotti/simplenotebook/internal/model"
)

var (
	editTitle   string
	editContent string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Update a note",
	Long:  `Update a note's title and/or content. Flags not given keep the stored value.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var patch model.NotePatch
		if cmd.Flags().Changed("title") {
			patch.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &editContent
		}

		f := newFacade()
		note, err := f.UpdateNote(cmd.Context(), args[0], patch)
		if err != nil {
			fail("Error updating note: %v", err)
		}

		fmt.Printf("Updated %s (%s)\n", note.ID, note.Title)
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New markdown content")
	rootCmd.AddCommand(editCmd)
}
