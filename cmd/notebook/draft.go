package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	draftTitle   string
	draftContent string
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage the recovered draft of an unsaved note",
}

var draftSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Cache an in-progress note",
	Run: func(cmd *cobra.Command, args []string) {
		f := newFacade()
		if err := f.SaveDraft(cmd.Context(), draftTitle, draftContent); err != nil {
			fail("Error saving draft: %v", err)
		}
		fmt.Println("Draft saved")
	},
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cached draft",
	Run: func(cmd *cobra.Command, args []string) {
		f := newFacade()
		title, content, ok, err := f.LoadDraft(cmd.Context())
		if err != nil {
			fail("Error loading draft: %v", err)
		}
		if !ok {
			fmt.Println("No draft")
			return
		}
		fmt.Printf("# %s\n\n%s\n", title, content)
	},
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the cached draft",
	Run: func(cmd *cobra.Command, args []string) {
		f := newFacade()
		if err := f.ClearDraft(cmd.Context()); err != nil {
			fail("Error clearing draft: %v", err)
		}
		fmt.Println("Draft cleared")
	},
}

func init() {
	draftSaveCmd.Flags().StringVar(&draftTitle, "title", "", "Draft title")
	draftSaveCmd.Flags().StringVar(&draftContent, "content", "", "Draft markdown content")
	draftCmd.AddCommand(draftSaveCmd)
	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftClearCmd)
	rootCmd.AddCommand(draftCmd)
}
