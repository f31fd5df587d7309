package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ougotti/simplenotebook/internal/model"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read or change user settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the stored settings",
	Run: func(cmd *cobra.Command, args []string) {
		f := newFacade()
		settings, err := f.GetUserSettings(cmd.Context())
		if err != nil {
			fail("Error loading settings: %v", err)
		}

		if settings.DisplayName == "" {
			fmt.Println("No display name set")
			return
		}
		fmt.Printf("Display name: %s (updated %s)\n", settings.DisplayName, settings.UpdatedAt.Format("2006-01-02 15:04"))
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [display-name]",
	Short: "Set the display name",
	Long:  `Set the display name. The value is trimmed, normalized, and limited to 100 characters; control and zero-width characters are removed.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f := newFacade()
		settings, err := f.UpdateUserSettings(cmd.Context(), model.SettingsPatch{DisplayName: &args[0]})
		if err != nil {
			fail("Error saving settings: %v", err)
		}
		fmt.Printf("Display name set to %s\n", settings.DisplayName)
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
