package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ougotti/simplenotebook/internal/identity"
	"github.com/ougotti/simplenotebook/internal/token"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show who you appear as",
	Long: `Show the resolved display name: the saved custom name when one
exists, otherwise the best available claim from the bearer token.`,
	Run: func(cmd *cobra.Command, args []string) {
		f := newFacade()

		var profile identity.Profile
		if tok := currentToken(); tok != "" {
			p, err := token.ParseProfileClaims(tok)
			if err != nil {
				fail("Error reading token claims: %v", err)
			}
			profile = p
		}

		custom := ""
		if settings, err := f.GetUserSettings(cmd.Context()); err == nil {
			custom = settings.DisplayName
		}

		fmt.Println(profile.DisplayName(custom))
		if email := profile.EmailAddress(); email != "" {
			fmt.Println(email)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
