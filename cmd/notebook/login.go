package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ougotti/simplenotebook/internal/identity"
	"github.com/ougotti/simplenotebook/internal/token"
)

var (
	loginSecret string
	loginName   string
	loginEmail  string
)

// login mints a token the server accepts when it runs with the same
// JWT secret. Real deployments authenticate against the external
// identity provider instead.
var loginCmd = &cobra.Command{
	Use:   "login [subject]",
	Short: "Mint a development bearer token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manager := token.NewJWT(loginSecret)
		tok, err := manager.GenerateAccessToken(identity.Profile{
			Subject: args[0],
			Name:    loginName,
			Email:   loginEmail,
		})
		if err != nil {
			fail("Error minting token: %v", err)
		}
		fmt.Println(tok)
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginSecret, "secret", "devsecret", "JWT secret shared with the server")
	loginCmd.Flags().StringVar(&loginName, "name", "", "Full-name claim")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email claim")
	rootCmd.AddCommand(loginCmd)
}
