package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rspur/sampleportal/internal/auth"
	"github.com/rspur/sampleportal/internal/user"
)

var tokenEmail string

// tokenCmd mints a session token for a seeded directory user so API calls
// can be exercised with curl without going through the login endpoint.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a session token for a directory user",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		if tokenEmail == "" {
			log.Fatal("--email is required")
		}

		directory, err := user.SeedSampleUsers(cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to seed user directory: %v", err)
		}

		u, err := directory.FindByEmail(tokenEmail)
		if err != nil {
			log.Fatalf("no directory user with email %s", tokenEmail)
		}

		codec := auth.NewCodec(cfg.Security.SessionSecret, cfg.Security.SessionTTL)
		token, err := codec.Encode(u.SessionView())
		if err != nil {
			log.Fatalf("failed to encode token: %v", err)
		}

		fmt.Printf("Cookie: %s=%s\n", auth.SessionCookieName, token)
	},
}
