package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rspur/sampleportal/internal/access"
	"github.com/rspur/sampleportal/internal/registry"
)

// modulesCmd prints the static module catalog with grant restrictions.
var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the portal module registry",
	Run: func(cmd *cobra.Command, args []string) {
		for _, entry := range registry.Registry {
			marker := ""
			if entry.Key == registry.KeyAdmin || access.IsRestricted(entry.Key) {
				marker = " (super-admin only)"
			}
			fmt.Printf("%-28s %s%s\n", entry.Key, entry.Label, marker)
		}
	},
}
