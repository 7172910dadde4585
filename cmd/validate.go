package cmd

import (
	"fmt"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the site configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.Load(configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, code := range store.LocaleCodes() {
			lc, err := store.ResolveLocale(code)
			if err != nil {
				return err
			}
			items := 0
			for _, group := range lc.Sidebar {
				items += len(group.Items)
			}
			fmt.Fprintf(out, "%-8s nav=%d groups=%d pages=%d\n", code, len(lc.Nav), len(lc.Sidebar), items)
		}
		fmt.Fprintf(out, "%s is valid\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
