package cmd

import (
	"fmt"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/spf13/cobra"
)

var editLinkCmd = &cobra.Command{
	Use:   "edit-link <page>",
	Short: "Print the edit URL of a page",
	Example: `  docsite edit-link guide/installation.md
  docsite edit-link --locale ja guide/installation.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.Load(configPath)
		if err != nil {
			return err
		}

		code, _ := cmd.Flags().GetString("locale")
		if code == "" {
			code = store.DefaultLocale().Locale.Code
		}
		link, err := store.RenderEditLink(code, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), link)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editLinkCmd)
	editLinkCmd.Flags().StringP("locale", "l", "", "Locale code (defaults to the default locale)")
}
