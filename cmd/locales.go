package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/spf13/cobra"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List locales, default locale first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.Load(configPath)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tLABEL\tLANG\tPREFIX")
		for _, code := range store.LocaleCodes() {
			lc, err := store.ResolveLocale(code)
			if err != nil {
				return err
			}
			prefix := lc.Locale.PathPrefix
			if prefix == "" {
				prefix = "/"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", code, lc.Locale.Label, lc.Locale.LangTag, prefix)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(localesCmd)
}
