package cmd

import (
	"fmt"
	"os"

	"github.com/ZacxDev/go-docs-site/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	// Set by ldflags.
	Version = "dev"
	Commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "docsite - localized navigation for documentation sites",
	Long: `docsite loads a documentation site's configuration, checks that every
locale's navigation lines up with the default locale, and serves or exports
the result for the site build.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Configure(logging.Config{Level: logLevel})
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "docs/site.yaml", "Path to the site configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
