package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/ZacxDev/go-docs-site/handlers"
	"github.com/ZacxDev/go-docs-site/logging"
	"github.com/ZacxDev/go-docs-site/site"
	"github.com/ZacxDev/go-docs-site/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type staticStore struct {
	store *site.Store
}

func (s staticStore) Store() *site.Store { return s.store }

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export navigation outlines, locale data and the sitemap",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		hostname, _ := cmd.Flags().GetString("hostname")
		logger := logging.WithComponent("build")

		store, err := config.Load(configPath)
		if err != nil {
			return err
		}

		server := httptest.NewServer(handlers.SetupRouter(staticStore{store: store}))
		defer server.Close()

		routes := []string{"/api/locales"}
		for _, code := range store.LocaleCodes() {
			routes = append(routes, "/api/locales/"+code, "/nav/"+code)
		}
		for _, route := range routes {
			path, err := generateStaticPage(server, outDir, route)
			if err != nil {
				return errors.Wrapf(err, "generate %s", route)
			}
			logger.Info().Str("event", "build.page").Str("path", path).Msg("generated")
		}

		if hostname == "" {
			hostname = store.Site().Hostname
		}
		if hostname == "" {
			logger.Warn().Str("event", "build.sitemap_skipped").Msg("no hostname configured, skipping sitemap")
			return nil
		}
		if err := utils.GenerateSitemaps(store, hostname, outDir); err != nil {
			return errors.Wrap(err, "generate sitemap")
		}
		logger.Info().Str("event", "build.sitemap").Str("path", filepath.Join(outDir, "sitemap.xml")).Msg("generated")
		return nil
	},
}

func generateStaticPage(server *httptest.Server, outDir, route string) (string, error) {
	resp, err := http.Get(server.URL + route)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WithStack(err)
	}

	name := "index.html"
	if resp.Header.Get("Content-Type") == "application/json" {
		name = "index.json"
	}
	filePath := filepath.Join(outDir, route[1:], name)
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return "", errors.WithStack(err)
	}
	if err := os.WriteFile(filePath, body, 0644); err != nil {
		return "", errors.WithStack(err)
	}
	return filePath, nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("out", "o", "public", "Output directory")
	buildCmd.Flags().String("hostname", "", "Site origin for the sitemap (defaults to the configured hostname)")
}
