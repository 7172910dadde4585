package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/ZacxDev/go-docs-site/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadStore(t *testing.T) *site.Store {
	t.Helper()
	store, err := config.Load(filepath.Join("..", "config", "testdata", "site.yaml"))
	require.NoError(t, err)
	return store
}

func TestGenerateSitemapContent(t *testing.T) {
	store := loadStore(t)
	out, err := GenerateSitemapContent(store, "https://spherestacking.github.io/", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Contains(t, out, "<loc>https://spherestacking.github.io/plexr/guide/installation</loc>")
	assert.Contains(t, out, "<loc>https://spherestacking.github.io/plexr/ja/guide/installation</loc>")
	assert.Contains(t, out, `hreflang="ja" href="https://spherestacking.github.io/plexr/ja/guide/executors"`)
	assert.Contains(t, out, "<lastmod>2025-06-01</lastmod>")

	var parsed struct {
		Urls []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))

	// 3 nav + 8 sidebar links per locale, "/guide/" shared by nav and sidebar.
	assert.Len(t, parsed.Urls, 20)
	assert.True(t, strings.HasSuffix(parsed.Urls[0].Loc, "/plexr/guide/"))
}

func TestGenerateSitemapContentNeedsHostname(t *testing.T) {
	_, err := GenerateSitemapContent(loadStore(t), "", time.Now())
	require.Error(t, err)
}

func TestGenerateSitemaps(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, GenerateSitemaps(loadStore(t), "https://spherestacking.github.io", dir))

	data, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))
}
