package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZacxDev/go-docs-site/site"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "site.yaml"))
	require.NoError(t, err)
	return string(data)
}

func TestLoad(t *testing.T) {
	store, err := Load(filepath.Join("testdata", "site.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"root", "ja"}, store.LocaleCodes())

	cfg := store.Site()
	assert.Equal(t, "Plexr", cfg.Title)
	assert.Equal(t, "/plexr/", cfg.BaseRoutePrefix)
	assert.Equal(t, site.SearchLocal, cfg.Search.Provider)
	assert.Equal(t, "Copyright © 2025 Plexr Authors", cfg.Footer.Copyright)
	require.Len(t, cfg.SocialLinks, 1)
	assert.Equal(t, "github", cfg.SocialLinks[0].Icon)

	ja, err := store.ResolveLocale("ja")
	require.NoError(t, err)
	assert.Equal(t, "日本語", ja.Locale.Label)
	assert.Equal(t, "/ja/", ja.Locale.PathPrefix)
	require.Len(t, ja.Sidebar, 3)
	assert.Equal(t, "/ja/guide/executors", ja.Sidebar[1].Items[1].Link)

	link, err := store.RenderEditLink("ja", "guide/executors.md")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/SphereStacking/plexr/edit/main/docs/ja/guide/executors.md", link)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestParseKeepsLocaleOrder(t *testing.T) {
	// ja is declared before root; root is still listed first.
	doc := `
editLink:
  pattern: https://example.com/:path
locales:
  ja:
    label: 日本語
    lang: ja
    link: /ja/
  zh:
    label: 简体中文
    lang: zh
    link: /zh/
  root:
    label: English
    lang: en
`
	store, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "ja", "zh"}, store.LocaleCodes())
}

func TestParseUnknownField(t *testing.T) {
	doc := readFixture(t) + "\nthemeColor: red\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestParseAlgoliaAlias(t *testing.T) {
	doc := strings.Replace(readFixture(t), "  provider: local\n",
		"  provider: algolia\n  options:\n    appId: APP\n    apiKey: KEY\n    indexName: plexr\n", 1)
	store, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, site.SearchExternal, store.Site().Search.Provider)
	assert.Equal(t, "plexr", store.Site().Search.Options["indexName"])
}

func TestParseValidationErrors(t *testing.T) {
	t.Run("prefix mismatch", func(t *testing.T) {
		doc := strings.Replace(readFixture(t), "link: /ja/guide/installation", "link: /guide/installation", 1)
		_, err := Parse([]byte(doc))
		var target *site.PrefixMismatchError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "ja", target.Locale)
	})

	t.Run("structure mismatch", func(t *testing.T) {
		doc := strings.Replace(readFixture(t),
			"            - text: 設定\n              link: /ja/api/configuration\n", "", 1)
		_, err := Parse([]byte(doc))
		var target *site.StructureMismatchError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 2, target.GroupIndex)
	})

	t.Run("edit link without placeholder", func(t *testing.T) {
		doc := strings.Replace(readFixture(t), "docs/:path", "docs/", 1)
		_, err := Parse([]byte(doc))
		var target *site.InvalidEditLinkTemplateError
		require.ErrorAs(t, err, &target)
	})
}
