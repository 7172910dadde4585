package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ZacxDev/go-docs-site/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
}

func TestHolderReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	doc := readFixture(t)
	writeConfig(t, path, doc)

	h, err := NewHolder(path)
	require.NoError(t, err)
	first := h.Store()
	assert.Equal(t, "Plexr", first.Site().Title)

	var reloaded *site.Store
	h.OnReload = func(s *site.Store) { reloaded = s }

	writeConfig(t, path, strings.Replace(doc, "title: Plexr", "title: Plexr Docs", 1))
	require.NoError(t, h.Reload())
	assert.Equal(t, "Plexr Docs", h.Store().Site().Title)
	assert.Same(t, h.Store(), reloaded)

	// The store handed out before the reload is untouched.
	assert.Equal(t, "Plexr", first.Site().Title)
}

func TestHolderReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	doc := readFixture(t)
	writeConfig(t, path, doc)

	h, err := NewHolder(path)
	require.NoError(t, err)
	before := h.Store()

	writeConfig(t, path, strings.Replace(doc, "link: /ja/guide/", "link: /guide/", 1))
	err = h.Reload()
	var target *site.PrefixMismatchError
	require.ErrorAs(t, err, &target)
	assert.Same(t, before, h.Store())
}

func TestNewHolderInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeConfig(t, path, "locales: {}\neditLink:\n  pattern: https://example.com/:path\n")

	_, err := NewHolder(path)
	var target *site.InvalidLocaleError
	require.ErrorAs(t, err, &target)
}

func TestHolderWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	doc := readFixture(t)
	writeConfig(t, path, doc)

	h, err := NewHolder(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, h.Watch(ctx))

	writeConfig(t, path, strings.Replace(doc, "title: Plexr", "title: Watched", 1))
	require.Eventually(t, func() bool {
		return h.Store().Site().Title == "Watched"
	}, 5*time.Second, 50*time.Millisecond)
}
