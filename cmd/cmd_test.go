package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZacxDev/go-docs-site/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixture = filepath.Join("..", "config", "testdata", "site.yaml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "-c", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "root     nav=3 groups=3 pages=8")
	assert.Contains(t, out, "ja       nav=3 groups=3 pages=8")
	assert.Contains(t, out, "is valid")
}

func TestValidateCommandInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editLink:\n  pattern: https://example.com/\nlocales:\n  root:\n    lang: en\n"), 0o600))

	_, err := run(t, "validate", "-c", path)
	var target *site.InvalidEditLinkTemplateError
	require.ErrorAs(t, err, &target)
}

func TestLocalesCommand(t *testing.T) {
	out, err := run(t, "locales", "-c", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "/ja/")
	assert.Less(t, bytes.Index([]byte(out), []byte("root")), bytes.Index([]byte(out), []byte("ja ")))
}

func TestEditLinkCommand(t *testing.T) {
	out, err := run(t, "edit-link", "-c", fixture, "--locale", "ja", "guide/installation.md")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/SphereStacking/plexr/edit/main/docs/ja/guide/installation.md\n", out)

	_, err = run(t, "edit-link", "-c", fixture, "--locale", "ja", "../secret")
	var target *site.InvalidPagePathError
	require.ErrorAs(t, err, &target)
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "build", "-c", fixture, "--out", dir)
	require.NoError(t, err)

	for _, name := range []string{
		"api/locales/index.json",
		"api/locales/ja/index.json",
		"nav/root/index.html",
		"nav/ja/index.html",
		"sitemap.xml",
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}
