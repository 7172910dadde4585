// Package site holds the localized navigation model of a documentation site:
// one site-wide configuration plus a navigation and sidebar tree per locale.
//
// A Store is validated once by Build and never mutated afterwards, so it can
// be read from any number of goroutines without locking. Reloading means
// building a new Store and replacing the old one.
package site

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

type Store struct {
	site    SiteConfig
	locales []LocaleConfig // root first, then insertion order
	byCode  map[string]int
}

// Build validates the configuration and returns an immutable Store. It fails
// on the first violation, checking locale shape, structural parity, link
// prefixes, duplicate links, the edit link template and the remaining site
// settings in that order.
func Build(cfg SiteConfig, locales []LocaleConfig) (*Store, error) {
	rootIdx, err := validateLocales(locales)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	ordered := make([]LocaleConfig, 0, len(locales))
	ordered = append(ordered, locales[rootIdx].clone())
	for i, lc := range locales {
		if i != rootIdx {
			ordered = append(ordered, lc.clone())
		}
	}
	root := ordered[0]

	for _, lc := range ordered[1:] {
		if err := checkStructure(root, lc); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	var prefixes []string
	for _, lc := range ordered[1:] {
		prefixes = append(prefixes, lc.Locale.PathPrefix)
	}
	for _, lc := range ordered {
		if err := checkPrefixes(lc, prefixes); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	for _, lc := range ordered {
		if err := checkDuplicates(lc); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if err := checkEditLinkTemplate(cfg.EditLinkTemplate); err != nil {
		return nil, errors.WithStack(err)
	}

	cfg = cfg.clone()
	if cfg.BaseRoutePrefix == "" {
		cfg.BaseRoutePrefix = "/"
	}
	if cfg.Search.Provider == "" {
		cfg.Search.Provider = SearchLocal
	}
	if err := checkSite(cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	s := &Store{
		site:    cfg,
		locales: ordered,
		byCode:  make(map[string]int, len(ordered)),
	}
	for i, lc := range ordered {
		s.byCode[lc.Locale.Code] = i
	}
	return s, nil
}

func (s *Store) Site() SiteConfig {
	return s.site.clone()
}

func (s *Store) ResolveLocale(code string) (LocaleConfig, error) {
	i, ok := s.byCode[code]
	if !ok {
		return LocaleConfig{}, errors.WithStack(&UnknownLocaleError{Code: code})
	}
	return s.locales[i].clone(), nil
}

func (s *Store) DefaultLocale() LocaleConfig {
	return s.locales[0].clone()
}

// LocaleCodes returns the root locale's code followed by the others in
// insertion order.
func (s *Store) LocaleCodes() []string {
	codes := make([]string, len(s.locales))
	for i, lc := range s.locales {
		codes[i] = lc.Locale.Code
	}
	return codes
}

// RenderEditLink fills the edit link template with the page path. Pages of a
// non-root locale live under the locale's directory, so "guide/foo.md" in
// "ja" becomes "ja/guide/foo.md".
func (s *Store) RenderEditLink(code, relativePagePath string) (string, error) {
	i, ok := s.byCode[code]
	if !ok {
		return "", errors.WithStack(&UnknownLocaleError{Code: code})
	}
	if err := checkPagePath(relativePagePath); err != nil {
		return "", errors.WithStack(err)
	}

	page := relativePagePath
	if dir := strings.Trim(s.locales[i].Locale.PathPrefix, "/"); dir != "" && !strings.HasPrefix(page, dir+"/") {
		page = dir + "/" + page
	}

	segments := strings.Split(page, "/")
	for j, seg := range segments {
		segments[j] = url.PathEscape(seg)
	}
	return strings.Replace(s.site.EditLinkTemplate, EditLinkPlaceholder, strings.Join(segments, "/"), 1), nil
}

func checkPagePath(p string) error {
	if p == "" {
		return &InvalidPagePathError{Path: p, Reason: "empty"}
	}
	if strings.HasPrefix(p, "/") {
		return &InvalidPagePathError{Path: p, Reason: "must be relative"}
	}
	for _, seg := range strings.Split(strings.ReplaceAll(p, "\\", "/"), "/") {
		if seg == ".." {
			return &InvalidPagePathError{Path: p, Reason: "contains .. segment"}
		}
	}
	return nil
}
