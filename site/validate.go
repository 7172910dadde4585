package site

import (
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

var knownSocialIcons = map[string]bool{
	"github":    true,
	"twitter":   true,
	"x":         true,
	"discord":   true,
	"mastodon":  true,
	"linkedin":  true,
	"youtube":   true,
	"slack":     true,
	"facebook":  true,
	"instagram": true,
	"npm":       true,
}

var externalSearchOptions = []string{"appId", "apiKey", "indexName"}

// validateLocales checks the construction constraints and returns the index
// of the root locale.
func validateLocales(locales []LocaleConfig) (int, error) {
	if len(locales) == 0 {
		return -1, &InvalidLocaleError{Reason: "at least one locale is required"}
	}

	root := -1
	codes := make(map[string]bool, len(locales))
	prefixes := make(map[string]string, len(locales))
	for i, lc := range locales {
		l := lc.Locale
		if l.Code == "" {
			return -1, &InvalidLocaleError{Reason: "locale code is required"}
		}
		if codes[l.Code] {
			return -1, &InvalidLocaleError{Locale: l.Code, Reason: "duplicate locale code"}
		}
		codes[l.Code] = true

		if l.LangTag == "" {
			return -1, &InvalidLocaleError{Locale: l.Code, Reason: "lang is required"}
		}
		if _, err := language.Parse(l.LangTag); err != nil {
			return -1, &InvalidLocaleError{Locale: l.Code, Reason: "malformed lang tag " + l.LangTag}
		}

		if l.IsRoot() {
			if root >= 0 {
				return -1, &InvalidLocaleError{Locale: l.Code, Reason: "more than one locale has an empty path prefix"}
			}
			root = i
			continue
		}
		if want := "/" + l.LangTag + "/"; l.PathPrefix != want {
			return -1, &InvalidLocaleError{Locale: l.Code, Reason: "path prefix must be " + want + ", got " + l.PathPrefix}
		}
		if other, ok := prefixes[l.PathPrefix]; ok {
			return -1, &InvalidLocaleError{Locale: l.Code, Reason: "path prefix " + l.PathPrefix + " already used by " + other}
		}
		prefixes[l.PathPrefix] = l.Code
	}
	if root < 0 {
		return -1, &InvalidLocaleError{Reason: "no locale has an empty path prefix"}
	}
	return root, nil
}

func checkStructure(root LocaleConfig, lc LocaleConfig) error {
	n := len(root.Sidebar)
	if len(lc.Sidebar) > n {
		n = len(lc.Sidebar)
	}
	for i := 0; i < n; i++ {
		if i >= len(root.Sidebar) || i >= len(lc.Sidebar) ||
			len(root.Sidebar[i].Items) != len(lc.Sidebar[i].Items) {
			return &StructureMismatchError{Locale: lc.Locale.Code, GroupIndex: i}
		}
	}
	return nil
}

func checkPrefixes(lc LocaleConfig, others []string) error {
	prefix := lc.Locale.PathPrefix
	if lc.Locale.IsRoot() {
		prefix = "/"
	}
	for _, link := range lc.Links() {
		if !strings.HasPrefix(link, prefix) {
			return &PrefixMismatchError{Locale: lc.Locale.Code, Link: link, Prefix: prefix}
		}
		if !lc.Locale.IsRoot() {
			continue
		}
		for _, p := range others {
			if strings.HasPrefix(link, p) || link+"/" == p {
				return &PrefixMismatchError{Locale: lc.Locale.Code, Link: link, Prefix: prefix}
			}
		}
	}
	return nil
}

func checkDuplicates(lc LocaleConfig) error {
	seen := make(map[string]bool)
	for _, group := range lc.Sidebar {
		for _, item := range group.Items {
			if seen[item.Link] {
				return &DuplicateLinkError{Locale: lc.Locale.Code, Link: item.Link}
			}
			seen[item.Link] = true
		}
	}
	return nil
}

func checkEditLinkTemplate(tmpl string) error {
	if n := strings.Count(tmpl, EditLinkPlaceholder); n != 1 {
		return &InvalidEditLinkTemplateError{Template: tmpl, Placeholders: n}
	}
	return nil
}

func checkSite(cfg SiteConfig) error {
	base := cfg.BaseRoutePrefix
	if !strings.HasPrefix(base, "/") || !strings.HasSuffix(base, "/") {
		return &InvalidSiteConfigError{Field: "base", Reason: "must begin and end with /"}
	}

	switch cfg.Search.Provider {
	case SearchLocal:
	case SearchExternal:
		for _, key := range externalSearchOptions {
			if cfg.Search.Options[key] == "" {
				return &InvalidSiteConfigError{Field: "search.options." + key, Reason: "required for external-service"}
			}
		}
	default:
		return &InvalidSiteConfigError{Field: "search.provider", Reason: "unknown provider " + string(cfg.Search.Provider)}
	}

	for _, sl := range cfg.SocialLinks {
		if !knownSocialIcons[sl.Icon] {
			return &InvalidSiteConfigError{Field: "socialLinks", Reason: "unknown icon " + sl.Icon}
		}
		u, err := url.Parse(sl.Link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &InvalidSiteConfigError{Field: "socialLinks", Reason: "link must be an absolute http(s) URL: " + sl.Link}
		}
	}
	return nil
}
