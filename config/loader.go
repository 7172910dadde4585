package config

import (
	"os"

	"github.com/ZacxDev/go-docs-site/site"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// LocaleEntries keeps locales in the order they appear in the file.
type LocaleEntries []LocaleEntry

func (l *LocaleEntries) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var order yaml.MapSlice
	if err := unmarshal(&order); err != nil {
		return err
	}
	var byCode map[string]LocaleEntry
	if err := unmarshal(&byCode); err != nil {
		return err
	}

	entries := make(LocaleEntries, 0, len(order))
	for _, item := range order {
		code, ok := item.Key.(string)
		if !ok {
			return errors.Errorf("locale key %v is not a string", item.Key)
		}
		entry := byCode[code]
		entry.Code = code
		entries = append(entries, entry)
	}
	*l = entries
	return nil
}

// Load reads the site configuration file and builds a validated store.
func Load(path string) (*site.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

func Parse(data []byte) (*site.Store, error) {
	manifest, err := Decode(data)
	if err != nil {
		return nil, err
	}
	cfg, locales := manifest.toSite()
	store, err := site.Build(cfg, locales)
	if err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return store, nil
}

func Decode(data []byte) (*SiteManifest, error) {
	var manifest SiteManifest
	if err := yaml.UnmarshalStrict(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return &manifest, nil
}

func (m *SiteManifest) toSite() (site.SiteConfig, []site.LocaleConfig) {
	provider := site.SearchProvider(m.Search.Provider)
	if provider == "algolia" {
		provider = site.SearchExternal
	}

	cfg := site.SiteConfig{
		Title:            m.Title,
		TitleTemplate:    m.TitleTemplate,
		Description:      m.Description,
		Logo:             m.Logo,
		Hostname:         m.Hostname,
		BaseRoutePrefix:  m.Base,
		Footer:           site.Footer{Message: m.Footer.Message, Copyright: m.Footer.Copyright},
		Search:           site.Search{Provider: provider, Options: m.Search.Options},
		EditLinkTemplate: m.EditLink.Pattern,
		EditLinkText:     m.EditLink.Text,
	}
	for _, sl := range m.SocialLinks {
		cfg.SocialLinks = append(cfg.SocialLinks, site.SocialLink{Icon: sl.Icon, Link: sl.Link})
	}

	locales := make([]site.LocaleConfig, 0, len(m.Locales))
	for _, entry := range m.Locales {
		lc := site.LocaleConfig{
			Locale: site.Locale{
				Code:       entry.Code,
				Label:      entry.Label,
				LangTag:    entry.Lang,
				PathPrefix: entry.Link,
			},
		}
		for _, item := range entry.ThemeConfig.Nav {
			lc.Nav = append(lc.Nav, site.NavItem{Text: item.Text, Link: item.Link})
		}
		for _, group := range entry.ThemeConfig.Sidebar {
			g := site.SidebarGroup{Text: group.Text}
			for _, item := range group.Items {
				g.Items = append(g.Items, site.SidebarItem{Text: item.Text, Link: item.Link})
			}
			lc.Sidebar = append(lc.Sidebar, g)
		}
		locales = append(locales, lc)
	}
	return cfg, locales
}
