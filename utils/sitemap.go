package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZacxDev/go-docs-site/site"
	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName    xml.Name `xml:"urlset"`
	Xmlns      string   `xml:"xmlns,attr"`
	XmlnsXhtml string   `xml:"xmlns:xhtml,attr"`
	Urls       []Url    `xml:"url"`
}

type Url struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod,omitempty"`
	ChangeFreq string      `xml:"changefreq,omitempty"`
	Priority   string      `xml:"priority,omitempty"`
	Alternates []Alternate `xml:"xhtml:link"`
}

type Alternate struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

func GenerateSitemaps(store *site.Store, hostname, outDir string) error {
	xmlOutput, err := GenerateSitemapContent(store, hostname, time.Now())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return errors.WithStack(err)
	}
	xmlFile, err := os.Create(filepath.Join(outDir, "sitemap.xml"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer xmlFile.Close()

	if _, err := xmlFile.Write([]byte(xml.Header + xmlOutput)); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// GenerateSitemapContent lists every nav and sidebar link of every locale.
// Sidebar pages line up across locales by group and item index, so each one
// carries hreflang alternates for its translations.
func GenerateSitemapContent(store *site.Store, hostname string, lastMod time.Time) (string, error) {
	if hostname == "" {
		return "", errors.New("sitemap needs a hostname")
	}
	base := strings.TrimSuffix(hostname, "/") + strings.TrimSuffix(store.Site().BaseRoutePrefix, "/")
	date := lastMod.Format("2006-01-02")

	var locales []site.LocaleConfig
	for _, code := range store.LocaleCodes() {
		lc, err := store.ResolveLocale(code)
		if err != nil {
			return "", err
		}
		locales = append(locales, lc)
	}

	alternates := make(map[string][]Alternate)
	for g, group := range locales[0].Sidebar {
		for i := range group.Items {
			var alts []Alternate
			for _, lc := range locales {
				alts = append(alts, Alternate{
					Rel:      "alternate",
					Hreflang: lc.Locale.LangTag,
					Href:     base + lc.Sidebar[g].Items[i].Link,
				})
			}
			if len(alts) < 2 {
				continue
			}
			for _, lc := range locales {
				alternates[lc.Sidebar[g].Items[i].Link] = alts
			}
		}
	}

	sitemap := Sitemap{
		Xmlns:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XmlnsXhtml: "http://www.w3.org/1999/xhtml",
	}
	seen := make(map[string]bool)
	for _, lc := range locales {
		for _, link := range lc.Links() {
			if seen[link] {
				continue
			}
			seen[link] = true
			sitemap.Urls = append(sitemap.Urls, Url{
				Loc:        base + link,
				LastMod:    date,
				Alternates: alternates[link],
			})
		}
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(xmlOutput), nil
}
