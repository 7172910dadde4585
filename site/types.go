package site

// site/types.go

type SearchProvider string

const (
	SearchLocal    SearchProvider = "local"
	SearchExternal SearchProvider = "external-service"
)

// EditLinkPlaceholder is replaced with the page's relative path.
const EditLinkPlaceholder = ":path"

type Locale struct {
	Code       string
	Label      string
	LangTag    string
	PathPrefix string
}

// IsRoot reports whether l is the default locale.
func (l Locale) IsRoot() bool {
	return l.PathPrefix == ""
}

type NavItem struct {
	Text string
	Link string
}

type SidebarItem struct {
	Text string
	Link string
}

type SidebarGroup struct {
	Text  string
	Items []SidebarItem
}

type LocaleConfig struct {
	Locale  Locale
	Nav     []NavItem
	Sidebar []SidebarGroup
}

// Links returns every nav and sidebar link in declaration order.
func (c LocaleConfig) Links() []string {
	links := make([]string, 0, len(c.Nav))
	for _, item := range c.Nav {
		links = append(links, item.Link)
	}
	for _, group := range c.Sidebar {
		for _, item := range group.Items {
			links = append(links, item.Link)
		}
	}
	return links
}

func (c LocaleConfig) clone() LocaleConfig {
	out := LocaleConfig{Locale: c.Locale}
	if c.Nav != nil {
		out.Nav = append([]NavItem(nil), c.Nav...)
	}
	if c.Sidebar != nil {
		out.Sidebar = make([]SidebarGroup, len(c.Sidebar))
		for i, group := range c.Sidebar {
			out.Sidebar[i] = SidebarGroup{Text: group.Text}
			if group.Items != nil {
				out.Sidebar[i].Items = append([]SidebarItem(nil), group.Items...)
			}
		}
	}
	return out
}

type SocialLink struct {
	Icon string
	Link string
}

type Footer struct {
	Message   string
	Copyright string
}

type Search struct {
	Provider SearchProvider
	Options  map[string]string
}

type SiteConfig struct {
	Title            string
	TitleTemplate    string
	Description      string
	Logo             string
	Hostname         string
	BaseRoutePrefix  string
	SocialLinks      []SocialLink
	Footer           Footer
	Search           Search
	EditLinkTemplate string
	EditLinkText     string
}

func (s SiteConfig) clone() SiteConfig {
	out := s
	if s.SocialLinks != nil {
		out.SocialLinks = append([]SocialLink(nil), s.SocialLinks...)
	}
	if s.Search.Options != nil {
		out.Search.Options = make(map[string]string, len(s.Search.Options))
		for k, v := range s.Search.Options {
			out.Search.Options[k] = v
		}
	}
	return out
}
