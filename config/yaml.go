package config

// config/yaml.go

type SiteManifest struct {
	Title         string        `yaml:"title"`
	TitleTemplate string        `yaml:"titleTemplate"`
	Description   string        `yaml:"description"`
	Logo          string        `yaml:"logo"`
	Hostname      string        `yaml:"hostname"`
	Base          string        `yaml:"base"`
	SocialLinks   []SocialLink  `yaml:"socialLinks"`
	Footer        Footer        `yaml:"footer"`
	Search        Search        `yaml:"search"`
	EditLink      EditLink      `yaml:"editLink"`
	Locales       LocaleEntries `yaml:"locales"`
}

type SocialLink struct {
	Icon string `yaml:"icon"`
	Link string `yaml:"link"`
}

type Footer struct {
	Message   string `yaml:"message"`
	Copyright string `yaml:"copyright"`
}

type Search struct {
	Provider string            `yaml:"provider"`
	Options  map[string]string `yaml:"options"`
}

type EditLink struct {
	Pattern string `yaml:"pattern"`
	Text    string `yaml:"text"`
}

type LocaleEntry struct {
	Code        string      `yaml:"-"`
	Label       string      `yaml:"label"`
	Lang        string      `yaml:"lang"`
	Link        string      `yaml:"link"`
	ThemeConfig ThemeConfig `yaml:"themeConfig"`
}

type ThemeConfig struct {
	Nav     []Link         `yaml:"nav"`
	Sidebar []SidebarGroup `yaml:"sidebar"`
}

type Link struct {
	Text string `yaml:"text"`
	Link string `yaml:"link"`
}

type SidebarGroup struct {
	Text  string `yaml:"text"`
	Items []Link `yaml:"items"`
}
