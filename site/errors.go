package site

import "fmt"

// StructureMismatchError means a locale's sidebar does not line up with the
// root locale's at GroupIndex.
type StructureMismatchError struct {
	Locale     string
	GroupIndex int
}

func (e *StructureMismatchError) Error() string {
	return fmt.Sprintf("locale %q: sidebar structure differs from root at group %d", e.Locale, e.GroupIndex)
}

type PrefixMismatchError struct {
	Locale string
	Link   string
	Prefix string
}

func (e *PrefixMismatchError) Error() string {
	return fmt.Sprintf("locale %q: link %q does not start with %q", e.Locale, e.Link, e.Prefix)
}

type DuplicateLinkError struct {
	Locale string
	Link   string
}

func (e *DuplicateLinkError) Error() string {
	return fmt.Sprintf("locale %q: duplicate sidebar link %q", e.Locale, e.Link)
}

type InvalidEditLinkTemplateError struct {
	Template     string
	Placeholders int
}

func (e *InvalidEditLinkTemplateError) Error() string {
	return fmt.Sprintf("edit link template %q must contain exactly one %s placeholder, found %d",
		e.Template, EditLinkPlaceholder, e.Placeholders)
}

type UnknownLocaleError struct {
	Code string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("unknown locale %q", e.Code)
}

type InvalidPagePathError struct {
	Path   string
	Reason string
}

func (e *InvalidPagePathError) Error() string {
	return fmt.Sprintf("invalid page path %q: %s", e.Path, e.Reason)
}

// InvalidLocaleError reports a locale that breaks the construction
// constraints: code uniqueness, a single root, prefix format.
type InvalidLocaleError struct {
	Locale string
	Reason string
}

func (e *InvalidLocaleError) Error() string {
	if e.Locale == "" {
		return "invalid locales: " + e.Reason
	}
	return fmt.Sprintf("invalid locale %q: %s", e.Locale, e.Reason)
}

type InvalidSiteConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidSiteConfigError) Error() string {
	return fmt.Sprintf("invalid site config %s: %s", e.Field, e.Reason)
}
