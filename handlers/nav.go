package handlers

import (
	"net/http"

	"github.com/ZacxDev/go-docs-site/site"
	"github.com/gobuffalo/plush"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

const navTemplate = `<nav lang="<%= locale.LangTag %>">
  <ul class="locales">
  <%= for (l) in locales { %>
    <li><a href="/nav/<%= l.Code %>"><%= l.Label %></a></li>
  <% } %>
  </ul>
  <ul class="nav">
  <%= for (item) in nav { %>
    <li><a href="<%= item.Link %>"><%= item.Text %></a></li>
  <% } %>
  </ul>
  <%= for (group) in sidebar { %>
  <section class="sidebar-group">
    <h2><%= group.Text %></h2>
    <ul>
    <%= for (item) in group.Items { %>
      <li><a href="<%= item.Link %>"><%= item.Text %></a></li>
    <% } %>
    </ul>
  </section>
  <% } %>
  <%= if (editLink != "") { %>
  <a class="edit-link" href="<%= editLink %>"><%= editLinkText %></a>
  <% } %>
  <footer><%= footer.Message %> <%= footer.Copyright %></footer>
</nav>
`

// NavHandler renders the navigation outline of one locale. With ?page= set
// the outline carries that page's edit link; an invalid page only drops it.
func NavHandler(source StoreSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := source.Store()
		lc, err := store.ResolveLocale(mux.Vars(r)["code"])
		if err != nil {
			Custom404Handler(source)(w, r)
			return
		}

		ctx := plush.NewContext()
		ctx.Set("locale", lc.Locale)
		ctx.Set("nav", lc.Nav)
		ctx.Set("sidebar", lc.Sidebar)
		ctx.Set("footer", store.Site().Footer)

		var locales []site.Locale
		for _, code := range store.LocaleCodes() {
			other, err := store.ResolveLocale(code)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			locales = append(locales, other.Locale)
		}
		ctx.Set("locales", locales)

		editLink := ""
		if page := r.URL.Query().Get("page"); page != "" {
			if link, err := store.RenderEditLink(lc.Locale.Code, page); err == nil {
				editLink = link
			}
		}
		text := store.Site().EditLinkText
		if text == "" {
			text = "Edit this page"
		}
		ctx.Set("editLink", editLink)
		ctx.Set("editLinkText", text)

		html, err := renderPlush(navTemplate, ctx)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}

func renderPlush(source string, ctx *plush.Context) (string, error) {
	tmpl, err := plush.Parse(source)
	if err != nil {
		return "", errors.Wrap(err, "parse template")
	}
	out, err := tmpl.Exec(ctx)
	if err != nil {
		return "", errors.Wrap(err, "render template")
	}
	return out, nil
}
