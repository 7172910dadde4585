package handlers

import (
	"net/http"

	"github.com/gobuffalo/plush"
)

const notFoundTemplate = `<main class="not-found">
  <h1>404</h1>
  <p>Nothing lives at <code><%= path %></code>.</p>
  <a href="/nav/<%= fallback.Code %>"><%= fallback.Label %></a>
</main>
`

// Custom404Handler points unknown pages and locales at the default locale.
func Custom404Handler(source StoreSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := plush.NewContext()
		ctx.Set("path", r.URL.Path)
		ctx.Set("fallback", source.Store().DefaultLocale().Locale)

		content, err := renderPlush(notFoundTemplate, ctx)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(content))
	}
}
