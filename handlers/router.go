package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ZacxDev/go-docs-site/logging"
	"github.com/ZacxDev/go-docs-site/site"
	"github.com/ZacxDev/go-docs-site/utils"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// StoreSource hands out the current store. config.Holder implements it.
type StoreSource interface {
	Store() *site.Store
}

type localeSummary struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Lang   string `json:"lang"`
	Prefix string `json:"prefix"`
}

type navLink struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type sidebarGroup struct {
	Text  string    `json:"text"`
	Items []navLink `json:"items"`
}

type localeDetail struct {
	localeSummary
	Nav     []navLink      `json:"nav"`
	Sidebar []sidebarGroup `json:"sidebar"`
}

func SetupRouter(source StoreSource) *mux.Router {
	router := mux.NewRouter()
	router.Use(logRequests)
	router.NotFoundHandler = Custom404Handler(source)

	router.HandleFunc("/api/locales", func(w http.ResponseWriter, r *http.Request) {
		store := source.Store()
		var out []localeSummary
		for _, code := range store.LocaleCodes() {
			lc, err := store.ResolveLocale(code)
			if err != nil {
				writeError(w, err)
				return
			}
			out = append(out, summarize(lc.Locale))
		}
		writeJSON(w, http.StatusOK, out)
	}).Methods("GET")

	router.HandleFunc("/api/locales/{code}", func(w http.ResponseWriter, r *http.Request) {
		lc, err := source.Store().ResolveLocale(mux.Vars(r)["code"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, detail(lc))
	}).Methods("GET")

	router.HandleFunc("/api/locales/{code}/edit-link", func(w http.ResponseWriter, r *http.Request) {
		link, err := source.Store().RenderEditLink(mux.Vars(r)["code"], r.URL.Query().Get("path"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"url": link})
	}).Methods("GET")

	router.HandleFunc("/nav/{code}", NavHandler(source)).Methods("GET")

	router.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		store := source.Store()
		content, err := utils.GenerateSitemapContent(store, store.Site().Hostname, time.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(content))
	}).Methods("GET")

	return router
}

func summarize(l site.Locale) localeSummary {
	return localeSummary{Code: l.Code, Label: l.Label, Lang: l.LangTag, Prefix: l.PathPrefix}
}

func detail(lc site.LocaleConfig) localeDetail {
	out := localeDetail{localeSummary: summarize(lc.Locale), Nav: []navLink{}, Sidebar: []sidebarGroup{}}
	for _, item := range lc.Nav {
		out.Nav = append(out.Nav, navLink{Text: item.Text, Link: item.Link})
	}
	for _, group := range lc.Sidebar {
		g := sidebarGroup{Text: group.Text, Items: []navLink{}}
		for _, item := range group.Items {
			g.Items = append(g.Items, navLink{Text: item.Text, Link: item.Link})
		}
		out.Sidebar = append(out.Sidebar, g)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps accessor errors to "not found" and "bad request"; the
// caller is expected to fall back rather than fail.
func writeError(w http.ResponseWriter, err error) {
	var unknown *site.UnknownLocaleError
	var badPath *site.InvalidPagePathError
	switch {
	case errors.As(err, &unknown):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &badPath):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	logger := logging.WithComponent("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug().
			Str("event", "http.request").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
