package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/traden-dev/traden/frontend/internal/setup"
	"github.com/traden-dev/traden/frontend/web"
	mw "github.com/traden-dev/traden/shared/middleware"
)

// New creates and configures the web router.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(mw.RequestLogger)
	r.Use(middleware.Recoverer)

	h := deps.Handler

	r.Get("/", h.IndexGetHandler)

	r.Get("/new", h.NewThreadGetHandler)
	r.Post("/new", h.NewThreadPostHandler)

	r.Route("/thread/{thread}", func(r chi.Router) {
		r.Get("/", h.ThreadGetHandler)
		r.Post("/edit", h.ThreadEditPostHandler)
		r.Post("/delete", h.ThreadDeletePostHandler)
		r.Post("/reply", h.ReplyCreatePostHandler)
	})

	r.Route("/reply/{reply}", func(r chi.Router) {
		r.Post("/edit", h.ReplyEditPostHandler)
		r.Post("/delete", h.ReplyDeletePostHandler)
	})

	staticFS, _ := fs.Sub(web.Static, "static")
	r.Method("GET", "/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	return r
}
