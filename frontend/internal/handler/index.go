package handler

import (
	"html/template"
	"net/http"

	frontend_domain "github.com/traden-dev/traden/frontend/internal/domain"
	"github.com/traden-dev/traden/shared/domain"
)

func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var errMsg string
	if err := h.Forum.SetFilters(query.Get("sortBy"), query.Get("category"), query.Get("search")); err != nil {
		// Display the API error on the page; the list itself resets to empty.
		errMsg = template.HTMLEscapeString(err.Error())
	}

	snap := h.Forum.Snapshot()
	data := frontend_domain.IndexPageData{
		Threads:       snap.Threads,
		ThreadsLoaded: snap.ThreadsLoaded,
		SortBy:        snap.SortBy,
		Category:      snap.Category,
		SearchQuery:   snap.SearchQuery,
		Categories:    domain.Categories,
	}

	h.renderTemplateWithError(w, r, "index.html", data, errMsg)
}
