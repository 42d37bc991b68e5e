package handler

import (
	"fmt"
	"html/template"
	"net/http"

	frontend_domain "github.com/traden-dev/traden/frontend/internal/domain"
	"github.com/traden-dev/traden/shared/domain"
	"github.com/traden-dev/traden/shared/logger"
)

func (h *Handler) NewThreadGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "new_thread.html", frontend_domain.NewThreadPageData{
		Category:   domain.DefaultCategory,
		Categories: domain.Categories,
	})
}

// POST handler for creating a new thread. A failed creation re-renders the
// form with the error and the submitted values intact.
func (h *Handler) NewThreadPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		data := frontend_domain.NewThreadPageData{Category: domain.DefaultCategory, Categories: domain.Categories}
		h.renderTemplateWithError(w, r, "new_thread.html", data, "Invalid form data.")
		return
	}

	data := frontend_domain.NewThreadPageData{
		Title:      r.FormValue("title"),
		Content:    r.FormValue("content"),
		Category:   r.FormValue("category"),
		Categories: domain.Categories,
	}

	created, err := h.Forum.CreateThread(data.Title, data.Content, data.Category)
	if err != nil {
		logger.Log.Error("creating thread via API", "error", err)
		h.renderTemplateWithError(w, r, "new_thread.html", data, template.HTMLEscapeString(err.Error()))
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/thread/%d", created.Id), http.StatusSeeOther)
}
