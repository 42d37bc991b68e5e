package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	frontend_domain "github.com/traden-dev/traden/frontend/internal/domain"
	"github.com/traden-dev/traden/shared/domain"
	"github.com/traden-dev/traden/shared/logger"
)

func (h *Handler) ThreadGetHandler(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Forum.FetchThread(domain.ThreadId(threadId)); err != nil {
		if statusCodeOf(err) == http.StatusNotFound {
			http.Error(w, fmt.Sprintf("Thread %d not found", threadId), http.StatusNotFound)
			return
		}
		logger.Log.Error("fetching thread from API", "thread", threadId, "error", err)
		http.Error(w, "Internal error: backend unavailable", http.StatusInternalServerError)
		return
	}

	snap := h.Forum.Snapshot()
	if snap.CurrentThread == nil {
		http.Error(w, fmt.Sprintf("Thread %d not found", threadId), http.StatusNotFound)
		return
	}

	thread, replies := h.renderThread(*snap.CurrentThread)
	data := frontend_domain.ThreadPageData{
		Thread:        thread,
		Replies:       replies,
		EditingThread: r.URL.Query().Get("edit") == "thread",
	}
	if editReply := r.URL.Query().Get("edit_reply"); editReply != "" {
		if id, err := parseIdParam(editReply, "reply ID"); err == nil {
			data.EditingReply = domain.ReplyId(id)
		}
	}

	h.renderTemplate(w, r, "thread.html", data)
}

// POST handler for editing a thread's title and content.
func (h *Handler) ThreadEditPostHandler(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	targetURL := fmt.Sprintf("/thread/%d", threadId)

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, targetURL, "Invalid form data.")
		return
	}

	err = h.Forum.UpdateThread(domain.ThreadId(threadId), r.FormValue("title"), r.FormValue("content"))
	if err != nil {
		logger.Log.Error("updating thread via API", "thread", threadId, "error", err)
		redirectWithError(w, r, targetURL, template.HTMLEscapeString(err.Error()))
		return
	}

	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}

// POST handler for deleting a thread.
func (h *Handler) ThreadDeletePostHandler(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Forum.DeleteThread(domain.ThreadId(threadId)); err != nil {
		logger.Log.Error("deleting thread via API", "thread", threadId, "error", err)
		redirectWithError(w, r, fmt.Sprintf("/thread/%d", threadId), template.HTMLEscapeString(err.Error()))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
