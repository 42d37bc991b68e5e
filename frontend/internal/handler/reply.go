package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/traden-dev/traden/shared/domain"
	"github.com/traden-dev/traden/shared/logger"
)

// POST handler for creating a new reply within a thread.
func (h *Handler) ReplyCreatePostHandler(w http.ResponseWriter, r *http.Request) {
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

	_, err = h.Forum.CreateReply(domain.ThreadId(threadId), r.FormValue("content"))
	if err != nil {
		logger.Log.Error("creating reply via API", "thread", threadId, "error", err)
		redirectWithError(w, r, targetURL, template.HTMLEscapeString(err.Error()))
		return
	}

	http.Redirect(w, r, targetURL+"#bottom", http.StatusSeeOther)
}

// POST handler for editing a reply. The owning thread id comes from the form
// so the handler knows where to redirect.
func (h *Handler) ReplyEditPostHandler(w http.ResponseWriter, r *http.Request) {
	replyId, err := parseIdParam(chi.URLParam(r, "reply"), "reply ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/", "Invalid form data.")
		return
	}
	targetURL := replyRedirectTarget(r)

	if err := h.Forum.UpdateReply(domain.ReplyId(replyId), r.FormValue("content")); err != nil {
		logger.Log.Error("updating reply via API", "reply", replyId, "error", err)
		redirectWithError(w, r, targetURL, template.HTMLEscapeString(err.Error()))
		return
	}

	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}

// POST handler for deleting a reply.
func (h *Handler) ReplyDeletePostHandler(w http.ResponseWriter, r *http.Request) {
	replyId, err := parseIdParam(chi.URLParam(r, "reply"), "reply ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/", "Invalid form data.")
		return
	}
	targetURL := replyRedirectTarget(r)

	if err := h.Forum.DeleteReply(domain.ReplyId(replyId)); err != nil {
		logger.Log.Error("deleting reply via API", "reply", replyId, "error", err)
		redirectWithError(w, r, targetURL, template.HTMLEscapeString(err.Error()))
		return
	}

	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}

func replyRedirectTarget(r *http.Request) string {
	if threadId, err := parseIdParam(r.FormValue("thread_id"), "thread ID"); err == nil {
		return fmt.Sprintf("/thread/%d", threadId)
	}
	return "/"
}
