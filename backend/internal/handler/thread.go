package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/traden-dev/traden/shared/api"
	"github.com/traden-dev/traden/shared/domain"
	"github.com/traden-dev/traden/shared/utils"
)

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sortBy := query.Get("sortBy")
	if sortBy == "" {
		sortBy = domain.SortCreatedAt
	}
	filter := domain.ThreadFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
	}

	threads, err := h.thread.List(filter, sortBy)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, threads)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Create(body.Title, body.Content, body.Category)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, thread)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	thread, err := h.thread.Get(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ThreadResponse{ThreadWithReplies: thread})
}

func (h *Handler) UpdateThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.UpdateThreadRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.Update(threadId, body.Title, body.Content); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.IdResponse{Id: threadId})
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.thread.Delete(threadId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.SuccessResponse{Success: true})
}
