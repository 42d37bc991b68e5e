package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/traden-dev/traden/shared/api"
	"github.com/traden-dev/traden/shared/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	replyId, err := h.reply.Create(threadId, body.Content)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.IdResponse{Id: replyId})
}

func (h *Handler) UpdateReply(w http.ResponseWriter, r *http.Request) {
	replyId, err := parseIntParam(chi.URLParam(r, "reply"), "reply ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.UpdateReplyRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.reply.Update(replyId, body.Content); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.IdResponse{Id: replyId})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	replyId, err := parseIntParam(chi.URLParam(r, "reply"), "reply ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.reply.Delete(replyId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.SuccessResponse{Success: true})
}
