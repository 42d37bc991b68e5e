package handler

import (
	"bytes"
	"fmt"
	"net/http"

	frontend_domain "github.com/traden-dev/traden/frontend/internal/domain"
	"github.com/traden-dev/traden/shared/domain"
	"github.com/traden-dev/traden/shared/logger"
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common frontend_domain.CommonTemplateData
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateWithError(w, r, name, data, "")
}

func (h *Handler) renderTemplateWithError(w http.ResponseWriter, r *http.Request, name string, data any, errMsg string) {
	tmpl, ok := h.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	if errMsg == "" {
		errMsg = r.URL.Query().Get("error")
	}

	wrapped := TemplateData{
		Data:   data,
		Common: frontend_domain.CommonTemplateData{Error: errMsg},
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderReply(reply domain.Reply) *frontend_domain.Reply {
	return &frontend_domain.Reply{
		Reply: reply,
		Html:  h.TextProcessor.Render(reply.Content),
	}
}

func (h *Handler) renderThread(thread domain.ThreadWithReplies) (*frontend_domain.Thread, []*frontend_domain.Reply) {
	rendered := &frontend_domain.Thread{
		Thread: thread.Thread,
		Html:   h.TextProcessor.Render(thread.Content),
	}
	replies := make([]*frontend_domain.Reply, len(thread.Replies))
	for i, reply := range thread.Replies {
		replies[i] = h.renderReply(reply)
	}
	return rendered, replies
}
