package handler

import (
	"html/template"

	"github.com/traden-dev/traden/frontend/internal/markdown"
	"github.com/traden-dev/traden/frontend/internal/state"
)

type Handler struct {
	Templates     map[string]*template.Template
	TextProcessor *markdown.TextProcessor
	Forum         *state.Forum
}

func New(templates map[string]*template.Template, textProcessor *markdown.TextProcessor, forum *state.Forum) *Handler {
	return &Handler{
		Templates:     templates,
		TextProcessor: textProcessor,
		Forum:         forum,
	}
}
