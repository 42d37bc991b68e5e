package frontend_domain

import (
	"html/template"

	"github.com/traden-dev/traden/shared/domain"
)

// Thread wraps domain.Thread with its content rendered to safe HTML.
type Thread struct {
	domain.Thread
	Html template.HTML
}

// Reply wraps domain.Reply with its content rendered to safe HTML.
type Reply struct {
	domain.Reply
	Html template.HTML
}
