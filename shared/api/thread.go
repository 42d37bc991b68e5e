package api

import (
	"github.com/traden-dev/traden/shared/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category,omitempty"`
}

// UpdateThreadRequest carries no validation tags: updates overwrite
// unconditionally and no-op silently on a missing id.
type UpdateThreadRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Response DTOs

// ThreadResponse wraps a full thread with its replies, oldest first.
type ThreadResponse struct {
	domain.ThreadWithReplies
}

type IdResponse struct {
	Id int64 `json:"id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// MessageResponse is the liveness payload served at the API root.
type MessageResponse struct {
	Message string `json:"message"`
}
