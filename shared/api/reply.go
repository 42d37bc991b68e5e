package api

// Request DTOs

type CreateReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

// UpdateReplyRequest carries no validation tags: like thread updates, a reply
// edit overwrites unconditionally and only the target's existence is checked.
type UpdateReplyRequest struct {
	Content string `json:"content"`
}
