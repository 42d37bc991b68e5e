package service

import (
	"strings"

	"github.com/traden-dev/traden/shared/domain"
	internal_errors "github.com/traden-dev/traden/shared/errors"
)

type ReplyService interface {
	Create(threadId domain.ThreadId, content string) (domain.ReplyId, error)
	Update(id domain.ReplyId, content string) error
	Delete(id domain.ReplyId) error
}

type ReplyStorage interface {
	CreateReply(threadId domain.ThreadId, content string) (domain.ReplyId, error)
	UpdateReply(id domain.ReplyId, content string) error
	DeleteReply(id domain.ReplyId) error
}

type Reply struct {
	storage ReplyStorage
}

func NewReply(storage ReplyStorage) *Reply {
	return &Reply{storage}
}

func (r *Reply) Create(threadId domain.ThreadId, content string) (domain.ReplyId, error) {
	if strings.TrimSpace(content) == "" {
		return -1, internal_errors.Validation("Content is required")
	}
	return r.storage.CreateReply(threadId, content)
}

// Update overwrites the reply content unconditionally; only the target's
// existence is enforced, by the storage layer.
func (r *Reply) Update(id domain.ReplyId, content string) error {
	return r.storage.UpdateReply(id, content)
}

func (r *Reply) Delete(id domain.ReplyId) error {
	return r.storage.DeleteReply(id)
}
