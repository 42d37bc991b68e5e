package service

import (
	"strings"

	"github.com/traden-dev/traden/shared/domain"
	internal_errors "github.com/traden-dev/traden/shared/errors"
)

type ThreadService interface {
	Create(title, content string, category domain.CategoryName) (domain.Thread, error)
	List(filter domain.ThreadFilter, sortBy string) ([]domain.Thread, error)
	Get(id domain.ThreadId) (domain.ThreadWithReplies, error)
	Update(id domain.ThreadId, title, content string) error
	Delete(id domain.ThreadId) error
}

type ThreadStorage interface {
	CreateThread(title, content string, category domain.CategoryName) (domain.Thread, error)
	ListThreads(filter domain.ThreadFilter, sortBy string) ([]domain.Thread, error)
	GetThread(id domain.ThreadId) (domain.ThreadWithReplies, error)
	UpdateThread(id domain.ThreadId, title, content string) error
	DeleteThread(id domain.ThreadId) error
}

type Thread struct {
	storage ThreadStorage
}

func NewThread(storage ThreadStorage) *Thread {
	return &Thread{storage}
}

func (t *Thread) Create(title, content string, category domain.CategoryName) (domain.Thread, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return domain.Thread{}, internal_errors.Validation("Title and content are required")
	}
	if category == "" {
		category = domain.DefaultCategory
	}
	return t.storage.CreateThread(title, content, category)
}

func (t *Thread) List(filter domain.ThreadFilter, sortBy string) ([]domain.Thread, error) {
	return t.storage.ListThreads(filter, sortBy)
}

func (t *Thread) Get(id domain.ThreadId) (domain.ThreadWithReplies, error) {
	return t.storage.GetThread(id)
}

// Update overwrites unconditionally; a missing id is a silent no-op per the
// update contract, so no validation happens here.
func (t *Thread) Update(id domain.ThreadId, title, content string) error {
	return t.storage.UpdateThread(id, title, content)
}

func (t *Thread) Delete(id domain.ThreadId) error {
	return t.storage.DeleteThread(id)
}
