package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traden-dev/traden/shared/domain"
	internal_errors "github.com/traden-dev/traden/shared/errors"
)

// --- Mocks ---

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	createThreadFunc func(title, content string, category domain.CategoryName) (domain.Thread, error)
	listThreadsFunc  func(filter domain.ThreadFilter, sortBy string) ([]domain.Thread, error)
	getThreadFunc    func(id domain.ThreadId) (domain.ThreadWithReplies, error)
	updateThreadFunc func(id domain.ThreadId, title, content string) error
	deleteThreadFunc func(id domain.ThreadId) error

	createCalled bool
	createCategoryArg domain.CategoryName
}

func (m *MockThreadStorage) CreateThread(title, content string, category domain.CategoryName) (domain.Thread, error) {
	m.createCalled = true
	m.createCategoryArg = category
	if m.createThreadFunc != nil {
		return m.createThreadFunc(title, content, category)
	}
	return domain.Thread{Id: 1, Title: title, Content: content, Category: category}, nil
}

func (m *MockThreadStorage) ListThreads(filter domain.ThreadFilter, sortBy string) ([]domain.Thread, error) {
	if m.listThreadsFunc != nil {
		return m.listThreadsFunc(filter, sortBy)
	}
	return nil, nil
}

func (m *MockThreadStorage) GetThread(id domain.ThreadId) (domain.ThreadWithReplies, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(id)
	}
	return domain.ThreadWithReplies{Thread: domain.Thread{Id: id}}, nil
}

func (m *MockThreadStorage) UpdateThread(id domain.ThreadId, title, content string) error {
	if m.updateThreadFunc != nil {
		return m.updateThreadFunc(id, title, content)
	}
	return nil
}

func (m *MockThreadStorage) DeleteThread(id domain.ThreadId) error {
	if m.deleteThreadFunc != nil {
		return m.deleteThreadFunc(id)
	}
	return nil
}

// --- Tests ---

func TestThreadCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		wantErr bool
	}{
		{"valid", "title", "content", false},
		{"empty title", "", "content", true},
		{"empty content", "title", "", true},
		{"whitespace only title", "   ", "content", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &MockThreadStorage{}
			svc := NewThread(storage)

			_, err := svc.Create(tt.title, tt.content, "")

			if !tt.wantErr {
				require.NoError(t, err)
				assert.True(t, storage.createCalled)
				return
			}
			var statusErr *internal_errors.ErrorWithStatusCode
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, 400, statusErr.StatusCode)
			assert.False(t, storage.createCalled, "storage must not be hit on validation failure")
		})
	}
}

func TestThreadCreate_DefaultCategory(t *testing.T) {
	storage := &MockThreadStorage{}
	svc := NewThread(storage)

	_, err := svc.Create("title", "content", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategory, storage.createCategoryArg)

	_, err = svc.Create("title", "content", "Teknik")
	require.NoError(t, err)
	assert.Equal(t, "Teknik", storage.createCategoryArg)
}

func TestThreadUpdate_NoValidation(t *testing.T) {
	var gotTitle, gotContent string
	storage := &MockThreadStorage{
		updateThreadFunc: func(id domain.ThreadId, title, content string) error {
			gotTitle, gotContent = title, content
			return nil
		},
	}
	svc := NewThread(storage)

	// Updates overwrite unconditionally, even with empty fields.
	require.NoError(t, svc.Update(1, "", ""))
	assert.Equal(t, "", gotTitle)
	assert.Equal(t, "", gotContent)
}

func TestThreadService_PassesThroughStorageErrors(t *testing.T) {
	storageErr := errors.New("disk on fire")
	storage := &MockThreadStorage{
		getThreadFunc: func(id domain.ThreadId) (domain.ThreadWithReplies, error) {
			return domain.ThreadWithReplies{}, storageErr
		},
		deleteThreadFunc: func(id domain.ThreadId) error {
			return storageErr
		},
	}
	svc := NewThread(storage)

	_, err := svc.Get(1)
	assert.ErrorIs(t, err, storageErr)
	assert.ErrorIs(t, svc.Delete(1), storageErr)
}
