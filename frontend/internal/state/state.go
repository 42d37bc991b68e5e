// Package state holds the single source of truth for the current view
// parameters and the last-fetched thread data. Views read snapshots from it and
// dispatch mutations through it; every mutation re-fetches the affected data
// from the backend instead of patching locally.
package state

import (
	"sync"

	"github.com/traden-dev/traden/shared/api"
	"github.com/traden-dev/traden/shared/domain"
	"github.com/traden-dev/traden/shared/logger"
)

// Client is the slice of the API client the state layer depends on.
type Client interface {
	ListThreads(sortBy, category, search string) ([]domain.Thread, error)
	GetThread(id domain.ThreadId) (domain.ThreadWithReplies, error)
	CreateThread(data api.CreateThreadRequest) (domain.Thread, error)
	UpdateThread(id domain.ThreadId, data api.UpdateThreadRequest) error
	DeleteThread(id domain.ThreadId) error
	CreateReply(threadId domain.ThreadId, content string) (domain.ReplyId, error)
	UpdateReply(id domain.ReplyId, content string) error
	DeleteReply(id domain.ReplyId) error
}

type Forum struct {
	client Client

	mu            sync.Mutex
	threads       []domain.Thread
	threadsLoaded bool
	currentThread *domain.ThreadWithReplies
	sortBy        string
	category      string
	searchQuery   string

	// Fetch sequence numbers. A response is applied only if its sequence is
	// still the latest issued, so an out-of-order arrival can never overwrite
	// the result of a newer request.
	listSeq   uint64
	threadSeq uint64
}

func NewForum(client Client) *Forum {
	return &Forum{
		client: client,
		sortBy: domain.SortCreatedAt,
	}
}

// Snapshot is the view-facing copy of the current state.
type Snapshot struct {
	Threads       []domain.Thread
	ThreadsLoaded bool
	CurrentThread *domain.ThreadWithReplies
	SortBy        string
	Category      string
	SearchQuery   string
}

func (f *Forum) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Threads:       f.threads,
		ThreadsLoaded: f.threadsLoaded,
		CurrentThread: f.currentThread,
		SortBy:        f.sortBy,
		Category:      f.category,
		SearchQuery:   f.searchQuery,
	}
}

// SetFilters updates the view parameters and re-fetches the thread list when
// any of them changed, or when the list has never been fetched.
func (f *Forum) SetFilters(sortBy, category, searchQuery string) error {
	if sortBy == "" {
		sortBy = domain.SortCreatedAt
	}

	f.mu.Lock()
	changed := sortBy != f.sortBy || category != f.category || searchQuery != f.searchQuery
	f.sortBy, f.category, f.searchQuery = sortBy, category, searchQuery
	needFetch := changed || !f.threadsLoaded
	f.mu.Unlock()

	if !needFetch {
		return nil
	}
	return f.FetchThreads()
}

// FetchThreads reloads the thread list with the current filters. On failure the
// visible list resets to empty rather than keeping the last-known-good state.
func (f *Forum) FetchThreads() error {
	f.mu.Lock()
	f.listSeq++
	seq := f.listSeq
	sortBy, category, search := f.sortBy, f.category, f.searchQuery
	f.mu.Unlock()

	threads, err := f.client.ListThreads(sortBy, category, search)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.listSeq {
		// A newer fetch was issued while this one was in flight; drop it.
		return nil
	}
	f.threadsLoaded = true
	if err != nil {
		logger.Log.Error("failed to fetch threads", "error", err)
		f.threads = []domain.Thread{}
		return err
	}
	f.threads = threads
	return nil
}

// FetchThread loads a single thread with its replies into CurrentThread.
func (f *Forum) FetchThread(id domain.ThreadId) error {
	f.mu.Lock()
	f.threadSeq++
	seq := f.threadSeq
	f.mu.Unlock()

	thread, err := f.client.GetThread(id)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.threadSeq {
		return nil
	}
	if err != nil {
		return err
	}
	f.currentThread = &thread
	return nil
}

func (f *Forum) CreateThread(title, content, category string) (domain.Thread, error) {
	created, err := f.client.CreateThread(api.CreateThreadRequest{
		Title:    title,
		Content:  content,
		Category: category,
	})
	if err != nil {
		return domain.Thread{}, err
	}
	if err := f.FetchThreads(); err != nil {
		logger.Log.Error("failed to refresh thread list after create", "error", err)
	}
	return created, nil
}

func (f *Forum) UpdateThread(id domain.ThreadId, title, content string) error {
	if err := f.client.UpdateThread(id, api.UpdateThreadRequest{Title: title, Content: content}); err != nil {
		return err
	}
	if err := f.FetchThreads(); err != nil {
		logger.Log.Error("failed to refresh thread list after update", "error", err)
	}
	return f.FetchThread(id)
}

func (f *Forum) DeleteThread(id domain.ThreadId) error {
	if err := f.client.DeleteThread(id); err != nil {
		return err
	}

	f.mu.Lock()
	if f.currentThread != nil && f.currentThread.Id == id {
		f.currentThread = nil
	}
	f.mu.Unlock()

	return f.FetchThreads()
}

func (f *Forum) CreateReply(threadId domain.ThreadId, content string) (domain.ReplyId, error) {
	id, err := f.client.CreateReply(threadId, content)
	if err != nil {
		return 0, err
	}
	if err := f.FetchThread(threadId); err != nil {
		logger.Log.Error("failed to refresh thread after reply", "error", err)
	}
	if err := f.FetchThreads(); err != nil {
		logger.Log.Error("failed to refresh thread list after reply", "error", err)
	}
	return id, nil
}

func (f *Forum) UpdateReply(id domain.ReplyId, content string) error {
	if err := f.client.UpdateReply(id, content); err != nil {
		return err
	}
	f.refreshAfterReplyMutation()
	return nil
}

func (f *Forum) DeleteReply(id domain.ReplyId) error {
	if err := f.client.DeleteReply(id); err != nil {
		return err
	}
	f.refreshAfterReplyMutation()
	return nil
}

func (f *Forum) refreshAfterReplyMutation() {
	f.mu.Lock()
	var currentId domain.ThreadId = -1
	if f.currentThread != nil {
		currentId = f.currentThread.Id
	}
	f.mu.Unlock()

	if currentId >= 0 {
		if err := f.FetchThread(currentId); err != nil {
			logger.Log.Error("failed to refresh current thread", "error", err)
		}
	}
	if err := f.FetchThreads(); err != nil {
		logger.Log.Error("failed to refresh thread list", "error", err)
	}
}
