package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traden-dev/traden/shared/api"
	"github.com/traden-dev/traden/shared/domain"
)

// mockClient implements Client with overridable functions.
type mockClient struct {
	mu        sync.Mutex
	listCalls int

	listThreadsFunc func(sortBy, category, search string) ([]domain.Thread, error)
	getThreadFunc   func(id domain.ThreadId) (domain.ThreadWithReplies, error)
}

func (m *mockClient) ListThreads(sortBy, category, search string) ([]domain.Thread, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	if m.listThreadsFunc != nil {
		return m.listThreadsFunc(sortBy, category, search)
	}
	return []domain.Thread{}, nil
}

func (m *mockClient) ListCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

func (m *mockClient) GetThread(id domain.ThreadId) (domain.ThreadWithReplies, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(id)
	}
	return domain.ThreadWithReplies{Thread: domain.Thread{Id: id}}, nil
}

func (m *mockClient) CreateThread(data api.CreateThreadRequest) (domain.Thread, error) {
	return domain.Thread{Id: 1, Title: data.Title, Content: data.Content, Category: data.Category}, nil
}

func (m *mockClient) UpdateThread(id domain.ThreadId, data api.UpdateThreadRequest) error { return nil }
func (m *mockClient) DeleteThread(id domain.ThreadId) error                               { return nil }
func (m *mockClient) CreateReply(threadId domain.ThreadId, content string) (domain.ReplyId, error) {
	return 1, nil
}
func (m *mockClient) UpdateReply(id domain.ReplyId, content string) error { return nil }
func (m *mockClient) DeleteReply(id domain.ReplyId) error                 { return nil }

func TestSetFilters_FetchesOnChange(t *testing.T) {
	var gotSortBy, gotCategory, gotSearch string
	client := &mockClient{
		listThreadsFunc: func(sortBy, category, search string) ([]domain.Thread, error) {
			gotSortBy, gotCategory, gotSearch = sortBy, category, search
			return []domain.Thread{{Id: 1}}, nil
		},
	}
	forum := NewForum(client)

	require.NoError(t, forum.SetFilters("reply_count", "Teknik", "foo"))
	assert.Equal(t, "reply_count", gotSortBy)
	assert.Equal(t, "Teknik", gotCategory)
	assert.Equal(t, "foo", gotSearch)
	assert.Equal(t, 1, client.ListCalls())

	snap := forum.Snapshot()
	assert.True(t, snap.ThreadsLoaded)
	assert.Len(t, snap.Threads, 1)

	// Unchanged parameters must not trigger a re-fetch.
	require.NoError(t, forum.SetFilters("reply_count", "Teknik", "foo"))
	assert.Equal(t, 1, client.ListCalls())

	// Any single parameter change re-fetches.
	require.NoError(t, forum.SetFilters("reply_count", "Teknik", "bar"))
	assert.Equal(t, 2, client.ListCalls())
}

func TestSetFilters_EmptySortDefaults(t *testing.T) {
	var gotSortBy string
	client := &mockClient{
		listThreadsFunc: func(sortBy, category, search string) ([]domain.Thread, error) {
			gotSortBy = sortBy
			return nil, nil
		},
	}
	forum := NewForum(client)

	require.NoError(t, forum.SetFilters("", "", ""))
	assert.Equal(t, domain.SortCreatedAt, gotSortBy)
}

func TestFetchThreads_FailureResetsListToEmpty(t *testing.T) {
	fail := false
	client := &mockClient{
		listThreadsFunc: func(sortBy, category, search string) ([]domain.Thread, error) {
			if fail {
				return nil, errors.New("network down")
			}
			return []domain.Thread{{Id: 1}, {Id: 2}}, nil
		},
	}
	forum := NewForum(client)

	require.NoError(t, forum.FetchThreads())
	assert.Len(t, forum.Snapshot().Threads, 2)

	fail = true
	require.Error(t, forum.FetchThreads())
	snap := forum.Snapshot()
	assert.Empty(t, snap.Threads, "a failed fetch resets the visible list, not preserves it")
	assert.True(t, snap.ThreadsLoaded)
}

func TestFetchThreads_StaleResponseDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})
	var calls int
	var mu sync.Mutex
	client := &mockClient{}
	client.listThreadsFunc = func(sortBy, category, search string) ([]domain.Thread, error) {
		mu.Lock()
		n := calls
		calls++
		mu.Unlock()
		if n == 0 {
			close(slowStarted)
			<-slowRelease
			return []domain.Thread{{Id: 1, Title: "stale"}}, nil
		}
		return []domain.Thread{{Id: 2, Title: "fresh"}}, nil
	}
	forum := NewForum(client)

	// First fetch hangs in flight...
	done := make(chan error)
	go func() { done <- forum.FetchThreads() }()
	<-slowStarted

	// ...while a newer fetch completes.
	require.NoError(t, forum.FetchThreads())
	require.Equal(t, "fresh", forum.Snapshot().Threads[0].Title)

	// The stale response arrives late and must not overwrite the newer result.
	close(slowRelease)
	require.NoError(t, <-done)
	assert.Equal(t, "fresh", forum.Snapshot().Threads[0].Title)
}

func TestCreateReply_RefetchesThreadAndList(t *testing.T) {
	var fetchedThread domain.ThreadId
	client := &mockClient{
		getThreadFunc: func(id domain.ThreadId) (domain.ThreadWithReplies, error) {
			fetchedThread = id
			return domain.ThreadWithReplies{
				Thread:  domain.Thread{Id: id, ReplyCount: 1},
				Replies: []domain.Reply{{Id: 1, ThreadId: id, Content: "C"}},
			}, nil
		},
	}
	forum := NewForum(client)

	_, err := forum.CreateReply(7, "C")
	require.NoError(t, err)

	assert.Equal(t, domain.ThreadId(7), fetchedThread)
	assert.Equal(t, 1, client.ListCalls())

	snap := forum.Snapshot()
	require.NotNil(t, snap.CurrentThread)
	assert.Equal(t, int64(7), snap.CurrentThread.Id)
	assert.Len(t, snap.CurrentThread.Replies, 1)
}

func TestDeleteThread_ClearsCurrentThread(t *testing.T) {
	client := &mockClient{}
	forum := NewForum(client)

	require.NoError(t, forum.FetchThread(5))
	require.NotNil(t, forum.Snapshot().CurrentThread)

	require.NoError(t, forum.DeleteThread(5))
	assert.Nil(t, forum.Snapshot().CurrentThread)
}
