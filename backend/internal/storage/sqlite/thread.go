package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/traden-dev/traden/shared/domain"
	internal_errors "github.com/traden-dev/traden/shared/errors"
)

// threadColumns is the projection shared by every thread read. reply_count is
// derived from the join; last_activity is the stored, mutation-stamped column.
const threadColumns = `
	t.id, t.title, t.content, t.category, t.created_at, t.last_activity,
	COUNT(r.id) AS reply_count
`

func (s *Storage) CreateThread(title, content string, category domain.CategoryName) (domain.Thread, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(`
	INSERT INTO threads (title, content, category, created_at, last_activity)
	VALUES (?, ?, ?, ?, ?)`,
		title, content, category, now, now)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to fetch inserted thread id: %w", err)
	}

	return domain.Thread{
		Id:           id,
		Title:        title,
		Content:      content,
		Category:     category,
		CreatedAt:    now,
		LastActivity: now,
		ReplyCount:   0,
	}, nil
}

func (s *Storage) ListThreads(filter domain.ThreadFilter, sortBy string) ([]domain.Thread, error) {
	query := `
	SELECT ` + threadColumns + `
	FROM threads t
	LEFT JOIN replies r ON r.thread_id = t.id`

	var conditions []string
	var args []any
	if filter.Category != "" {
		conditions = append(conditions, "t.category = ?")
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		conditions = append(conditions, "(LOWER(t.title) LIKE ? OR LOWER(t.content) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}
	if len(conditions) > 0 {
		query += "\n\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\tGROUP BY t.id"

	switch sortBy {
	case domain.SortLatestActivity:
		query += "\n\tORDER BY t.last_activity DESC"
	case domain.SortReplyCount:
		query += "\n\tORDER BY reply_count DESC, t.created_at DESC"
	default:
		query += "\n\tORDER BY t.created_at DESC"
	}

	threads := []domain.Thread{}
	if err := s.db.Select(&threads, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	return threads, nil
}

func (s *Storage) GetThread(id domain.ThreadId) (domain.ThreadWithReplies, error) {
	var thread domain.Thread
	err := s.db.Get(&thread, `
	SELECT `+threadColumns+`
	FROM threads t
	LEFT JOIN replies r ON r.thread_id = t.id
	WHERE t.id = ?
	GROUP BY t.id`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadWithReplies{}, internal_errors.NotFound("Thread not found")
		}
		return domain.ThreadWithReplies{}, fmt.Errorf("failed to fetch thread: %w", err)
	}

	replies := []domain.Reply{}
	err = s.db.Select(&replies, `
	SELECT id, thread_id, content, created_at
	FROM replies
	WHERE thread_id = ?
	ORDER BY created_at, id`, id)
	if err != nil {
		return domain.ThreadWithReplies{}, fmt.Errorf("failed to fetch replies: %w", err)
	}

	return domain.ThreadWithReplies{Thread: thread, Replies: replies}, nil
}

// UpdateThread overwrites title/content and stamps last_activity. A missing id
// updates zero rows and is not an error.
func (s *Storage) UpdateThread(id domain.ThreadId, title, content string) error {
	_, err := s.db.Exec(`
	UPDATE threads
	SET title = ?, content = ?, last_activity = ?
	WHERE id = ?`,
		title, content, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update thread: %w", err)
	}
	return nil
}

// DeleteThread removes a thread and all replies it owns, children first, in one
// transaction. Deleting a nonexistent thread is a no-op.
func (s *Storage) DeleteThread(id domain.ThreadId) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	if _, err := tx.Exec("DELETE FROM replies WHERE thread_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete replies: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM threads WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
