package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/traden-dev/traden/shared/domain"
	internal_errors "github.com/traden-dev/traden/shared/errors"
)

// CreateReply inserts a reply and advances the owning thread's last_activity in
// the same transaction: a reply is never visible without its activity stamp.
// The bump doubles as the existence check for the target thread.
func (s *Storage) CreateReply(threadId domain.ThreadId, content string) (domain.ReplyId, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return -1, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	now := time.Now().UTC()
	result, err := tx.Exec("UPDATE threads SET last_activity = ? WHERE id = ?", now, threadId)
	if err != nil {
		return -1, fmt.Errorf("failed to bump thread activity: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return -1, internal_errors.NotFound("Thread not found")
	}

	result, err = tx.Exec(`
	INSERT INTO replies (thread_id, content, created_at)
	VALUES (?, ?, ?)`,
		threadId, content, now)
	if err != nil {
		return -1, fmt.Errorf("failed to insert reply: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return -1, fmt.Errorf("failed to fetch inserted reply id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return -1, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

func (s *Storage) UpdateReply(id domain.ReplyId, content string) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	threadId, err := ownerThreadId(tx, id)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("UPDATE replies SET content = ? WHERE id = ?", content, id); err != nil {
		return fmt.Errorf("failed to update reply: %w", err)
	}
	if _, err := tx.Exec("UPDATE threads SET last_activity = ? WHERE id = ?", time.Now().UTC(), threadId); err != nil {
		return fmt.Errorf("failed to bump thread activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Storage) DeleteReply(id domain.ReplyId) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	threadId, err := ownerThreadId(tx, id)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM replies WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	if _, err := tx.Exec("UPDATE threads SET last_activity = ? WHERE id = ?", time.Now().UTC(), threadId); err != nil {
		return fmt.Errorf("failed to bump thread activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type execQueryer interface {
	QueryRow(query string, args ...any) *sql.Row
}

func ownerThreadId(tx execQueryer, id domain.ReplyId) (domain.ThreadId, error) {
	var threadId domain.ThreadId
	err := tx.QueryRow("SELECT thread_id FROM replies WHERE id = ?", id).Scan(&threadId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return -1, internal_errors.NotFound("Reply not found")
		}
		return -1, fmt.Errorf("failed to resolve reply owner: %w", err)
	}
	return threadId, nil
}
