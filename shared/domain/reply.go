package domain

import (
	"time"
)

// Reply belongs to exactly one thread; ThreadId is set on insert and never reassigned.
type Reply struct {
	Id        ReplyId   `db:"id" json:"id"`
	ThreadId  ThreadId  `db:"thread_id" json:"thread_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
