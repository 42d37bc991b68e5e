package domain

import (
	"time"
)

// Thread is the list-level view of a discussion thread.
// ReplyCount is derived at read time, never stored.
type Thread struct {
	Id           ThreadId     `db:"id" json:"id"`
	Title        ThreadTitle  `db:"title" json:"title"`
	Content      string       `db:"content" json:"content"`
	Category     CategoryName `db:"category" json:"category"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	LastActivity time.Time    `db:"last_activity" json:"last_activity"`
	ReplyCount   int          `db:"reply_count" json:"reply_count"`
}

// ThreadFilter restricts ListThreads output. Zero values restrict nothing.
type ThreadFilter struct {
	Category CategoryName
	Search   string // case-insensitive substring over title OR content
}

type ThreadWithReplies struct {
	Thread
	Replies []Reply `json:"replies"`
}
