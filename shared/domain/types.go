package domain

type (
	ThreadId = int64
	ReplyId  = int64

	ThreadTitle  = string
	CategoryName = string
)

// DefaultCategory is assigned to threads created without an explicit category.
const DefaultCategory CategoryName = "Allmänt"

// Categories are the selectable thread categories, DefaultCategory first.
var Categories = []CategoryName{
	DefaultCategory,
	"Teknik",
	"Sport",
	"Underhållning",
	"Annat",
}

// Thread list sort orders accepted as the sortBy query parameter.
const (
	SortCreatedAt      = "created_at"
	SortLatestActivity = "latest_activity"
	SortReplyCount     = "reply_count"
)
