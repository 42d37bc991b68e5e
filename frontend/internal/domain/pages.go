package frontend_domain

import "github.com/traden-dev/traden/shared/domain"

type IndexPageData struct {
	Threads       []domain.Thread
	ThreadsLoaded bool
	SortBy        string
	Category      string
	SearchQuery   string
	Categories    []domain.CategoryName
}

type ThreadPageData struct {
	Thread  *Thread
	Replies []*Reply

	// EditingThread and EditingReply toggle the inline edit forms. At most one
	// of them is active per render.
	EditingThread bool
	EditingReply  domain.ReplyId
}

// NewThreadPageData keeps the submitted values so a failed creation does not
// wipe the form.
type NewThreadPageData struct {
	Title      string
	Content    string
	Category   string
	Categories []domain.CategoryName
}
