package model

import (
	"github.com/feedbackhub/backend/internal/domain"
)

// PageInfo describes the position of a feedback window.
type PageInfo struct {
	EndCursor   *string
	HasNextPage bool
}

// FeedbackEdge pairs a feedback record with its opaque cursor.
type FeedbackEdge struct {
	Cursor string
	Node   *domain.Feedback
}

// FeedbackConnection is a cursor-paginated feedback window. Count is
// the total number of matching records, independent of the window.
type FeedbackConnection struct {
	Edges    []*FeedbackEdge
	PageInfo *PageInfo
	Count    int
}
