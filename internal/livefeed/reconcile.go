// Package livefeed merges broadcast feedback events into an
// already-materialized paginated view without refetching.
//
// The merge is a pure function over value snapshots, so every consumer
// of the hub (websocket bridge, tests, future caches) patches its view
// identically. A filter change invalidates the whole view: the correct
// response is to refetch page one, never to refilter stale items here.
package livefeed

import (
	"slices"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

// View is a client's materialized window over the feedback list.
type View struct {
	Items       []*domain.Feedback
	TotalCount  int
	HasNextPage bool
}

// FromPage builds a view from a fetched page.
func FromPage(items []*domain.Feedback, totalCount int, hasNextPage bool) View {
	return View{
		Items:       slices.Clone(items),
		TotalCount:  totalCount,
		HasNextPage: hasNextPage,
	}
}

// EndCursor returns the id of the last materialized item, or nil for an
// empty view. It is the cursor a consumer resumes paging from.
func (v View) EndCursor() *uuid.UUID {
	if len(v.Items) == 0 {
		return nil
	}
	id := v.Items[len(v.Items)-1].ID
	return &id
}

// Contains reports whether the view already holds the given feedback id.
func (v View) Contains(id uuid.UUID) bool {
	return slices.ContainsFunc(v.Items, func(fb *domain.Feedback) bool {
		return fb.ID == id
	})
}

// Merge folds one incoming feedback into the view under the active filter.
// It returns the updated view and whether the event was applied.
//
// Non-matching and duplicate events are discarded (duplicate delivery and
// replay are expected from the at-least-once broadcast path). An applied
// event increments TotalCount and is inserted at the position dictated by
// the active ordering (a sorted insert, not a prepend, because the
// rating-first mode is not "most recent first"). The window is allowed to
// grow past the original page size; consumers re-page explicitly when
// they want to shrink it.
func Merge(v View, fb *domain.Feedback, filter domain.FeedbackFilter) (View, bool) {
	if !filter.Matches(fb) {
		return v, false
	}
	if v.Contains(fb.ID) {
		return v, false
	}

	ratingFirst := filter.RatingFirst()
	pos := len(v.Items)
	for i, item := range v.Items {
		if domain.CompareFeedback(fb, item, ratingFirst) < 0 {
			pos = i
			break
		}
	}

	items := make([]*domain.Feedback, 0, len(v.Items)+1)
	items = append(items, v.Items[:pos]...)
	items = append(items, fb)
	items = append(items, v.Items[pos:]...)

	return View{
		Items:       items,
		TotalCount:  v.TotalCount + 1,
		HasNextPage: v.HasNextPage,
	}, true
}
