package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

// ListResult is one window over the feedback list.
//
// TotalCount counts every record matching the filter, independent of the
// window. HasNextPage is a full-window heuristic: it is true exactly when
// the window came back full, so a result set that is an exact multiple of
// the page size reports one trailing page that turns out empty.
type ListResult struct {
	Items       []*domain.Feedback
	TotalCount  int
	HasNextPage bool
	EndCursor   *uuid.UUID
}

// List returns one page of feedback matching the filter, starting
// strictly after the cursor when one is given.
//
// Ordering follows the filter: newest first normally, lowest qualifying
// rating first when a minimum rating is set. A cursor naming a record
// that no longer exists yields domain.ErrNotFound; the caller restarts
// from the first page.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := input.filter()
	limit := input.pageSize()

	items, err := s.feedbacks.List(ctx, filter, input.After, limit)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	total, err := s.feedbacks.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count feedback: %w", err)
	}

	res := &ListResult{
		Items:       items,
		TotalCount:  total,
		HasNextPage: len(items) == limit,
	}
	if len(items) > 0 {
		id := items[len(items)-1].ID
		res.EndCursor = &id
	}

	return res, nil
}

// CollectN pages through the listing until n items are gathered or the
// listing is exhausted. Each round trip asks for exactly the remainder
// (capped at MaxPageSize), so the final page never overfetches. It exists
// for consumers that need a fixed-size window regardless of page
// boundaries, such as view warm-up.
func (s *Service) CollectN(ctx context.Context, input ListInput, n int) ([]*domain.Feedback, error) {
	if n <= 0 {
		return []*domain.Feedback{}, nil
	}

	collected := make([]*domain.Feedback, 0, n)
	cursor := input.After

	for len(collected) < n {
		page, err := s.List(ctx, ListInput{
			First:     min(n-len(collected), MaxPageSize),
			After:     cursor,
			EventID:   input.EventID,
			MinRating: input.MinRating,
		})
		if err != nil {
			return nil, err
		}

		collected = append(collected, page.Items...)
		if !page.HasNextPage || page.EndCursor == nil {
			break
		}
		cursor = page.EndCursor
	}

	return collected, nil
}
