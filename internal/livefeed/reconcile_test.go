package livefeed

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackhub/backend/internal/domain"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fb(minutesAgo int, rating int) *domain.Feedback {
	return &domain.Feedback{
		ID:        uuid.New(),
		EventID:   uuid.New(),
		UserID:    uuid.New(),
		Rating:    rating,
		CreatedAt: base.Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func ids(items []*domain.Feedback) []uuid.UUID {
	out := make([]uuid.UUID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestMerge_PrependsInRecencyMode(t *testing.T) {
	t.Parallel()

	older := fb(10, 3)
	oldest := fb(20, 5)
	view := FromPage([]*domain.Feedback{older, oldest}, 2, false)

	newest := fb(0, 1)
	got, applied := Merge(view, newest, domain.FeedbackFilter{})

	require.True(t, applied)
	assert.Equal(t, []uuid.UUID{newest.ID, older.ID, oldest.ID}, ids(got.Items))
	assert.Equal(t, 3, got.TotalCount)
}

func TestMerge_SortedInsertInRatingMode(t *testing.T) {
	t.Parallel()

	two := fb(5, 2)
	four := fb(3, 4)
	view := FromPage([]*domain.Feedback{two, four}, 2, false)

	minRating := 2
	filter := domain.FeedbackFilter{MinRating: &minRating}

	// A fresh rating-3 item lands between the 2 and the 4, not at the front.
	three := fb(0, 3)
	got, applied := Merge(view, three, filter)

	require.True(t, applied)
	assert.Equal(t, []uuid.UUID{two.ID, three.ID, four.ID}, ids(got.Items))
}

func TestMerge_DiscardsNonMatchingEvent(t *testing.T) {
	t.Parallel()

	wanted := uuid.New()
	view := FromPage(nil, 0, false)

	other := fb(0, 5)
	got, applied := Merge(view, other, domain.FeedbackFilter{EventID: &wanted})

	assert.False(t, applied)
	assert.Empty(t, got.Items)
	assert.Zero(t, got.TotalCount)
}

func TestMerge_DiscardsBelowMinRating(t *testing.T) {
	t.Parallel()

	minRating := 3
	view := FromPage(nil, 0, false)

	got, applied := Merge(view, fb(0, 2), domain.FeedbackFilter{MinRating: &minRating})

	assert.False(t, applied)
	assert.Zero(t, got.TotalCount)
}

func TestMerge_Idempotent(t *testing.T) {
	t.Parallel()

	view := FromPage(nil, 0, false)
	rec := fb(0, 4)

	once, applied := Merge(view, rec, domain.FeedbackFilter{})
	require.True(t, applied)

	twice, appliedAgain := Merge(once, rec, domain.FeedbackFilter{})
	assert.False(t, appliedAgain)
	assert.Equal(t, once.TotalCount, twice.TotalCount)
	assert.Equal(t, ids(once.Items), ids(twice.Items))
}

func TestMerge_WindowGrowsPastPageSize(t *testing.T) {
	t.Parallel()

	view := FromPage([]*domain.Feedback{fb(10, 3), fb(20, 3)}, 5, true)

	got, applied := Merge(view, fb(0, 3), domain.FeedbackFilter{})

	require.True(t, applied)
	// No eviction: the consumer already rendered the old items.
	assert.Len(t, got.Items, 3)
	assert.True(t, got.HasNextPage)
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	older := fb(10, 3)
	view := FromPage([]*domain.Feedback{older}, 1, false)

	_, applied := Merge(view, fb(0, 3), domain.FeedbackFilter{})

	require.True(t, applied)
	assert.Equal(t, []uuid.UUID{older.ID}, ids(view.Items))
	assert.Equal(t, 1, view.TotalCount)
}

func TestView_EndCursor(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FromPage(nil, 0, false).EndCursor())

	last := fb(5, 3)
	view := FromPage([]*domain.Feedback{fb(1, 3), last}, 2, false)
	require.NotNil(t, view.EndCursor())
	assert.Equal(t, last.ID, *view.EndCursor())
}

func TestMerge_TieOnCreatedAtBreaksByID(t *testing.T) {
	t.Parallel()

	a := fb(0, 3)
	b := fb(0, 3)
	view, _ := Merge(FromPage(nil, 0, false), a, domain.FeedbackFilter{})
	view, _ = Merge(view, b, domain.FeedbackFilter{})

	// Higher id sorts first on equal timestamps.
	first, second := view.Items[0], view.Items[1]
	assert.Equal(t, -1, domain.CompareFeedback(first, second, false))
}
