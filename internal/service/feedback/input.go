package feedback

import (
	"strings"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

// Page size bounds for feedback listings.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// CreateInput holds the parameters for creating a feedback record.
type CreateInput struct {
	EventID uuid.UUID
	UserID  uuid.UUID
	Text    string
	Rating  int
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "eventId", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if i.Rating < domain.MinRating || i.Rating > domain.MaxRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a feedback record.
type UpdateInput struct {
	ID      uuid.UUID
	EventID uuid.UUID
	UserID  uuid.UUID
	Text    string
	Rating  int
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "eventId", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if i.Rating < domain.MinRating || i.Rating > domain.MaxRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for a paginated feedback listing.
type ListInput struct {
	First     int
	After     *uuid.UUID
	EventID   *uuid.UUID
	MinRating *int
}

// Validate checks the window and filter parameters.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.First < 0 {
		errs = append(errs, domain.FieldError{Field: "first", Message: "must not be negative"})
	}
	if i.First > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "first", Message: "must be at most 100"})
	}
	if i.MinRating != nil && (*i.MinRating < domain.MinRating || *i.MinRating > domain.MaxRating) {
		errs = append(errs, domain.FieldError{Field: "ratingGte", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// pageSize resolves the effective window size. Zero means "use the default".
func (i ListInput) pageSize() int {
	if i.First == 0 {
		return DefaultPageSize
	}
	return i.First
}

func (i ListInput) filter() domain.FeedbackFilter {
	return domain.FeedbackFilter{
		EventID:   i.EventID,
		MinRating: i.MinRating,
	}
}
