package resolver

import (
	"encoding/base64"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

// encodeCursor encodes a feedback id into a base64 cursor.
func encodeCursor(id uuid.UUID) string {
	return base64.StdEncoding.EncodeToString([]byte(id.String()))
}

// decodeCursor decodes a base64 cursor into a feedback id. A cursor the
// server could not have issued maps to a validation error.
func decodeCursor(cursor string) (uuid.UUID, error) {
	data, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("after", "malformed cursor")
	}
	id, err := uuid.Parse(string(data))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("after", "malformed cursor")
	}
	return id, nil
}
