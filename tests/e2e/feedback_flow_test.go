//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackhub/backend/internal/adapter/postgres/testhelper"
)

// TestE2E_FeedbackLifecycle walks the full create/read/update path through
// the GraphQL endpoint.
func TestE2E_FeedbackLifecycle(t *testing.T) {
	ts := setupTestServer(t)

	// Create a user.
	status, result := ts.graphqlQuery(t,
		`mutation { createUser(email: "lifecycle@example.com", name: "Lifecycle") { id email name } }`, nil)
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	user := gqlPayload(t, result, "createUser")
	userID := user["id"].(string)
	assert.Equal(t, "lifecycle@example.com", user["email"])

	// Create an event.
	status, result = ts.graphqlQuery(t,
		`mutation { createEvent(name: "Launch Party", description: "Q3 launch") { id name description } }`, nil)
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	event := gqlPayload(t, result, "createEvent")
	eventID := event["id"].(string)

	// Create feedback linking the two.
	status, result = ts.graphqlQuery(t,
		`mutation($eventId: UUID!, $userId: UUID!) {
			createFeedback(eventId: $eventId, userId: $userId, text: "Great event!", rating: 5) {
				id text rating
				event { id name }
				user { id name }
			}
		}`,
		map[string]any{"eventId": eventID, "userId": userID})
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	fb := gqlPayload(t, result, "createFeedback")
	fbID := fb["id"].(string)
	assert.Equal(t, "Great event!", fb["text"])
	assert.Equal(t, float64(5), fb["rating"])
	assert.Equal(t, eventID, fb["event"].(map[string]any)["id"])
	assert.Equal(t, userID, fb["user"].(map[string]any)["id"])

	// Read it back.
	status, result = ts.graphqlQuery(t,
		`query($id: UUID!) { feedback(id: $id) { id text rating } }`,
		map[string]any{"id": fbID})
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	got := gqlPayload(t, result, "feedback")
	assert.Equal(t, "Great event!", got["text"])

	// Update text and rating.
	status, result = ts.graphqlQuery(t,
		`mutation($id: UUID!, $eventId: UUID!, $userId: UUID!) {
			updateFeedback(id: $id, eventId: $eventId, userId: $userId, text: "Even better on reflection", rating: 4) {
				id text rating
			}
		}`,
		map[string]any{"id": fbID, "eventId": eventID, "userId": userID})
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	updated := gqlPayload(t, result, "updateFeedback")
	assert.Equal(t, "Even better on reflection", updated["text"])
	assert.Equal(t, float64(4), updated["rating"])
}

// TestE2E_FeedbackPagination_Recency pages a single event's feedback newest
// first, two at a time, and checks cursors never overlap or skip.
func TestE2E_FeedbackPagination_Recency(t *testing.T) {
	ts := setupTestServer(t)

	event := testhelper.SeedEvent(t, ts.Pool)
	user := testhelper.SeedUser(t, ts.Pool)

	base := time.Now().UTC().Add(-time.Hour)
	var seeded []string
	for i := 0; i < 5; i++ {
		fb := testhelper.SeedFeedback(t, ts.Pool, event.ID, user.ID, 3, base.Add(time.Duration(i)*time.Minute))
		seeded = append(seeded, fb.ID.String())
	}
	// Newest first.
	want := []string{seeded[4], seeded[3], seeded[2], seeded[1], seeded[0]}

	query := `query($eventId: UUID, $after: String) {
		feedbacks(first: 2, after: $after, eventId: $eventId) {
			edges { cursor node { id } }
			pageInfo { endCursor hasNextPage }
			count
		}
	}`

	var collected []string
	var after any
	for page := 0; page < 4; page++ {
		vars := map[string]any{"eventId": event.ID.String()}
		if after != nil {
			vars["after"] = after
		}

		status, result := ts.graphqlQuery(t, query, vars)
		require.Equal(t, http.StatusOK, status)
		requireNoErrors(t, result)
		conn := gqlPayload(t, result, "feedbacks")

		assert.Equal(t, float64(5), conn["count"])

		edges := conn["edges"].([]any)
		for _, e := range edges {
			node := e.(map[string]any)["node"].(map[string]any)
			collected = append(collected, node["id"].(string))
		}

		pageInfo := conn["pageInfo"].(map[string]any)
		if pageInfo["hasNextPage"] == false {
			break
		}
		after = pageInfo["endCursor"]
		require.NotNil(t, after)
	}

	assert.Equal(t, want, collected)
}

// TestE2E_FeedbackPagination_RatingFloor verifies that a minimum rating
// switches the ordering to lowest rating first and drops rows below the floor.
func TestE2E_FeedbackPagination_RatingFloor(t *testing.T) {
	ts := setupTestServer(t)

	event := testhelper.SeedEvent(t, ts.Pool)
	user := testhelper.SeedUser(t, ts.Pool)

	base := time.Now().UTC().Add(-time.Hour)
	ratings := []int{5, 2, 4, 1, 3}
	for i, r := range ratings {
		testhelper.SeedFeedback(t, ts.Pool, event.ID, user.ID, r, base.Add(time.Duration(i)*time.Minute))
	}

	status, result := ts.graphqlQuery(t,
		`query($eventId: UUID) {
			feedbacks(first: 10, eventId: $eventId, ratingGte: 2) {
				edges { node { rating } }
				count
			}
		}`,
		map[string]any{"eventId": event.ID.String()})
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	conn := gqlPayload(t, result, "feedbacks")

	assert.Equal(t, float64(4), conn["count"])

	edges := conn["edges"].([]any)
	var got []float64
	for _, e := range edges {
		got = append(got, e.(map[string]any)["node"].(map[string]any)["rating"].(float64))
	}
	assert.Equal(t, []float64{2, 3, 4, 5}, got)
}

// TestE2E_CreateFeedbackValidation verifies an out-of-range rating is rejected.
func TestE2E_CreateFeedbackValidation(t *testing.T) {
	ts := setupTestServer(t)

	event := testhelper.SeedEvent(t, ts.Pool)
	user := testhelper.SeedUser(t, ts.Pool)

	status, result := ts.graphqlQuery(t,
		`mutation($eventId: UUID!, $userId: UUID!) {
			createFeedback(eventId: $eventId, userId: $userId, text: "meh", rating: 9) { id }
		}`,
		map[string]any{"eventId": event.ID.String(), "userId": user.ID.String()})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "VALIDATION", gqlErrorCode(t, result))
}

// TestE2E_FeedbackMalformedCursor verifies a garbage cursor is rejected
// with a VALIDATION code rather than a server error.
func TestE2E_FeedbackMalformedCursor(t *testing.T) {
	ts := setupTestServer(t)

	status, result := ts.graphqlQuery(t,
		`query { feedbacks(first: 2, after: "not-a-cursor") { count } }`, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "VALIDATION", gqlErrorCode(t, result))
}

// TestE2E_FeedbackUnknownEvent verifies creating feedback against a missing
// event yields NOT_FOUND.
func TestE2E_FeedbackUnknownEvent(t *testing.T) {
	ts := setupTestServer(t)

	user := testhelper.SeedUser(t, ts.Pool)

	status, result := ts.graphqlQuery(t,
		`mutation($eventId: UUID!, $userId: UUID!) {
			createFeedback(eventId: $eventId, userId: $userId, text: "ghost", rating: 3) { id }
		}`,
		map[string]any{"eventId": uuid.New().String(), "userId": user.ID.String()})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "NOT_FOUND", gqlErrorCode(t, result))
}
