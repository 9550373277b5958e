//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	eventrepo "github.com/feedbackhub/backend/internal/adapter/postgres/event"
	feedbackrepo "github.com/feedbackhub/backend/internal/adapter/postgres/feedback"
	"github.com/feedbackhub/backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/feedbackhub/backend/internal/adapter/postgres/user"
	"github.com/feedbackhub/backend/internal/config"
	"github.com/feedbackhub/backend/internal/pubsub"
	eventsvc "github.com/feedbackhub/backend/internal/service/event"
	feedbacksvc "github.com/feedbackhub/backend/internal/service/feedback"
	streamsvc "github.com/feedbackhub/backend/internal/service/stream"
	usersvc "github.com/feedbackhub/backend/internal/service/user"
	gqlpkg "github.com/feedbackhub/backend/internal/transport/graphql"
	"github.com/feedbackhub/backend/internal/transport/graphql/dataloader"
	"github.com/feedbackhub/backend/internal/transport/graphql/generated"
	"github.com/feedbackhub/backend/internal/transport/graphql/resolver"
	"github.com/feedbackhub/backend/internal/transport/middleware"
	"github.com/feedbackhub/backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// GraphQL assertion / extraction helpers.
// ---------------------------------------------------------------------------

// gqlData extracts the "data" map from a GraphQL response.
func gqlData(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in response")
	return data
}

// gqlPayload extracts a specific field from the data map.
func gqlPayload(t *testing.T, result map[string]any, field string) map[string]any {
	t.Helper()
	data := gqlData(t, result)
	payload, ok := data[field].(map[string]any)
	require.True(t, ok, "expected %q in data", field)
	return payload
}

// gqlErrorCode extracts the error code from the first GraphQL error.
func gqlErrorCode(t *testing.T, result map[string]any) string {
	t.Helper()
	errors, ok := result["errors"].([]any)
	require.True(t, ok, "expected errors array")
	require.NotEmpty(t, errors)

	firstErr, ok := errors[0].(map[string]any)
	require.True(t, ok)
	extensions, ok := firstErr["extensions"].(map[string]any)
	require.True(t, ok, "expected extensions in error")

	code, ok := extensions["code"].(string)
	require.True(t, ok, "expected code string in extensions")
	return code
}

// requireNoErrors asserts that the GraphQL response has no errors.
func requireNoErrors(t *testing.T, result map[string]any) {
	t.Helper()
	if errs, ok := result["errors"]; ok && errs != nil {
		t.Fatalf("unexpected GraphQL errors: %v", errs)
	}
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	hub := pubsub.NewHub(logger)

	users := userrepo.New(pool)
	events := eventrepo.New(pool)
	feedbacks := feedbackrepo.New(pool)

	userService := usersvc.NewService(logger, users)
	eventService := eventsvc.NewService(logger, events)
	feedbackService := feedbacksvc.NewService(logger, feedbacks, hub)
	streamService := streamsvc.NewService(logger, config.StreamConfig{
		DefaultInterval: 3 * time.Second,
		MinInterval:     10 * time.Millisecond,
	}, events, users, feedbacks, hub)

	t.Cleanup(func() { streamService.Stop() })

	res := resolver.NewResolver(logger, userService, eventService, feedbackService, streamService, hub)

	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	gqlSrv := gqlhandler.NewDefaultServer(schema)
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(logger))

	graphqlHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Middleware(dataloader.Middleware(&dataloader.Repos{Feedback: feedbacks})),
	)(gqlSrv)

	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, streamService, "test-version")
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /graphql", graphqlHandler)
	mux.Handle("OPTIONS /graphql", graphqlHandler)

	srv := httptest.NewServer(mux)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// graphqlQuery sends a GraphQL POST request and returns status + decoded body.
// ---------------------------------------------------------------------------

func (ts *testServer) graphqlQuery(t *testing.T, query string, variables map[string]any) (int, map[string]any) {
	t.Helper()

	body := map[string]any{
		"query":     query,
		"variables": variables,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal graphql body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/graphql", bytes.NewReader(jsonBody))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}
