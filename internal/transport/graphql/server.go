package graphql

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/gorilla/websocket"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/feedbackhub/backend/internal/config"
	"github.com/feedbackhub/backend/internal/transport/graphql/generated"
	"github.com/feedbackhub/backend/internal/transport/graphql/resolver"
)

const wsKeepAlive = 10 * time.Second

// NewServer builds the GraphQL handler: HTTP transports for queries and
// mutations, a websocket transport for subscriptions, plus complexity
// limiting and domain error mapping.
func NewServer(log *slog.Logger, cfg config.GraphQLConfig, res *resolver.Resolver) *handler.Server {
	srv := handler.New(generated.NewExecutableSchema(generated.Config{
		Resolvers: res,
	}))

	srv.AddTransport(transport.Websocket{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin policy is enforced by the CORS middleware in
			// front of this handler.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		KeepAlivePingInterval: wsKeepAlive,
	})
	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))

	if cfg.IntrospectionEnabled {
		srv.Use(extension.Introspection{})
	}
	if cfg.ComplexityLimit > 0 {
		srv.Use(extension.FixedComplexityLimit(cfg.ComplexityLimit))
	}

	srv.SetErrorPresenter(NewErrorPresenter(log))
	srv.SetRecoverFunc(func(ctx context.Context, err interface{}) error {
		log.ErrorContext(ctx, "panic in GraphQL handler", slog.Any("panic", err))
		return errors.New("internal error")
	})

	return srv
}
