// Command server runs the feedback hub API: a GraphQL endpoint with
// queries, mutations and a websocket subscription for live feedback,
// plus health probes.
package main

import (
	"context"
	"log"

	"github.com/feedbackhub/backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
