// Command server runs the taskmate HTTP API.
//
// Configuration is read from config.yaml (path overridable via CONFIG_PATH)
// with environment variable overrides.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/taskmate/taskmate-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
