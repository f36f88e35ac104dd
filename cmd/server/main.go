package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"arcade-roulette-service/internal/config"
	"arcade-roulette-service/internal/logging"
	"arcade-roulette-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "arcade-roulette-service"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.Log.Logging(serviceName, appVersion))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
