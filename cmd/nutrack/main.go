// cmd/nutrack/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/zxcfer/nutrack/internal/config"
	"github.com/zxcfer/nutrack/internal/logger"
	"github.com/zxcfer/nutrack/internal/quantity"
	"github.com/zxcfer/nutrack/internal/server"
)

var (
	host      = flag.String("host", "", "Host address (overrides HOST)")
	port      = flag.Int("port", 0, "Port for HTTP transport (overrides PORT)")
	dbPath    = flag.String("db-path", "", "Database path (overrides DB_PATH)")
	parseText = flag.String("parse", "", "Parse a serving string and exit")
	version   = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("nutrack version 1.0.0")
		os.Exit(0)
	}

	// One-shot parse mode needs no environment or server
	if *parseText != "" {
		quantities, err := quantity.Parse(*parseText)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
			os.Exit(1)
		}
		for _, q := range quantities {
			fmt.Println(q)
		}
		return
	}

	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	env, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load environment", zap.Error(err))
	}

	// Flags win over environment values
	if *host != "" {
		env.Host = *host
	}
	if *port != 0 {
		env.Port = *port
	}
	if *dbPath != "" {
		env.DBPath = *dbPath
	}

	cfg := &server.Config{
		Host:   env.Host,
		Port:   env.Port,
		DBPath: env.DBPath,
		FDCKey: env.FDCKey,
	}

	srv, err := server.NewFoodServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-sigCh:
		logger.Info("received shutdown signal")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	logger.Info("shutting down")
	cancel()
	if err := srv.Stop(); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}
}
