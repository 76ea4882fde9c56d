package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"

	"duochat/domain/event"
	"duochat/internal"
	"duochat/observability"
	"duochat/pubsub"
	"duochat/repositories"
	"duochat/search"
	"duochat/services"
	"duochat/sessions"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "duochat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components and manages the engine lifecycle.
// A transport layer (GraphQL, gRPC, websockets...) attaches through the
// services.IChatService / services.IAnonymousChatService interfaces; the
// engine itself is transport-agnostic.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Durable storage (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	durableStore, err := repositories.NewBadgerRepository(db, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = durableStore.Close() }()

	// 3. Search index over the persistent conversations
	index, err := openIndex(config, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = index.Close() }()

	// 4. Both engine variants, each owning its bus
	persistentBus := pubsub.NewBus(logger, config.BufferSize)
	defer persistentBus.Close()
	anonymousBus := pubsub.NewBus(logger, config.BufferSize)
	defer anonymousBus.Close()

	options := services.Options{RequirePairing: config.RequirePairing}
	persistent := services.NewChatService(logger, sessions.NewRegistry(),
		durableStore, persistentBus, options)
	anonymous := services.NewAnonymousChatService(logger, sessions.NewRegistry(),
		repositories.NewMemoryRepository(), anonymousBus, options)

	// The transport layer attaches here through the service contracts.
	var _ services.IChatService = persistent
	var _ services.IAnonymousChatService = anonymous

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Background consumers: indexer and delivery monitor
	indexerSub := persistentBus.Subscribe(ctx, event.StreamMessageSent, event.All)
	go pubsub.Drain(ctx, indexerSub, search.NewIndexer(index, logger))

	monitor := observability.NewMonitor(logger, persistentBus, config.MonitorInterval)
	go func() {
		if err := monitor.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("monitor stopped", "error", err)
		}
	}()

	logger.Info("duochat engine started",
		"badger", config.BadgerFilepath,
		"require_pairing", config.RequirePairing)

	// 7. Wait for Stop
	<-ctx.Done()
	logger.Info("Shutting down gracefully...")
	return exitOK, nil
}

func openIndex(config internal.Config, logger *slog.Logger) (*search.Index, error) {
	if config.BlugeFilepath == "" {
		logger.Warn("BLUGE_FILEPATH not set, search index kept in memory")
		return search.NewMemoryIndex(logger)
	}
	return search.NewIndex(config.BlugeFilepath, logger)
}
