package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"queue-bot/infrastructure/telegram"
	"queue-bot/internal"
	"queue-bot/repositories"
	"queue-bot/router"
	"queue-bot/runtime"
	"queue-bot/runtime/workers"
	"queue-bot/services"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until SIGINT or SIGTERM.
// Returning instead of exiting lets the deferred cleanups (BadgerDB) run.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	censorChar, err := internal.CharacterRune(config.CensorCharacter)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Core
	store := repositories.NewDocumentStore(db)
	moderator, err := runtime.NewNameModerator(log, censorChar)
	if err != nil {
		return fmt.Errorf("moderation failed to load: %w", err)
	}
	registry := services.NewEventRegistry(log,
		repositories.NewUserRepository(store),
		repositories.NewEventRepository(store),
		moderator)

	// 4. Transport
	bot, err := tgbotapi.NewBotAPI(config.TelegramToken)
	if err != nil {
		return fmt.Errorf("telegram authentication failed: %w", err)
	}
	log.Info("Authorized on Telegram", "bot", bot.Self.UserName)
	messenger := telegram.NewMessenger(log, bot)

	// 5. Supervision & Orchestration
	sup := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(log, sup, config.NotificationBufferSize)
	sessions := services.NewConversationManager(log, registry, messenger, orchestrator, config.SessionTTL)
	handler := router.NewRouter(log, registry, sessions, messenger)
	broadcaster := workers.NewBroadcaster(log, messenger, config.BroadcastConcurrency, config.SendTimeout)
	heartbeat := workers.NewHeartbeatWorker(log, sessions,
		workers.NamedChannel{Name: "notifications", Channel: orchestrator.Notifications()},
		config.HeartbeatInterval)

	orchestrator.Add(
		telegram.NewUpdatesWorker(log, bot, handler, config.PollTimeout),
		workers.NewNotificationWorker(log, registry, broadcaster, orchestrator.Notifications()),
		heartbeat,
	)
	if config.SessionTTL > 0 {
		orchestrator.Add(workers.NewSessionSweeperWorker(log, sessions, config.SweepInterval))
	}
	if config.DebugPort > 0 {
		orchestrator.Add(internal.NewDebugServer(log, db, config.DebugPort, func() map[string]any {
			stats := map[string]any{
				"pending_sessions": sessions.Len(),
				"queue_length":     len(orchestrator.Notifications()),
			}
			if latest, ok := heartbeat.Latest(); ok {
				stats["heartbeat"] = latest
			}
			return stats
		}))
	}

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. Run until stopped
	orchestrator.Start(ctx)
	log.Info("Program stopped cleanly")
	return nil
}
