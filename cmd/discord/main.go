package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GiveawayBot_Go/internal/bootstrap"
	"github.com/osse101/GiveawayBot_Go/internal/concurrency"
	"github.com/osse101/GiveawayBot_Go/internal/config"
	"github.com/osse101/GiveawayBot_Go/internal/database"
	"github.com/osse101/GiveawayBot_Go/internal/discord"
	"github.com/osse101/GiveawayBot_Go/internal/giveaway"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
	"github.com/osse101/GiveawayBot_Go/internal/server"
	"github.com/osse101/GiveawayBot_Go/internal/scheduler"
	"github.com/osse101/GiveawayBot_Go/internal/worker"
	"github.com/osse101/GiveawayBot_Go/migrations"
)

// SweepJobName identifies the periodic overdue-giveaway sweep
const SweepJobName = "giveaway-sweep"

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.InteractionHandler)

func main() {
	if err := run(); err != nil {
		slog.Error("GiveawayBot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Missing DB variables fall back to local defaults outside production
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		if cfg.Environment == logger.EnvironmentProduction {
			return err
		}
		slog.Warn("Environment incomplete, using defaults", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx := context.Background()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool, migrations.FS); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	eventBus := bootstrap.InitializeEventSystem()

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	})
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	giveawayService := giveaway.NewService(
		repos.Giveaway,
		discord.NewRenderer(bot.Session),
		eventBus,
		concurrency.NewLockManager(),
	)

	workerPool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	workerPool.Start()

	giveawayWorker := worker.NewGiveawayWorker(giveawayService, workerPool)
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:       eventBus,
		GiveawayWorker: giveawayWorker,
	}); err != nil {
		return fmt.Errorf("failed to register event handlers: %w", err)
	}

	sched := scheduler.New(workerPool)
	sched.Schedule(SweepJobName, cfg.SweepInterval, &worker.SweepJob{Service: giveawayService})

	registerCommands(bot, getCommandFactories(giveawayService))
	discord.RegisterGiveawayComponents(bot.Registry, giveawayService)

	// Timers are rebuilt from persisted end times once the gateway is up
	bot.OnReady(func(ctx context.Context) {
		if err := giveawayWorker.Start(ctx); err != nil {
			slog.Error("Failed to reschedule active giveaways", "error", err)
		}
	})

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}

	if err := bot.RegisterCommands(ctx, cfg.DiscordForceCommandUpdate); err != nil {
		// Don't exit - bot can still run if commands are already registered
		slog.Error("Failed to register commands", "error", err)
	}

	srv := server.NewServer(cfg.HTTPPort, dbPool, bot, cfg.Version)
	go func() {
		slog.Info("Starting HTTP server", "port", cfg.HTTPPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
		}
	}()

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:          srv,
		Bot:             bot,
		Scheduler:       sched,
		GiveawayWorker:  giveawayWorker,
		GiveawayService: giveawayService,
		WorkerPool:      workerPool,
	})
	return nil
}

// getCommandFactories returns a list of all available Discord command factories.
func getCommandFactories(svc giveaway.Service) []CommandFactory {
	return []CommandFactory{
		func() (*discordgo.ApplicationCommand, discord.InteractionHandler) {
			return discord.GiveawayCommand(svc)
		},
	}
}

// registerCommands registers all provided command factories with the bot's registry.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
