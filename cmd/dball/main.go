package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/dball/internal/common/clock"
	"github.com/KirkDiggler/dball/internal/common/logging"
	"github.com/KirkDiggler/dball/internal/common/uuid"
	"github.com/KirkDiggler/dball/internal/config"
	"github.com/KirkDiggler/dball/internal/handlers/api"
	"github.com/KirkDiggler/dball/internal/handlers/discord"
	"github.com/KirkDiggler/dball/internal/metrics"
	"github.com/KirkDiggler/dball/internal/scheduler"
	drawService "github.com/KirkDiggler/dball/internal/services/draw"
	reconcileService "github.com/KirkDiggler/dball/internal/services/reconcile"
	ticketService "github.com/KirkDiggler/dball/internal/services/ticket"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(nil)
	if err != nil {
		// The logger is not configured yet
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := logging.New(&logging.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
		JSON:       cfg.Log.JSON,
	})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	store, err := newStorage(cfg)
	if err != nil {
		logger.WithError(err).WithField("backend", cfg.Storage.Backend).Fatal("Failed to open storage")
	}
	defer func() {
		if err := store.close(); err != nil {
			logger.WithError(err).Warn("Failed to close storage")
		}
	}()
	logger.WithField("backend", cfg.Storage.Backend).Info("Storage ready")

	collector := metrics.NewCollector()
	systemClock := clock.New()

	tickets, err := ticketService.New(&ticketService.Config{
		TicketRepo:     store.tickets,
		SettlementRepo: store.settlements,
		Clock:          systemClock,
		UUIDGenerator:  uuid.NewWithPrefix("tkt_"),
		Logger:         logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create ticket service")
	}

	draws, err := drawService.New(&drawService.Config{
		DrawRepo:      store.draws,
		Clock:         systemClock,
		UUIDGenerator: uuid.NewWithPrefix("drw_"),
		Logger:        logger,
		Metrics:       collector,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create draw service")
	}

	reconciler, err := reconcileService.New(&reconcileService.Config{
		TicketRepo:     store.tickets,
		DrawRepo:       store.draws,
		SettlementRepo: store.settlements,
		Clock:          systemClock,
		Logger:         logger,
		Metrics:        collector,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create reconcile service")
	}

	handler, err := api.New(&api.Config{
		TicketService:    tickets,
		DrawService:      draws,
		ReconcileService: reconciler,
		Gatherer:         collector.Registry(),
		HealthCheck:      store.ping,
		Logger:           logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create API handler")
	}

	gin.SetMode(cfg.HTTP.Mode)
	server := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.WithField("address", cfg.HTTP.Address).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	var bot *discord.Bot
	if cfg.DiscordEnabled() {
		bot, err = discord.New(&discord.Config{
			Token:            cfg.Discord.Token,
			ApplicationID:    cfg.Discord.ApplicationID,
			GuildID:          cfg.Discord.GuildID,
			TicketService:    tickets,
			DrawService:      draws,
			ReconcileService: reconciler,
			Logger:           logger,
		})
		if err != nil {
			logger.WithError(err).Fatal("Failed to create Discord bot")
		}

		if err := bot.Start(); err != nil {
			logger.WithError(err).Fatal("Failed to start Discord bot")
		}
	} else {
		logger.Info("Discord token not set, bot disabled")
	}

	var sweeper *scheduler.Scheduler
	if cfg.Sweep.Enabled {
		sweeper, err = scheduler.New(&scheduler.Config{
			Reconciler: reconciler,
			Schedule:   cfg.Sweep.Schedule,
			Logger:     logger,
		})
		if err != nil {
			logger.WithError(err).Fatal("Failed to create sweep scheduler")
		}
		sweeper.Start()
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sweeper != nil {
		if err := sweeper.Stop(ctx); err != nil {
			logger.WithError(err).Warn("Sweep did not finish before shutdown")
		}
	}

	if bot != nil {
		if err := bot.Stop(); err != nil {
			logger.WithError(err).Warn("Error stopping Discord bot")
		}
	}

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Warn("HTTP server shutdown failed")
	}

	logger.Info("dball has been shut down")
}
