package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/omarshaarawi/statsboard/internal/api/analytics"
	"github.com/omarshaarawi/statsboard/internal/api/stats"
	"github.com/omarshaarawi/statsboard/internal/bot"
	"github.com/omarshaarawi/statsboard/internal/config"
	"github.com/omarshaarawi/statsboard/internal/scheduler"
	"github.com/omarshaarawi/statsboard/internal/service"
	"github.com/omarshaarawi/statsboard/internal/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	analyticsClient := analytics.NewClient(cfg.Analytics)
	statsAPI := stats.NewAPI(analytics.NewAPI(analyticsClient))

	dashboardService := service.NewDashboardService(statsAPI, service.ViewOptions{
		AlertTTL:        cfg.Analytics.AlertTTL,
		PredictionDelay: cfg.Analytics.PredictionDelay,
		IdleTTL:         cfg.Analytics.ViewTTL,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		sendMessage func(string) error
		sendPhoto   func([]byte) error
	)
	if cfg.TelegramBot.Enabled() {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, dashboardService)
		if err != nil {
			return err
		}
		sendMessage = telegramBot.SendMessage
		sendPhoto = telegramBot.SendPhoto

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	}

	if cfg.Scheduler.Enabled {
		sched, err := scheduler.NewScheduler(dashboardService, cfg.Scheduler, sendMessage, sendPhoto)
		if err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}
		defer func() {
			if err := sched.Stop(); err != nil {
				slog.Error("Error stopping scheduler", "error", err)
			}
		}()
	}

	handler := web.NewHandler(dashboardService, cfg.Server.Leagues)
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           web.NewRouter(handler, cfg.Server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Starting HTTP server", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
