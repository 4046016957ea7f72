package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hoopsdata/nbastats/internal/api/nba"
	"github.com/hoopsdata/nbastats/internal/bot"
	"github.com/hoopsdata/nbastats/internal/config"
	"github.com/hoopsdata/nbastats/internal/repository/memory"
	"github.com/hoopsdata/nbastats/internal/scheduler"
	"github.com/hoopsdata/nbastats/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := run(); err != nil {
		slog.Error("Error refreshing NBA stats", "error", err,
			"hint", "stats.nba.com throttles unfamiliar clients; wait a minute and rerun")
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	client := nba.NewClient(cfg.NBAAPI)
	api := nba.NewAPI(client)

	repo := memory.NewRepository()
	statsService := service.NewStatsService(api, repo, cfg.Stats.RecentWindow, cfg.Stats.OutputPath)

	var sendMessage func(string) error
	if cfg.Telegram.Token != "" {
		notifier, err := bot.NewNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			return err
		}
		sendMessage = notifier.SendMessage
	}

	if !cfg.Schedule.Daily {
		summary, err := statsService.RefreshPlayerStats()
		if err != nil {
			notify(sendMessage, service.FormatFailureReport(err))
			return err
		}
		notify(sendMessage, service.FormatRunReport(summary))
		return nil
	}

	sched, err := scheduler.NewScheduler(statsService, cfg.Schedule.DailyHour, sendMessage)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func notify(sendMessage func(string) error, text string) {
	if sendMessage == nil {
		return
	}
	if err := sendMessage(text); err != nil {
		slog.Error("Error sending notification", "error", err)
	}
}
