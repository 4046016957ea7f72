package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/hoopsdata/nbastats/internal/service"
)

type Scheduler struct {
	s            gocron.Scheduler
	statsService *service.StatsService
	dailyHour    int
	sendMessage  func(string) error
}

// NewScheduler wires a daily refresh job. sendMessage may be nil when no
// notification channel is configured.
func NewScheduler(statsService *service.StatsService, dailyHour int, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/New_York") // league schedule is published in ET
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:            s,
		statsService: statsService,
		dailyHour:    dailyHour,
		sendMessage:  sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(s.dailyHour), 0, 0))),
		gocron.NewTask(s.refreshStats),
	)
	if err != nil {
		return fmt.Errorf("failed to create stats refresh job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refreshStats() {
	summary, err := s.statsService.RefreshPlayerStats()
	if err != nil {
		slog.Error("Failed to refresh player stats", "error", err)
		s.notify(service.FormatFailureReport(err))
		return
	}
	s.notify(service.FormatRunReport(summary))
}

func (s *Scheduler) notify(text string) {
	if s.sendMessage == nil {
		return
	}
	if err := s.sendMessage(text); err != nil {
		slog.Error("Failed to send notification", "error", err)
	}
}
