package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hoopsdata/nbastats/internal/api/nba"
	"github.com/hoopsdata/nbastats/internal/models"
	"github.com/hoopsdata/nbastats/internal/repository/memory"
)

type StatsService struct {
	api          *nba.API
	repo         *memory.Repository
	recentWindow int
	outputPath   string
}

func NewStatsService(api *nba.API, repo *memory.Repository, recentWindow int, outputPath string) *StatsService {
	return &StatsService{api: api, repo: repo, recentWindow: recentWindow, outputPath: outputPath}
}

// RefreshPlayerStats runs the full pipeline: fetch the league game log,
// derive the recent-activity counts, fetch season averages, merge, and write
// the JSON file the downstream merge task ingests.
func (s *StatsService) RefreshPlayerStats() (*models.RunSummary, error) {
	started := time.Now()

	slog.Info("Fetching league game log")
	entries, err := s.api.GetLeagueGameLog()
	if err != nil {
		return nil, fmt.Errorf("error fetching league game log: %w", err)
	}
	slog.Info("Fetched game log", "entries", len(entries))

	recent, err := RecentActivity(entries, s.recentWindow)
	if err != nil {
		return nil, fmt.Errorf("error aggregating recent activity: %w", err)
	}

	slog.Info("Fetching season averages")
	averages, err := s.api.GetPlayerSeasonAverages()
	if err != nil {
		return nil, fmt.Errorf("error fetching season averages: %w", err)
	}

	for _, warning := range auditPlayerNames(averages, recent) {
		slog.Warn(warning)
	}

	stats := MergeStats(averages, recent)
	slog.Info("Found players", "count", len(stats))

	if err := writeStats(s.outputPath, stats); err != nil {
		return nil, fmt.Errorf("error writing stats file: %w", err)
	}
	slog.Info("Saved stats", "path", s.outputPath)

	summary := &models.RunSummary{
		Players:     len(stats),
		OutputPath:  s.outputPath,
		Duration:    time.Since(started),
		CompletedAt: time.Now(),
	}
	if previous := s.repo.GetRunSummary(); previous != nil {
		summary.PlayersDelta = summary.Players - previous.Players
		summary.HasPrevious = true
	}
	s.repo.SaveRunSummary(summary)

	return summary, nil
}

// MergeStats builds the output mapping: every player in the season averages
// appears exactly once, with recent appearances defaulting to zero for
// players the window never saw.
func MergeStats(averages map[string]models.PlayerAverages, recent map[string]int) map[string]models.PlayerSeasonRecord {
	stats := make(map[string]models.PlayerSeasonRecord, len(averages))
	for name, avg := range averages {
		stats[name] = models.PlayerSeasonRecord{
			AvgMinutes:        avg.AvgMinutes,
			GamesPlayed:       avg.GamesPlayed,
			Team:              avg.Team,
			RecentGamesPlayed: recent[name],
		}
	}
	return stats
}

// FormatRunReport renders a run summary as the Markdown message sent to the
// operator channel.
func FormatRunReport(summary *models.RunSummary) string {
	var sb strings.Builder
	sb.WriteString("🏀 *NBA player stats refreshed*\n\n")
	sb.WriteString(fmt.Sprintf("Players: %d", summary.Players))
	if summary.HasPrevious {
		sb.WriteString(fmt.Sprintf(" (%+d since last run)", summary.PlayersDelta))
	}
	sb.WriteString(fmt.Sprintf("\nSaved to: %s\n", summary.OutputPath))
	sb.WriteString(fmt.Sprintf("Took %s", summary.Duration.Round(time.Millisecond)))
	return sb.String()
}

// FormatFailureReport renders the failure notice for the operator channel.
func FormatFailureReport(err error) string {
	return fmt.Sprintf("⚠️ *NBA stats refresh failed*\n\n%s", err)
}
