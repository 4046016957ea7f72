package models

import "time"

// GameLogEntry is one player's appearance in one game. GameDate is kept in
// the provider's string form until the aggregator parses it.
type GameLogEntry struct {
	PlayerName string
	GameDate   string
}

type PlayerAverages struct {
	AvgMinutes  float64
	GamesPlayed int
	Team        string
}

type PlayerSeasonRecord struct {
	AvgMinutes        float64 `json:"avgMinutes"`
	GamesPlayed       int     `json:"gamesPlayed"`
	Team              string  `json:"team"`
	RecentGamesPlayed int     `json:"recentGamesPlayed"`
}

type RunSummary struct {
	Players      int
	PlayersDelta int
	HasPrevious  bool
	OutputPath   string
	Duration     time.Duration
	CompletedAt  time.Time
}
