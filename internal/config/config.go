package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Every variable is optional; a bare invocation runs entirely on the
// defaults below.
type Config struct {
	NBAAPI   NBAAPI
	Stats    Stats
	Schedule Schedule
	Telegram Telegram
}

type NBAAPI struct {
	Season     string `envconfig:"SEASON"`
	SeasonType string `envconfig:"SEASON_TYPE" default:"Regular Season"`
}

type Stats struct {
	RecentWindow int    `envconfig:"RECENT_WINDOW" default:"10"`
	OutputPath   string `envconfig:"OUTPUT_PATH" default:"nba_stats.json"`
}

type Schedule struct {
	Daily     bool `envconfig:"RUN_DAILY" default:"false"`
	DailyHour int  `envconfig:"RUN_DAILY_HOUR" default:"7"`
}

type Telegram struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"TELEGRAM_CHAT_ID"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if c.Stats.RecentWindow < 1 {
		return nil, fmt.Errorf("RECENT_WINDOW must be at least 1, got %d", c.Stats.RecentWindow)
	}
	if c.Schedule.DailyHour < 0 || c.Schedule.DailyHour > 23 {
		return nil, fmt.Errorf("RUN_DAILY_HOUR must be between 0 and 23, got %d", c.Schedule.DailyHour)
	}
	return &c, nil
}
