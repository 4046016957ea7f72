package nba

import (
	"fmt"
	"time"
)

// CurrentSeason returns the season string stats.nba.com expects ("2025-26")
// for the given moment. Seasons roll over in October; before that the
// previous season is still the current one.
func CurrentSeason(now time.Time) string {
	year := now.Year()
	if now.Month() < time.October {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
