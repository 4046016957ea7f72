package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/hoopsdata/nbastats/internal/models"
)

const dayFormat = "2006-01-02"

// RecentActivity counts, per player, how many of the window most recent
// distinct league-wide game dates that player appeared on. Players with no
// appearance inside the window are absent from the result; duplicate entries
// for the same player and date count separately. When fewer distinct dates
// exist than the window asks for, the window is simply all of them.
//
// Dates are parsed into real calendar dates before comparing, so ordering
// holds even if the provider ever changes its date format.
func RecentActivity(entries []models.GameLogEntry, window int) (map[string]int, error) {
	days := make(map[string]time.Time)
	entryDays := make([]string, len(entries))

	for i, entry := range entries {
		day, err := dateparse.ParseAny(entry.GameDate)
		if err != nil {
			return nil, fmt.Errorf("unparseable game date %q for %s: %w", entry.GameDate, entry.PlayerName, err)
		}
		key := day.Format(dayFormat)
		days[key] = day
		entryDays[i] = key
	}

	distinct := make([]time.Time, 0, len(days))
	for _, day := range days {
		distinct = append(distinct, day)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i].After(distinct[j]) })

	if window > len(distinct) {
		window = len(distinct)
	}

	recentDays := make(map[string]bool, window)
	for _, day := range distinct[:window] {
		recentDays[day.Format(dayFormat)] = true
	}

	counts := make(map[string]int)
	for i, entry := range entries {
		if recentDays[entryDays[i]] {
			counts[entry.PlayerName]++
		}
	}
	return counts, nil
}
