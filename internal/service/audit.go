package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hoopsdata/nbastats/internal/models"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// auditPlayerNames checks the run's core assumption: that both API calls
// spell every player's name identically. Game-log names missing from the
// season averages are reported, with the closest averages name attached when
// one is plausibly the same player. The output mapping is never touched.
func auditPlayerNames(averages map[string]models.PlayerAverages, recent map[string]int) []string {
	var missing []string
	for name := range recent {
		if _, ok := averages[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)

	warnings := make([]string, 0, len(missing))
	for _, name := range missing {
		if match, ok := closestName(name, averages); ok {
			warnings = append(warnings, fmt.Sprintf("game log name %q has no season averages entry; closest match is %q", name, match))
		} else {
			warnings = append(warnings, fmt.Sprintf("game log name %q has no season averages entry", name))
		}
	}
	return warnings
}

func closestName(name string, averages map[string]models.PlayerAverages) (string, bool) {
	const threshold = 0.7

	var bestMatch string
	var bestScore float64

	for candidate := range averages {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(candidate))
		maxLen := float64(max(len(name), len(candidate)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestScore {
			bestScore = similarity
			bestMatch = candidate
		}
	}

	return bestMatch, bestMatch != ""
}
