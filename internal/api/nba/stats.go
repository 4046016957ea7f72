package nba

import (
	"fmt"
	"math"
	"time"

	"github.com/hoopsdata/nbastats/internal/models"
)

const leagueID = "00" // NBA; the same endpoints also serve the WNBA and G League

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// GetLeagueGameLog retrieves one row per player per game for the configured
// season, newest games first.
func (a *API) GetLeagueGameLog() ([]models.GameLogEntry, error) {
	var statsResponse models.StatsResponse
	params := map[string]string{
		"LeagueID":     leagueID,
		"Season":       a.season(),
		"SeasonType":   a.client.Config.SeasonType,
		"PlayerOrTeam": "P",
		"Counter":      "1000",
		"Direction":    "DESC",
		"Sorter":       "DATE",
	}

	if err := a.client.Get("/leaguegamelog", params, &statsResponse); err != nil {
		return nil, fmt.Errorf("fetching league game log: %w", err)
	}

	rows, cols, err := resultSet(statsResponse, "LeagueGameLog", "PLAYER_NAME", "GAME_DATE")
	if err != nil {
		return nil, fmt.Errorf("parsing league game log: %w", err)
	}

	entries := make([]models.GameLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.GameLogEntry{
			PlayerName: rowString(row, cols["PLAYER_NAME"]),
			GameDate:   rowString(row, cols["GAME_DATE"]),
		})
	}
	return entries, nil
}

// GetPlayerSeasonAverages retrieves per-game season averages keyed by player
// name. Minutes are rounded to one decimal here, the precision the output
// file has always carried.
func (a *API) GetPlayerSeasonAverages() (map[string]models.PlayerAverages, error) {
	var statsResponse models.StatsResponse
	params := map[string]string{
		"LeagueID":       leagueID,
		"Season":         a.season(),
		"SeasonType":     a.client.Config.SeasonType,
		"PerMode":        "PerGame",
		"MeasureType":    "Base",
		"LastNGames":     "0",
		"Month":          "0",
		"OpponentTeamID": "0",
		"PaceAdjust":     "N",
		"Period":         "0",
		"PlusMinus":      "N",
		"Rank":           "N",
	}

	if err := a.client.Get("/leaguedashplayerstats", params, &statsResponse); err != nil {
		return nil, fmt.Errorf("fetching season averages: %w", err)
	}

	rows, cols, err := resultSet(statsResponse, "LeagueDashPlayerStats", "PLAYER_NAME", "TEAM_ABBREVIATION", "GP", "MIN")
	if err != nil {
		return nil, fmt.Errorf("parsing season averages: %w", err)
	}

	averages := make(map[string]models.PlayerAverages, len(rows))
	for _, row := range rows {
		averages[rowString(row, cols["PLAYER_NAME"])] = models.PlayerAverages{
			AvgMinutes:  roundToOneDecimal(rowFloat(row, cols["MIN"])),
			GamesPlayed: rowInt(row, cols["GP"]),
			Team:        rowString(row, cols["TEAM_ABBREVIATION"]),
		}
	}
	return averages, nil
}

func (a *API) season() string {
	if a.client.Config.Season != "" {
		return a.client.Config.Season
	}
	return CurrentSeason(time.Now())
}

// resultSet finds the named result set and resolves the required columns by
// header name; the provider occasionally appends columns, so positions are
// never trusted.
func resultSet(resp models.StatsResponse, name string, columns ...string) ([][]interface{}, map[string]int, error) {
	for _, rs := range resp.ResultSets {
		if rs.Name != name {
			continue
		}
		cols := make(map[string]int, len(rs.Headers))
		for i, header := range rs.Headers {
			cols[header] = i
		}
		for _, column := range columns {
			if _, ok := cols[column]; !ok {
				return nil, nil, fmt.Errorf("result set %s has no %s column", name, column)
			}
		}
		return rs.RowSet, cols, nil
	}
	return nil, nil, fmt.Errorf("response has no %s result set", name)
}

// Cells arrive as untyped JSON values and are occasionally null.

func rowString(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, _ := row[idx].(string)
	return s
}

func rowFloat(row []interface{}, idx int) float64 {
	if idx >= len(row) {
		return 0
	}
	f, _ := row[idx].(float64)
	return f
}

func rowInt(row []interface{}, idx int) int {
	return int(rowFloat(row, idx))
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
