package models

// StatsResponse is the envelope every stats.nba.com endpoint returns: named
// result sets, each a list of column headers plus positional data rows.
type StatsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []ResultSet `json:"resultSets"`
}

type ResultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}
