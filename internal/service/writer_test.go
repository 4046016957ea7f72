package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hoopsdata/nbastats/internal/models"
)

func TestWriteStatsPrettyPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nba_stats.json")
	stats := map[string]models.PlayerSeasonRecord{
		"A": {AvgMinutes: 32.4, GamesPlayed: 10, Team: "BOS", RecentGamesPlayed: 2},
	}

	if err := writeStats(path, stats); err != nil {
		t.Fatalf("writeStats: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"") {
		t.Errorf("output is not indented with two spaces: %q", data[:min(len(data), 20)])
	}

	var got map[string]models.PlayerSeasonRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(got, stats) {
		t.Errorf("round trip = %+v, want %+v", got, stats)
	}
}

func TestWriteStatsReplacesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nba_stats.json")
	if err := os.WriteFile(path, []byte(`{"Stale": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	stats := map[string]models.PlayerSeasonRecord{"Fresh": {Team: "DEN"}}
	if err := writeStats(path, stats); err != nil {
		t.Fatalf("writeStats: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Stale") {
		t.Error("previous run's content survived the overwrite")
	}
}

func TestWriteStatsLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nba_stats.json")

	if err := writeStats(path, map[string]models.PlayerSeasonRecord{}); err != nil {
		t.Fatalf("writeStats: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "nba_stats.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory should hold only the output file, got %v", names)
	}
}

func TestWriteStatsMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "nba_stats.json")

	err := writeStats(path, map[string]models.PlayerSeasonRecord{})
	if err == nil {
		t.Fatal("expected an error when the target directory does not exist")
	}
}
