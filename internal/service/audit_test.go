package service

import (
	"strings"
	"testing"

	"github.com/hoopsdata/nbastats/internal/models"
)

func TestAuditPlayerNamesAligned(t *testing.T) {
	averages := map[string]models.PlayerAverages{
		"Jayson Tatum": {}, "Jalen Brunson": {},
	}
	recent := map[string]int{"Jayson Tatum": 3}

	if warnings := auditPlayerNames(averages, recent); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestAuditPlayerNamesReportsSpellingDrift(t *testing.T) {
	averages := map[string]models.PlayerAverages{
		"Jayson Tatum": {}, "Jalen Brunson": {},
	}
	recent := map[string]int{"Jayson Tatumm": 3}

	warnings := auditPlayerNames(averages, recent)
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], `"Jayson Tatumm"`) {
		t.Errorf("warning should name the unmatched entry: %q", warnings[0])
	}
	if !strings.Contains(warnings[0], `closest match is "Jayson Tatum"`) {
		t.Errorf("warning should suggest the near-identical name: %q", warnings[0])
	}
}

func TestAuditPlayerNamesWithoutPlausibleMatch(t *testing.T) {
	averages := map[string]models.PlayerAverages{
		"Jayson Tatum": {},
	}
	recent := map[string]int{"Victor Wembanyama": 2}

	warnings := auditPlayerNames(averages, recent)
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if strings.Contains(warnings[0], "closest match") {
		t.Errorf("unrelated names should not be suggested as matches: %q", warnings[0])
	}
}

func TestAuditPlayerNamesSortsWarnings(t *testing.T) {
	averages := map[string]models.PlayerAverages{}
	recent := map[string]int{"Zed": 1, "Abe": 1, "Mia": 1}

	warnings := auditPlayerNames(averages, recent)
	if len(warnings) != 3 {
		t.Fatalf("expected three warnings, got %v", warnings)
	}
	for i, name := range []string{"Abe", "Mia", "Zed"} {
		if !strings.Contains(warnings[i], name) {
			t.Errorf("warning %d = %q, want it to mention %s", i, warnings[i], name)
		}
	}
}

func TestClosestNameThreshold(t *testing.T) {
	averages := map[string]models.PlayerAverages{
		"Nikola Jokic": {},
	}

	if match, ok := closestName("Nikola Jokić", averages); !ok || match != "Nikola Jokic" {
		t.Errorf("diacritic variant should match, got %q (%v)", match, ok)
	}
	if match, ok := closestName("Luka Doncic", averages); ok {
		t.Errorf("different player should not match, got %q", match)
	}
}
