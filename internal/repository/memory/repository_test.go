package memory

import (
	"testing"

	"github.com/hoopsdata/nbastats/internal/models"
)

func TestRepositoryRunSummaryRoundTrip(t *testing.T) {
	repo := NewRepository()

	if got := repo.GetRunSummary(); got != nil {
		t.Fatalf("fresh repository should hold no summary, got %+v", got)
	}

	summary := &models.RunSummary{Players: 540}
	repo.SaveRunSummary(summary)

	if got := repo.GetRunSummary(); got != summary {
		t.Errorf("GetRunSummary = %+v, want the saved summary", got)
	}

	next := &models.RunSummary{Players: 543}
	repo.SaveRunSummary(next)
	if got := repo.GetRunSummary(); got != next {
		t.Errorf("saving again should replace the previous summary")
	}
}
