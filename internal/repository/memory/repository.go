package memory

import (
	"sync"

	"github.com/hoopsdata/nbastats/internal/models"
)

type Repository struct {
	lastRun *models.RunSummary
	mu      sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveRunSummary(summary *models.RunSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastRun = summary
}

func (r *Repository) GetRunSummary() *models.RunSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastRun
}
