package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hoopsdata/nbastats/internal/models"
)

// writeStats marshals the mapping pretty-printed and lands it via a temp
// file plus rename, so the downstream merge task never sees a half-written
// file.
func writeStats(path string, stats map[string]models.PlayerSeasonRecord) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling stats: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error closing temp file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error setting permissions: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error replacing %s: %w", path, err)
	}
	return nil
}
