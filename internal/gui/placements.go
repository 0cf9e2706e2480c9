package gui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/deep-mine/internal/geom"
)

// loadPlacements reads saved structure positions. A missing file is empty.
func loadPlacements(path string) ([]geom.StorableVector, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return geom.UnmarshalVectors(data)
}

func savePlacements(path string, placed []geom.StorableVector) error {
	if path == "" {
		return nil
	}
	data, err := geom.MarshalVectors(placed)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "placements-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("save placements: %w", err)
	}
	return nil
}
