package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DefaultDir is where batch reports are saved when no output path is given.
const DefaultDir = "output"

// GeneratePath creates a timestamped report filename inside dir.
func GeneratePath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("report_%s.yaml", now.Format("2006-01-02_15-04-05")))
}

// FindLatest returns the most recently modified yaml or json report in dir.
func FindLatest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read reports directory: %w", err)
	}

	type candidate struct {
		path string
		mod  time.Time
	}
	var reports []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		reports = append(reports, candidate{filepath.Join(dir, entry.Name()), info.ModTime()})
	}

	if len(reports) == 0 {
		return "", fmt.Errorf("no reports found in %s", dir)
	}

	// Newest first
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].mod.After(reports[j].mod)
	})
	return reports[0].path, nil
}
