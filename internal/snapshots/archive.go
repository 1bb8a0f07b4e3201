// Package snapshots persists the most recent schedule documents to disk for
// ops debugging. The archive is optional and never on the polling hot path;
// write failures are logged by callers and otherwise ignored.
package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mlb-scores-service/internal/domain"
	"mlb-scores-service/internal/timeutil"
)

const defaultRetentionDays = 7

// Archive writes one JSON file per date under basePath/schedule and prunes
// beyond the retention window.
type Archive struct {
	basePath      string
	retentionDays int
}

// NewArchive constructs an Archive rooted at basePath.
func NewArchive(basePath string, retentionDays int) *Archive {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Archive{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// SchedulePath builds the path to the archived schedule for a date.
func SchedulePath(basePath, date string) string {
	return filepath.Join(basePath, "schedule", fmt.Sprintf("%s.json", date))
}

// WriteScheduleSnapshot persists the snapshot for date and prunes old files.
// Unchanged content is not rewritten.
func (a *Archive) WriteScheduleSnapshot(date string, snap domain.ScheduleSnapshot) error {
	if a == nil {
		return nil
	}
	if date == "" {
		return fmt.Errorf("date required")
	}

	target := SchedulePath(a.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if existing, readErr := os.ReadFile(target); readErr == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return a.prune()
}

// prune removes archived dates beyond the retention window, keeping the most
// recent retentionDays files.
func (a *Archive) prune() error {
	dir := filepath.Join(a.basePath, "schedule")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var dates []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		date := strings.TrimSuffix(name, ".json")
		if _, parseErr := timeutil.ParseDate(date); parseErr != nil {
			continue
		}
		dates = append(dates, date)
	}

	if len(dates) <= a.retentionDays {
		return nil
	}
	sort.Strings(dates)
	for _, date := range dates[:len(dates)-a.retentionDays] {
		if rmErr := os.Remove(SchedulePath(a.basePath, date)); rmErr != nil {
			return rmErr
		}
	}
	return nil
}
