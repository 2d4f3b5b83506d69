package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
)

var ErrInvalidBackup = errors.New("planner: invalid backup file")

// Backup is the export/import file shape. ExportedAt is informational and
// ignored on import.
type Backup struct {
	Tasks      []model.Task   `json:"tasks"`
	Goals      []model.Goal   `json:"goals"`
	Settings   model.Settings `json:"settings"`
	Stats      model.Stats    `json:"stats"`
	ExportedAt string         `json:"exportedAt"`
}

// ExportBackup serializes the full state.
func (p *Planner) ExportBackup() ([]byte, error) {
	payload := Backup{
		Tasks:      p.Tasks(),
		Goals:      p.Goals(),
		Settings:   p.settings,
		Stats:      p.stats,
		ExportedAt: p.now().Format(time.RFC3339),
	}
	return json.MarshalIndent(payload, "", "  ")
}

// ImportBackup replaces state from a backup file. Each field is checked
// for its expected JSON shape; fields of the wrong shape are skipped,
// settings and stats merge over their defaults, and any parse failure
// rejects the whole import with the prior state unchanged. On success
// everything is persisted and all reminders are rescheduled.
func (p *Planner) ImportBackup(ctx context.Context, raw []byte) error {
	var doc struct {
		Tasks    json.RawMessage `json:"tasks"`
		Goals    json.RawMessage `json:"goals"`
		Settings json.RawMessage `json:"settings"`
		Stats    json.RawMessage `json:"stats"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	// Stage every field before committing anything.
	tasks := p.tasks
	if hasShape(doc.Tasks, '[') {
		var staged []model.Task
		if err := json.Unmarshal(doc.Tasks, &staged); err != nil {
			return fmt.Errorf("%w: tasks: %v", ErrInvalidBackup, err)
		}
		tasks = staged
	}
	goals := p.goals
	if hasShape(doc.Goals, '[') {
		var staged []model.Goal
		if err := json.Unmarshal(doc.Goals, &staged); err != nil {
			return fmt.Errorf("%w: goals: %v", ErrInvalidBackup, err)
		}
		goals = staged
	}
	settings := p.settings
	if hasShape(doc.Settings, '{') {
		staged := model.DefaultSettings(p.preferredTheme)
		if err := json.Unmarshal(doc.Settings, &staged); err != nil {
			return fmt.Errorf("%w: settings: %v", ErrInvalidBackup, err)
		}
		settings = staged
	}
	stats := p.stats
	if hasShape(doc.Stats, '{') {
		staged := p.stats
		if err := json.Unmarshal(doc.Stats, &staged); err != nil {
			return fmt.Errorf("%w: stats: %v", ErrInvalidBackup, err)
		}
		stats = staged
	}

	p.tasks = tasks
	p.goals = goals
	p.settings = settings
	p.stats = stats

	if err := p.saveAll(ctx); err != nil {
		return err
	}
	p.RescheduleAll()
	return nil
}

// hasShape reports whether the raw value is present and starts with the
// expected container delimiter.
func hasShape(raw json.RawMessage, delim byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == delim
}
