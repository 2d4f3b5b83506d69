package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPriority = errors.New("model: invalid task priority")

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank orders priorities for listing: high sorts before medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Task is a schedulable study item. DueDate and DueTime keep the strings
// the input forms produce ("2006-01-02" / "15:04"); a task without a due
// date has no due timestamp at all.
type Task struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Subject         string   `json:"subject,omitempty"`
	DueDate         string   `json:"dueDate,omitempty"`
	DueTime         string   `json:"dueTime,omitempty"`
	DurationHours   float64  `json:"durationHours"`
	Priority        Priority `json:"priority"`
	ReminderMinutes int      `json:"reminderMinutes"`
	GoalID          string   `json:"goalId"`
	Notes           string   `json:"notes,omitempty"`
	Completed       bool     `json:"completed"`
	CreatedAt       int64    `json:"createdAt"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.ReminderMinutes < 0 {
		return errors.New("model: reminder minutes must not be negative")
	}
	if t.DurationHours < 0 {
		return errors.New("model: duration hours must not be negative")
	}
	if t.DueDate != "" {
		if _, err := time.ParseInLocation(DateLayout, t.DueDate, time.Local); err != nil {
			return fmt.Errorf("model: bad due date %q: %w", t.DueDate, err)
		}
	}
	if t.DueTime != "" {
		if _, err := time.Parse(TimeLayout, t.DueTime); err != nil {
			return fmt.Errorf("model: bad due time %q: %w", t.DueTime, err)
		}
	}
	return nil
}

// DueAt combines DueDate and DueTime into a local timestamp. A missing
// DueTime defaults to midnight. The second return is false when the task
// has no due date or the stored strings do not parse.
func (t Task) DueAt() (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	clock := t.DueTime
	if clock == "" {
		clock = "00:00"
	}
	due, err := time.ParseInLocation(DateLayout+" "+TimeLayout, t.DueDate+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// IsOverdue reports whether the task's due timestamp has passed. Completed
// tasks and tasks without a due date are never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	due, ok := t.DueAt()
	if !ok {
		return false
	}
	return now.After(due)
}
