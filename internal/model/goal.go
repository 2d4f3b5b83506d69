package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Goal is a longer-term objective tasks may link to. Progress is derived
// from linked tasks, never stored.
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TargetDate  string `json:"targetDate,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return errors.New("model: goal id is required")
	}
	if strings.TrimSpace(g.Title) == "" {
		return errors.New("model: goal title is required")
	}
	if g.TargetDate != "" {
		if _, err := time.ParseInLocation(DateLayout, g.TargetDate, time.Local); err != nil {
			return fmt.Errorf("model: bad target date %q: %w", g.TargetDate, err)
		}
	}
	return nil
}
