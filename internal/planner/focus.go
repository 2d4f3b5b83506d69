package planner

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/varshitha1106/SmartStudyPlanner/internal/focus"
)

// StartFocus starts or resumes the focus timer. The duration inputs come
// straight from the UI controls; malformed numbers fall back to the last
// valid configured value before clamping. Stats are saved at start.
func (p *Planner) StartFocus(ctx context.Context, workRaw, breakRaw, taskID string) error {
	work := parseMinutes(workRaw, p.focus.WorkMin)
	brk := parseMinutes(breakRaw, p.focus.BreakMin)
	p.focus.Start(work, brk, taskID)
	return p.saveAll(ctx)
}

// PauseFocus stops the tick source, keeping phase and countdown.
func (p *Planner) PauseFocus() {
	p.focus.Pause()
}

// ResetFocus forces the machine back to idle.
func (p *Planner) ResetFocus() {
	p.focus.Reset()
}

// SetFocusConfig applies new durations from the UI controls while the
// machine is idle, resetting to the new work countdown. During a running
// or paused session the call has no effect.
func (p *Planner) SetFocusConfig(workRaw, breakRaw string) {
	work := parseMinutes(workRaw, p.focus.WorkMin)
	brk := parseMinutes(breakRaw, p.focus.BreakMin)
	p.focus.SetConfig(work, brk)
}

// TickFocus advances the countdown one second and applies completion side
// effects atomically: a finished work block records the session, updates
// the streak, notifies and persists before control returns to the event
// loop.
func (p *Planner) TickFocus(ctx context.Context) (focus.TickOutcome, error) {
	outcome := p.focus.Tick()
	switch outcome {
	case focus.TickWorkComplete:
		workMin := p.focus.WorkMin
		p.stats.RecordWorkSession(workMin, p.now())
		body := fmt.Sprintf("Completed %d min session", workMin)
		if p.focus.TaskID != "" {
			body = fmt.Sprintf("Completed %d min on task", workMin)
		}
		p.Notify(ctx, "Focus complete", body)
		return outcome, p.saveAll(ctx)
	case focus.TickBreakComplete:
		p.Notify(ctx, "Break over", "Time to focus again")
		return outcome, p.saveAll(ctx)
	default:
		return outcome, nil
	}
}

func parseMinutes(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
