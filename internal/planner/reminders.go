package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
	"github.com/varshitha1106/SmartStudyPlanner/internal/scheduler"
)

const reminderTitle = "Study Reminder"

// ScheduleReminder arms the single pending reminder for the task,
// replacing any previous one. Tasks without a due date get none, and a
// fire time at or before now is never armed: reminders do not fire
// retroactively.
func (p *Planner) ScheduleReminder(t model.Task) {
	if p.engine == nil {
		return
	}
	p.engine.Cancel(t.ID)
	if t.Completed {
		return
	}
	due, ok := t.DueAt()
	if !ok {
		return
	}
	if t.ReminderMinutes < 0 {
		return
	}
	fireAt := due.Add(-time.Duration(t.ReminderMinutes) * time.Minute)
	if !fireAt.After(p.now()) {
		return
	}
	_ = p.engine.Schedule(scheduler.ReminderEvent{
		TaskID: t.ID,
		Title:  t.Title,
		DueAt:  due,
		FireAt: fireAt,
	})
}

// ClearReminder cancels the pending reminder for a task id. Safe when
// none is pending.
func (p *Planner) ClearReminder(taskID string) {
	if p.engine == nil {
		return
	}
	p.engine.Cancel(taskID)
}

// RescheduleAll drops every pending reminder and re-derives the set from
// the current task collection. Called at startup and after an import
// replaces the data wholesale.
func (p *Planner) RescheduleAll() {
	if p.engine == nil {
		return
	}
	p.engine.CancelAll()
	for _, t := range p.tasks {
		p.ScheduleReminder(t)
	}
}

// PendingReminder reports whether a reminder is armed for the task.
func (p *Planner) PendingReminder(taskID string) bool {
	if p.engine == nil {
		return false
	}
	return p.engine.Pending(taskID)
}

// HandleReminderFire emits the notification for a fired reminder and
// returns the status line for the UI.
func (p *Planner) HandleReminderFire(ctx context.Context, ev scheduler.ReminderEvent) string {
	body := fmt.Sprintf("%s at %s", ev.Title, ev.DueAt.Format("15:04"))
	p.Notify(ctx, reminderTitle, body)
	return fmt.Sprintf("reminder: %s", body)
}
