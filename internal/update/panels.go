package update

import (
	"fmt"
	"time"

	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
	"github.com/varshitha1106/SmartStudyPlanner/internal/planner"
	"github.com/varshitha1106/SmartStudyPlanner/internal/views"
)

func (m Model) renderTasksView() string {
	items := make([]views.TaskItemData, 0, len(m.visibleTasks))
	now := m.Planner.Now()
	for _, t := range m.visibleTasks {
		items = append(items, taskItemData(t, now))
	}
	quickAdd := ""
	if m.Tasks.CaptureMode {
		quickAdd = m.quickAddInput.View()
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		QuickAddView: quickAdd,
		ListView:     m.tasksList.View(),
		Filter:       string(m.Tasks.Filter),
		Search:       m.Tasks.Search,
		Items:        items,
		SelectedID:   m.SelectedTaskID,
	})
}

func (m Model) renderGoalsView() string {
	items := make([]views.GoalItemData, 0, len(m.goals))
	for _, g := range m.goals {
		linked := 0
		for _, t := range m.Planner.Tasks() {
			if t.GoalID == g.ID {
				linked++
			}
		}
		items = append(items, views.GoalItemData{
			ID:       g.ID,
			Title:    g.Title,
			Progress: m.Planner.GoalProgress(g.ID),
			Linked:   linked,
		})
	}
	selected := ""
	if goal, ok := m.currentGoal(); ok {
		selected = goal.ID
	}
	quickAdd := ""
	if m.Goals.CaptureMode {
		quickAdd = m.goalInput.View()
	}
	return views.RenderGoalsPanel(views.GoalsPanelData{
		QuickAddView: quickAdd,
		Items:        items,
		SelectedID:   selected,
	})
}

func (m Model) renderTimelineView() string {
	now := m.Planner.Now()
	days := make([]views.TimelineDayData, 0, planner.TimelineDays)
	for _, day := range m.Planner.Timeline() {
		items := make([]views.TaskItemData, 0, len(day.Tasks))
		for _, t := range day.Tasks {
			items = append(items, taskItemData(t, now))
		}
		days = append(days, views.TimelineDayData{
			Label: day.Date.Format("Mon Jan 2"),
			Items: items,
		})
	}
	return views.RenderTimelinePanel(views.TimelinePanelData{
		TableView: m.timelineTable.View(),
		Days:      days,
	})
}

func (m Model) renderFocusView() string {
	fm := m.Planner.Focus()
	stats := m.Planner.Stats()
	total := fm.TotalSec()
	pct := 0
	if total > 0 {
		pct = (total - fm.RemainingSec) * 100 / total
	}
	taskTitle := ""
	if fm.TaskID != "" {
		if task, ok := m.Planner.Task(fm.TaskID); ok {
			taskTitle = task.Title
		}
	}
	return views.RenderFocusPanel(views.FocusPanelData{
		TaskTitle:     taskTitle,
		Phase:         string(fm.Phase),
		Timer:         formatDuration(fm.RemainingSec),
		ProgressView:  m.focusProgress.View(),
		ProgressPct:   pct,
		TodaySessions: stats.TodaySessions,
		TodayMinutes:  stats.TodayMinutes,
		StreakDays:    stats.StreakDays,
	})
}

func (m Model) renderTaskMetadataPane() string {
	task, ok := m.currentTask()
	if !ok {
		return "metadata:\n(no selection)"
	}
	goalTitle := "(none)"
	if task.GoalID != "" {
		if goal, found := m.Planner.Goal(task.GoalID); found {
			goalTitle = goal.Title
		}
	}
	reminder := "(off)"
	if m.Planner.PendingReminder(task.ID) {
		reminder = fmt.Sprintf("%d min before due", task.ReminderMinutes)
	}
	return views.RenderTaskMetadataPane(views.TaskMetadataData{
		SelectedID:    task.ID,
		Priority:      string(task.Priority),
		GoalTitle:     goalTitle,
		Reminder:      reminder,
		MarkdownNotes: m.notesViewport.View(),
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func taskItemData(t model.Task, now time.Time) views.TaskItemData {
	due := t.DueDate
	if t.DueTime != "" {
		due += " " + t.DueTime
	}
	return views.TaskItemData{
		ID:        t.ID,
		Title:     t.Title,
		Subject:   t.Subject,
		Due:       due,
		Priority:  string(t.Priority),
		Completed: t.Completed,
		Overdue:   t.IsOverdue(now),
	}
}
