package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
	"github.com/varshitha1106/SmartStudyPlanner/internal/palette"
	"github.com/varshitha1106/SmartStudyPlanner/internal/planner"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "i", "enter":
		m.Tasks.CaptureMode = true
		m.Tasks.EditingID = ""
		m.quickAddInput.Focus()
		m.quickAddInput.SetValue("")
		m.Status = StatusBar{Text: "task capture mode", IsError: false}
	case "e":
		if task, ok := m.currentTask(); ok {
			m.Tasks.CaptureMode = true
			m.Tasks.EditingID = task.ID
			m.quickAddInput.Focus()
			m.quickAddInput.SetValue(taskToInput(task))
			m.Status = StatusBar{Text: fmt.Sprintf("editing: %s", task.Title), IsError: false}
		}
	case "up", "k":
		if m.Tasks.Cursor > 0 {
			m.Tasks.Cursor--
		}
	case "down", "j":
		if m.Tasks.Cursor < len(m.visibleTasks)-1 {
			m.Tasks.Cursor++
		}
	case " ":
		if task, ok := m.currentTask(); ok {
			toggled, _ := m.Planner.ToggleComplete(m.ctx, task.ID)
			if toggled.Completed {
				m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", toggled.Title), IsError: false}
			} else {
				m.Status = StatusBar{Text: fmt.Sprintf("reopened: %s", toggled.Title), IsError: false}
			}
		}
	case "d":
		if task, ok := m.currentTask(); ok {
			m.Planner.DeleteTask(m.ctx, task.ID)
			m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", task.Title), IsError: false}
		}
	case "f":
		m.Tasks.Filter = nextFilter(m.Tasks.Filter)
		m.Tasks.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("filter: %s", m.Tasks.Filter), IsError: false}
	}
	return m
}

func (m Model) handleTaskCaptureKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Tasks.CaptureMode = false
		m.Tasks.EditingID = ""
		m.quickAddInput.Blur()
		m.Status = StatusBar{Text: "task list mode", IsError: false}
		return m, nil
	case "enter":
		if m.Tasks.EditingID != "" {
			m.updateTaskFromInput(m.Tasks.EditingID, m.quickAddInput.Value())
			m.Tasks.EditingID = ""
			m.Tasks.CaptureMode = false
			m.quickAddInput.Blur()
		} else {
			m.addTaskFromInput(m.quickAddInput.Value())
		}
		m.quickAddInput.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	return m, cmd
}

// addTaskFromInput accepts the same input grammar as the palette add
// command, so "read ch3 due:2026-03-01 pri:high" works in quick add too.
func (m *Model) addTaskFromInput(raw string) {
	cmd, err := palette.Parse("add " + raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	task, ok := m.Planner.AddTask(m.ctx, planner.TaskFields{
		Title:           cmd.Add.Title,
		Subject:         cmd.Add.Subject,
		DueDate:         cmd.Add.DueDate,
		DueTime:         cmd.Add.DueTime,
		Priority:        cmd.Add.Priority,
		ReminderMinutes: cmd.Add.ReminderMinutes,
	})
	if !ok {
		m.Status = StatusBar{Text: "task title is required", IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("added task: %s", task.Title), IsError: false}
}

// updateTaskFromInput edits an existing task through the same grammar.
// Fields the grammar cannot express (notes, duration, goal link when no
// goal: modifier is given) carry over from the current task.
func (m *Model) updateTaskFromInput(id, raw string) {
	prior, ok := m.Planner.Task(id)
	if !ok {
		m.Status = StatusBar{Text: "task no longer exists", IsError: true}
		return
	}
	cmd, err := palette.Parse("add " + raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	goalID := prior.GoalID
	if cmd.Add.GoalTitle != "" {
		goalID = m.goalIDByTitle(cmd.Add.GoalTitle)
	}
	task, ok := m.Planner.UpdateTask(m.ctx, id, planner.TaskFields{
		Title:           cmd.Add.Title,
		Subject:         cmd.Add.Subject,
		DueDate:         cmd.Add.DueDate,
		DueTime:         cmd.Add.DueTime,
		DurationHours:   prior.DurationHours,
		Priority:        cmd.Add.Priority,
		ReminderMinutes: cmd.Add.ReminderMinutes,
		GoalID:          goalID,
		Notes:           prior.Notes,
	})
	if !ok {
		m.Status = StatusBar{Text: "task title is required", IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("updated task: %s", task.Title), IsError: false}
}

// taskToInput rebuilds the grammar line for a task so edits start from
// its current values.
func taskToInput(t model.Task) string {
	parts := []string{t.Title}
	if t.Subject != "" {
		parts = append(parts, "subject:"+t.Subject)
	}
	if t.DueDate != "" {
		parts = append(parts, "due:"+t.DueDate)
	}
	if t.DueTime != "" {
		parts = append(parts, "at:"+t.DueTime)
	}
	parts = append(parts, "pri:"+string(t.Priority))
	if t.ReminderMinutes > 0 {
		parts = append(parts, fmt.Sprintf("remind:%d", t.ReminderMinutes))
	}
	return strings.Join(parts, " ")
}

func nextFilter(f planner.Filter) planner.Filter {
	order := []planner.Filter{
		planner.FilterAll,
		planner.FilterPending,
		planner.FilterCompleted,
		planner.FilterOverdue,
		planner.FilterHigh,
	}
	for i, candidate := range order {
		if candidate == f {
			return order[(i+1)%len(order)]
		}
	}
	return planner.FilterAll
}
