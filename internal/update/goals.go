package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/varshitha1106/SmartStudyPlanner/internal/planner"
)

func (m Model) handleGoalsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "i", "enter":
		m.Goals.CaptureMode = true
		m.goalInput.Focus()
		m.goalInput.SetValue("")
		m.Status = StatusBar{Text: "goal capture mode", IsError: false}
	case "up", "k":
		if m.Goals.Cursor > 0 {
			m.Goals.Cursor--
		}
	case "down", "j":
		if m.Goals.Cursor < len(m.goals)-1 {
			m.Goals.Cursor++
		}
	case "d":
		if goal, ok := m.currentGoal(); ok {
			m.Planner.DeleteGoal(m.ctx, goal.ID)
			m.Status = StatusBar{Text: fmt.Sprintf("deleted goal: %s (tasks kept)", goal.Title), IsError: false}
		}
	}
	return m
}

func (m Model) handleGoalCaptureKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Goals.CaptureMode = false
		m.goalInput.Blur()
		m.Status = StatusBar{Text: "goal list mode", IsError: false}
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.goalInput.Value())
		goal, ok := m.Planner.AddGoal(m.ctx, planner.GoalFields{Title: title})
		if !ok {
			m.Status = StatusBar{Text: "goal title is required", IsError: true}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("added goal: %s", goal.Title), IsError: false}
		}
		m.goalInput.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.goalInput, cmd = m.goalInput.Update(msg)
	return m, cmd
}
