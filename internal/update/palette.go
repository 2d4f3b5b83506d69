package update

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/varshitha1106/SmartStudyPlanner/internal/palette"
	"github.com/varshitha1106/SmartStudyPlanner/internal/planner"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
	return m, nil
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := palette.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := palette.Execute(cmd, palette.Handlers{
		Add: func(a palette.AddArgs) (palette.Result, error) {
			goalID := ""
			if a.GoalTitle != "" {
				goalID = m.goalIDByTitle(a.GoalTitle)
				if goalID == "" {
					return palette.Result{}, &palette.CommandError{
						Code: palette.ErrCodeInvalidArgument, Message: fmt.Sprintf("no goal titled %q", a.GoalTitle),
					}
				}
			}
			task, ok := m.Planner.AddTask(m.ctx, planner.TaskFields{
				Title:           a.Title,
				Subject:         a.Subject,
				DueDate:         a.DueDate,
				DueTime:         a.DueTime,
				Priority:        a.Priority,
				ReminderMinutes: a.ReminderMinutes,
				GoalID:          goalID,
			})
			if !ok {
				return palette.Result{}, &palette.CommandError{Code: palette.ErrCodeInvalidArgument, Message: "task title is required"}
			}
			m.CurrentView = ViewTasks
			return palette.Result{Message: fmt.Sprintf("added task: %s", task.Title)}, nil
		},
		Goal: func(g palette.GoalArgs) (palette.Result, error) {
			goal, ok := m.Planner.AddGoal(m.ctx, planner.GoalFields{Title: g.Title})
			if !ok {
				return palette.Result{}, &palette.CommandError{Code: palette.ErrCodeInvalidArgument, Message: "goal title is required"}
			}
			m.CurrentView = ViewGoals
			return palette.Result{Message: fmt.Sprintf("added goal: %s", goal.Title)}, nil
		},
		Filter: func(f palette.FilterArgs) (palette.Result, error) {
			m.Tasks.Filter = planner.Filter(f.Name)
			m.Tasks.Cursor = 0
			m.CurrentView = ViewTasks
			return palette.Result{Message: fmt.Sprintf("filter applied: %s", f.Name)}, nil
		},
		Search: func(s palette.SearchArgs) (palette.Result, error) {
			m.Tasks.Search = s.Term
			m.Tasks.Cursor = 0
			m.CurrentView = ViewTasks
			if s.Term == "" {
				return palette.Result{Message: "search cleared"}, nil
			}
			return palette.Result{Message: fmt.Sprintf("searching: %s", s.Term)}, nil
		},
		Export: func(f palette.FileArgs) (palette.Result, error) {
			payload, err := m.Planner.ExportBackup()
			if err != nil {
				return palette.Result{}, err
			}
			if err := os.WriteFile(f.Path, payload, 0o644); err != nil {
				return palette.Result{}, err
			}
			return palette.Result{Message: fmt.Sprintf("exported backup to %s", f.Path)}, nil
		},
		Import: func(f palette.FileArgs) (palette.Result, error) {
			payload, err := os.ReadFile(f.Path)
			if err != nil {
				return palette.Result{}, err
			}
			if err := m.Planner.ImportBackup(m.ctx, payload); err != nil {
				return palette.Result{}, err
			}
			return palette.Result{Message: fmt.Sprintf("imported backup from %s", f.Path)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m Model) goalIDByTitle(title string) string {
	for _, g := range m.Planner.Goals() {
		if strings.EqualFold(g.Title, title) {
			return g.ID
		}
	}
	return ""
}
