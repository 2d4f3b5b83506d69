package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
	"github.com/varshitha1106/SmartStudyPlanner/internal/scheduler"
	"github.com/varshitha1106/SmartStudyPlanner/internal/views"
)

func (m Model) Init() tea.Cmd {
	return waitForReminderCmd(m.Planner.Reminders().C())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.syncBubbleData()

	switch typed := msg.(type) {
	case tea.KeyMsg:
		// Any keypress dismisses the reminder banner.
		m.LastReminder = ""
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}

		keyStr := typed.String()
		if m.captureActive() && keyStr != "ctrl+c" {
			return m.handleCaptureKey(typed)
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Tasks:
			m.CurrentView = ViewTasks
			return m, nil
		case m.Keys.Goals:
			m.CurrentView = ViewGoals
			return m, nil
		case m.Keys.Timeline:
			m.CurrentView = ViewTimeline
			return m, nil
		case m.Keys.Focus:
			m.CurrentView = ViewFocus
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "N":
			enabled := !m.Planner.Settings().NotificationsEnabled
			if m.Planner.SetNotificationsEnabled(m.ctx, enabled) == enabled {
				m.Status = StatusBar{Text: fmt.Sprintf("notifications %s", onOff(enabled)), IsError: false}
			} else {
				m.Status = StatusBar{Text: "desktop notifications unavailable on this system", IsError: true}
			}
			return m, nil
		case "T":
			theme := m.Planner.ToggleTheme(m.ctx)
			m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", theme), IsError: false}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewTasks:
			return m.handleTasksKey(typed), nil
		case ViewGoals:
			return m.handleGoalsKey(typed), nil
		case ViewTimeline:
			return m.handleTimelineKey(typed)
		case ViewFocus:
			return m.handleFocusKey(typed)
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case FocusTickMsg:
		return m.onFocusTick(typed)
	case ReminderDueMsg:
		text := m.Planner.HandleReminderFire(m.ctx, typed.Event)
		m.Status = StatusBar{Text: text, IsError: false}
		m.LastReminder = text
		return m, waitForReminderCmd(m.Planner.Reminders().C())
	}

	return m, nil
}

func (m Model) View() string {
	m.syncBubbleData()
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewTasks:
		leftPane = m.renderTasksView()
		rightPane = m.renderTaskMetadataPane() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewGoals:
		leftPane = m.renderGoalsView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewTimeline:
		leftPane = m.renderTimelineView()
		rightPane = m.renderHelpIfVisible()
	case ViewFocus:
		leftPane = m.renderFocusView()
		rightPane = m.renderHelpIfVisible()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("studyplan | view: %s | selected: %s", m.CurrentView, m.SelectedTaskID),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s tasks | %s goals | %s timeline | %s focus | / cmd | %s help | %s quit",
			m.Keys.Tasks, m.Keys.Goals, m.Keys.Timeline, m.Keys.Focus, m.Keys.Help, m.Keys.Quit),
		Notification: views.RenderNotification("reminder", m.LastReminder),
		Dark:         m.Planner.Settings().Theme == model.ThemeDark,
	})
}

func (m Model) captureActive() bool {
	if m.CurrentView == ViewTasks && m.Tasks.CaptureMode {
		return true
	}
	return m.CurrentView == ViewGoals && m.Goals.CaptureMode
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.CurrentView == ViewGoals {
		return m.handleGoalCaptureKey(msg)
	}
	return m.handleTaskCaptureKey(msg)
}

func waitForReminderCmd(ch <-chan scheduler.ReminderEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Event: ev}
	}
}

func isKnownView(v View) bool {
	switch v {
	case ViewTasks, ViewGoals, ViewTimeline, ViewFocus:
		return true
	default:
		return false
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
