package update

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
	"github.com/varshitha1106/SmartStudyPlanner/internal/planner"
	"github.com/varshitha1106/SmartStudyPlanner/internal/scheduler"
)

type View string

const (
	ViewTasks    View = "Tasks"
	ViewGoals    View = "Goals"
	ViewTimeline View = "Timeline"
	ViewFocus    View = "Focus"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Tasks    string
	Goals    string
	Timeline string
	Focus    string
	Help     string
	Quit     string
}

type TasksState struct {
	Filter      planner.Filter
	Search      string
	Cursor      int
	CaptureMode bool
	// EditingID routes the capture input to updateTask instead of addTask.
	EditingID string
}

type GoalsState struct {
	Cursor      int
	CaptureMode bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Planner        *planner.Planner
	CurrentView    View
	SelectedTaskID string
	Tasks          TasksState
	Goals          GoalsState
	Palette        CommandPaletteState
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	LastReminder   string

	// focusTickSeq is the live tick chain generation; stale FocusTickMsg
	// deliveries carry an older value and are ignored.
	focusTickSeq int

	ctx context.Context

	// Cached query results for cursor indexing; refreshed by syncBubbleData.
	visibleTasks []model.Task
	goals        []model.Goal

	// Bubble components used for rich TUI controls
	tasksList     list.Model
	goalsList     list.Model
	timelineTable table.Model
	quickAddInput textinput.Model
	goalInput     textinput.Model
	commandInput  textinput.Model
	focusProgress progress.Model
	helpModel     help.Model
	notesViewport viewport.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// FocusTickMsg carries the tick chain generation it belongs to. A pause
// or reset bumps the model's generation, so a tick already in flight
// from before the pause is recognized as stale and dropped instead of
// re-arming a second chain.
type FocusTickMsg struct {
	Seq int
}

type ReminderDueMsg struct {
	Event scheduler.ReminderEvent
}

func NewModel(ctx context.Context, p *planner.Planner) Model {
	m := Model{
		Planner:     p,
		CurrentView: ViewTasks,
		Tasks:       TasksState{Filter: planner.FilterAll},
		Keys: GlobalKeyMap{
			Tasks:    "1",
			Goals:    "2",
			Timeline: "3",
			Focus:    "4",
			Help:     "?",
			Quit:     "q",
		},
		ctx: ctx,
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.tasksList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.tasksList.Title = "Tasks (list)"
	m.tasksList.SetShowHelp(false)
	m.tasksList.SetFilteringEnabled(false)

	m.goalsList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.goalsList.Title = "Goals (list)"
	m.goalsList.SetShowHelp(false)
	m.goalsList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Day", Width: 12},
		{Title: "Time", Width: 7},
		{Title: "Priority", Width: 8},
		{Title: "Title", Width: 24},
	}
	m.timelineTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42

	m.goalInput = textinput.New()
	m.goalInput.Prompt = "goal> "
	m.goalInput.CharLimit = 256
	m.goalInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.focusProgress = progress.New(progress.WithDefaultGradient())
	m.helpModel = help.New()
	m.notesViewport = viewport.New(54, 12)
}

func (m *Model) syncBubbleData() {
	m.visibleTasks = m.Planner.ListTasks(m.Tasks.Filter, m.Tasks.Search)
	m.goals = m.Planner.Goals()
	m.clampCursors()

	taskItems := make([]list.Item, 0, len(m.visibleTasks))
	for _, t := range m.visibleTasks {
		desc := string(t.Priority)
		if t.Subject != "" {
			desc += " | " + t.Subject
		}
		taskItems = append(taskItems, listItem{title: t.Title, description: desc})
	}
	m.tasksList.SetItems(taskItems)
	if len(taskItems) > 0 {
		m.tasksList.Select(m.Tasks.Cursor)
	}

	goalItems := make([]list.Item, 0, len(m.goals))
	for _, g := range m.goals {
		goalItems = append(goalItems, listItem{
			title:       g.Title,
			description: fmt.Sprintf("%d%% complete", m.Planner.GoalProgress(g.ID)),
		})
	}
	m.goalsList.SetItems(goalItems)
	if len(goalItems) > 0 {
		m.goalsList.Select(m.Goals.Cursor)
	}

	rows := make([]table.Row, 0)
	for _, day := range m.Planner.Timeline() {
		label := day.Date.Format("Mon Jan 2")
		for _, t := range day.Tasks {
			rows = append(rows, table.Row{label, t.DueTime, string(t.Priority), t.Title})
		}
	}
	m.timelineTable.SetRows(rows)

	if sel, ok := m.currentTask(); ok {
		m.SelectedTaskID = sel.ID
		md := sel.Notes
		if md == "" {
			md = "_No notes_"
		}
		dark := m.Planner.Settings().Theme == model.ThemeDark
		m.notesViewport.SetContent(renderMarkdown(md, dark))
	}

	fm := m.Planner.Focus()
	total := fm.TotalSec()
	pct := 0.0
	if total > 0 {
		pct = float64(total-fm.RemainingSec) / float64(total)
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	_ = m.focusProgress.SetPercent(pct)
}

func (m *Model) clampCursors() {
	if m.Tasks.Cursor >= len(m.visibleTasks) {
		m.Tasks.Cursor = len(m.visibleTasks) - 1
	}
	if m.Tasks.Cursor < 0 {
		m.Tasks.Cursor = 0
	}
	if m.Goals.Cursor >= len(m.goals) {
		m.Goals.Cursor = len(m.goals) - 1
	}
	if m.Goals.Cursor < 0 {
		m.Goals.Cursor = 0
	}
}

func (m Model) currentTask() (model.Task, bool) {
	if len(m.visibleTasks) == 0 || m.Tasks.Cursor < 0 || m.Tasks.Cursor >= len(m.visibleTasks) {
		return model.Task{}, false
	}
	return m.visibleTasks[m.Tasks.Cursor], true
}

func (m Model) currentGoal() (model.Goal, bool) {
	if len(m.goals) == 0 || m.Goals.Cursor < 0 || m.Goals.Cursor >= len(m.goals) {
		return model.Goal{}, false
	}
	return m.goals[m.Goals.Cursor], true
}
