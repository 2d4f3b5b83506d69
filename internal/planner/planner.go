package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/varshitha1106/SmartStudyPlanner/internal/focus"
	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
	"github.com/varshitha1106/SmartStudyPlanner/internal/notify"
	"github.com/varshitha1106/SmartStudyPlanner/internal/scheduler"
	"github.com/varshitha1106/SmartStudyPlanner/internal/storage"
)

// Clock supplies the current time; tests pin it.
type Clock func() time.Time

// Planner owns the whole application state: the task and goal collections,
// settings, focus stats and the focus machine. Every mutation goes through
// a Planner method, which writes through to the persistence gateway and
// keeps the reminder engine in sync.
type Planner struct {
	gateway  storage.Gateway
	engine   *scheduler.Engine
	notifier notify.Notifier
	now      Clock
	newID    func() string

	preferredTheme model.Theme

	tasks    []model.Task
	goals    []model.Goal
	settings model.Settings
	stats    model.Stats
	focus    *focus.Machine

	permissionProbed bool
}

type Options struct {
	Gateway        storage.Gateway
	Engine         *scheduler.Engine
	Notifier       notify.Notifier
	Now            Clock
	PreferredTheme model.Theme
}

func New(opts Options) *Planner {
	p := &Planner{
		gateway:        opts.Gateway,
		engine:         opts.Engine,
		notifier:       opts.Notifier,
		now:            opts.Now,
		newID:          uuid.NewString,
		preferredTheme: opts.PreferredTheme,
		focus:          focus.New(),
	}
	if p.gateway == nil {
		p.gateway = storage.NewMemoryGateway()
	}
	if p.engine == nil {
		p.engine = scheduler.NewEngine(16)
	}
	if p.notifier == nil {
		p.notifier = notify.NoopNotifier{}
	}
	if p.now == nil {
		p.now = time.Now
	}
	p.settings = model.DefaultSettings(p.preferredTheme)
	return p
}

// Load reads the four persisted documents, substituting the documented
// default for any missing or corrupt one, then resets stale daily stats
// and re-arms every reminder.
func (p *Planner) Load(ctx context.Context) error {
	p.tasks = loadDocument(ctx, p.gateway, storage.KeyTasks, []model.Task{})
	p.goals = loadDocument(ctx, p.gateway, storage.KeyGoals, []model.Goal{})
	p.settings = loadDocument(ctx, p.gateway, storage.KeySettings, model.DefaultSettings(p.preferredTheme))
	p.stats = loadDocument(ctx, p.gateway, storage.KeyStats, model.Stats{})

	p.stats.ResetDailyIfStale(p.now())
	p.RescheduleAll()
	return nil
}

// loadDocument falls back to def on a missing or unparsable document.
// Storage corruption is never surfaced to the user.
func loadDocument[T any](ctx context.Context, gw storage.Gateway, key string, def T) T {
	raw, err := gw.Load(ctx, key)
	if err != nil {
		return def
	}
	out := def
	if err := json.Unmarshal(raw, &out); err != nil {
		return def
	}
	return out
}

// saveAll overwrites every document. There is no transactional guarantee
// across keys; each save replaces its document wholesale.
func (p *Planner) saveAll(ctx context.Context) error {
	docs := []struct {
		key   string
		value any
	}{
		{storage.KeyTasks, p.tasks},
		{storage.KeyGoals, p.goals},
		{storage.KeySettings, p.settings},
		{storage.KeyStats, p.stats},
	}
	for _, doc := range docs {
		raw, err := json.Marshal(doc.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", doc.key, err)
		}
		if err := p.gateway.Save(ctx, doc.key, raw); err != nil {
			return fmt.Errorf("save %s: %w", doc.key, err)
		}
	}
	return nil
}

// TaskFields carries the form values for creating or editing a task.
type TaskFields struct {
	Title           string
	Subject         string
	DueDate         string
	DueTime         string
	DurationHours   float64
	Priority        model.Priority
	ReminderMinutes int
	GoalID          string
	Notes           string
}

// GoalFields carries the form values for creating a goal.
type GoalFields struct {
	Title       string
	Description string
	TargetDate  string
}

// AddTask creates a task from the given fields. A title that is empty
// after trimming makes this a no-op; no partial entity is created.
func (p *Planner) AddTask(ctx context.Context, fields TaskFields) (model.Task, bool) {
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return model.Task{}, false
	}
	task := model.Task{
		ID:              p.newID(),
		Title:           title,
		Subject:         strings.TrimSpace(fields.Subject),
		DueDate:         fields.DueDate,
		DueTime:         fields.DueTime,
		DurationHours:   fields.DurationHours,
		Priority:        normalizePriority(fields.Priority),
		ReminderMinutes: nonNegative(fields.ReminderMinutes),
		GoalID:          p.resolveGoalID(fields.GoalID),
		Notes:           strings.TrimSpace(fields.Notes),
		CreatedAt:       p.now().UnixMilli(),
	}
	p.tasks = append(p.tasks, task)
	_ = p.saveAll(ctx)
	p.ScheduleReminder(task)
	return task, true
}

// UpdateTask edits the task in place. An empty title leaves the task
// unchanged. The pending reminder is re-derived from the new fields;
// completed tasks keep no reminder.
func (p *Planner) UpdateTask(ctx context.Context, id string, fields TaskFields) (model.Task, bool) {
	idx := p.taskIndex(id)
	if idx < 0 {
		return model.Task{}, false
	}
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return model.Task{}, false
	}
	task := &p.tasks[idx]
	task.Title = title
	task.Subject = strings.TrimSpace(fields.Subject)
	task.DueDate = fields.DueDate
	task.DueTime = fields.DueTime
	task.DurationHours = fields.DurationHours
	task.Priority = normalizePriority(fields.Priority)
	task.ReminderMinutes = nonNegative(fields.ReminderMinutes)
	task.GoalID = p.resolveGoalID(fields.GoalID)
	task.Notes = strings.TrimSpace(fields.Notes)

	_ = p.saveAll(ctx)
	p.ClearReminder(task.ID)
	if !task.Completed {
		p.ScheduleReminder(*task)
	}
	return *task, true
}

// DeleteTask removes the task and cancels its reminder.
func (p *Planner) DeleteTask(ctx context.Context, id string) bool {
	idx := p.taskIndex(id)
	if idx < 0 {
		return false
	}
	p.ClearReminder(id)
	p.tasks = append(p.tasks[:idx], p.tasks[idx+1:]...)
	_ = p.saveAll(ctx)
	return true
}

// ToggleComplete flips completion. Completing cancels the reminder;
// un-completing re-derives it.
func (p *Planner) ToggleComplete(ctx context.Context, id string) (model.Task, bool) {
	idx := p.taskIndex(id)
	if idx < 0 {
		return model.Task{}, false
	}
	task := &p.tasks[idx]
	task.Completed = !task.Completed
	if task.Completed {
		p.ClearReminder(task.ID)
	} else {
		p.ScheduleReminder(*task)
	}
	_ = p.saveAll(ctx)
	return *task, true
}

// AddGoal creates a goal. Empty titles are rejected as a no-op.
func (p *Planner) AddGoal(ctx context.Context, fields GoalFields) (model.Goal, bool) {
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return model.Goal{}, false
	}
	goal := model.Goal{
		ID:          p.newID(),
		Title:       title,
		Description: strings.TrimSpace(fields.Description),
		TargetDate:  fields.TargetDate,
		CreatedAt:   p.now().UnixMilli(),
	}
	p.goals = append(p.goals, goal)
	_ = p.saveAll(ctx)
	return goal, true
}

// DeleteGoal removes the goal and unlinks every task referencing it.
// Tasks are never deleted by a goal deletion.
func (p *Planner) DeleteGoal(ctx context.Context, id string) bool {
	idx := -1
	for i, g := range p.goals {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	p.goals = append(p.goals[:idx], p.goals[idx+1:]...)
	for i := range p.tasks {
		if p.tasks[i].GoalID == id {
			p.tasks[i].GoalID = ""
		}
	}
	_ = p.saveAll(ctx)
	return true
}

// GoalProgress is the rounded percentage of completed tasks linked to the
// goal; 0 when nothing links to it.
func (p *Planner) GoalProgress(goalID string) int {
	total := 0
	done := 0
	for _, t := range p.tasks {
		if t.GoalID != goalID || goalID == "" {
			continue
		}
		total++
		if t.Completed {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return int(float64(done)/float64(total)*100 + 0.5)
}

// SetNotificationsEnabled turns desktop notifications on or off. Enabling
// probes platform availability; when the platform refuses, notifications
// stay disabled. Returns the effective value.
func (p *Planner) SetNotificationsEnabled(ctx context.Context, enabled bool) bool {
	if enabled {
		p.permissionProbed = true
		enabled = p.notifier.Available()
	}
	p.settings.NotificationsEnabled = enabled
	_ = p.saveAll(ctx)
	return enabled
}

// ToggleTheme flips light/dark and persists it.
func (p *Planner) ToggleTheme(ctx context.Context) model.Theme {
	if p.settings.Theme == model.ThemeLight {
		p.settings.Theme = model.ThemeDark
	} else {
		p.settings.Theme = model.ThemeLight
	}
	_ = p.saveAll(ctx)
	return p.settings.Theme
}

// Notify emits a desktop notification when notifications are enabled.
// The first emission probes platform availability; a refusal records
// notificationsEnabled = false and is otherwise non-fatal.
func (p *Planner) Notify(ctx context.Context, title, body string) {
	if !p.settings.NotificationsEnabled {
		return
	}
	if !p.permissionProbed {
		p.permissionProbed = true
		if !p.notifier.Available() {
			p.settings.NotificationsEnabled = false
			_ = p.saveAll(ctx)
			return
		}
	}
	_ = p.notifier.Send(title, body)
}

// Accessors. Slices are copied so callers cannot mutate planner state
// behind its back.

func (p *Planner) Tasks() []model.Task {
	out := make([]model.Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

func (p *Planner) Goals() []model.Goal {
	out := make([]model.Goal, len(p.goals))
	copy(out, p.goals)
	return out
}

func (p *Planner) Task(id string) (model.Task, bool) {
	idx := p.taskIndex(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return p.tasks[idx], true
}

func (p *Planner) Goal(id string) (model.Goal, bool) {
	for _, g := range p.goals {
		if g.ID == id {
			return g, true
		}
	}
	return model.Goal{}, false
}

func (p *Planner) Settings() model.Settings     { return p.settings }
func (p *Planner) Stats() model.Stats           { return p.stats }
func (p *Planner) Focus() *focus.Machine        { return p.focus }
func (p *Planner) Reminders() *scheduler.Engine { return p.engine }
func (p *Planner) Now() time.Time               { return p.now() }

func (p *Planner) taskIndex(id string) int {
	for i, t := range p.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (p *Planner) resolveGoalID(goalID string) string {
	if goalID == "" {
		return ""
	}
	if _, ok := p.Goal(goalID); !ok {
		return ""
	}
	return goalID
}

func normalizePriority(pr model.Priority) model.Priority {
	if !pr.IsValid() {
		return model.PriorityMedium
	}
	return pr
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
