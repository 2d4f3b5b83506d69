package planner

import (
	"context"
	"testing"
	"time"

	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
	"github.com/varshitha1106/SmartStudyPlanner/internal/scheduler"
	"github.com/varshitha1106/SmartStudyPlanner/internal/storage"
)

type recordingNotifier struct {
	available bool
	sent      []string
}

func (n *recordingNotifier) Send(title, body string) error {
	n.sent = append(n.sent, title+": "+body)
	return nil
}

func (n *recordingNotifier) Available() bool { return n.available }

type plannerFixture struct {
	planner  *Planner
	gateway  *storage.MemoryGateway
	engine   *scheduler.Engine
	notifier *recordingNotifier
	now      *time.Time
}

func newFixture(t *testing.T, at time.Time) *plannerFixture {
	t.Helper()
	f := &plannerFixture{
		gateway:  storage.NewMemoryGateway(),
		engine:   scheduler.NewEngine(8),
		notifier: &recordingNotifier{available: true},
		now:      &at,
	}
	f.planner = New(Options{
		Gateway:        f.gateway,
		Engine:         f.engine,
		Notifier:       f.notifier,
		Now:            func() time.Time { return *f.now },
		PreferredTheme: model.ThemeDark,
	})
	if err := f.planner.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return f
}

func (f *plannerFixture) advance(d time.Duration) {
	next := f.now.Add(d)
	*f.now = next
}

func localDate(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestAddTaskAssignsIdentityAndPersists(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 9, 10, 0))
	ctx := context.Background()

	task, ok := f.planner.AddTask(ctx, TaskFields{Title: "  Read Ch.3  ", Priority: model.PriorityHigh})
	if !ok {
		t.Fatal("expected task created")
	}
	if task.ID == "" {
		t.Fatal("expected generated id")
	}
	if task.Title != "Read Ch.3" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if task.CreatedAt != localDate(2026, 2, 9, 10, 0).UnixMilli() {
		t.Fatalf("unexpected createdAt: %d", task.CreatedAt)
	}

	raw, err := f.gateway.Load(ctx, storage.KeyTasks)
	if err != nil {
		t.Fatalf("expected tasks document persisted: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("expected non-empty tasks document")
	}

	second, _ := f.planner.AddTask(ctx, TaskFields{Title: "Another", Priority: model.PriorityLow})
	if second.ID == task.ID {
		t.Fatal("expected unique ids")
	}
}

func TestAddTaskRejectsEmptyTitle(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 9, 10, 0))

	if _, ok := f.planner.AddTask(context.Background(), TaskFields{Title: "   "}); ok {
		t.Fatal("expected empty title rejected")
	}
	if len(f.planner.Tasks()) != 0 {
		t.Fatal("expected no partial entity created")
	}
}

func TestAddTaskDanglingGoalIsUnlinked(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 9, 10, 0))
	task, _ := f.planner.AddTask(context.Background(), TaskFields{Title: "Math", GoalID: "no-such-goal"})
	if task.GoalID != "" {
		t.Fatalf("expected dangling goal reference treated as unlinked, got %q", task.GoalID)
	}
}

func TestDeleteGoalUnlinksTasks(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 9, 10, 0))
	ctx := context.Background()

	goal, _ := f.planner.AddGoal(ctx, GoalFields{Title: "Pass finals"})
	linked, _ := f.planner.AddTask(ctx, TaskFields{Title: "Revise", GoalID: goal.ID})
	other, _ := f.planner.AddTask(ctx, TaskFields{Title: "Unrelated"})

	if !f.planner.DeleteGoal(ctx, goal.ID) {
		t.Fatal("expected goal deleted")
	}
	if len(f.planner.Tasks()) != 2 {
		t.Fatal("goal deletion must never delete tasks")
	}
	got, _ := f.planner.Task(linked.ID)
	if got.GoalID != "" {
		t.Fatalf("expected task unlinked, got goalId %q", got.GoalID)
	}
	if _, ok := f.planner.Goal(goal.ID); ok {
		t.Fatal("expected goal removed")
	}
	if _, ok := f.planner.Task(other.ID); !ok {
		t.Fatal("expected unrelated task untouched")
	}
}

func TestGoalProgress(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 9, 10, 0))
	ctx := context.Background()

	goal, _ := f.planner.AddGoal(ctx, GoalFields{Title: "Thesis"})
	if got := f.planner.GoalProgress(goal.ID); got != 0 {
		t.Fatalf("expected 0 with no linked tasks, got %d", got)
	}

	a, _ := f.planner.AddTask(ctx, TaskFields{Title: "a", GoalID: goal.ID})
	b, _ := f.planner.AddTask(ctx, TaskFields{Title: "b", GoalID: goal.ID})
	c, _ := f.planner.AddTask(ctx, TaskFields{Title: "c", GoalID: goal.ID})

	f.planner.ToggleComplete(ctx, a.ID)
	if got := f.planner.GoalProgress(goal.ID); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	f.planner.ToggleComplete(ctx, b.ID)
	if got := f.planner.GoalProgress(goal.ID); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
	f.planner.ToggleComplete(ctx, c.ID)
	if got := f.planner.GoalProgress(goal.ID); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestListTasksSortsByPriorityThenDue(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 9, 10, 0))
	ctx := context.Background()

	f.planner.AddTask(ctx, TaskFields{Title: "low undated", Priority: model.PriorityLow})
	f.planner.AddTask(ctx, TaskFields{Title: "high late", Priority: model.PriorityHigh, DueDate: "2026-02-12", DueTime: "09:00"})
	f.planner.AddTask(ctx, TaskFields{Title: "medium", Priority: model.PriorityMedium, DueDate: "2026-02-10"})
	f.planner.AddTask(ctx, TaskFields{Title: "high early", Priority: model.PriorityHigh, DueDate: "2026-02-10", DueTime: "08:00"})
	f.planner.AddTask(ctx, TaskFields{Title: "high undated", Priority: model.PriorityHigh})

	got := f.planner.ListTasks(FilterAll, "")
	want := []string{"high early", "high late", "high undated", "medium", "low undated"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, got[i].Title)
		}
	}
}

func TestListTasksSearchAndFilters(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 10, 12, 0))
	ctx := context.Background()

	f.planner.AddTask(ctx, TaskFields{Title: "Read Homer", Subject: "Classics", Priority: model.PriorityHigh})
	f.planner.AddTask(ctx, TaskFields{Title: "Algebra drills", Notes: "focus on homomorphisms", Priority: model.PriorityLow})
	overdue, _ := f.planner.AddTask(ctx, TaskFields{Title: "Lab report", DueDate: "2026-02-09", DueTime: "14:00"})
	done, _ := f.planner.AddTask(ctx, TaskFields{Title: "Flashcards"})
	f.planner.ToggleComplete(ctx, done.ID)

	// Case-insensitive substring across title, subject, notes.
	if got := f.planner.ListTasks(FilterAll, "hom"); len(got) != 2 {
		t.Fatalf("expected 2 matches for 'hom', got %d", len(got))
	}
	if got := f.planner.ListTasks(FilterAll, "classics"); len(got) != 1 || got[0].Title != "Read Homer" {
		t.Fatalf("unexpected subject search result: %+v", got)
	}

	if got := f.planner.ListTasks(FilterPending, ""); len(got) != 3 {
		t.Fatalf("expected 3 pending, got %d", len(got))
	}
	if got := f.planner.ListTasks(FilterCompleted, ""); len(got) != 1 || got[0].ID != done.ID {
		t.Fatalf("unexpected completed filter: %+v", got)
	}
	if got := f.planner.ListTasks(FilterOverdue, ""); len(got) != 1 || got[0].ID != overdue.ID {
		t.Fatalf("unexpected overdue filter: %+v", got)
	}
	if got := f.planner.ListTasks(FilterHigh, ""); len(got) != 1 || got[0].Title != "Read Homer" {
		t.Fatalf("unexpected high filter: %+v", got)
	}
}

func TestTimelineBucketsSevenDays(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 9, 15, 0))
	ctx := context.Background()

	f.planner.AddTask(ctx, TaskFields{Title: "today late", DueDate: "2026-02-09", DueTime: "20:00"})
	f.planner.AddTask(ctx, TaskFields{Title: "today early", DueDate: "2026-02-09", DueTime: "08:00"})
	f.planner.AddTask(ctx, TaskFields{Title: "in three days", DueDate: "2026-02-12"})
	f.planner.AddTask(ctx, TaskFields{Title: "next week", DueDate: "2026-02-17"})
	f.planner.AddTask(ctx, TaskFields{Title: "undated"})

	days := f.planner.Timeline()
	if len(days) != TimelineDays {
		t.Fatalf("expected %d days, got %d", TimelineDays, len(days))
	}
	if len(days[0].Tasks) != 2 || days[0].Tasks[0].Title != "today early" {
		t.Fatalf("unexpected first day bucket: %+v", days[0].Tasks)
	}
	if len(days[3].Tasks) != 1 || days[3].Tasks[0].Title != "in three days" {
		t.Fatalf("unexpected fourth day bucket: %+v", days[3].Tasks)
	}
	total := 0
	for _, day := range days {
		total += len(day.Tasks)
	}
	if total != 3 {
		t.Fatalf("expected 3 bucketed tasks, got %d", total)
	}
}

func TestReminderLifecycle(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 9, 13, 30))
	ctx := context.Background()

	// Due 14:00 with a 10 minute lead scheduled at 13:30 -> armed.
	task, _ := f.planner.AddTask(ctx, TaskFields{
		Title: "Read Ch.3", DueDate: "2026-02-09", DueTime: "14:00", ReminderMinutes: 10,
	})
	if !f.planner.PendingReminder(task.ID) {
		t.Fatal("expected reminder armed 20 minutes ahead of fire time")
	}

	// Scheduling twice leaves exactly one pending reminder.
	got, _ := f.planner.Task(task.ID)
	f.planner.ScheduleReminder(got)
	if f.engine.PendingCount() != 1 {
		t.Fatalf("expected one pending reminder, got %d", f.engine.PendingCount())
	}

	// Completing cancels; un-completing re-arms.
	f.planner.ToggleComplete(ctx, task.ID)
	if f.planner.PendingReminder(task.ID) {
		t.Fatal("expected reminder cancelled on completion")
	}
	f.planner.ToggleComplete(ctx, task.ID)
	if !f.planner.PendingReminder(task.ID) {
		t.Fatal("expected reminder re-armed on un-completion")
	}

	// Deleting cancels.
	f.planner.DeleteTask(ctx, task.ID)
	if f.planner.PendingReminder(task.ID) {
		t.Fatal("expected reminder cancelled on delete")
	}
}

func TestReminderNeverArmedForPastFireTime(t *testing.T) {
	// At 13:55 the computed fire time 13:50 is already past.
	f := newFixture(t, localDate(2026, 2, 9, 13, 55))
	task, _ := f.planner.AddTask(context.Background(), TaskFields{
		Title: "Read Ch.3", DueDate: "2026-02-09", DueTime: "14:00", ReminderMinutes: 10,
	})
	if f.planner.PendingReminder(task.ID) {
		t.Fatal("expected no reminder for past fire time")
	}
}

func TestUpdateTaskReschedulesReminder(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 9, 9, 0))
	ctx := context.Background()

	task, _ := f.planner.AddTask(ctx, TaskFields{Title: "Essay", DueDate: "2026-02-09", DueTime: "10:00"})
	if !f.planner.PendingReminder(task.ID) {
		t.Fatal("expected initial reminder")
	}

	// Removing the due date cancels the reminder.
	f.planner.UpdateTask(ctx, task.ID, TaskFields{Title: "Essay"})
	if f.planner.PendingReminder(task.ID) {
		t.Fatal("expected reminder cancelled when due date removed")
	}

	// Restoring a future due time re-arms it.
	f.planner.UpdateTask(ctx, task.ID, TaskFields{Title: "Essay", DueDate: "2026-02-09", DueTime: "18:00"})
	if !f.planner.PendingReminder(task.ID) {
		t.Fatal("expected reminder after due date restored")
	}
}

func TestLoadFallsBackOnCorruptDocuments(t *testing.T) {
	gw := storage.NewMemoryGateway()
	ctx := context.Background()
	if err := gw.Save(ctx, storage.KeyTasks, []byte(`{{not json`)); err != nil {
		t.Fatalf("seed corrupt doc: %v", err)
	}
	if err := gw.Save(ctx, storage.KeyGoals, []byte(`[{"id":"g1","title":"Keep me","createdAt":1}]`)); err != nil {
		t.Fatalf("seed goals: %v", err)
	}

	p := New(Options{Gateway: gw, PreferredTheme: model.ThemeLight})
	if err := p.Load(ctx); err != nil {
		t.Fatalf("load must recover locally, got: %v", err)
	}
	if len(p.Tasks()) != 0 {
		t.Fatal("expected corrupt tasks replaced by empty collection")
	}
	if len(p.Goals()) != 1 {
		t.Fatal("expected intact goals document loaded")
	}
	settings := p.Settings()
	if settings.NotificationsEnabled || settings.Theme != model.ThemeLight {
		t.Fatalf("expected default settings, got %+v", settings)
	}
}

func TestNotifyRespectsSettingsAndAvailability(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 9, 10, 0))
	ctx := context.Background()

	// Disabled: nothing is sent.
	f.planner.Notify(ctx, "t", "b")
	if len(f.notifier.sent) != 0 {
		t.Fatal("expected no notification while disabled")
	}

	if !f.planner.SetNotificationsEnabled(ctx, true) {
		t.Fatal("expected notifications enabled when platform available")
	}
	f.planner.Notify(ctx, "Focus complete", "done")
	if len(f.notifier.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(f.notifier.sent))
	}
}

func TestNotificationDenialDisablesSetting(t *testing.T) {
	f := newFixture(t, localDate(2026, 2, 9, 10, 0))
	f.notifier.available = false

	if f.planner.SetNotificationsEnabled(context.Background(), true) {
		t.Fatal("expected enable refused when platform unavailable")
	}
	if f.planner.Settings().NotificationsEnabled {
		t.Fatal("expected setting recorded as disabled")
	}
}
