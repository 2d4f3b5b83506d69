package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		ID:        "task-1",
		Title:     "Read chapter 3",
		Subject:   "History",
		DueDate:   "2026-02-09",
		DueTime:   "14:00",
		Priority:  PriorityHigh,
		CreatedAt: 1770638400000,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsBadFields(t *testing.T) {
	base := Task{ID: "task-1", Title: "Study", Priority: PriorityMedium, CreatedAt: 1}

	task := base
	task.Priority = Priority("urgent")
	if err := task.Validate(); err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}

	task = base
	task.Title = "   "
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for blank title, got nil")
	}

	task = base
	task.ReminderMinutes = -5
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for negative reminder minutes, got nil")
	}

	task = base
	task.DueDate = "02/09/2026"
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for malformed due date, got nil")
	}
}

func TestDueAtDefaultsMissingTimeToMidnight(t *testing.T) {
	task := Task{DueDate: "2026-02-09"}
	due, ok := task.DueAt()
	if !ok {
		t.Fatal("expected due timestamp for dated task")
	}
	want := time.Date(2026, 2, 9, 0, 0, 0, 0, time.Local)
	if !due.Equal(want) {
		t.Fatalf("expected %v, got %v", want, due)
	}

	task.DueTime = "14:30"
	due, _ = task.DueAt()
	if due.Hour() != 14 || due.Minute() != 30 {
		t.Fatalf("expected 14:30, got %v", due)
	}

	if _, ok := (Task{}).DueAt(); ok {
		t.Fatal("expected no due timestamp for undated task")
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		task Task
		want bool
	}{
		{"past due", Task{DueDate: "2026-02-09", DueTime: "14:00"}, true},
		{"future due", Task{DueDate: "2026-02-11", DueTime: "14:00"}, false},
		{"completed never overdue", Task{DueDate: "2026-02-09", Completed: true}, false},
		{"no due date never overdue", Task{Title: "whenever"}, false},
		{"midnight default already past", Task{DueDate: "2026-02-10"}, true},
	}
	for _, tc := range cases {
		if got := tc.task.IsOverdue(now); got != tc.want {
			t.Fatalf("%s: expected overdue=%v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestStatsRecordWorkSession(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.Local)

	stats := Stats{StreakDays: 3, LastFocusDate: "2026-02-09"}
	stats.RecordWorkSession(25, now)
	if stats.StreakDays != 4 {
		t.Fatalf("expected streak 4 after yesterday focus, got %d", stats.StreakDays)
	}
	if stats.TodaySessions != 1 || stats.TodayMinutes != 25 {
		t.Fatalf("unexpected daily counters: %+v", stats)
	}
	if stats.LastFocusDate != "2026-02-10" {
		t.Fatalf("expected last focus date updated, got %q", stats.LastFocusDate)
	}

	// Second session the same day leaves the streak alone.
	stats.RecordWorkSession(25, now)
	if stats.StreakDays != 4 || stats.TodaySessions != 2 || stats.TodayMinutes != 50 {
		t.Fatalf("unexpected stats after second session: %+v", stats)
	}

	gapped := Stats{StreakDays: 9, LastFocusDate: "2026-02-01"}
	gapped.RecordWorkSession(30, now)
	if gapped.StreakDays != 1 {
		t.Fatalf("expected streak restart at 1 after a gap, got %d", gapped.StreakDays)
	}
}

func TestStatsResetDailyIfStale(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.Local)

	stats := Stats{StreakDays: 5, LastFocusDate: "2026-02-09", TodaySessions: 4, TodayMinutes: 100}
	stats.ResetDailyIfStale(now)
	if stats.TodaySessions != 0 || stats.TodayMinutes != 0 {
		t.Fatalf("expected daily counters reset, got %+v", stats)
	}
	if stats.StreakDays != 5 {
		t.Fatalf("expected streak preserved, got %d", stats.StreakDays)
	}

	fresh := Stats{LastFocusDate: "2026-02-10", TodaySessions: 2, TodayMinutes: 50}
	fresh.ResetDailyIfStale(now)
	if fresh.TodaySessions != 2 || fresh.TodayMinutes != 50 {
		t.Fatalf("expected same-day counters kept, got %+v", fresh)
	}
}
