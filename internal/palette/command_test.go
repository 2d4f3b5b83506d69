package palette

import (
	"errors"
	"testing"

	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add read chapter 3 due:2026-02-10", TypeAdd},
		{"goal pass finals", TypeGoal},
		{"filter overdue", TypeFilter},
		{"search algebra", TypeSearch},
		{"export backup.json", TypeExport},
		{"import backup.json", TypeImport},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddModifiers(t *testing.T) {
	cmd, err := Parse("/add read Homer due:2026-02-10 at:14:30 pri:high remind:20 subject:Classics")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	a := cmd.Add
	if a.Title != "read Homer" {
		t.Fatalf("title = %q", a.Title)
	}
	if a.DueDate != "2026-02-10" || a.DueTime != "14:30" {
		t.Fatalf("due = %q %q", a.DueDate, a.DueTime)
	}
	if a.Priority != model.PriorityHigh || a.ReminderMinutes != 20 || a.Subject != "Classics" {
		t.Fatalf("modifiers = %+v", a)
	}
}

func TestParseAddDefaultsPriority(t *testing.T) {
	cmd, err := Parse("add plain title")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Priority != model.PriorityMedium {
		t.Fatalf("priority = %s", cmd.Add.Priority)
	}
}

func TestParseAddRejectsBadModifiers(t *testing.T) {
	for _, in := range []string{"add x pri:urgent", "add x remind:-5", "add x remind:soon", "add due:2026-01-01"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseUnknownFilter(t *testing.T) {
	_, err := Parse("filter urgent")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/goal graduate with honors")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Goal: func(g GoalArgs) (Result, error) {
			called = true
			if g.Title != "graduate with honors" {
				t.Fatalf("unexpected title: %q", g.Title)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("export out.json")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
