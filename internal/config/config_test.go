package config

import "testing"

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.FocusWorkMinutes != 25 || cfg.FocusBreakMinutes != 5 {
		t.Fatalf("unexpected focus defaults: %d/%d", cfg.FocusWorkMinutes, cfg.FocusBreakMinutes)
	}
	if cfg.SchedulerBuffer != 64 {
		t.Fatalf("unexpected scheduler buffer: %d", cfg.SchedulerBuffer)
	}
	if cfg.DesktopNotifications {
		t.Fatal("notifications must default off")
	}
	if cfg.DataPath == "" {
		t.Fatal("expected a default data path")
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("STUDYPLAN_FOCUS_WORK_MINUTES", "50")
	t.Setenv("STUDYPLAN_DESKTOP_NOTIFICATIONS", "true")
	t.Setenv("STUDYPLAN_DATA_PATH", "/tmp/plan.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FocusWorkMinutes != 50 {
		t.Fatalf("expected work minutes override, got %d", cfg.FocusWorkMinutes)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("expected notifications override")
	}
	if cfg.DataPath != "/tmp/plan.db" {
		t.Fatalf("expected data path override, got %q", cfg.DataPath)
	}
}

func TestLoadIgnoresNonPositiveMinutes(t *testing.T) {
	t.Setenv("STUDYPLAN_FOCUS_BREAK_MINUTES", "0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FocusBreakMinutes != 5 {
		t.Fatalf("expected default break minutes, got %d", cfg.FocusBreakMinutes)
	}
}
