// Package cli wires the persistent planner stack together and exposes
// the studyplan command tree: the bare command launches the TUI, and
// export/import move backups in and out without starting it.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/varshitha1106/SmartStudyPlanner/internal/config"
	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
	"github.com/varshitha1106/SmartStudyPlanner/internal/notify"
	"github.com/varshitha1106/SmartStudyPlanner/internal/planner"
	"github.com/varshitha1106/SmartStudyPlanner/internal/scheduler"
	"github.com/varshitha1106/SmartStudyPlanner/internal/storage"
	"github.com/varshitha1106/SmartStudyPlanner/internal/update"
	"github.com/varshitha1106/SmartStudyPlanner/internal/views"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var dataPathFlag string

var rootCmd = &cobra.Command{
	Use:   "studyplan",
	Short: "A study planner with goals, reminders and a focus timer",
	Long: `studyplan is a terminal study planner. It keeps tasks and goals,
arms reminders ahead of due times, buckets the coming week into a
timeline, and runs a work/break focus timer that tracks daily streaks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

// SetVersion records build information injected by the linker.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPathFlag, "data", "", "path to the planner database (overrides config)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("studyplan %s (commit %s, built %s)\n", version, commit, date)
	},
}

// buildPlanner assembles the storage, scheduler and notifier stack and
// loads persisted state. The returned cleanup stops the reminder engine
// and closes the database.
func buildPlanner(ctx context.Context) (*planner.Planner, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	path := cfg.DataPath
	if dataPathFlag != "" {
		path = dataPathFlag
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	gateway, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open planner database: %w", err)
	}

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	theme := model.ThemeLight
	if views.TerminalPrefersDark() {
		theme = model.ThemeDark
	}

	p := planner.New(planner.Options{
		Gateway:        gateway,
		Engine:         engine,
		Notifier:       &notify.ExecNotifier{},
		PreferredTheme: theme,
	})
	if err := p.Load(ctx); err != nil {
		_ = gateway.Close()
		return nil, nil, fmt.Errorf("load planner state: %w", err)
	}
	if cfg.DesktopNotifications {
		p.SetNotificationsEnabled(ctx, true)
	}
	p.SetFocusConfig(fmt.Sprintf("%d", cfg.FocusWorkMinutes), fmt.Sprintf("%d", cfg.FocusBreakMinutes))

	cleanup := func() {
		engine.Stop()
		_ = gateway.Close()
	}
	return p, cleanup, nil
}

func runTUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p, cleanup, err := buildPlanner(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	p.Reminders().Start()
	program := tea.NewProgram(update.NewModel(ctx, p), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
