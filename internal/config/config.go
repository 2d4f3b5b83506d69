// Package config resolves runtime settings from defaults, an optional
// JSON config file under ~/.config/studyplan, and STUDYPLAN_* environment
// variables, in that order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type RuntimeConfig struct {
	DataPath             string
	DesktopNotifications bool
	FocusWorkMinutes     int
	FocusBreakMinutes    int
	SchedulerBuffer      int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DataPath:             defaultDataPath(),
		DesktopNotifications: false,
		FocusWorkMinutes:     25,
		FocusBreakMinutes:    5,
		SchedulerBuffer:      64,
	}
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "studyplan.db"
	}
	return filepath.Join(home, ".config", "studyplan", "studyplan.db")
}

// Load reads the config file if one exists and applies environment
// overrides. A missing config file is not an error.
func Load() (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "studyplan"))
	}
	v.AddConfigPath(".")

	v.SetDefault("data_path", cfg.DataPath)
	v.SetDefault("desktop_notifications", cfg.DesktopNotifications)
	v.SetDefault("focus_work_minutes", cfg.FocusWorkMinutes)
	v.SetDefault("focus_break_minutes", cfg.FocusBreakMinutes)
	v.SetDefault("scheduler_buffer", cfg.SchedulerBuffer)

	v.SetEnvPrefix("STUDYPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, err
		}
	}

	cfg.DataPath = v.GetString("data_path")
	cfg.DesktopNotifications = v.GetBool("desktop_notifications")
	if n := v.GetInt("focus_work_minutes"); n > 0 {
		cfg.FocusWorkMinutes = n
	}
	if n := v.GetInt("focus_break_minutes"); n > 0 {
		cfg.FocusBreakMinutes = n
	}
	if n := v.GetInt("scheduler_buffer"); n > 0 {
		cfg.SchedulerBuffer = n
	}
	return cfg, nil
}
