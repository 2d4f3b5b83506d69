package model

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// Settings survive across sessions alongside the task data.
type Settings struct {
	NotificationsEnabled bool  `json:"notificationsEnabled"`
	Theme                Theme `json:"theme"`
}

// DefaultSettings returns the settings used when nothing is persisted yet.
// The theme default comes from the platform preference probed at startup.
func DefaultSettings(preferred Theme) Settings {
	if !preferred.IsValid() {
		preferred = ThemeDark
	}
	return Settings{NotificationsEnabled: false, Theme: preferred}
}
