package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID        string
	Title     string
	Subject   string
	Due       string
	Priority  string
	Completed bool
	Overdue   bool
}

type TasksPanelData struct {
	QuickAddView string
	ListView     string
	Filter       string
	Search       string
	Items        []TaskItemData
	SelectedID   string
}

type GoalItemData struct {
	ID       string
	Title    string
	Progress int
	Linked   int
}

type GoalsPanelData struct {
	QuickAddView string
	Items        []GoalItemData
	SelectedID   string
}

type TimelineDayData struct {
	Label string
	Items []TaskItemData
}

type TimelinePanelData struct {
	TableView string
	Days      []TimelineDayData
}

type FocusPanelData struct {
	TaskTitle     string
	Phase         string
	Timer         string
	ProgressView  string
	ProgressPct   int
	TodaySessions int
	TodayMinutes  int
	StreakDays    int
}

type TaskMetadataData struct {
	SelectedID    string
	Priority      string
	GoalTitle     string
	Reminder      string
	MarkdownNotes string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(data.QuickAddView + "\n")
	b.WriteString(fmt.Sprintf("filter: %s", data.Filter))
	if data.Search != "" {
		b.WriteString(fmt.Sprintf(" | search: %s", data.Search))
	}
	b.WriteString("\n")
	b.WriteString("actions: [enter]add [space]done [e]edit [d]delete [f]filter\n")
	b.WriteString(data.ListView + "\n")
	if len(data.Items) == 0 {
		b.WriteString("(no tasks)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		check := "[ ]"
		if item.Completed {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s", cursor, check, priorityBadge(item), item.Title))
		if item.Subject != "" {
			b.WriteString(fmt.Sprintf(" (%s)", item.Subject))
		}
		if item.Due != "" {
			b.WriteString(fmt.Sprintf(" due:%s", item.Due))
		}
		if item.Overdue {
			b.WriteString(" OVERDUE")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderGoalsPanel(data GoalsPanelData) string {
	var b strings.Builder
	b.WriteString("goals:\n")
	b.WriteString(data.QuickAddView + "\n")
	b.WriteString("actions: [enter]add [d]delete [j/k]move\n")
	if len(data.Items) == 0 {
		b.WriteString("(no goals)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %d%% (%d tasks)\n",
			cursor, item.Title, progressBar(float64(item.Progress)/100, 20), item.Progress, item.Linked))
	}
	return strings.TrimSpace(b.String())
}

func RenderTimelinePanel(data TimelinePanelData) string {
	var b strings.Builder
	b.WriteString("timeline (next 7 days):\n")
	b.WriteString(data.TableView + "\n")
	for _, day := range data.Days {
		b.WriteString(fmt.Sprintf("\n%s:\n", day.Label))
		if len(day.Items) == 0 {
			b.WriteString("  (free)\n")
			continue
		}
		for _, item := range day.Items {
			b.WriteString(fmt.Sprintf("  %s %s", priorityBadge(item), item.Title))
			if item.Due != "" {
				b.WriteString(" @" + item.Due)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderFocusPanel(data FocusPanelData) string {
	var b strings.Builder
	b.WriteString("focus:\n")
	if data.TaskTitle != "" {
		b.WriteString(fmt.Sprintf("task: %s\n", data.TaskTitle))
	} else {
		b.WriteString("task: (none selected)\n")
	}
	b.WriteString(fmt.Sprintf("phase: %s\n", strings.ToUpper(data.Phase)))
	b.WriteString(fmt.Sprintf("timer: %s\n", data.Timer))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString(fmt.Sprintf("today: %d sessions, %d min | streak: %d day(s)\n",
		data.TodaySessions, data.TodayMinutes, data.StreakDays))
	b.WriteString("actions: [space]start/pause [r]reset [+/-]work-minutes")
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderTaskMetadataPane(data TaskMetadataData) string {
	if strings.TrimSpace(data.SelectedID) == "" {
		return "metadata:\n(no selection)"
	}
	return fmt.Sprintf("metadata:\nid: %s\npriority: %s\ngoal: %s\nreminder: %s\n\nnotes:\n%s",
		data.SelectedID,
		data.Priority,
		data.GoalTitle,
		data.Reminder,
		data.MarkdownNotes,
	)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func priorityBadge(item TaskItemData) string {
	if item.Overdue || item.Priority == "high" {
		return "[RED]"
	}
	if item.Priority == "medium" {
		return "[YELLOW]"
	}
	return "[GREEN]"
}

func progressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
