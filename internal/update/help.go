package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/varshitha1106/SmartStudyPlanner/internal/views"
)

// helpKeyMap satisfies help.KeyMap for the bubbles help component.
type helpKeyMap struct {
	bindings []key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.bindings }
func (k helpKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.bindings} }

func binding(keys, action string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, action))
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	contextual := m.viewBindings()
	plain := make([]string, 0, len(contextual))
	for _, b := range contextual {
		plain = append(plain, fmt.Sprintf("- %s: %s", b.Help().Key, b.Help().Desc))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView:    m.helpModel.View(helpKeyMap{bindings: append(m.globalBindings(), contextual...)}),
	})
}

func (m Model) globalBindings() []key.Binding {
	return []key.Binding{
		binding(m.Keys.Tasks, "switch to Tasks"),
		binding(m.Keys.Goals, "switch to Goals"),
		binding(m.Keys.Timeline, "switch to Timeline"),
		binding(m.Keys.Focus, "switch to Focus"),
		binding("/", "open command palette"),
		binding("N", "toggle desktop notifications"),
		binding("T", "toggle theme"),
		binding(m.Keys.Help, "toggle help panel"),
		binding(m.Keys.Quit, "quit app"),
	}
}

func (m Model) viewBindings() []key.Binding {
	switch m.CurrentView {
	case ViewTasks:
		return []key.Binding{
			binding("enter", "capture a task"),
			binding("j/k", "move cursor"),
			binding("space", "toggle complete"),
			binding("e", "edit task"),
			binding("d", "delete task"),
			binding("f", "cycle status filter"),
		}
	case ViewGoals:
		return []key.Binding{
			binding("enter", "capture a goal"),
			binding("j/k", "move cursor"),
			binding("d", "delete goal (tasks kept)"),
		}
	case ViewTimeline:
		return []key.Binding{
			binding("j/k", "move agenda cursor"),
		}
	case ViewFocus:
		return []key.Binding{
			binding("space", "start/pause timer"),
			binding("r", "reset timer"),
			binding("+/-", "adjust work minutes"),
		}
	default:
		return []key.Binding{binding("-", "no contextual bindings")}
	}
}
