package update

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/varshitha1106/SmartStudyPlanner/internal/focus"
)

func (m Model) handleFocusKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	fm := m.Planner.Focus()
	switch msg.String() {
	case " ":
		if fm.Running {
			m.Planner.PauseFocus()
			m.focusTickSeq++
			m.Status = StatusBar{Text: "focus paused", IsError: false}
			return m, nil
		}
		if err := m.Planner.StartFocus(m.ctx, "", "", m.SelectedTaskID); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: "focus running", IsError: false}
		return m, focusTickCmd(m.focusTickSeq)
	case "r":
		m.Planner.ResetFocus()
		m.focusTickSeq++
		m.Status = StatusBar{Text: "focus reset", IsError: false}
		return m, nil
	case "+":
		if fm.Phase != focus.PhaseIdle {
			m.Status = StatusBar{Text: "finish or reset the session to change durations", IsError: false}
			return m, nil
		}
		m.Planner.SetFocusConfig(strconv.Itoa(fm.WorkMin+5), "")
		m.Status = StatusBar{Text: fmt.Sprintf("work block: %d min", m.Planner.Focus().WorkMin), IsError: false}
		return m, nil
	case "-":
		if fm.Phase != focus.PhaseIdle {
			m.Status = StatusBar{Text: "finish or reset the session to change durations", IsError: false}
			return m, nil
		}
		m.Planner.SetFocusConfig(strconv.Itoa(fm.WorkMin-5), "")
		m.Status = StatusBar{Text: fmt.Sprintf("work block: %d min", m.Planner.Focus().WorkMin), IsError: false}
		return m, nil
	}
	return m, nil
}

func (m Model) onFocusTick(msg FocusTickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.focusTickSeq {
		return m, nil
	}
	outcome, err := m.Planner.TickFocus(m.ctx)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
	switch outcome {
	case focus.TickWorkComplete:
		m.Status = StatusBar{Text: "work session complete; break started", IsError: false}
	case focus.TickBreakComplete:
		m.Status = StatusBar{Text: "break complete; ready for the next block", IsError: false}
	}
	if m.Planner.Focus().Running {
		return m, focusTickCmd(m.focusTickSeq)
	}
	return m, nil
}

func focusTickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return FocusTickMsg{Seq: seq} })
}
