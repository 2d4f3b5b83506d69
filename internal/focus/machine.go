package focus

// Phase is the focus timer state: a countdown is either idle, in a work
// block, or in a break.
type Phase string

const (
	PhaseIdle  Phase = "idle"
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Configurable bounds for the countdown durations, in minutes.
const (
	MinWorkMinutes  = 5
	MaxWorkMinutes  = 120
	MinBreakMinutes = 1
	MaxBreakMinutes = 60

	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
)

func ClampWorkMinutes(n int) int {
	if n < MinWorkMinutes {
		return MinWorkMinutes
	}
	if n > MaxWorkMinutes {
		return MaxWorkMinutes
	}
	return n
}

func ClampBreakMinutes(n int) int {
	if n < MinBreakMinutes {
		return MinBreakMinutes
	}
	if n > MaxBreakMinutes {
		return MaxBreakMinutes
	}
	return n
}

// TickOutcome tells the caller what a tick did, so session accounting and
// notifications can be applied outside the machine.
type TickOutcome int

const (
	TickNone TickOutcome = iota
	TickCountdown
	TickWorkComplete
	TickBreakComplete
)

// Machine is the phase-based countdown. It owns no timer source; the
// caller drives it with one Tick per second while Running is true.
type Machine struct {
	Phase        Phase
	RemainingSec int
	WorkMin      int
	BreakMin     int
	TaskID       string
	Running      bool
}

func New() *Machine {
	return &Machine{
		Phase:        PhaseIdle,
		WorkMin:      DefaultWorkMinutes,
		BreakMin:     DefaultBreakMinutes,
		RemainingSec: DefaultWorkMinutes * 60,
	}
}

// Start begins a work block from idle, snapshotting the clamped
// configuration and the linked task. From any phase it (re)arms the tick
// source, which covers resume-from-pause.
func (m *Machine) Start(workMin, breakMin int, taskID string) {
	if m.Phase == PhaseIdle {
		m.WorkMin = ClampWorkMinutes(workMin)
		m.BreakMin = ClampBreakMinutes(breakMin)
		m.TaskID = taskID
		m.Phase = PhaseWork
		m.RemainingSec = m.WorkMin * 60
	}
	m.Running = true
}

// Pause stops the tick source without touching phase or countdown.
// Reentrant.
func (m *Machine) Pause() {
	m.Running = false
}

// Reset stops the tick source and forces the machine back to idle with a
// full work countdown at the current configuration.
func (m *Machine) Reset() {
	m.Running = false
	m.Phase = PhaseIdle
	m.RemainingSec = m.WorkMin * 60
}

// SetConfig stores new clamped durations and resets the idle countdown.
// During an active work or break block the call is ignored: the session
// keeps the durations snapshotted at Start, so completion accounting
// always matches what was started.
func (m *Machine) SetConfig(workMin, breakMin int) {
	if m.Phase != PhaseIdle {
		return
	}
	m.WorkMin = ClampWorkMinutes(workMin)
	m.BreakMin = ClampBreakMinutes(breakMin)
	m.Reset()
}

// Tick advances the countdown by one second. When the countdown is already
// exhausted, the tick processes the phase completion instead: work rolls
// into a break, a finished break returns to idle and stops the machine.
func (m *Machine) Tick() TickOutcome {
	if !m.Running {
		return TickNone
	}
	if m.RemainingSec > 0 {
		m.RemainingSec--
		return TickCountdown
	}
	switch m.Phase {
	case PhaseWork:
		m.Phase = PhaseBreak
		m.RemainingSec = m.BreakMin * 60
		return TickWorkComplete
	case PhaseBreak:
		m.Phase = PhaseIdle
		m.Running = false
		return TickBreakComplete
	default:
		m.Running = false
		return TickNone
	}
}

// TotalSec is the full duration of the current phase, for progress
// rendering.
func (m *Machine) TotalSec() int {
	if m.Phase == PhaseBreak {
		return m.BreakMin * 60
	}
	return m.WorkMin * 60
}
