package planner

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
)

// Filter selects which tasks a listing shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
	FilterOverdue   Filter = "overdue"
	FilterHigh      Filter = "high"
)

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterPending, FilterCompleted, FilterOverdue, FilterHigh:
		return true
	default:
		return false
	}
}

// ListTasks returns a derived ordering of the task collection: priority
// rank first, then due timestamp ascending with undated tasks last. The
// search term matches case-insensitively against title, subject and notes;
// the filter narrows by status.
func (p *Planner) ListTasks(filter Filter, search string) []model.Task {
	now := p.now()
	list := p.Tasks()

	sort.SliceStable(list, func(i, j int) bool {
		ri, rj := list[i].Priority.Rank(), list[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return dueMillis(list[i]) < dueMillis(list[j])
	})

	term := strings.ToLower(strings.TrimSpace(search))
	if term != "" {
		matched := list[:0]
		for _, t := range list {
			if containsFold(t.Title, term) || containsFold(t.Subject, term) || containsFold(t.Notes, term) {
				matched = append(matched, t)
			}
		}
		list = matched
	}

	switch filter {
	case FilterPending:
		list = keep(list, func(t model.Task) bool { return !t.Completed })
	case FilterCompleted:
		list = keep(list, func(t model.Task) bool { return t.Completed })
	case FilterOverdue:
		list = keep(list, func(t model.Task) bool { return t.IsOverdue(now) })
	case FilterHigh:
		list = keep(list, func(t model.Task) bool { return t.Priority == model.PriorityHigh })
	}
	return list
}

// TimelineDays is the length of the upcoming-week view.
const TimelineDays = 7

// TimelineDay is one bucket of the 7-day view.
type TimelineDay struct {
	Date  time.Time
	Tasks []model.Task
}

// Timeline buckets dated tasks into the seven days starting at today's
// midnight, each day sorted by due time.
func (p *Planner) Timeline() []TimelineDay {
	now := p.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := make([]TimelineDay, TimelineDays)
	for i := range days {
		days[i] = TimelineDay{Date: start.AddDate(0, 0, i)}
	}
	for _, t := range p.tasks {
		due, ok := t.DueAt()
		if !ok {
			continue
		}
		idx := int(due.Sub(start).Hours() / 24)
		if idx < 0 || idx >= TimelineDays {
			continue
		}
		days[idx].Tasks = append(days[idx].Tasks, t)
	}
	for i := range days {
		tasks := days[i].Tasks
		sort.SliceStable(tasks, func(a, b int) bool {
			return dueMillis(tasks[a]) < dueMillis(tasks[b])
		})
	}
	return days
}

// dueMillis orders tasks by due timestamp; tasks without one sort last.
func dueMillis(t model.Task) int64 {
	due, ok := t.DueAt()
	if !ok {
		return math.MaxInt64
	}
	return due.UnixMilli()
}

func containsFold(haystack, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerTerm)
}

func keep(list []model.Task, pred func(model.Task) bool) []model.Task {
	out := list[:0]
	for _, t := range list {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
