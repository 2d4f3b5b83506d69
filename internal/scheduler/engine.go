package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidFireTime = errors.New("scheduler: invalid fire time")

// ReminderEvent is a pending one-shot reminder for a task. FireAt is the
// moment it fires; DueAt is the task's due timestamp, carried along for the
// notification body.
type ReminderEvent struct {
	TaskID string
	Title  string
	DueAt  time.Time
	FireAt time.Time
}

type queueItem struct {
	event ReminderEvent
	gen   uint64
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].event.FireAt.Before(pq[j].event.FireAt)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(queueItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

// Engine arms at most one pending reminder per task id. Scheduling again
// for the same task supersedes the previous entry; cancelled or superseded
// heap entries are skipped when they surface.
type Engine struct {
	mu      sync.Mutex
	queue   priorityQueue
	active  map[string]uint64
	nextGen uint64
	out     chan ReminderEvent
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:  make(priorityQueue, 0),
		active: make(map[string]uint64),
		out:    make(chan ReminderEvent, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (e *Engine) C() <-chan ReminderEvent {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Schedule arms a reminder for ev.TaskID, replacing any pending one.
func (e *Engine) Schedule(ev ReminderEvent) error {
	if ev.FireAt.IsZero() {
		return ErrInvalidFireTime
	}
	if ev.TaskID == "" {
		return errors.New("scheduler: task id is required")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return errors.New("scheduler: engine stopped")
	}

	e.nextGen++
	e.active[ev.TaskID] = e.nextGen
	heap.Push(&e.queue, queueItem{event: ev, gen: e.nextGen})
	e.signalWakeup()
	return nil
}

// Cancel removes the pending reminder for a task. Safe to call when none
// is pending.
func (e *Engine) Cancel(taskID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.active, taskID)
	e.signalWakeup()
}

// CancelAll drops every pending reminder.
func (e *Engine) CancelAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = make(map[string]uint64)
	e.queue = e.queue[:0]
	e.signalWakeup()
}

// Pending reports whether a reminder is armed for the task.
func (e *Engine) Pending(taskID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.active[taskID]
	return ok
}

// PendingCount returns the number of armed reminders.
func (e *Engine) PendingCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.active)
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.FireAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(time.Now())
			for _, ev := range due {
				select {
				case e.out <- ev:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

// peek returns the soonest live entry, discarding superseded and cancelled
// entries on the way.
func (e *Engine) peek() (ReminderEvent, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for len(e.queue) > 0 {
		head := e.queue[0]
		if e.active[head.event.TaskID] == head.gen {
			return head.event, true
		}
		heap.Pop(&e.queue)
	}
	return ReminderEvent{}, false
}

func (e *Engine) popDue(now time.Time) []ReminderEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]ReminderEvent, 0)
	for len(e.queue) > 0 {
		head := e.queue[0]
		if head.event.FireAt.After(now) {
			break
		}
		heap.Pop(&e.queue)
		if e.active[head.event.TaskID] != head.gen {
			continue
		}
		delete(e.active, head.event.TaskID)
		out = append(out, head.event)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
