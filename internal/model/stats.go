package model

import "time"

// Stats holds focus-session accounting. LastFocusDate is an ISO calendar
// date ("" before the first completed session). TodaySessions and
// TodayMinutes are daily counters; StreakDays counts consecutive calendar
// days with at least one completed work session.
type Stats struct {
	StreakDays    int    `json:"streakDays"`
	LastFocusDate string `json:"lastFocusDate"`
	TodaySessions int    `json:"todaySessions"`
	TodayMinutes  int    `json:"todayMinutes"`
}

// RecordWorkSession applies a completed work session of workMin minutes at
// the given moment: bumps the daily counters and advances the streak when
// the calendar day changed. A streak continues only when the previous
// focus day was exactly yesterday; any longer gap restarts it at 1.
func (s *Stats) RecordWorkSession(workMin int, now time.Time) {
	s.TodaySessions++
	s.TodayMinutes += workMin
	today := now.Format(DateLayout)
	if s.LastFocusDate != today {
		yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
		if s.LastFocusDate == yesterday {
			s.StreakDays++
		} else {
			s.StreakDays = 1
		}
		s.LastFocusDate = today
	}
}

// ResetDailyIfStale zeroes the daily counters when the current calendar
// date differs from the last focus date. The streak is left alone; it is
// only touched by RecordWorkSession. Runs once at load, so a session left
// open across midnight keeps stale counters until the next start.
func (s *Stats) ResetDailyIfStale(now time.Time) {
	if s.LastFocusDate != now.Format(DateLayout) {
		s.TodaySessions = 0
		s.TodayMinutes = 0
	}
}
