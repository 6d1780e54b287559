// Package streak computes daily practice totals and consecutive-day streaks
// from a session history.
package streak

import (
	"time"

	"github.com/dinkwell/dinkwell/internal/session"
)

// MinEffectiveMinutes is the daily practice total a day needs to count toward
// a streak. The comparison is inclusive: exactly 20 minutes qualifies.
const MinEffectiveMinutes = 20

// State holds the computed streak lengths. Best is always >= Current.
type State struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// Date is a calendar date identified by its local date fields. Two instants on
// the same civil day bucket to the same Date regardless of their wall clock or
// offset representation.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in the given location.
func DateOf(t time.Time, loc *time.Location) Date {
	year, month, day := t.In(loc).Date()
	return Date{Year: year, Month: month, Day: day}
}

// Previous returns the calendar date one day earlier, handling month and year
// boundaries.
func (d Date) Previous() Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DailyBuckets sums session minutes per calendar date in the given location.
// Multiple sessions on the same day are added together.
func DailyBuckets(sessions []session.Session, loc *time.Location) map[Date]int {
	buckets := make(map[Date]int, len(sessions))
	for _, s := range sessions {
		buckets[DateOf(s.Date, loc)] += s.Minutes
	}
	return buckets
}

// Compute derives the current and best streaks from a session list. Sessions
// may be unordered and span any date range; an empty list yields {0, 0}.
//
// A day counts toward a streak when its total minutes reach
// MinEffectiveMinutes. The current streak is the run of consecutive counting
// days that touches today or yesterday: a day without practice today does not
// break the streak until the day after (grace day), but a gap of two or more
// days zeroes it. The best streak is the longest run found anywhere between
// the earliest session date and today.
func Compute(sessions []session.Session, now time.Time) State {
	if len(sessions) == 0 {
		return State{}
	}

	loc := now.Location()
	buckets := DailyBuckets(sessions, loc)
	today := DateOf(now, loc)

	earliest := today
	for d := range buckets {
		if d.Before(earliest) {
			earliest = d
		}
	}

	qualifies := func(d Date) bool {
		return buckets[d] >= MinEffectiveMinutes
	}

	// Current streak: walk back from today, or from yesterday when today has
	// not qualified yet.
	start := today
	if !qualifies(today) {
		start = today.Previous()
	}
	current := 0
	for d := start; qualifies(d); d = d.Previous() {
		current++
	}

	// Best streak: scan every day from today back to the earliest session.
	// Future-dated sessions never extend a streak.
	best := 0
	running := 0
	for d := today; !d.Before(earliest); d = d.Previous() {
		if qualifies(d) {
			running++
			if running > best {
				best = running
			}
		} else {
			running = 0
		}
	}

	return State{Current: current, Best: best}
}
