// Package taskview derives everything the interface shows from the
// flat task list: per-bucket counts, the filtered and sorted subset
// for a range filter plus search query, and agenda groupings. All
// functions are pure in (tasks, query, range, now), so callers pass a
// fresh now on every evaluation and results stay correct as the clock
// advances.
package taskview

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"planner/internal/models"
)

// Range names a due-date predicate relative to the current day.
type Range string

const (
	RangeAll      Range = "all"
	RangePast     Range = "past"
	RangeToday    Range = "today"
	RangeTomorrow Range = "tomorrow"
	RangeUpcoming Range = "upcoming"
)

// Ranges lists the selectable ranges in display order.
func Ranges() []Range {
	return []Range{RangeAll, RangePast, RangeToday, RangeTomorrow, RangeUpcoming}
}

// ParseRange maps user input onto a Range. Empty input means all.
func ParseRange(v string) (Range, error) {
	r := Range(strings.ToLower(strings.TrimSpace(v)))
	switch r {
	case "":
		return RangeAll, nil
	case RangeAll, RangePast, RangeToday, RangeTomorrow, RangeUpcoming:
		return r, nil
	}
	return RangeAll, fmt.Errorf("unknown range %q", v)
}

// Bucket classifies a due date against now at calendar-day granularity
// in the local time zone. Exactly one of past/today/tomorrow/upcoming
// holds for any date.
func Bucket(due, now time.Time) Range {
	switch d := daysBetween(now, due); {
	case d < 0:
		return RangePast
	case d == 0:
		return RangeToday
	case d == 1:
		return RangeTomorrow
	default:
		return RangeUpcoming
	}
}

// daysBetween counts whole calendar days from now's day to t's day.
// Both days are rebuilt in UTC so DST transitions cannot skew the
// division.
func daysBetween(now, t time.Time) int {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// Stats holds the per-bucket counts of not-completed tasks.
type Stats struct {
	Past     int
	Today    int
	Tomorrow int
	Upcoming int
}

// ComputeStats counts not-completed tasks per bucket. Tasks without a
// parsable due date are counted in no bucket.
func ComputeStats(tasks []models.Task, now time.Time) Stats {
	var s Stats
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		due, ok := t.DueDate()
		if !ok {
			continue
		}
		switch Bucket(due, now) {
		case RangePast:
			s.Past++
		case RangeToday:
			s.Today++
		case RangeTomorrow:
			s.Tomorrow++
		case RangeUpcoming:
			s.Upcoming++
		}
	}
	return s
}

// Filter returns the tasks whose title or description contains the
// query (case-insensitive) and whose due date satisfies the range
// predicate, sorted with completed tasks last and each completion
// group ascending by due date. Tasks without a parsable due date match
// only RangeAll and sort after dated tasks in their group.
func Filter(tasks []models.Task, query string, rng Range, now time.Time) []models.Task {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchesQuery(t, q) {
			continue
		}
		if !matchesRange(t, rng, now) {
			continue
		}
		out = append(out, t)
	}
	sortTasks(out)
	return out
}

func matchesQuery(t models.Task, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

func matchesRange(t models.Task, rng Range, now time.Time) bool {
	if rng == RangeAll {
		return true
	}
	due, ok := t.DueDate()
	if !ok {
		return false
	}
	return Bucket(due, now) == rng
}

// sortTasks is stable: ties keep their input order.
func sortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		ad, aok := a.DueDate()
		bd, bok := b.DueDate()
		if aok != bok {
			return aok
		}
		if !aok {
			return false
		}
		return ad.Before(bd)
	})
}

// Section is one heading of the agenda view.
type Section struct {
	Title string
	Tasks []models.Task
}

// Agenda splits a filtered task list into agenda sections in render
// order. Empty sections are omitted; tasks keep their input order
// within each section. When the input comes from Filter, flattening
// the sections reproduces the input order exactly, so a cursor index
// into the filtered list is also valid for the agenda.
func Agenda(tasks []models.Task, now time.Time) []Section {
	groups := make(map[string][]models.Task)
	for _, t := range tasks {
		k := agendaKey(t, now)
		groups[k] = append(groups[k], t)
	}
	order := []struct {
		key   string
		title string
	}{
		{string(RangePast), "Overdue"},
		{string(RangeToday), "Today"},
		{string(RangeTomorrow), "Tomorrow"},
		{string(RangeUpcoming), "Upcoming"},
		{"undated", "No date"},
		{"done", "Done"},
	}
	var out []Section
	for _, o := range order {
		if ts := groups[o.key]; len(ts) > 0 {
			out = append(out, Section{Title: o.title, Tasks: ts})
		}
	}
	return out
}

func agendaKey(t models.Task, now time.Time) string {
	if t.Completed {
		return "done"
	}
	due, ok := t.DueDate()
	if !ok {
		return "undated"
	}
	return string(Bucket(due, now))
}
