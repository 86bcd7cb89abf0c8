package taskview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/internal/models"
)

// now is fixed for every test so bucket membership is deterministic.
var now = time.Date(2024, 1, 2, 15, 4, 5, 0, time.Local)

func day(offset int) string {
	return now.AddDate(0, 0, offset).Format(models.DueLayout)
}

func task(title, due string, completed bool) models.Task {
	return models.Task{ID: title, Title: title, Due: due, Completed: completed}
}

func TestBucketWorkedExamples(t *testing.T) {
	tests := []struct {
		name string
		due  string
		want Range
	}{
		{"yesterday is past", "2024-01-01", RangePast},
		{"current day is today", "2024-01-02", RangeToday},
		{"next day is tomorrow", "2024-01-03", RangeTomorrow},
		{"two days out is upcoming", "2024-01-04", RangeUpcoming},
		{"far future is upcoming", "2025-06-01", RangeUpcoming},
		{"far past is past", "2020-12-31", RangePast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := time.ParseInLocation(models.DueLayout, tt.due, time.Local)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Bucket(due, now))
		})
	}
}

// Every date lands in exactly one bucket for a fixed now.
func TestBucketExhaustiveAndExclusive(t *testing.T) {
	for offset := -400; offset <= 400; offset++ {
		due := now.AddDate(0, 0, offset)
		got := Bucket(due, now)
		switch {
		case offset < 0:
			assert.Equal(t, RangePast, got, "offset %d", offset)
		case offset == 0:
			assert.Equal(t, RangeToday, got, "offset %d", offset)
		case offset == 1:
			assert.Equal(t, RangeTomorrow, got, "offset %d", offset)
		default:
			assert.Equal(t, RangeUpcoming, got, "offset %d", offset)
		}
	}
}

func TestBucketIgnoresTimeOfDay(t *testing.T) {
	lateToday := time.Date(2024, 1, 2, 23, 59, 59, 0, time.Local)
	earlyToday := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)
	assert.Equal(t, RangeToday, Bucket(lateToday, now))
	assert.Equal(t, RangeToday, Bucket(earlyToday, now))
}

func TestComputeStats(t *testing.T) {
	tasks := []models.Task{
		task("overdue", day(-1), false),
		task("overdue done", day(-3), true), // completed: counted nowhere
		task("today", day(0), false),
		task("tomorrow", day(1), false),
		task("upcoming a", day(2), false),
		task("upcoming b", day(30), false),
		task("undated", "", false),           // no bucket
		task("garbage", "not-a-date", false), // no bucket
	}

	s := ComputeStats(tasks, now)
	assert.Equal(t, Stats{Past: 1, Today: 1, Tomorrow: 1, Upcoming: 2}, s)
}

func TestFilterByRange(t *testing.T) {
	tasks := []models.Task{
		task("overdue", day(-1), false),
		task("today", day(0), false),
		task("tomorrow", day(1), false),
		task("upcoming", day(5), false),
		task("undated", "", false),
	}

	tests := []struct {
		rng  Range
		want []string
	}{
		{RangePast, []string{"overdue"}},
		{RangeToday, []string{"today"}},
		{RangeTomorrow, []string{"tomorrow"}},
		{RangeUpcoming, []string{"upcoming"}},
		{RangeAll, []string{"overdue", "today", "tomorrow", "upcoming", "undated"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.rng), func(t *testing.T) {
			got := Filter(tasks, "", tt.rng, now)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

// Tasks without a parsable due date match only the all range.
func TestUndatedTasksMatchOnlyAll(t *testing.T) {
	tasks := []models.Task{
		task("undated", "", false),
		task("garbage", "2024-13-45", false),
	}
	for _, rng := range []Range{RangePast, RangeToday, RangeTomorrow, RangeUpcoming} {
		assert.Empty(t, Filter(tasks, "", rng, now), "range %s", rng)
	}
	assert.Len(t, Filter(tasks, "", RangeAll, now), 2)
}

func TestSearchIsCaseInsensitiveOverTitleAndDescription(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Title: "Buy Groceries"},
		{ID: "2", Title: "laundry", Description: "Wash the GROCERY bags too"},
		{ID: "3", Title: "unrelated"},
	}

	got := Filter(tasks, "gRoCeR", RangeAll, now)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)

	assert.Len(t, Filter(tasks, "", RangeAll, now), 3)
	assert.Empty(t, Filter(tasks, "nothing matches this", RangeAll, now))
}

func TestSortCompletedLastThenDueAscending(t *testing.T) {
	tasks := []models.Task{
		task("done early", day(-5), true),
		task("open late", day(10), false),
		task("open early", day(-2), false),
		task("done late", day(20), true),
		task("open undated", "", false),
		task("done undated", "", true),
	}

	got := Filter(tasks, "", RangeAll, now)
	assert.Equal(t, []string{
		"open early",
		"open late",
		"open undated",
		"done early",
		"done late",
		"done undated",
	}, titles(got))
}

// Equal keys keep their input order.
func TestSortIsStable(t *testing.T) {
	tasks := []models.Task{
		task("first", day(1), false),
		task("second", day(1), false),
		task("third", day(1), false),
	}
	got := Filter(tasks, "", RangeAll, now)
	assert.Equal(t, []string{"first", "second", "third"}, titles(got))
}

func TestAgendaSectionsFollowSortOrder(t *testing.T) {
	tasks := []models.Task{
		task("done", day(0), true),
		task("upcoming", day(4), false),
		task("overdue", day(-1), false),
		task("today", day(0), false),
		task("tomorrow", day(1), false),
		task("undated", "", false),
	}

	ft := Filter(tasks, "", RangeAll, now)
	sections := Agenda(ft, now)

	var sectionTitles []string
	var flattened []string
	for _, sec := range sections {
		sectionTitles = append(sectionTitles, sec.Title)
		flattened = append(flattened, titles(sec.Tasks)...)
	}

	assert.Equal(t, []string{"Overdue", "Today", "Tomorrow", "Upcoming", "No date", "Done"}, sectionTitles)
	// Flattening the agenda reproduces the filtered order, which is
	// what keeps the cursor valid across the two views.
	assert.Equal(t, titles(ft), flattened)
}

func TestAgendaOmitsEmptySections(t *testing.T) {
	ft := []models.Task{task("today", day(0), false)}
	sections := Agenda(ft, now)
	require.Len(t, sections, 1)
	assert.Equal(t, "Today", sections[0].Title)
}

func TestParseRange(t *testing.T) {
	for _, v := range []string{"all", "past", "today", "tomorrow", "upcoming", " Today ", "UPCOMING"} {
		_, err := ParseRange(v)
		assert.NoError(t, err, v)
	}

	r, err := ParseRange("")
	require.NoError(t, err)
	assert.Equal(t, RangeAll, r)

	_, err = ParseRange("someday")
	assert.Error(t, err)
}

func titles(tasks []models.Task) []string {
	var out []string
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}
