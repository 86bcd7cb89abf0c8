package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"planner/internal/models"
	"planner/internal/taskview"
)

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(0, 0))
	assert.Equal(t, 0, clampCursor(5, 0))
	assert.Equal(t, 0, clampCursor(-1, 3))
	assert.Equal(t, 2, clampCursor(2, 3))
	assert.Equal(t, 2, clampCursor(7, 3))
}

func TestWrapIndex(t *testing.T) {
	assert.Equal(t, 0, wrapIndex(0, 0))
	assert.Equal(t, 1, wrapIndex(1, 3))
	assert.Equal(t, 0, wrapIndex(3, 3))
	assert.Equal(t, 2, wrapIndex(-1, 3))
}

func TestSplitNames(t *testing.T) {
	assert.Nil(t, splitNames(""))
	assert.Nil(t, splitNames(" , ,"))
	assert.Equal(t, []string{"home", "work"}, splitNames(" home , work "))
}

func TestLabelNamesSkipsDanglingReferences(t *testing.T) {
	labels := []models.Label{
		{ID: "l1", Name: "home"},
		{ID: "l2", Name: "work"},
	}
	names := labelNames(labels, []string{"l2", "gone", "l1"})
	assert.Equal(t, []string{"work", "home"}, names)
}

func TestTaskFormRoundTrip(t *testing.T) {
	labels := []models.Label{{ID: "l1", Name: "home"}}
	task := models.Task{
		ID:          "t1",
		Title:       "Water plants",
		Description: "balcony only",
		Due:         "2024-01-02",
		Priority:    models.PriorityHigh,
		Labels:      []string{"l1", "dangling"},
	}

	f := taskFormFrom(task, labels)
	assert.Equal(t, "t1", f.id)
	assert.Equal(t, "Water plants", f.title)
	assert.Equal(t, "2024-01-02", f.due)
	assert.Equal(t, "high", f.priority)
	assert.Equal(t, "home", f.labels) // the dangling reference does not resolve

	// Field cycling writes back into the right slot.
	f.index = 2
	f.setCurrentValue("2024-02-03")
	assert.Equal(t, "2024-02-03", f.due)
	assert.Equal(t, "2024-02-03", f.currentValue())
	assert.Equal(t, "due date (YYYY-MM-DD)", f.currentLabel())
}

func TestNewTaskFormDefaults(t *testing.T) {
	f := newTaskForm()
	assert.Empty(t, f.id)
	assert.Equal(t, string(models.PriorityMedium), f.priority)
	assert.Equal(t, 0, f.index)
}

func TestLabelFormFieldCycling(t *testing.T) {
	f := &labelForm{}
	f.setCurrentValue("chores")
	assert.Equal(t, "chores", f.name)
	f.index = 1
	f.setCurrentValue("#123456")
	assert.Equal(t, "#123456", f.color)
	assert.Equal(t, []string{"chores", "#123456"}, f.values())
}

func TestNextRangeCycles(t *testing.T) {
	r := taskview.RangeAll
	seen := []taskview.Range{}
	for range taskview.Ranges() {
		r = nextRange(r)
		seen = append(seen, r)
	}
	assert.Equal(t, []taskview.Range{
		taskview.RangePast,
		taskview.RangeToday,
		taskview.RangeTomorrow,
		taskview.RangeUpcoming,
		taskview.RangeAll,
	}, seen)
}

func TestParseView(t *testing.T) {
	assert.Equal(t, ViewList, parseView("list"))
	assert.Equal(t, ViewAgenda, parseView(" Agenda "))
	assert.Equal(t, ViewNotes, parseView("notes"))
	assert.Equal(t, ViewList, parseView("bogus"))
	assert.Equal(t, ViewList, parseView(""))
}

func TestRenderFormBoxMarksCurrentField(t *testing.T) {
	out := renderFormBox([]string{"name", "color"}, []string{"chores", ""}, 1)
	assert.Contains(t, out, "> color")
	assert.Contains(t, out, "(empty)")
	assert.Contains(t, out, "chores")
}
