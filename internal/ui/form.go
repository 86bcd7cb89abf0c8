package ui

import (
	"strings"

	"planner/internal/models"
)

// taskForm is the field-cycling editor used for both creating and
// editing tasks. All values are kept as raw strings until save, so the
// user can leave any of them empty or malformed; nothing is rejected.
type taskForm struct {
	id          string // empty while creating
	title       string
	description string
	due         string
	priority    string
	labels      string // comma-separated label names
	index       int
}

func newTaskForm() *taskForm {
	return &taskForm{priority: string(models.PriorityMedium)}
}

func taskFormFrom(t models.Task, labels []models.Label) *taskForm {
	return &taskForm{
		id:          t.ID,
		title:       t.Title,
		description: t.Description,
		due:         t.Due,
		priority:    string(t.Priority),
		labels:      strings.Join(labelNames(labels, t.Labels), ", "),
	}
}

func taskFormFields() []string {
	return []string{
		"title",
		"description",
		"due date (YYYY-MM-DD)",
		"priority (low/medium/high)",
		"labels (comma-separated names)",
	}
}

func (f taskForm) currentLabel() string {
	return taskFormFields()[f.index]
}

func (f taskForm) currentValue() string {
	switch f.index {
	case 0:
		return f.title
	case 1:
		return f.description
	case 2:
		return f.due
	case 3:
		return f.priority
	case 4:
		return f.labels
	default:
		return ""
	}
}

func (f *taskForm) setCurrentValue(v string) {
	switch f.index {
	case 0:
		f.title = v
	case 1:
		f.description = v
	case 2:
		f.due = v
	case 3:
		f.priority = v
	case 4:
		f.labels = v
	}
}

func (f taskForm) values() []string {
	return []string{f.title, f.description, f.due, f.priority, f.labels}
}

// labelForm edits a new label's name and color.
type labelForm struct {
	name  string
	color string
	index int
}

func labelFormFields() []string {
	return []string{"name", "color (hex, e.g. #7D56F4)"}
}

func (f labelForm) currentLabel() string {
	return labelFormFields()[f.index]
}

func (f labelForm) currentValue() string {
	if f.index == 0 {
		return f.name
	}
	return f.color
}

func (f *labelForm) setCurrentValue(v string) {
	if f.index == 0 {
		f.name = v
	} else {
		f.color = v
	}
}

func (f labelForm) values() []string {
	return []string{f.name, f.color}
}

// labelNames maps label IDs to display names, skipping dangling
// references.
func labelNames(labels []models.Label, ids []string) []string {
	byID := make(map[string]string, len(labels))
	for _, l := range labels {
		byID[l.ID] = l.Name
	}
	var names []string
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// splitNames breaks a comma-separated name list into trimmed,
// non-empty entries.
func splitNames(csv string) []string {
	var names []string
	for _, part := range strings.Split(csv, ",") {
		if p := strings.TrimSpace(part); p != "" {
			names = append(names, p)
		}
	}
	return names
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
