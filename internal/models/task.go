package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DueLayout is the wire format for due dates. Calendar date only,
// interpreted in the local time zone.
const DueLayout = "2006-01-02"

// Priority is a task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps free-form input onto a known priority level.
// Anything unrecognized becomes medium.
func ParsePriority(v string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(v))) {
	case PriorityLow:
		return PriorityLow
	case PriorityHigh:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// Task is a single to-do item. Labels holds label IDs only; the
// references are weak, so a deleted label simply stops resolving.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Due         string    `json:"due"`
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority"`
	Labels      []string  `json:"labels"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTask creates a task with a fresh random ID and medium priority.
func NewTask(title string) Task {
	return Task{
		ID:        uuid.NewString(),
		Title:     title,
		Priority:  PriorityMedium,
		Labels:    []string{},
		CreatedAt: time.Now(),
	}
}

// DueDate parses the task's due date. ok is false when the date is
// missing or does not parse; such tasks belong to no time bucket.
func (t Task) DueDate() (time.Time, bool) {
	v := strings.TrimSpace(t.Due)
	if v == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(DueLayout, v, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// HasLabel reports whether the task references the given label ID.
func (t Task) HasLabel(id string) bool {
	for _, l := range t.Labels {
		if l == id {
			return true
		}
	}
	return false
}
