package models

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultLabelColor is used when a label is created without a color.
const DefaultLabelColor = "#7D56F4"

// Label is a user-defined tag attachable to tasks by reference.
// Tasks keep label IDs only, so deleting a label leaves any
// references dangling instead of cascading into the task list.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // hex color code (e.g. "#7D56F4")
}

// NewLabel creates a label with a fresh random ID.
func NewLabel(name, color string) Label {
	if color == "" {
		color = DefaultLabelColor
	}
	return Label{ID: uuid.NewString(), Name: name, Color: color}
}

// ResolveLabelIDs matches label names (case-insensitive) against the
// label set. Names with no matching label come back in unknown and are
// simply not attached.
func ResolveLabelIDs(labels []Label, names []string) (ids, unknown []string) {
	byName := make(map[string]string, len(labels))
	for _, l := range labels {
		byName[strings.ToLower(l.Name)] = l.ID
	}
	for _, name := range names {
		if id, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
			ids = append(ids, id)
		} else {
			unknown = append(unknown, name)
		}
	}
	return ids, unknown
}
