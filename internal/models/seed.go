package models

import "time"

// Seed data shown on first launch and whenever a stored snapshot is
// absent or does not parse.

func SeedLabels() []Label {
	return []Label{
		{ID: "label-home", Name: "home", Color: "#22C55E"},
		{ID: "label-work", Name: "work", Color: "#3B82F6"},
		{ID: "label-errand", Name: "errand", Color: "#EAB308"},
	}
}

func SeedTasks() []Task {
	now := time.Now()
	return []Task{
		{
			ID:          "task-welcome",
			Title:       "Welcome to planner",
			Description: "Press 'a' to add a task, space to toggle it, 'd' to delete it.",
			Due:         now.Format(DueLayout),
			Priority:    PriorityMedium,
			Labels:      []string{"label-home"},
			CreatedAt:   now,
		},
		{
			ID:          "task-agenda",
			Title:       "Try the agenda view",
			Description: "Press tab to cycle list, agenda and notes views, 'f' to cycle range filters.",
			Due:         now.AddDate(0, 0, 1).Format(DueLayout),
			Priority:    PriorityLow,
			Labels:      []string{"label-work"},
			CreatedAt:   now,
		},
	}
}
