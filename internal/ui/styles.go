package ui

import (
	"github.com/charmbracelet/lipgloss"

	"planner/internal/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A3A3A3"))
	helpStyle    = lipgloss.NewStyle().Faint(true)

	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308"))
	tomorrowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	upcomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
)

var priorityColors = map[models.Priority]string{
	models.PriorityLow:    "#22C55E",
	models.PriorityMedium: "#EAB308",
	models.PriorityHigh:   "#EF4444",
}

func priorityMark(p models.Priority) string {
	color, ok := priorityColors[p]
	if !ok {
		color = priorityColors[models.PriorityMedium]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("!" + string(p))
}

// labelChip renders a label name in its own color.
func labelChip(l models.Label) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(l.Color)).Render("[" + l.Name + "]")
}
