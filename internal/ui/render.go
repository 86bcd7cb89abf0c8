package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"planner/internal/config"
	"planner/internal/models"
	"planner/internal/taskview"
)

func (m Model) View() string {
	now := time.Now()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Planner"))
	b.WriteString(fmt.Sprintf("  %s · %s", m.view, m.rng))
	if strings.TrimSpace(m.query) != "" {
		b.WriteString(fmt.Sprintf(" · search:%q", m.query))
	}
	b.WriteString("\n")
	b.WriteString(m.renderStats(now))
	b.WriteString("\n\n")

	switch {
	case m.mode == modeTaskForm:
		b.WriteString(renderFormBox(taskFormFields(), m.form.values(), m.form.index))
		b.WriteString("\nField: " + m.form.currentLabel() + "\n")
		b.WriteString(m.input.View())
	case m.mode == modeLabelForm:
		b.WriteString(renderFormBox(labelFormFields(), m.labelForm.values(), m.labelForm.index))
		b.WriteString("\nField: " + m.labelForm.currentLabel() + "\n")
		b.WriteString(m.input.View())
	case m.mode == modeLabels:
		b.WriteString(m.renderLabels())
	default:
		b.WriteString(m.renderTasks(now))
		if m.mode == modeSearch {
			b.WriteString("\n")
			b.WriteString(m.input.View())
		}
	}

	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderHelp(m.mode, m.cfg.Keys)))
	return b.String()
}

func (m Model) renderStats(now time.Time) string {
	s := taskview.ComputeStats(m.tasks, now)
	parts := []string{
		overdueStyle.Render(fmt.Sprintf("overdue %d", s.Past)),
		todayStyle.Render(fmt.Sprintf("today %d", s.Today)),
		tomorrowStyle.Render(fmt.Sprintf("tomorrow %d", s.Tomorrow)),
		upcomingStyle.Render(fmt.Sprintf("upcoming %d", s.Upcoming)),
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderTasks(now time.Time) string {
	ft := m.filtered()
	if len(ft) == 0 {
		return "No tasks here. Press 'a' to add one."
	}
	cursor := clampCursor(m.cursor, len(ft))

	switch m.view {
	case ViewAgenda:
		return m.renderAgenda(ft, cursor, now)
	case ViewNotes:
		return m.renderNotes(ft[cursor])
	default:
		var b strings.Builder
		for i, t := range ft {
			b.WriteString(m.renderTaskLine(t, i == cursor, now))
			b.WriteString("\n")
		}
		return b.String()
	}
}

// renderAgenda walks the sections in the same order Filter sorted the
// tasks, so the flat cursor index lines up with the grouped rows.
func (m Model) renderAgenda(ft []models.Task, cursor int, now time.Time) string {
	var b strings.Builder
	idx := 0
	for _, sec := range taskview.Agenda(ft, now) {
		b.WriteString(sectionStyle.Render(sec.Title))
		b.WriteString("\n")
		for _, t := range sec.Tasks {
			b.WriteString(m.renderTaskLine(t, idx == cursor, now))
			b.WriteString("\n")
			idx++
		}
	}
	return b.String()
}

func (m Model) renderNotes(t models.Task) string {
	var md strings.Builder
	md.WriteString("# " + t.Title + "\n\n")
	if t.Due != "" {
		md.WriteString("**Due:** " + t.Due + "  \n")
	}
	md.WriteString("**Priority:** " + string(t.Priority) + "\n\n")
	if names := labelNames(m.labels, t.Labels); len(names) > 0 {
		md.WriteString("**Labels:** " + strings.Join(names, ", ") + "\n\n")
	}
	if strings.TrimSpace(t.Description) == "" {
		md.WriteString("_No notes._\n")
	} else {
		md.WriteString(t.Description + "\n")
	}

	out, err := glamour.Render(md.String(), "dark")
	if err != nil {
		return md.String()
	}
	return out
}

func (m Model) renderTaskLine(t models.Task, selected bool, now time.Time) string {
	cursor := " "
	if selected && m.mode == modeList {
		cursor = ">"
	}

	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	due := strings.TrimSpace(t.Due)
	if due != "" {
		due = dueStyle(t, now).Render(due)
	}

	title := t.Title
	if title == "" {
		title = "(untitled)"
	}
	if t.Completed {
		title = doneStyle.Render(title)
	}

	parts := []string{cursor, checkbox, title}
	if due != "" {
		parts = append(parts, due)
	}
	parts = append(parts, priorityMark(t.Priority))
	for _, l := range m.labels {
		if t.HasLabel(l.ID) {
			parts = append(parts, labelChip(l))
		}
	}
	return strings.Join(parts, " ")
}

func dueStyle(t models.Task, now time.Time) lipgloss.Style {
	due, ok := t.DueDate()
	if !ok || t.Completed {
		return statusStyle
	}
	switch taskview.Bucket(due, now) {
	case taskview.RangePast:
		return overdueStyle
	case taskview.RangeToday:
		return todayStyle
	case taskview.RangeTomorrow:
		return tomorrowStyle
	default:
		return upcomingStyle
	}
}

func (m Model) renderLabels() string {
	if len(m.labels) == 0 {
		return "No labels yet. Press 'a' to add one."
	}
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Labels"))
	b.WriteString("\n")
	for i, l := range m.labels {
		cursor := " "
		if i == clampCursor(m.labelCursor, len(m.labels)) {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, labelChip(l), statusStyle.Render(l.Color)))
	}
	return b.String()
}

func renderFormBox(fields, values []string, index int) string {
	var b strings.Builder
	for i, name := range fields {
		prefix := " "
		if i == index {
			prefix = ">"
		}
		val := values[i]
		if strings.TrimSpace(val) == "" {
			val = "(empty)"
		}
		b.WriteString(fmt.Sprintf("%s %-32s : %s\n", prefix, name, val))
	}
	return b.String()
}

func renderHelp(md mode, k config.Keymap) string {
	switch md {
	case modeTaskForm, modeLabelForm:
		return "tab/shift+tab move field • enter save/next • esc cancel"
	case modeSearch:
		return "type to filter • enter keep • esc cancel"
	case modeLabels:
		return fmt.Sprintf("%s/%s move • %s add • %s delete • esc back", k.Up, k.Down, k.Add, k.Delete)
	default:
		return fmt.Sprintf("%s/%s move • %s add • %s edit • %s toggle • %s delete • %s search • %s view • %s range • %s labels • %s quit",
			k.Up, k.Down, k.Add, k.Edit, k.Toggle, k.Delete, k.Search, k.View, k.Range, k.Labels, k.Quit)
	}
}
