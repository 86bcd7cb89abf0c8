// Package ui implements the interactive terminal interface: list,
// agenda and notes views over the shared task list, range filters,
// incremental search, task and label editing, and y/n confirmation
// before any deletion.
package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"planner/internal/config"
	"planner/internal/models"
	"planner/internal/storage"
	"planner/internal/taskview"
)

// View selects how the filtered task list is presented.
type View int

const (
	ViewList View = iota
	ViewAgenda
	ViewNotes
)

func (v View) String() string {
	switch v {
	case ViewAgenda:
		return "agenda"
	case ViewNotes:
		return "notes"
	default:
		return "list"
	}
}

func parseView(v string) View {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "agenda":
		return ViewAgenda
	case "notes":
		return ViewNotes
	default:
		return ViewList
	}
}

type mode int

const (
	modeList mode = iota
	modeSearch
	modeTaskForm
	modeLabels
	modeLabelForm
)

type Model struct {
	store *storage.Store
	cfg   config.Config

	tasks  []models.Task
	labels []models.Label

	view  View
	rng   taskview.Range
	query string

	cursor      int
	labelCursor int
	mode        mode
	input       textinput.Model
	status      string

	form      *taskForm
	labelForm *labelForm

	pendingTask  *models.Task
	pendingLabel *models.Label

	prevQuery string
	width     int
}

func Run(store *storage.Store, cfg config.Config) error {
	tasks, err := store.LoadTasks()
	if err != nil {
		return err
	}
	labels, err := store.LoadLabels()
	if err != nil {
		return err
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	rng, err := taskview.ParseRange(cfg.DefaultRange)
	if err != nil {
		rng = taskview.RangeAll
	}

	m := Model{
		store:  store,
		cfg:    cfg,
		tasks:  tasks,
		labels: labels,
		view:   parseView(cfg.DefaultView),
		rng:    rng,
		input:  ti,
		mode:   modeList,
		status: "Press 'a' to add, space to toggle, 'd' to delete.",
	}

	program := tea.NewProgram(m)
	_, err = program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if m.pendingTask != nil {
			return m.updateTaskDeleteConfirm(key)
		}
		if m.pendingLabel != nil {
			return m.updateLabelDeleteConfirm(key)
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearchMode(key, msg)
		case modeTaskForm:
			return m.updateTaskForm(key, msg)
		case modeLabelForm:
			return m.updateLabelForm(key, msg)
		case modeLabels:
			return m.updateLabelsMode(key)
		default:
			return m.updateListMode(key)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

// filtered recomputes the visible task list. now is taken fresh on
// every call so bucket membership tracks the clock.
func (m Model) filtered() []models.Task {
	return taskview.Filter(m.tasks, m.query, m.rng, time.Now())
}

func (m Model) selected() (models.Task, bool) {
	ft := m.filtered()
	if len(ft) == 0 {
		return models.Task{}, false
	}
	return ft[clampCursor(m.cursor, len(ft))], true
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, len(m.filtered()))
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.filtered()))
		}
	case m.cfg.Keys.Add:
		m.form = newTaskForm()
		m.mode = modeTaskForm
		m.focusFormInput(m.form.currentValue(), m.form.currentLabel())
		m.status = "New task: tab to move between fields, enter to save, esc to cancel"
	case m.cfg.Keys.Edit:
		t, ok := m.selected()
		if !ok {
			m.status = "No tasks to edit"
			return m, nil
		}
		m.form = taskFormFrom(t, m.labels)
		m.mode = modeTaskForm
		m.focusFormInput(m.form.currentValue(), m.form.currentLabel())
		m.status = "Edit task: tab to move between fields, enter to save, esc to cancel"
	case m.cfg.Keys.Toggle:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		for i := range m.tasks {
			if m.tasks[i].ID == t.ID {
				m.tasks[i].Completed = !m.tasks[i].Completed
			}
		}
		m.persistTasks("Toggled task")
	case m.cfg.Keys.Delete:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.pendingTask = &t
		m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
	case m.cfg.Keys.Search:
		m.prevQuery = m.query
		m.mode = modeSearch
		m.focusFormInput(m.query, "Search title or description")
		m.status = "Search: type to filter, enter to keep, esc to cancel"
	case m.cfg.Keys.View, "tab":
		m.view = (m.view + 1) % 3
		m.status = fmt.Sprintf("View: %s", m.view)
	case m.cfg.Keys.Range:
		m.rng = nextRange(m.rng)
		m.cursor = 0
		m.status = fmt.Sprintf("Range: %s", m.rng)
	case m.cfg.Keys.Labels:
		m.mode = modeLabels
		m.labelCursor = clampCursor(m.labelCursor, len(m.labels))
		m.status = "Labels: 'a' to add, 'd' to delete, esc to go back"
	}
	return m, nil
}

func (m Model) updateSearchMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.query = m.prevQuery
		m.mode = modeList
		m.input.Blur()
		m.status = "Search cancelled"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.mode = modeList
		m.input.Blur()
		m.status = fmt.Sprintf("%d matching task(s)", len(m.filtered()))
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.query = m.input.Value()
		m.cursor = 0
		return m, cmd
	}
}

func (m Model) updateTaskForm(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.form = nil
		m.mode = modeList
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case "tab", "down":
		m.form.setCurrentValue(m.input.Value())
		m.form.index = wrapIndex(m.form.index+1, len(taskFormFields()))
		m.focusFormInput(m.form.currentValue(), m.form.currentLabel())
		return m, nil
	case "shift+tab", "up":
		m.form.setCurrentValue(m.input.Value())
		m.form.index = wrapIndex(m.form.index-1, len(taskFormFields()))
		m.focusFormInput(m.form.currentValue(), m.form.currentLabel())
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.form.setCurrentValue(m.input.Value())
		if m.form.index < len(taskFormFields())-1 {
			m.form.index++
			m.focusFormInput(m.form.currentValue(), m.form.currentLabel())
			return m, nil
		}
		return m.saveTaskForm()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// saveTaskForm applies the form to the task list. Nothing is rejected:
// empty fields stay empty and a malformed due date is stored as typed,
// leaving the task outside all time buckets.
func (m Model) saveTaskForm() (tea.Model, tea.Cmd) {
	f := m.form
	ids, unknown := models.ResolveLabelIDs(m.labels, splitNames(f.labels))

	var taskID string
	if f.id == "" {
		t := models.NewTask(strings.TrimSpace(f.title))
		t.Description = f.description
		t.Due = strings.TrimSpace(f.due)
		t.Priority = models.ParsePriority(f.priority)
		t.Labels = ids
		m.tasks = append(m.tasks, t)
		taskID = t.ID
	} else {
		taskID = f.id
		for i := range m.tasks {
			if m.tasks[i].ID != f.id {
				continue
			}
			m.tasks[i].Title = strings.TrimSpace(f.title)
			m.tasks[i].Description = f.description
			m.tasks[i].Due = strings.TrimSpace(f.due)
			m.tasks[i].Priority = models.ParsePriority(f.priority)
			m.tasks[i].Labels = ids
		}
	}

	m.form = nil
	m.mode = modeList
	m.input.Blur()

	saved := "Saved task"
	if len(unknown) > 0 {
		saved = fmt.Sprintf("Saved task (no such label: %s)", strings.Join(unknown, ", "))
	}
	m.persistTasks(saved)

	for i, t := range m.filtered() {
		if t.ID == taskID {
			m.cursor = i
			break
		}
	}
	return m, nil
}

func (m Model) updateTaskDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		kept := m.tasks[:0]
		for _, t := range m.tasks {
			if t.ID != m.pendingTask.ID {
				kept = append(kept, t)
			}
		}
		m.tasks = kept
		m.pendingTask = nil
		m.persistTasks("Deleted task")
		m.cursor = clampCursor(m.cursor, len(m.filtered()))
		return m, nil
	case "n", "N", "esc":
		m.pendingTask = nil
		m.status = "Delete cancelled"
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) updateLabelsMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Cancel, "esc", m.cfg.Keys.Labels:
		m.mode = modeList
		m.status = "Back to tasks"
	case m.cfg.Keys.Down, "down":
		m.labelCursor = clampCursor(m.labelCursor+1, len(m.labels))
	case m.cfg.Keys.Up, "up":
		if m.labelCursor > 0 {
			m.labelCursor = clampCursor(m.labelCursor-1, len(m.labels))
		}
	case m.cfg.Keys.Add:
		m.labelForm = &labelForm{}
		m.mode = modeLabelForm
		m.focusFormInput("", "name")
		m.status = "New label: tab to move between fields, enter to save, esc to cancel"
	case m.cfg.Keys.Delete:
		if len(m.labels) == 0 {
			return m, nil
		}
		l := m.labels[clampCursor(m.labelCursor, len(m.labels))]
		m.pendingLabel = &l
		m.status = fmt.Sprintf("Delete label %q? Tasks keep the reference. y/n", l.Name)
	}
	return m, nil
}

func (m Model) updateLabelForm(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.labelForm = nil
		m.mode = modeLabels
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "tab", "down", "shift+tab", "up":
		m.labelForm.setCurrentValue(m.input.Value())
		step := 1
		if key == "shift+tab" || key == "up" {
			step = -1
		}
		m.labelForm.index = wrapIndex(m.labelForm.index+step, len(labelFormFields()))
		m.focusFormInput(m.labelForm.currentValue(), m.labelForm.currentLabel())
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.labelForm.setCurrentValue(m.input.Value())
		if m.labelForm.index < len(labelFormFields())-1 {
			m.labelForm.index++
			m.focusFormInput(m.labelForm.currentValue(), m.labelForm.currentLabel())
			return m, nil
		}
		return m.saveLabelForm()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) saveLabelForm() (tea.Model, tea.Cmd) {
	f := m.labelForm
	l := models.NewLabel(strings.TrimSpace(f.name), strings.TrimSpace(f.color))
	m.labels = append(m.labels, l)

	m.labelForm = nil
	m.mode = modeLabels
	m.input.Blur()
	m.persistLabels("Added label")
	m.labelCursor = clampCursor(len(m.labels)-1, len(m.labels))
	return m, nil
}

// Deleting a label never touches the task list; any tasks referencing
// it keep the dangling ID, which simply stops resolving for display.
func (m Model) updateLabelDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		kept := m.labels[:0]
		for _, l := range m.labels {
			if l.ID != m.pendingLabel.ID {
				kept = append(kept, l)
			}
		}
		m.labels = kept
		m.pendingLabel = nil
		m.persistLabels("Deleted label")
		m.labelCursor = clampCursor(m.labelCursor, len(m.labels))
		return m, nil
	case "n", "N", "esc":
		m.pendingLabel = nil
		m.status = "Delete cancelled"
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) focusFormInput(value, placeholder string) {
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	m.input.Focus()
}

// persistTasks mirrors the full task list to the store, as after every
// mutation. Failures land on the status line and in the log.
func (m *Model) persistTasks(okStatus string) {
	if err := m.store.SaveTasks(m.tasks); err != nil {
		slog.Error("save tasks", "error", err)
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = okStatus
}

func (m *Model) persistLabels(okStatus string) {
	if err := m.store.SaveLabels(m.labels); err != nil {
		slog.Error("save labels", "error", err)
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = okStatus
}

func nextRange(r taskview.Range) taskview.Range {
	rs := taskview.Ranges()
	for i, cur := range rs {
		if cur == r {
			return rs[(i+1)%len(rs)]
		}
	}
	return taskview.RangeAll
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
