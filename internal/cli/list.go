package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"planner/internal/models"
	"planner/internal/taskview"
)

var (
	listRange  string
	listSearch string

	listDoneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	listOverdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	listChipStyle    = lipgloss.NewStyle()
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered, sorted task list",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := taskview.ParseRange(listRange)
		if err != nil {
			return err
		}

		_, store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		tasks, err := store.LoadTasks()
		if err != nil {
			return err
		}
		labels, err := store.LoadLabels()
		if err != nil {
			return err
		}

		now := time.Now()
		ft := taskview.Filter(tasks, listSearch, rng, now)
		if len(ft) == 0 {
			fmt.Println("No matching tasks.")
			return nil
		}
		for _, t := range ft {
			fmt.Println(formatTaskLine(t, labels, now))
		}
		return nil
	},
}

func formatTaskLine(t models.Task, labels []models.Label, now time.Time) string {
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	title := t.Title
	if title == "" {
		title = "(untitled)"
	}
	if t.Completed {
		title = listDoneStyle.Render(title)
	}

	parts := []string{checkbox, title}
	if due := strings.TrimSpace(t.Due); due != "" {
		if d, ok := t.DueDate(); ok && !t.Completed && taskview.Bucket(d, now) == taskview.RangePast {
			due = listOverdueStyle.Render(due)
		}
		parts = append(parts, due)
	}
	parts = append(parts, "!"+string(t.Priority))
	for _, l := range labels {
		if t.HasLabel(l.ID) {
			chip := listChipStyle.Foreground(lipgloss.Color(l.Color)).Render("[" + l.Name + "]")
			parts = append(parts, chip)
		}
	}
	return strings.Join(parts, " ")
}

func init() {
	listCmd.Flags().StringVar(&listRange, "range", "all", "range filter (all/past/today/tomorrow/upcoming)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive title/description filter")
	rootCmd.AddCommand(listCmd)
}
