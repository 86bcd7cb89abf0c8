package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"planner/internal/models"
)

var (
	addDue      string
	addPriority string
	addDescribe string
	addLabels   []string
)

var addCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Add a task without opening the interface",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		t := models.NewTask(strings.Join(args, " "))
		t.Due = strings.TrimSpace(addDue)
		t.Description = addDescribe
		if addPriority != "" {
			t.Priority = models.ParsePriority(addPriority)
		}
		ids, unknown := models.ResolveLabelIDs(labels, addLabels)
		t.Labels = ids

		tasks = append(tasks, t)
		if err := store.SaveTasks(tasks); err != nil {
			return err
		}

		fmt.Printf("Added %q\n", t.Title)
		if len(unknown) > 0 {
			fmt.Printf("No such label: %s\n", strings.Join(unknown, ", "))
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addPriority, "priority", "", "priority (low/medium/high)")
	addCmd.Flags().StringVar(&addDescribe, "describe", "", "task description")
	addCmd.Flags().StringSliceVar(&addLabels, "label", nil, "label name (repeatable)")
	rootCmd.AddCommand(addCmd)
}
