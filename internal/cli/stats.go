package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/taskview"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-bucket counts of open tasks",
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

		s := taskview.ComputeStats(tasks, time.Now())
		fmt.Printf("overdue   %d\n", s.Past)
		fmt.Printf("today     %d\n", s.Today)
		fmt.Printf("tomorrow  %d\n", s.Tomorrow)
		fmt.Printf("upcoming  %d\n", s.Upcoming)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
