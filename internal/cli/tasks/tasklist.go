package tasks

import (
	"fmt"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/views"
)

type TaskListCmd struct {
	Quadrant string `short:"q" help:"Show only one quadrant (1-4)."`
	All      bool   `short:"a" help:"Include completed tasks."`
	ShowIDs  bool   `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks := ctx.App.Tasks.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	first := constants.QuadrantUrgentImportant
	last := constants.QuadrantNotUrgentNotImportant
	if c.Quadrant != "" {
		q, err := cli.ParseQuadrant(c.Quadrant)
		if err != nil {
			return err
		}
		first, last = q, q
	}

	for q := first; q <= last; q++ {
		inQuadrant := views.TasksInQuadrant(tasks, q)
		fmt.Printf("Q%d - %s:\n", q, cli.QuadrantLabel(q))
		if len(inQuadrant) == 0 {
			fmt.Println("  (empty)")
			continue
		}

		for _, task := range inQuadrant {
			if !c.All && task.Completed {
				continue
			}

			idStr := ""
			if c.ShowIDs {
				idStr = fmt.Sprintf(" (ID: %s)", task.ID)
			}
			dueStr := ""
			if task.DueDate != "" {
				dueStr = fmt.Sprintf(" due %s", task.DueDate)
			}
			fmt.Printf("  %d. %s %s%s%s\n", task.Order, cli.Checkbox(task.Completed), task.Title, dueStr, idStr)
		}
	}

	return nil
}
