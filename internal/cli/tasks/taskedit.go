package tasks

import (
	"fmt"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
)

type TaskEditCmd struct {
	ID          string  `arg:"" help:"Task ID to edit."`
	Title       *string `help:"New title."`
	Description *string `help:"New description."`
	Due         *string `help:"New due date (YYYY-MM-DD, empty to clear)."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	if c.Title == nil && c.Description == nil && c.Due == nil {
		return fmt.Errorf("no changes specified")
	}

	patch := models.TaskUpdate{
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.Due,
	}
	if err := ctx.App.Tasks.UpdateTask(c.ID, patch); err != nil {
		return err
	}

	task, err := ctx.App.Tasks.GetTask(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Updated task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID to toggle completion for."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	if err := ctx.App.Tasks.ToggleTask(c.ID); err != nil {
		return err
	}

	task, err := ctx.App.Tasks.GetTask(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", cli.Checkbox(task.Completed), task.Title)
	return nil
}
