package tasks

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/utils"
)

type TaskAddCmd struct {
	Title       string `arg:"" optional:"" help:"Task title."`
	Quadrant    string `short:"q" help:"Quadrant (1-4, do, schedule, delegate, eliminate)." default:"2"`
	Description string `short:"d" help:"Task description."`
	Due         string `help:"Due date (YYYY-MM-DD)."`
	Interactive bool   `short:"i" help:"Add the task through an interactive form."`
}

func (c *TaskAddCmd) Validate() error {
	if !c.Interactive && c.Title == "" {
		return fmt.Errorf("expected a task title (or use --interactive)")
	}
	if c.Due != "" && !utils.ValidDate(c.Due) {
		return fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", c.Due)
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	quadrant, err := cli.ParseQuadrant(c.Quadrant)
	if err != nil {
		return err
	}

	if c.Interactive {
		if err := c.runForm(&quadrant); err != nil {
			return err
		}
	}

	task, err := ctx.App.Tasks.AddTask(c.Title, c.Description, quadrant, c.Due)
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s to %s (ID: %s)\n", task.Title, cli.QuadrantLabel(task.Quadrant), task.ID)
	return nil
}

func (c *TaskAddCmd) runForm(quadrant *constants.Quadrant) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&c.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Value(&c.Description),
			huh.NewSelect[constants.Quadrant]().
				Title("Quadrant").
				Options(
					huh.NewOption("Urgent & Important (do first)", constants.QuadrantUrgentImportant),
					huh.NewOption("Not Urgent & Important (schedule)", constants.QuadrantNotUrgentImportant),
					huh.NewOption("Urgent & Not Important (delegate)", constants.QuadrantUrgentNotImportant),
					huh.NewOption("Not Urgent & Not Important (eliminate)", constants.QuadrantNotUrgentNotImportant),
				).
				Value(quadrant),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, optional)").
				Value(&c.Due).
				Validate(func(s string) error {
					if s == "" || utils.ValidDate(s) {
						return nil
					}
					return fmt.Errorf("expected YYYY-MM-DD")
				}),
		),
	).Run()
}
