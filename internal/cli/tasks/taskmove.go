package tasks

import (
	"fmt"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
)

type TaskMoveCmd struct {
	Quadrant string `arg:"" help:"Quadrant to reorder (1-4)."`
	From     int    `arg:"" help:"Current position within the quadrant (0-based)."`
	To       int    `arg:"" help:"New position within the quadrant (0-based)."`
}

func (c *TaskMoveCmd) Run(ctx *cli.Context) error {
	quadrant, err := cli.ParseQuadrant(c.Quadrant)
	if err != nil {
		return err
	}

	if err := ctx.App.Tasks.ReorderTasks(quadrant, c.From, c.To); err != nil {
		return err
	}

	fmt.Printf("Moved task from position %d to %d in %s\n", c.From, c.To, cli.QuadrantLabel(quadrant))
	return nil
}
