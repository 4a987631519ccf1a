package system

import (
	"context"
	"os"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/coach"
)

// CoachCmd serves the coach tools over stdio for an AI assistant to call.
// Hidden from help output; assistants launch it as a subprocess.
type CoachCmd struct{}

func (c *CoachCmd) Run(ctx *cli.Context) error {
	server := coach.NewServer(ctx.App, os.Stdin, os.Stdout)
	return server.Run(context.Background())
}
