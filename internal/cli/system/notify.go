package system

import (
	"fmt"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
)

// NotifyCmd fires the daily reflection notification immediately. The tray app
// invokes it on schedule; it is hidden from help output.
type NotifyCmd struct {
	Text string `help:"Override the notification text."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if ctx.Notifier == nil {
		return fmt.Errorf("notifier is not available")
	}

	text := c.Text
	if text == "" {
		text = constants.ReminderBody
	}
	return ctx.Notifier.Notify(text)
}
