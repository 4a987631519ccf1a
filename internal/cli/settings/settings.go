package settings

import (
	"fmt"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/store"
)

type SettingsCmd struct {
	List         bool   `help:"Show current settings."`
	ReminderTime string `help:"Daily reminder time (HH:MM, 24-hour)." name:"reminder-time"`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if c.ReminderTime != "" {
		if err := ctx.App.Reminder.SetTime(c.ReminderTime); err != nil {
			return err
		}
		fmt.Printf("Reminder time set to %s\n", c.ReminderTime)
		return nil
	}

	if c.List {
		fmt.Printf("Reminder time: %s\n", ctx.App.Reminder.Time())
		if status, err := ctx.App.Reminder.Status(); status == store.PersistFailed {
			fmt.Printf("  warning: last save failed: %v\n", err)
		}
		fmt.Printf("Storage: %s\n", ctx.App.Storage().Path())
		return nil
	}

	return fmt.Errorf("nothing to do, pass --list or --reminder-time")
}
