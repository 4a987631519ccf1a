package gratitude

import (
	"fmt"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
	"github.com/LLuCCKKyyyy/lifecompass/internal/utils"
	"github.com/LLuCCKKyyyy/lifecompass/internal/views"
)

type GratitudeAddCmd struct {
	Entries []string `arg:"" optional:"" help:"Gratitude notes for the day."`
	Date    string   `help:"Entry date (YYYY-MM-DD, defaults to today)."`
	Person  string   `help:"Person you are grateful for."`
	Reason  string   `help:"Why you are grateful for them."`
}

func (c *GratitudeAddCmd) Validate() error {
	if len(c.Entries) == 0 && c.Person == "" {
		return fmt.Errorf("expected at least one gratitude note or a --person")
	}
	if c.Reason != "" && c.Person == "" {
		return fmt.Errorf("--reason requires --person")
	}
	return nil
}

func (c *GratitudeAddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	draft := models.EntryDraft{Date: date}

	// Append to the existing entry for the date rather than replacing it.
	if existing, ok := views.EntryForDate(ctx.App.Gratitude.Entries(), date); ok {
		if len(c.Entries) > 0 {
			draft.Entries = append(append([]string{}, existing.Entries...), c.Entries...)
		}
		if c.Person != "" {
			draft.GratefulFor = append(append([]models.GratitudePerson{}, existing.GratefulFor...),
				models.GratitudePerson{Person: c.Person, Reason: c.Reason})
		}
	} else {
		if len(c.Entries) > 0 {
			draft.Entries = c.Entries
		}
		if c.Person != "" {
			draft.GratefulFor = []models.GratitudePerson{{Person: c.Person, Reason: c.Reason}}
		}
	}

	entry, err := ctx.App.Gratitude.AddOrUpdateEntry(draft)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded reflection for %s (%d notes)\n", entry.Date, len(entry.Entries))
	return nil
}

type GratitudeTodayCmd struct{}

func (c *GratitudeTodayCmd) Run(ctx *cli.Context) error {
	entry, ok := views.TodayEntry(ctx.App.Gratitude.Entries())
	if !ok {
		fmt.Println("No reflection recorded today. What are you grateful for?")
		return nil
	}

	fmt.Printf("Reflection for %s:\n", entry.Date)
	for _, note := range entry.Entries {
		fmt.Printf("  - %s\n", note)
	}
	for _, g := range entry.GratefulFor {
		if g.Reason != "" {
			fmt.Printf("  Grateful for %s: %s\n", g.Person, g.Reason)
		} else {
			fmt.Printf("  Grateful for %s\n", g.Person)
		}
	}
	return nil
}
