package system

import (
	"fmt"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/validation"
)

type DoctorCmd struct {
	Fix bool `help:"Repair the issues that have a safe automatic fix."`
}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	app := ctx.App

	result := validation.CheckIntegrity(
		app.Tasks.Tasks(),
		app.Gratitude.Entries(),
		app.Relationships.People(),
		app.Relationships.Anniversaries(),
	)
	fmt.Print(result.FormatReport())

	if !result.HasIssues() || !c.Fix {
		return nil
	}

	ctx.PerformAutomaticBackup()

	orphans := validation.OrphanedAnniversaries(
		app.Relationships.People(), app.Relationships.Anniversaries())
	for _, a := range orphans {
		if err := app.Relationships.DeleteAnniversary(a.ID); err != nil {
			return err
		}
		fmt.Printf("Removed orphaned anniversary: %s (ID: %s)\n", a.Title, a.ID)
	}

	for _, issue := range result.Issues {
		if issue.Type == validation.IssueOrderGap {
			app.Tasks.CompactOrders()
			fmt.Println("Compacted task orders")
			break
		}
	}

	// Duplicate gratitude dates have no safe automatic merge; leave those to
	// the user.
	for _, issue := range result.Issues {
		if issue.Type == validation.IssueDuplicateEntryDate {
			fmt.Println("Duplicate gratitude entries need manual review, no automatic fix applied")
			break
		}
	}

	app.Flush()
	return nil
}
