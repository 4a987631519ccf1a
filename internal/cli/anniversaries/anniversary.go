package anniversaries

import (
	"fmt"
	"time"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
	"github.com/LLuCCKKyyyy/lifecompass/internal/views"
)

type AnniversaryAddCmd struct {
	PersonID  string `arg:"" help:"ID of the person this anniversary belongs to."`
	Title     string `arg:"" help:"Anniversary title (e.g. Birthday)."`
	Date      string `arg:"" help:"Date (YYYY-MM-DD)."`
	Once      bool   `help:"One-off event instead of yearly recurring."`
	Silent    bool   `help:"Disable notifications for this anniversary."`
}

func (c *AnniversaryAddCmd) Run(ctx *cli.Context) error {
	anniversary, err := ctx.App.Relationships.AddAnniversary(
		c.PersonID, c.Title, c.Date, !c.Once, !c.Silent)
	if err != nil {
		return err
	}

	person, err := ctx.App.Relationships.GetPerson(anniversary.PersonID)
	if err != nil {
		return err
	}
	fmt.Printf("Added anniversary: %s for %s on %s (ID: %s)\n",
		anniversary.Title, person.Name, anniversary.Date, anniversary.ID)
	return nil
}

type AnniversaryListCmd struct {
	Person  string `help:"Show only anniversaries for one person ID."`
	ShowIDs bool   `help:"Show anniversary IDs." name:"show-ids"`
}

func (c *AnniversaryListCmd) Run(ctx *cli.Context) error {
	anniversaries := ctx.App.Relationships.Anniversaries()
	if c.Person != "" {
		anniversaries = views.PersonAnniversaries(anniversaries, c.Person)
	}

	upcoming := views.UpcomingAnniversaries(anniversaries, time.Now())
	if len(upcoming) == 0 {
		fmt.Println("No upcoming anniversaries")
		return nil
	}

	fmt.Println("Upcoming anniversaries:")
	for _, u := range upcoming {
		name := u.Anniversary.PersonID
		if person, err := ctx.App.Relationships.GetPerson(u.Anniversary.PersonID); err == nil {
			name = person.Name
		}

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", u.Anniversary.ID)
		}
		fmt.Printf("  %s - %s (%s)%s\n",
			u.Next.Format(constants.DateFormat), u.Anniversary.Title, name, idStr)
	}
	return nil
}

type AnniversaryEditCmd struct {
	ID     string  `arg:"" help:"Anniversary ID to edit."`
	Title  *string `help:"New title."`
	Date   *string `help:"New date (YYYY-MM-DD)."`
	Recur  *bool   `help:"Whether the anniversary repeats yearly."`
	Notify *bool   `help:"Whether notifications fire for this anniversary."`
}

func (c *AnniversaryEditCmd) Run(ctx *cli.Context) error {
	patch := models.AnniversaryUpdate{
		Title:                c.Title,
		Date:                 c.Date,
		Recurring:            c.Recur,
		NotificationsEnabled: c.Notify,
	}
	if patch == (models.AnniversaryUpdate{}) {
		return fmt.Errorf("nothing to edit, pass at least one flag")
	}

	if err := ctx.App.Relationships.UpdateAnniversary(c.ID, patch); err != nil {
		return err
	}
	fmt.Printf("Updated anniversary: %s\n", c.ID)
	return nil
}

type AnniversaryDeleteCmd struct {
	ID string `arg:"" help:"Anniversary ID to delete."`
}

func (c *AnniversaryDeleteCmd) Run(ctx *cli.Context) error {
	anniversary, err := ctx.App.Relationships.GetAnniversary(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.App.Relationships.DeleteAnniversary(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted anniversary: %s (ID: %s)\n", anniversary.Title, c.ID)
	return nil
}
