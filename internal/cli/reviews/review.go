package reviews

import (
	"fmt"
	"time"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/views"
)

type ReviewAddCmd struct {
	Type            string   `arg:"" help:"Review cadence (weekly|monthly|yearly)."`
	Accomplishments []string `short:"a" help:"What went well."`
	Gratitudes      []string `short:"g" help:"What you are grateful for."`
	Insights        []string `short:"i" help:"What you learned."`
}

func (c *ReviewAddCmd) Run(ctx *cli.Context) error {
	review, err := ctx.App.Gratitude.AddReview(
		constants.ReviewType(c.Type), c.Accomplishments, c.Gratitudes, c.Insights)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s review (ID: %s)\n", review.Type, review.ID)
	return nil
}

type ReviewListCmd struct {
	Type    string `short:"t" help:"Show only one cadence (weekly|monthly|yearly)."`
	ShowIDs bool   `help:"Show review IDs." name:"show-ids"`
}

func (c *ReviewListCmd) Run(ctx *cli.Context) error {
	reviews := ctx.App.Gratitude.Reviews()
	if c.Type != "" {
		reviews = views.ReviewsOfType(reviews, constants.ReviewType(c.Type))
	}
	if len(reviews) == 0 {
		fmt.Println("No reviews found")
		return nil
	}

	for _, review := range reviews {
		date := review.Date
		if t, err := time.Parse(time.RFC3339, review.Date); err == nil {
			date = t.Format(constants.DateFormat)
		}

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", review.ID)
		}
		fmt.Printf("%s review from %s%s\n", review.Type, date, idStr)
		printSection("Accomplishments", review.Accomplishments)
		printSection("Gratitudes", review.Gratitudes)
		printSection("Insights", review.Insights)
	}
	return nil
}

type ReviewDeleteCmd struct {
	ID string `arg:"" help:"Review ID to delete."`
}

func (c *ReviewDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.App.Gratitude.DeleteReview(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted review (ID: %s)\n", c.ID)
	return nil
}

func printSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("  %s:\n", title)
	for _, item := range items {
		fmt.Printf("    - %s\n", item)
	}
}
