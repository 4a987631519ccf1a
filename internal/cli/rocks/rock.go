package rocks

import (
	"fmt"
	"time"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
)

type RockAddCmd struct {
	Title       string `arg:"" help:"Big rock title."`
	Year        int    `short:"y" help:"Target year (defaults to the current year)."`
	Description string `short:"d" help:"Description."`
	Progress    int    `short:"p" help:"Initial progress (0-100)." default:"0"`
}

func (c *RockAddCmd) Run(ctx *cli.Context) error {
	year := c.Year
	if year == 0 {
		year = time.Now().Year()
	}

	rock, err := ctx.App.Tasks.AddBigRock(c.Title, c.Description, year, c.Progress)
	if err != nil {
		return err
	}

	fmt.Printf("Added big rock: %s for %d (ID: %s)\n", rock.Title, rock.Year, rock.ID)
	return nil
}

type RockListCmd struct {
	Year    int  `short:"y" help:"Show only one year."`
	ShowIDs bool `help:"Show big rock IDs." name:"show-ids"`
}

func (c *RockListCmd) Run(ctx *cli.Context) error {
	rocks := ctx.App.Tasks.BigRocks()
	if len(rocks) == 0 {
		fmt.Println("No big rocks found")
		return nil
	}

	fmt.Println("Big Rocks:")
	for _, rock := range rocks {
		if c.Year != 0 && rock.Year != c.Year {
			continue
		}

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", rock.ID)
		}
		fmt.Printf("  [%3d%%] %s (%d)%s\n", rock.Progress, rock.Title, rock.Year, idStr)
	}
	return nil
}

type RockProgressCmd struct {
	ID       string `arg:"" help:"Big rock ID."`
	Progress int    `arg:"" help:"New progress (0-100; out-of-range values are clamped)."`
}

func (c *RockProgressCmd) Run(ctx *cli.Context) error {
	if err := ctx.App.Tasks.UpdateBigRock(c.ID, models.BigRockUpdate{Progress: &c.Progress}); err != nil {
		return err
	}

	rock, err := ctx.App.Tasks.GetBigRock(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s is now at %d%%\n", rock.Title, rock.Progress)
	return nil
}

type RockDeleteCmd struct {
	ID string `arg:"" help:"Big rock ID to delete."`
}

func (c *RockDeleteCmd) Run(ctx *cli.Context) error {
	rock, err := ctx.App.Tasks.GetBigRock(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.App.Tasks.DeleteBigRock(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted big rock: %s (ID: %s)\n", rock.Title, c.ID)
	return nil
}
