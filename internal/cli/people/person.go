package people

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
	"github.com/LLuCCKKyyyy/lifecompass/internal/store"
)

type PersonAddCmd struct {
	Name          string `arg:"" optional:"" help:"Person's name."`
	Relationship  string `short:"r" help:"Relationship (partner, parent, friend, ...)."`
	Personality   string `help:"Personality type notes."`
	Communication string `help:"Communication notes."`
	Gratitude     string `help:"What you appreciate about them."`
	Interactive   bool   `short:"i" help:"Add the person through an interactive form."`
}

func (c *PersonAddCmd) Validate() error {
	if !c.Interactive && c.Name == "" {
		return fmt.Errorf("expected a name (or use --interactive)")
	}
	return nil
}

func (c *PersonAddCmd) Run(ctx *cli.Context) error {
	if c.Interactive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Name").
					Value(&c.Name).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("name cannot be empty")
						}
						return nil
					}),
				huh.NewInput().
					Title("Relationship").
					Value(&c.Relationship),
				huh.NewInput().
					Title("Personality type").
					Value(&c.Personality),
				huh.NewText().
					Title("Communication notes").
					Value(&c.Communication),
				huh.NewText().
					Title("What do you appreciate about them?").
					Value(&c.Gratitude),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	person, err := ctx.App.Relationships.AddPerson(store.PersonInput{
		Name:               c.Name,
		Relationship:       c.Relationship,
		PersonalityType:    c.Personality,
		CommunicationNotes: c.Communication,
		GratitudeNotes:     c.Gratitude,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added person: %s (ID: %s)\n", person.Name, person.ID)
	return nil
}

type PersonListCmd struct {
	ShowIDs bool `help:"Show person IDs." name:"show-ids"`
}

func (c *PersonListCmd) Run(ctx *cli.Context) error {
	persons := ctx.App.Relationships.People()
	if len(persons) == 0 {
		fmt.Println("No people found")
		return nil
	}

	fmt.Println("Key people:")
	for _, person := range persons {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", person.ID)
		}
		rel := person.Relationship
		if rel == "" {
			rel = "unspecified"
		}
		fmt.Printf("  %s (%s)%s\n", person.Name, rel, idStr)

		for _, a := range ctx.App.Relationships.PersonAnniversaries(person.ID) {
			marker := ""
			if a.Recurring {
				marker = " (recurring)"
			}
			fmt.Printf("      %s: %s%s\n", a.Title, a.Date, marker)
		}
	}
	return nil
}

type PersonEditCmd struct {
	ID            string  `arg:"" help:"Person ID to edit."`
	Name          *string `help:"New name."`
	Relationship  *string `help:"New relationship."`
	Personality   *string `help:"New personality type notes."`
	Communication *string `help:"New communication notes."`
	Gratitude     *string `help:"New gratitude notes."`
}

func (c *PersonEditCmd) Run(ctx *cli.Context) error {
	patch := models.KeyPersonUpdate{
		Name:               c.Name,
		Relationship:       c.Relationship,
		PersonalityType:    c.Personality,
		CommunicationNotes: c.Communication,
		GratitudeNotes:     c.Gratitude,
	}
	if patch == (models.KeyPersonUpdate{}) {
		return fmt.Errorf("no changes specified")
	}

	if err := ctx.App.Relationships.UpdatePerson(c.ID, patch); err != nil {
		return err
	}

	person, err := ctx.App.Relationships.GetPerson(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Updated person: %s (ID: %s)\n", person.Name, person.ID)
	return nil
}

type PersonDeleteCmd struct {
	ID string `arg:"" help:"Person ID to delete."`
}

func (c *PersonDeleteCmd) Run(ctx *cli.Context) error {
	person, err := ctx.App.Relationships.GetPerson(c.ID)
	if err != nil {
		return err
	}
	anniversaries := len(ctx.App.Relationships.PersonAnniversaries(c.ID))

	if err := ctx.App.Relationships.DeletePerson(c.ID); err != nil {
		return err
	}

	if anniversaries > 0 {
		fmt.Printf("Deleted person: %s and %d anniversar(ies) (ID: %s)\n", person.Name, anniversaries, c.ID)
	} else {
		fmt.Printf("Deleted person: %s (ID: %s)\n", person.Name, c.ID)
	}
	return nil
}
