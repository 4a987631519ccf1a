package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
	"github.com/LLuCCKKyyyy/lifecompass/internal/utils"
	"github.com/LLuCCKKyyyy/lifecompass/internal/validation"
)

// Relationships owns the key people and anniversaries collections. The
// anniversary -> person relation is a weak reference by id; deleting a person
// cascades to their anniversaries.
type Relationships struct {
	people        *Collection[models.KeyPerson]
	anniversaries *Collection[models.Anniversary]
}

// PersonInput carries the caller-supplied fields of a new key person.
type PersonInput struct {
	Name               string
	Relationship       string
	PersonalityType    string
	CommunicationNotes string
	GratitudeNotes     string
}

// NewRelationships creates the relationships module over the given substrate.
func NewRelationships(st storage.Store) *Relationships {
	return &Relationships{
		people:        NewCollection[models.KeyPerson](st, constants.KeyPeople),
		anniversaries: NewCollection[models.Anniversary](st, constants.KeyAnniversaries),
	}
}

// People returns the full key person collection.
func (m *Relationships) People() []models.KeyPerson {
	return m.people.Items()
}

// Anniversaries returns the full anniversary collection.
func (m *Relationships) Anniversaries() []models.Anniversary {
	return m.anniversaries.Items()
}

// AddPerson creates a key person with a fresh id.
func (m *Relationships) AddPerson(in PersonInput) (models.KeyPerson, error) {
	if err := validation.PersonName(in.Name); err != nil {
		return models.KeyPerson{}, err
	}

	person := models.KeyPerson{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Relationship:       in.Relationship,
		PersonalityType:    in.PersonalityType,
		CommunicationNotes: in.CommunicationNotes,
		GratitudeNotes:     in.GratitudeNotes,
		CreatedAt:          utils.NowRFC3339(),
	}

	m.people.Update(func(current []models.KeyPerson) []models.KeyPerson {
		return append(current, person)
	})
	return person, nil
}

// GetPerson looks a key person up by id.
func (m *Relationships) GetPerson(id string) (models.KeyPerson, error) {
	for _, p := range m.people.Items() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.KeyPerson{}, fmt.Errorf("person not found: %s", id)
}

// UpdatePerson merges the patch into the person with the given id.
func (m *Relationships) UpdatePerson(id string, patch models.KeyPersonUpdate) error {
	if patch.Name != nil {
		if err := validation.PersonName(*patch.Name); err != nil {
			return err
		}
	}
	if _, err := m.GetPerson(id); err != nil {
		return err
	}

	m.people.Update(func(current []models.KeyPerson) []models.KeyPerson {
		next := make([]models.KeyPerson, len(current))
		for i, p := range current {
			if p.ID == id {
				p = patch.Apply(p)
			}
			next[i] = p
		}
		return next
	})
	return nil
}

// DeletePerson removes the person and every anniversary referencing them.
// The two collections live under independent keys with no transaction across
// them, so the anniversary write is completed first: a crash between the two
// persists leaves at worst an orphaned anniversary (which doctor can repair),
// never a dangling reference from a surviving anniversary to a deleted person.
func (m *Relationships) DeletePerson(id string) error {
	if _, err := m.GetPerson(id); err != nil {
		return err
	}

	m.anniversaries.Update(func(current []models.Anniversary) []models.Anniversary {
		next := make([]models.Anniversary, 0, len(current))
		for _, a := range current {
			if a.PersonID != id {
				next = append(next, a)
			}
		}
		return next
	})
	m.anniversaries.Flush()

	m.people.Update(func(current []models.KeyPerson) []models.KeyPerson {
		next := make([]models.KeyPerson, 0, len(current))
		for _, p := range current {
			if p.ID != id {
				next = append(next, p)
			}
		}
		return next
	})
	return nil
}

// AddAnniversary creates an anniversary for an existing person.
func (m *Relationships) AddAnniversary(personID, title, date string, recurring, notificationsEnabled bool) (models.Anniversary, error) {
	if title == "" {
		return models.Anniversary{}, fmt.Errorf("anniversary title cannot be empty")
	}
	if !utils.ValidDate(date) {
		return models.Anniversary{}, fmt.Errorf("invalid anniversary date %q (expected YYYY-MM-DD)", date)
	}
	if _, err := m.GetPerson(personID); err != nil {
		return models.Anniversary{}, fmt.Errorf("anniversary must reference an existing person: %w", err)
	}

	anniversary := models.Anniversary{
		ID:                   uuid.New().String(),
		PersonID:             personID,
		Title:                title,
		Date:                 date,
		Recurring:            recurring,
		NotificationsEnabled: notificationsEnabled,
	}

	m.anniversaries.Update(func(current []models.Anniversary) []models.Anniversary {
		return append(current, anniversary)
	})
	return anniversary, nil
}

// GetAnniversary looks an anniversary up by id.
func (m *Relationships) GetAnniversary(id string) (models.Anniversary, error) {
	for _, a := range m.anniversaries.Items() {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Anniversary{}, fmt.Errorf("anniversary not found: %s", id)
}

// UpdateAnniversary merges the patch into the anniversary with the given id.
func (m *Relationships) UpdateAnniversary(id string, patch models.AnniversaryUpdate) error {
	if patch.Date != nil && !utils.ValidDate(*patch.Date) {
		return fmt.Errorf("invalid anniversary date %q (expected YYYY-MM-DD)", *patch.Date)
	}
	if _, err := m.GetAnniversary(id); err != nil {
		return err
	}

	m.anniversaries.Update(func(current []models.Anniversary) []models.Anniversary {
		next := make([]models.Anniversary, len(current))
		for i, a := range current {
			if a.ID == id {
				a = patch.Apply(a)
			}
			next[i] = a
		}
		return next
	})
	return nil
}

// DeleteAnniversary removes the anniversary with the given id.
func (m *Relationships) DeleteAnniversary(id string) error {
	if _, err := m.GetAnniversary(id); err != nil {
		return err
	}
	m.anniversaries.Update(func(current []models.Anniversary) []models.Anniversary {
		next := make([]models.Anniversary, 0, len(current))
		for _, a := range current {
			if a.ID != id {
				next = append(next, a)
			}
		}
		return next
	})
	return nil
}

// PersonAnniversaries returns the anniversaries referencing the given person.
func (m *Relationships) PersonAnniversaries(personID string) []models.Anniversary {
	out := []models.Anniversary{}
	for _, a := range m.anniversaries.Items() {
		if a.PersonID == personID {
			out = append(out, a)
		}
	}
	return out
}

// Status reports the persistence status of the people collection.
func (m *Relationships) Status() (PersistStatus, error) {
	return m.people.Status()
}

// Flush waits for all outstanding persists of both collections.
func (m *Relationships) Flush() {
	m.people.Flush()
	m.anniversaries.Flush()
}
