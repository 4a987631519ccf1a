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

// Gratitude owns the daily gratitude entries and periodic reviews.
type Gratitude struct {
	entries *Collection[models.GratitudeEntry]
	reviews *Collection[models.Review]
}

// NewGratitude creates the gratitude module over the given substrate.
func NewGratitude(st storage.Store) *Gratitude {
	return &Gratitude{
		entries: NewCollection[models.GratitudeEntry](st, constants.KeyGratitude),
		reviews: NewCollection[models.Review](st, constants.KeyReviews),
	}
}

// Entries returns the full gratitude entry collection.
func (m *Gratitude) Entries() []models.GratitudeEntry {
	return m.entries.Items()
}

// Reviews returns the full review collection.
func (m *Gratitude) Reviews() []models.Review {
	return m.reviews.Items()
}

// AddOrUpdateEntry upserts the entry for the draft's date. The date is the
// natural key: if an entry for it exists, the draft is shallow-merged over it
// (nil slices leave the stored fields alone, non-nil slices overwrite, and an
// empty non-nil slice clears); otherwise a new entry is appended with a fresh
// id. Calling twice with the same date yields exactly one entry.
func (m *Gratitude) AddOrUpdateEntry(draft models.EntryDraft) (models.GratitudeEntry, error) {
	if !utils.ValidDate(draft.Date) {
		return models.GratitudeEntry{}, fmt.Errorf("invalid entry date %q (expected YYYY-MM-DD)", draft.Date)
	}

	var result models.GratitudeEntry
	m.entries.Update(func(current []models.GratitudeEntry) []models.GratitudeEntry {
		next := make([]models.GratitudeEntry, len(current))
		copy(next, current)
		for i, e := range next {
			if e.Date == draft.Date {
				if draft.Entries != nil {
					e.Entries = draft.Entries
				}
				if draft.GratefulFor != nil {
					e.GratefulFor = draft.GratefulFor
				}
				next[i] = e
				result = e
				return next
			}
		}

		entry := models.GratitudeEntry{
			ID:          uuid.New().String(),
			Date:        draft.Date,
			Entries:     draft.Entries,
			GratefulFor: draft.GratefulFor,
		}
		if entry.Entries == nil {
			entry.Entries = []string{}
		}
		if entry.GratefulFor == nil {
			entry.GratefulFor = []models.GratitudePerson{}
		}
		result = entry
		return append(next, entry)
	})
	return result, nil
}

// AddReview appends a review with a fresh id, stamped with the current time.
func (m *Gratitude) AddReview(reviewType constants.ReviewType, accomplishments, gratitudes, insights []string) (models.Review, error) {
	if err := validation.ReviewTypeValue(reviewType); err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		ID:              uuid.New().String(),
		Type:            reviewType,
		Date:            utils.NowRFC3339(),
		Accomplishments: emptyIfNil(accomplishments),
		Gratitudes:      emptyIfNil(gratitudes),
		Insights:        emptyIfNil(insights),
	}

	m.reviews.Update(func(current []models.Review) []models.Review {
		return append(current, review)
	})
	return review, nil
}

// DeleteReview removes the review with the given id.
func (m *Gratitude) DeleteReview(id string) error {
	found := false
	for _, r := range m.reviews.Items() {
		if r.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("review not found: %s", id)
	}

	m.reviews.Update(func(current []models.Review) []models.Review {
		next := make([]models.Review, 0, len(current))
		for _, r := range current {
			if r.ID != id {
				next = append(next, r)
			}
		}
		return next
	})
	return nil
}

// Status reports the persistence status of the entries collection.
func (m *Gratitude) Status() (PersistStatus, error) {
	return m.entries.Status()
}

// Flush waits for all outstanding persists of both collections.
func (m *Gratitude) Flush() {
	m.entries.Flush()
	m.reviews.Flush()
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
