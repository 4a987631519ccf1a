// Package views holds the pure projection helpers the presentation layer
// reads through: no I/O, no mutation, inputs in and a fresh slice out.
package views

import (
	"sort"
	"time"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
	"github.com/LLuCCKKyyyy/lifecompass/internal/utils"
)

// TasksInQuadrant returns the tasks of one quadrant sorted by order.
func TasksInQuadrant(tasks []models.Task, quadrant constants.Quadrant) []models.Task {
	out := []models.Task{}
	for _, t := range tasks {
		if t.Quadrant == quadrant {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// EntryForDate returns the gratitude entry for the given date, if any.
func EntryForDate(entries []models.GratitudeEntry, date string) (models.GratitudeEntry, bool) {
	for _, e := range entries {
		if e.Date == date {
			return e, true
		}
	}
	return models.GratitudeEntry{}, false
}

// TodayEntry returns the gratitude entry for today's local calendar date.
func TodayEntry(entries []models.GratitudeEntry) (models.GratitudeEntry, bool) {
	return EntryForDate(entries, utils.Today())
}

// PersonAnniversaries returns the anniversaries referencing one person.
func PersonAnniversaries(anniversaries []models.Anniversary, personID string) []models.Anniversary {
	out := []models.Anniversary{}
	for _, a := range anniversaries {
		if a.PersonID == personID {
			out = append(out, a)
		}
	}
	return out
}

// ReviewsOfType returns the reviews of one cadence, newest first.
func ReviewsOfType(reviews []models.Review, reviewType constants.ReviewType) []models.Review {
	out := []models.Review{}
	for _, r := range reviews {
		if r.Type == reviewType {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// UpcomingAnniversary pairs an anniversary with its next occurrence.
type UpcomingAnniversary struct {
	Anniversary models.Anniversary
	Next        time.Time
}

// UpcomingAnniversaries returns anniversaries ordered by next occurrence on
// or after ref. Recurring dates roll forward to this or next year;
// non-recurring dates in the past are dropped. Anniversaries with malformed
// dates are skipped.
func UpcomingAnniversaries(anniversaries []models.Anniversary, ref time.Time) []UpcomingAnniversary {
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	out := []UpcomingAnniversary{}
	for _, a := range anniversaries {
		date, err := utils.ParseDate(a.Date)
		if err != nil {
			continue
		}

		next := date
		if a.Recurring {
			next = utils.NextOccurrence(date, ref)
		}
		if next.Before(refDay) {
			continue
		}
		out = append(out, UpcomingAnniversary{Anniversary: a, Next: next})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Next.Before(out[j].Next) })
	return out
}
