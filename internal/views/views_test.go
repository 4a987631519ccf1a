package views

import (
	"testing"
	"time"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
)

func TestTasksInQuadrant_FiltersAndSorts(t *testing.T) {
	tasks := []models.Task{
		{ID: "c", Quadrant: constants.QuadrantUrgentImportant, Order: 2},
		{ID: "x", Quadrant: constants.QuadrantNotUrgentImportant, Order: 0},
		{ID: "a", Quadrant: constants.QuadrantUrgentImportant, Order: 0},
		{ID: "b", Quadrant: constants.QuadrantUrgentImportant, Order: 1},
	}

	got := TasksInQuadrant(tasks, constants.QuadrantUrgentImportant)
	if len(got) != 3 {
		t.Fatalf("got %d tasks, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].ID != want {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestEntryForDate(t *testing.T) {
	entries := []models.GratitudeEntry{
		{ID: "1", Date: "2026-08-30"},
		{ID: "2", Date: "2026-08-31"},
	}

	if got, ok := EntryForDate(entries, "2026-08-31"); !ok || got.ID != "2" {
		t.Errorf("EntryForDate = (%+v, %v), want entry 2", got, ok)
	}
	if _, ok := EntryForDate(entries, "2026-09-01"); ok {
		t.Error("found an entry for an absent date")
	}
}

func TestReviewsOfType_NewestFirst(t *testing.T) {
	reviews := []models.Review{
		{ID: "old", Type: constants.ReviewWeekly, Date: "2026-08-01T09:00:00Z"},
		{ID: "monthly", Type: constants.ReviewMonthly, Date: "2026-08-15T09:00:00Z"},
		{ID: "new", Type: constants.ReviewWeekly, Date: "2026-08-29T09:00:00Z"},
	}

	got := ReviewsOfType(reviews, constants.ReviewWeekly)
	if len(got) != 2 || got[0].ID != "new" || got[1].ID != "old" {
		t.Errorf("ReviewsOfType = %v, want weekly reviews newest first", got)
	}
}

func TestUpcomingAnniversaries(t *testing.T) {
	ref := time.Date(2026, time.September, 1, 14, 30, 0, 0, time.UTC)
	anniversaries := []models.Anniversary{
		{ID: "birthday", Date: "1990-10-15", Recurring: true},
		{ID: "past-once", Date: "2026-06-01", Recurring: false},
		{ID: "future-once", Date: "2026-09-20", Recurring: false},
		{ID: "rolls-over", Date: "1985-03-02", Recurring: true},
		{ID: "bad", Date: "soon", Recurring: true},
	}

	got := UpcomingAnniversaries(anniversaries, ref)
	want := []string{"future-once", "birthday", "rolls-over"}
	if len(got) != len(want) {
		t.Fatalf("got %d upcoming, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].Anniversary.ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].Anniversary.ID, id)
		}
	}

	// The recurring March date rolls into next year.
	if got[2].Next.Year() != 2027 {
		t.Errorf("rolls-over next occurrence year = %d, want 2027", got[2].Next.Year())
	}
}

func TestUpcomingAnniversaries_TodayCounts(t *testing.T) {
	ref := time.Date(2026, time.September, 1, 23, 50, 0, 0, time.UTC)
	anniversaries := []models.Anniversary{
		{ID: "today", Date: "1990-09-01", Recurring: true},
	}

	got := UpcomingAnniversaries(anniversaries, ref)
	if len(got) != 1 {
		t.Fatal("an anniversary falling today was dropped")
	}
	if got[0].Next.Year() != 2026 {
		t.Errorf("next occurrence year = %d, want this year", got[0].Next.Year())
	}
}
