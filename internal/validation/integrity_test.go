package validation

import (
	"strings"
	"testing"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
)

func TestCheckIntegrity_CleanData(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Quadrant: constants.QuadrantUrgentImportant, Order: 0},
		{ID: "t2", Quadrant: constants.QuadrantUrgentImportant, Order: 1},
	}
	people := []models.KeyPerson{{ID: "p1", Name: "Sam"}}
	anniversaries := []models.Anniversary{{ID: "a1", PersonID: "p1", Title: "Birthday"}}
	entries := []models.GratitudeEntry{{ID: "g1", Date: "2026-09-01"}}

	result := CheckIntegrity(tasks, entries, people, anniversaries)
	if result.HasIssues() {
		t.Errorf("clean data reported issues: %v", result.Issues)
	}
	if report := result.FormatReport(); !strings.Contains(report, "No issues") {
		t.Errorf("report = %q, want the no-issues message", report)
	}
}

func TestCheckIntegrity_OrphanedAnniversary(t *testing.T) {
	anniversaries := []models.Anniversary{
		{ID: "a1", PersonID: "gone", Title: "Birthday"},
		{ID: "a2", PersonID: "p1", Title: "First met"},
	}
	people := []models.KeyPerson{{ID: "p1", Name: "Sam"}}

	result := CheckIntegrity(nil, nil, people, anniversaries)
	if len(result.Issues) != 1 || result.Issues[0].Type != IssueOrphanedAnniversary {
		t.Fatalf("issues = %v, want one orphaned anniversary", result.Issues)
	}
	if result.Issues[0].IDs[0] != "a1" {
		t.Errorf("flagged id = %v, want a1", result.Issues[0].IDs)
	}

	orphans := OrphanedAnniversaries(people, anniversaries)
	if len(orphans) != 1 || orphans[0].ID != "a1" {
		t.Errorf("OrphanedAnniversaries = %v, want only a1", orphans)
	}
}

func TestCheckIntegrity_DuplicateEntryDates(t *testing.T) {
	entries := []models.GratitudeEntry{
		{ID: "g1", Date: "2026-09-01"},
		{ID: "g2", Date: "2026-09-01"},
		{ID: "g3", Date: "2026-08-31"},
	}

	result := CheckIntegrity(nil, entries, nil, nil)
	if len(result.Issues) != 1 || result.Issues[0].Type != IssueDuplicateEntryDate {
		t.Fatalf("issues = %v, want one duplicate-date issue", result.Issues)
	}
	if len(result.Issues[0].IDs) != 2 {
		t.Errorf("flagged ids = %v, want both duplicates", result.Issues[0].IDs)
	}
}

func TestCheckIntegrity_OrderGaps(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Quadrant: constants.QuadrantUrgentImportant, Order: 0},
		{ID: "t2", Quadrant: constants.QuadrantUrgentImportant, Order: 2},
		{ID: "t3", Quadrant: constants.QuadrantNotUrgentImportant, Order: 0},
	}

	result := CheckIntegrity(tasks, nil, nil, nil)
	if len(result.Issues) != 1 || result.Issues[0].Type != IssueOrderGap {
		t.Fatalf("issues = %v, want one order-gap issue", result.Issues)
	}
}

func TestValidators(t *testing.T) {
	if err := TaskTitle("  "); err == nil {
		t.Error("whitespace-only task title accepted")
	}
	if err := PersonName(""); err == nil {
		t.Error("empty person name accepted")
	}
	if err := QuadrantValue(0); err == nil {
		t.Error("quadrant 0 accepted")
	}
	if err := QuadrantValue(constants.QuadrantNotUrgentNotImportant); err != nil {
		t.Errorf("quadrant 4 rejected: %v", err)
	}
	if err := ReviewTypeValue("quarterly"); err == nil {
		t.Error("unknown review type accepted")
	}
	if err := ReminderTime("25:00"); err == nil {
		t.Error("hour 25 accepted")
	}
	if err := ReminderTime("08:30"); err != nil {
		t.Errorf("valid reminder time rejected: %v", err)
	}
}
