package validation

import (
	"fmt"
	"sort"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
)

// IssueType classifies a detected data integrity issue.
type IssueType string

const (
	// IssueOrphanedAnniversary flags an anniversary whose person no longer
	// exists. Reachable when a crash lands between the two persists of a
	// cascading person delete.
	IssueOrphanedAnniversary IssueType = "orphaned_anniversary"
	// IssueDuplicateEntryDate flags more than one gratitude entry for one
	// calendar date.
	IssueDuplicateEntryDate IssueType = "duplicate_entry_date"
	// IssueOrderGap flags a quadrant whose order values are not a contiguous
	// 0..n-1 run. Deleting tasks leaves gaps; reordering repairs them.
	IssueOrderGap IssueType = "order_gap"
)

// Issue is one detected integrity problem.
type Issue struct {
	Type        IssueType
	Description string
	IDs         []string // ids of the records involved
}

// Result collects the issues of one integrity pass.
type Result struct {
	Issues []Issue
}

// HasIssues reports whether any issue was detected.
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues.
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}

	report := "Issues detected:\n"
	for _, issue := range r.Issues {
		report += fmt.Sprintf("- %s\n", issue.Description)
	}
	return report
}

// CheckIntegrity runs every cross-record check over the loaded collections.
func CheckIntegrity(tasks []models.Task, entries []models.GratitudeEntry, people []models.KeyPerson, anniversaries []models.Anniversary) Result {
	result := Result{Issues: []Issue{}}
	result.Issues = append(result.Issues, orphanedAnniversaries(people, anniversaries)...)
	result.Issues = append(result.Issues, duplicateEntryDates(entries)...)
	result.Issues = append(result.Issues, orderGaps(tasks)...)
	return result
}

// OrphanedAnniversaries returns the anniversaries whose personId references
// no existing person.
func OrphanedAnniversaries(people []models.KeyPerson, anniversaries []models.Anniversary) []models.Anniversary {
	known := make(map[string]bool, len(people))
	for _, p := range people {
		known[p.ID] = true
	}

	orphans := []models.Anniversary{}
	for _, a := range anniversaries {
		if !known[a.PersonID] {
			orphans = append(orphans, a)
		}
	}
	return orphans
}

func orphanedAnniversaries(people []models.KeyPerson, anniversaries []models.Anniversary) []Issue {
	issues := []Issue{}
	for _, a := range OrphanedAnniversaries(people, anniversaries) {
		issues = append(issues, Issue{
			Type:        IssueOrphanedAnniversary,
			Description: fmt.Sprintf("Anniversary %q references missing person %s", a.Title, a.PersonID),
			IDs:         []string{a.ID},
		})
	}
	return issues
}

func duplicateEntryDates(entries []models.GratitudeEntry) []Issue {
	byDate := make(map[string][]string)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e.ID)
	}

	dates := make([]string, 0, len(byDate))
	for date, ids := range byDate {
		if len(ids) > 1 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	issues := []Issue{}
	for _, date := range dates {
		issues = append(issues, Issue{
			Type:        IssueDuplicateEntryDate,
			Description: fmt.Sprintf("Multiple gratitude entries for %s (IDs: %v)", date, byDate[date]),
			IDs:         byDate[date],
		})
	}
	return issues
}

func orderGaps(tasks []models.Task) []Issue {
	byQuadrant := make(map[constants.Quadrant][]models.Task)
	for _, t := range tasks {
		byQuadrant[t.Quadrant] = append(byQuadrant[t.Quadrant], t)
	}

	issues := []Issue{}
	for q := constants.QuadrantUrgentImportant; q <= constants.QuadrantNotUrgentNotImportant; q++ {
		inQuadrant := byQuadrant[q]
		orders := make([]int, len(inQuadrant))
		ids := make([]string, len(inQuadrant))
		for i, t := range inQuadrant {
			orders[i] = t.Order
			ids[i] = t.ID
		}
		sort.Ints(orders)

		for i, o := range orders {
			if o != i {
				issues = append(issues, Issue{
					Type:        IssueOrderGap,
					Description: fmt.Sprintf("Quadrant %d order values are not contiguous: %v", q, orders),
					IDs:         ids,
				})
				break
			}
		}
	}
	return issues
}
