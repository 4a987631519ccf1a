package models

import "github.com/LLuCCKKyyyy/lifecompass/internal/constants"

// JSON field names across all models are camelCase so that data exported from
// the original mobile app can be read and written unchanged.

// Task is a single to-do item living in one quadrant of the Eisenhower
// matrix. Order is unique and contiguous (0..n-1) within its quadrant.
type Task struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Quadrant    constants.Quadrant  `json:"quadrant"`
	Completed   bool                `json:"completed"`
	CreatedAt   string              `json:"createdAt"` // RFC3339 timestamp
	DueDate     string              `json:"dueDate,omitempty"` // YYYY-MM-DD
	Order       int                 `json:"order"`
}

// TaskUpdate is a merge patch for Task: nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Quadrant    *constants.Quadrant
	Completed   *bool
	DueDate     *string
	Order       *int
}

// Apply merges the patch over t and returns the merged task.
func (u TaskUpdate) Apply(t Task) Task {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Quadrant != nil {
		t.Quadrant = *u.Quadrant
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.Order != nil {
		t.Order = *u.Order
	}
	return t
}

// BigRock is a large annual goal tracked by completion percentage.
type BigRock struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Year        int    `json:"year"`
	Progress    int    `json:"progress"` // clamped to [0,100] on write
	CreatedAt   string `json:"createdAt"`
}

// BigRockUpdate is a merge patch for BigRock.
type BigRockUpdate struct {
	Title       *string
	Description *string
	Year        *int
	Progress    *int
}

// Apply merges the patch over r and returns the merged rock.
func (u BigRockUpdate) Apply(r BigRock) BigRock {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.Year != nil {
		r.Year = *u.Year
	}
	if u.Progress != nil {
		r.Progress = *u.Progress
	}
	return r
}
