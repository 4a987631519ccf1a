package store

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
	"github.com/LLuCCKKyyyy/lifecompass/internal/utils"
	"github.com/LLuCCKKyyyy/lifecompass/internal/validation"
)

// Tasks owns the matrix tasks and big rocks collections.
type Tasks struct {
	tasks *Collection[models.Task]
	rocks *Collection[models.BigRock]
}

// NewTasks creates the tasks module over the given substrate.
func NewTasks(st storage.Store) *Tasks {
	return &Tasks{
		tasks: NewCollection[models.Task](st, constants.KeyTasks),
		rocks: NewCollection[models.BigRock](st, constants.KeyBigRocks),
	}
}

// Tasks returns the full task collection.
func (m *Tasks) Tasks() []models.Task {
	return m.tasks.Items()
}

// BigRocks returns the full big rock collection.
func (m *Tasks) BigRocks() []models.BigRock {
	return m.rocks.Items()
}

// AddTask creates a task at the end of its quadrant: order is the count of
// tasks already in that quadrant.
func (m *Tasks) AddTask(title, description string, quadrant constants.Quadrant, dueDate string) (models.Task, error) {
	if err := validation.TaskTitle(title); err != nil {
		return models.Task{}, err
	}
	if err := validation.QuadrantValue(quadrant); err != nil {
		return models.Task{}, err
	}
	if dueDate != "" && !utils.ValidDate(dueDate) {
		return models.Task{}, fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", dueDate)
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Quadrant:    quadrant,
		CreatedAt:   utils.NowRFC3339(),
		DueDate:     dueDate,
	}

	m.tasks.Update(func(current []models.Task) []models.Task {
		task.Order = countInQuadrant(current, quadrant)
		return append(current, task)
	})
	return task, nil
}

// GetTask looks a task up by id.
func (m *Tasks) GetTask(id string) (models.Task, error) {
	for _, t := range m.tasks.Items() {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task not found: %s", id)
}

// UpdateTask merges the patch into the task with the given id. A task moved
// to a different quadrant goes to the end of that quadrant, so the target's
// orders stay free of duplicates.
func (m *Tasks) UpdateTask(id string, patch models.TaskUpdate) error {
	if patch.Title != nil {
		if err := validation.TaskTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Quadrant != nil {
		if err := validation.QuadrantValue(*patch.Quadrant); err != nil {
			return err
		}
	}
	if patch.DueDate != nil && *patch.DueDate != "" && !utils.ValidDate(*patch.DueDate) {
		return fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", *patch.DueDate)
	}
	if _, err := m.GetTask(id); err != nil {
		return err
	}

	m.tasks.Update(func(current []models.Task) []models.Task {
		next := make([]models.Task, len(current))
		for i, t := range current {
			if t.ID == id {
				before := t.Quadrant
				t = patch.Apply(t)
				if t.Quadrant != before {
					t.Order = countInQuadrant(current, t.Quadrant)
				}
			}
			next[i] = t
		}
		return next
	})
	return nil
}

// ToggleTask flips a task's completion state.
func (m *Tasks) ToggleTask(id string) error {
	task, err := m.GetTask(id)
	if err != nil {
		return err
	}
	completed := !task.Completed
	return m.UpdateTask(id, models.TaskUpdate{Completed: &completed})
}

// DeleteTask removes the task with the given id. Orders of the remaining
// tasks are left as-is; doctor reports non-contiguous runs.
func (m *Tasks) DeleteTask(id string) error {
	if _, err := m.GetTask(id); err != nil {
		return err
	}
	m.tasks.Update(func(current []models.Task) []models.Task {
		next := make([]models.Task, 0, len(current))
		for _, t := range current {
			if t.ID != id {
				next = append(next, t)
			}
		}
		return next
	})
	return nil
}

// ReorderTasks moves the task at position from to position to within the
// given quadrant (positions index the quadrant's tasks sorted by order) and
// reassigns order 0..n-1 by new position. Tasks in other quadrants are
// untouched.
func (m *Tasks) ReorderTasks(quadrant constants.Quadrant, from, to int) error {
	if err := validation.QuadrantValue(quadrant); err != nil {
		return err
	}

	n := countInQuadrant(m.tasks.Items(), quadrant)
	if from < 0 || from >= n {
		return fmt.Errorf("from index %d out of range for quadrant %d (%d tasks)", from, quadrant, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("to index %d out of range for quadrant %d (%d tasks)", to, quadrant, n)
	}

	m.tasks.Update(func(current []models.Task) []models.Task {
		inQuadrant := make([]models.Task, 0, n)
		others := make([]models.Task, 0, len(current))
		for _, t := range current {
			if t.Quadrant == quadrant {
				inQuadrant = append(inQuadrant, t)
			} else {
				others = append(others, t)
			}
		}
		sort.SliceStable(inQuadrant, func(i, j int) bool { return inQuadrant[i].Order < inQuadrant[j].Order })

		moved := inQuadrant[from]
		inQuadrant = append(inQuadrant[:from], inQuadrant[from+1:]...)
		inQuadrant = append(inQuadrant[:to], append([]models.Task{moved}, inQuadrant[to:]...)...)
		for i := range inQuadrant {
			inQuadrant[i].Order = i
		}

		return append(others, inQuadrant...)
	})
	return nil
}

// CompactOrders reassigns contiguous 0..n-1 orders within every quadrant,
// preserving relative order. Used by doctor to repair gaps left by deletes.
func (m *Tasks) CompactOrders() {
	m.tasks.Update(func(current []models.Task) []models.Task {
		next := make([]models.Task, 0, len(current))
		for _, t := range current {
			if t.Quadrant < constants.QuadrantUrgentImportant || t.Quadrant > constants.QuadrantNotUrgentNotImportant {
				next = append(next, t)
			}
		}
		for q := constants.QuadrantUrgentImportant; q <= constants.QuadrantNotUrgentNotImportant; q++ {
			inQuadrant := []models.Task{}
			for _, t := range current {
				if t.Quadrant == q {
					inQuadrant = append(inQuadrant, t)
				}
			}
			sort.SliceStable(inQuadrant, func(i, j int) bool { return inQuadrant[i].Order < inQuadrant[j].Order })
			for i := range inQuadrant {
				inQuadrant[i].Order = i
			}
			next = append(next, inQuadrant...)
		}
		return next
	})
}

// AddBigRock creates an annual goal. Progress is clamped to [0,100].
func (m *Tasks) AddBigRock(title, description string, year, progress int) (models.BigRock, error) {
	if err := validation.RockTitle(title); err != nil {
		return models.BigRock{}, err
	}

	rock := models.BigRock{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Year:        year,
		Progress:    clampProgress(progress),
		CreatedAt:   utils.NowRFC3339(),
	}

	m.rocks.Update(func(current []models.BigRock) []models.BigRock {
		return append(current, rock)
	})
	return rock, nil
}

// GetBigRock looks a big rock up by id.
func (m *Tasks) GetBigRock(id string) (models.BigRock, error) {
	for _, r := range m.rocks.Items() {
		if r.ID == id {
			return r, nil
		}
	}
	return models.BigRock{}, fmt.Errorf("big rock not found: %s", id)
}

// UpdateBigRock merges the patch into the rock with the given id, clamping
// progress.
func (m *Tasks) UpdateBigRock(id string, patch models.BigRockUpdate) error {
	if patch.Title != nil {
		if err := validation.RockTitle(*patch.Title); err != nil {
			return err
		}
	}
	if _, err := m.GetBigRock(id); err != nil {
		return err
	}

	m.rocks.Update(func(current []models.BigRock) []models.BigRock {
		next := make([]models.BigRock, len(current))
		for i, r := range current {
			if r.ID == id {
				r = patch.Apply(r)
				r.Progress = clampProgress(r.Progress)
			}
			next[i] = r
		}
		return next
	})
	return nil
}

// DeleteBigRock removes the rock with the given id.
func (m *Tasks) DeleteBigRock(id string) error {
	if _, err := m.GetBigRock(id); err != nil {
		return err
	}
	m.rocks.Update(func(current []models.BigRock) []models.BigRock {
		next := make([]models.BigRock, 0, len(current))
		for _, r := range current {
			if r.ID != id {
				next = append(next, r)
			}
		}
		return next
	})
	return nil
}

// Status reports the persistence status of the task collection.
func (m *Tasks) Status() (PersistStatus, error) {
	return m.tasks.Status()
}

// Flush waits for all outstanding persists of both collections.
func (m *Tasks) Flush() {
	m.tasks.Flush()
	m.rocks.Flush()
}

func countInQuadrant(tasks []models.Task, quadrant constants.Quadrant) int {
	n := 0
	for _, t := range tasks {
		if t.Quadrant == quadrant {
			n++
		}
	}
	return n
}

func clampProgress(p int) int {
	if p < constants.MinProgress {
		return constants.MinProgress
	}
	if p > constants.MaxProgress {
		return constants.MaxProgress
	}
	return p
}
