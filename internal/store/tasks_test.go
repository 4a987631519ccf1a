package store

import (
	"testing"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
)

func TestAddTask_OrderIsContiguousPerQuadrant(t *testing.T) {
	m := NewTasks(newMemStore())

	a, err := m.AddTask("A", "", constants.QuadrantNotUrgentImportant, "")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := m.AddTask("B", "", constants.QuadrantNotUrgentImportant, "")
	other, _ := m.AddTask("Other", "", constants.QuadrantUrgentImportant, "")

	if a.Order != 0 || b.Order != 1 {
		t.Errorf("orders in quadrant 2 = %d, %d, want 0, 1", a.Order, b.Order)
	}
	if other.Order != 0 {
		t.Errorf("first task of quadrant 1 got order %d, want 0", other.Order)
	}
}

func TestAddTask_Validation(t *testing.T) {
	m := NewTasks(newMemStore())

	if _, err := m.AddTask("", "", constants.QuadrantUrgentImportant, ""); err == nil {
		t.Error("empty title accepted")
	}
	if _, err := m.AddTask("x", "", constants.Quadrant(5), ""); err == nil {
		t.Error("quadrant 5 accepted")
	}
	if _, err := m.AddTask("x", "", constants.QuadrantUrgentImportant, "not-a-date"); err == nil {
		t.Error("malformed due date accepted")
	}
	if len(m.Tasks()) != 0 {
		t.Errorf("rejected adds left %d tasks behind", len(m.Tasks()))
	}
}

func TestUpdateTask_MergesPatch(t *testing.T) {
	m := NewTasks(newMemStore())
	task, _ := m.AddTask("Original", "desc", constants.QuadrantUrgentImportant, "")

	title := "Renamed"
	q := constants.QuadrantNotUrgentImportant
	if err := m.UpdateTask(task.ID, models.TaskUpdate{Title: &title, Quadrant: &q}); err != nil {
		t.Fatal(err)
	}

	got, err := m.GetTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", got.Title)
	}
	if got.Quadrant != constants.QuadrantNotUrgentImportant {
		t.Errorf("Quadrant = %d, want 2", got.Quadrant)
	}
	if got.Description != "desc" {
		t.Errorf("Description = %q, want untouched original", got.Description)
	}
}

func TestUpdateTask_QuadrantMoveGoesToEndOfTarget(t *testing.T) {
	m := NewTasks(newMemStore())
	moved, _ := m.AddTask("Moved", "", constants.QuadrantUrgentImportant, "")
	m.AddTask("Stays", "", constants.QuadrantUrgentImportant, "")
	m.AddTask("X", "", constants.QuadrantNotUrgentImportant, "")
	m.AddTask("Y", "", constants.QuadrantNotUrgentImportant, "")

	q := constants.QuadrantNotUrgentImportant
	if err := m.UpdateTask(moved.ID, models.TaskUpdate{Quadrant: &q}); err != nil {
		t.Fatal(err)
	}

	got, _ := m.GetTask(moved.ID)
	if got.Order != 2 {
		t.Errorf("moved task order = %d, want 2 (end of target quadrant)", got.Order)
	}
	seen := map[int]bool{}
	for _, task := range m.Tasks() {
		if task.Quadrant != q {
			continue
		}
		if seen[task.Order] {
			t.Errorf("duplicate order %d in target quadrant", task.Order)
		}
		seen[task.Order] = true
	}

	// A patch that restates the current quadrant keeps the order.
	stay := constants.QuadrantNotUrgentImportant
	if err := m.UpdateTask(moved.ID, models.TaskUpdate{Quadrant: &stay}); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.GetTask(moved.ID); got.Order != 2 {
		t.Errorf("order after no-op quadrant patch = %d, want 2", got.Order)
	}
}

func TestUpdateTask_MissingIDErrors(t *testing.T) {
	m := NewTasks(newMemStore())
	title := "x"
	if err := m.UpdateTask("nope", models.TaskUpdate{Title: &title}); err == nil {
		t.Error("update of missing id succeeded")
	}
}

func TestToggleTask_FlipsCompletion(t *testing.T) {
	m := NewTasks(newMemStore())
	task, _ := m.AddTask("A", "", constants.QuadrantUrgentImportant, "")

	if err := m.ToggleTask(task.ID); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.GetTask(task.ID); !got.Completed {
		t.Error("task not completed after first toggle")
	}
	if err := m.ToggleTask(task.ID); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.GetTask(task.ID); got.Completed {
		t.Error("task still completed after second toggle")
	}
}

func TestDeleteTask_RemovesOnlyTarget(t *testing.T) {
	m := NewTasks(newMemStore())
	a, _ := m.AddTask("A", "", constants.QuadrantUrgentImportant, "")
	b, _ := m.AddTask("B", "", constants.QuadrantUrgentImportant, "")

	if err := m.DeleteTask(a.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := m.GetTask(a.ID); err == nil {
		t.Error("deleted task still present")
	}
	if _, err := m.GetTask(b.ID); err != nil {
		t.Error("unrelated task lost")
	}
	if err := m.DeleteTask(a.ID); err == nil {
		t.Error("second delete of the same id succeeded")
	}
}

func TestReorderTasks_MovesAndReassignsOrders(t *testing.T) {
	m := NewTasks(newMemStore())
	q := constants.QuadrantNotUrgentImportant
	a, _ := m.AddTask("A", "", q, "")
	b, _ := m.AddTask("B", "", q, "")
	c, _ := m.AddTask("C", "", q, "")

	// Move A (position 0) to the end.
	if err := m.ReorderTasks(q, 0, 2); err != nil {
		t.Fatal(err)
	}

	want := map[string]int{b.ID: 0, c.ID: 1, a.ID: 2}
	for _, task := range m.Tasks() {
		if task.Order != want[task.ID] {
			t.Errorf("task %s order = %d, want %d", task.Title, task.Order, want[task.ID])
		}
	}
}

func TestReorderTasks_OtherQuadrantsUntouched(t *testing.T) {
	m := NewTasks(newMemStore())
	other, _ := m.AddTask("Other", "", constants.QuadrantUrgentImportant, "")
	m.AddTask("A", "", constants.QuadrantNotUrgentImportant, "")
	m.AddTask("B", "", constants.QuadrantNotUrgentImportant, "")

	if err := m.ReorderTasks(constants.QuadrantNotUrgentImportant, 1, 0); err != nil {
		t.Fatal(err)
	}

	got, _ := m.GetTask(other.ID)
	if got.Order != 0 || got.Quadrant != constants.QuadrantUrgentImportant {
		t.Errorf("task in untouched quadrant changed: %+v", got)
	}
}

func TestReorderTasks_BoundsChecked(t *testing.T) {
	m := NewTasks(newMemStore())
	q := constants.QuadrantUrgentImportant
	m.AddTask("A", "", q, "")
	m.AddTask("B", "", q, "")

	for _, tc := range []struct{ from, to int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if err := m.ReorderTasks(q, tc.from, tc.to); err == nil {
			t.Errorf("ReorderTasks(%d, %d) succeeded, want out-of-range error", tc.from, tc.to)
		}
	}
}

func TestCompactOrders_ClosesGaps(t *testing.T) {
	m := NewTasks(newMemStore())
	q := constants.QuadrantUrgentImportant
	a, _ := m.AddTask("A", "", q, "")
	b, _ := m.AddTask("B", "", q, "")
	c, _ := m.AddTask("C", "", q, "")

	// Deleting the middle task leaves orders 0 and 2.
	if err := m.DeleteTask(b.ID); err != nil {
		t.Fatal(err)
	}
	m.CompactOrders()

	gotA, _ := m.GetTask(a.ID)
	gotC, _ := m.GetTask(c.ID)
	if gotA.Order != 0 || gotC.Order != 1 {
		t.Errorf("orders after compact = %d, %d, want 0, 1", gotA.Order, gotC.Order)
	}
}

func TestBigRock_ProgressClamped(t *testing.T) {
	m := NewTasks(newMemStore())

	rock, err := m.AddBigRock("Ship it", "", 2026, 150)
	if err != nil {
		t.Fatal(err)
	}
	if rock.Progress != constants.MaxProgress {
		t.Errorf("Progress = %d, want clamped to %d", rock.Progress, constants.MaxProgress)
	}

	p := -10
	if err := m.UpdateBigRock(rock.ID, models.BigRockUpdate{Progress: &p}); err != nil {
		t.Fatal(err)
	}
	got, _ := m.GetBigRock(rock.ID)
	if got.Progress != constants.MinProgress {
		t.Errorf("Progress = %d, want clamped to %d", got.Progress, constants.MinProgress)
	}
}

func TestDeleteBigRock(t *testing.T) {
	m := NewTasks(newMemStore())
	rock, _ := m.AddBigRock("Goal", "", 2026, 0)

	if err := m.DeleteBigRock(rock.ID); err != nil {
		t.Fatal(err)
	}
	if len(m.BigRocks()) != 0 {
		t.Error("rock still present after delete")
	}
	if err := m.DeleteBigRock(rock.ID); err == nil {
		t.Error("second delete of the same id succeeded")
	}
}
