package store

import (
	"errors"
	"testing"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
)

func TestReminder_DefaultTime(t *testing.T) {
	m := NewReminder(newMemStore(), nil)
	if got := m.Time(); got != constants.DefaultReminderTime {
		t.Errorf("Time() = %q, want default %q", got, constants.DefaultReminderTime)
	}
}

func TestSetTime_ValidTimeSchedules(t *testing.T) {
	sched := &fakeScheduler{}
	m := NewReminder(newMemStore(), sched)

	if err := m.SetTime("21:30"); err != nil {
		t.Fatal(err)
	}
	if got := m.Time(); got != "21:30" {
		t.Errorf("Time() = %q, want 21:30", got)
	}
	if sched.callCount() != 1 || sched.calls[0] != [2]int{21, 30} {
		t.Errorf("scheduler calls = %v, want one call with 21:30", sched.calls)
	}
}

func TestSetTime_InvalidTimeRejectedWithoutSideEffects(t *testing.T) {
	for _, bad := range []string{"24:00", "12:60", "9:30", "12:5", "noon", "12-30", ""} {
		t.Run(bad, func(t *testing.T) {
			sched := &fakeScheduler{}
			m := NewReminder(newMemStore(), sched)
			m.SetTime("08:15")
			before := sched.callCount()

			if err := m.SetTime(bad); err == nil {
				t.Fatalf("SetTime(%q) succeeded, want error", bad)
			}
			if got := m.Time(); got != "08:15" {
				t.Errorf("Time() = %q after rejected input, want previous 08:15", got)
			}
			if sched.callCount() != before {
				t.Error("rejected input still reached the scheduler")
			}
		})
	}
}

func TestSetTime_SchedulerFailureDoesNotUndoValue(t *testing.T) {
	sched := &fakeScheduler{schedErr: errors.New("tray not running")}
	m := NewReminder(newMemStore(), sched)

	if err := m.SetTime("07:00"); err != nil {
		t.Fatalf("SetTime returned scheduler error: %v", err)
	}
	if got := m.Time(); got != "07:00" {
		t.Errorf("Time() = %q, want 07:00 despite tray failure", got)
	}
}

func TestReminder_PersistsAcrossInstances(t *testing.T) {
	st := newMemStore()
	m := NewReminder(st, nil)
	if err := m.SetTime("06:45"); err != nil {
		t.Fatal(err)
	}
	m.Flush()

	reloaded := NewReminder(st, nil)
	if got := reloaded.Time(); got != "06:45" {
		t.Errorf("reloaded Time() = %q, want 06:45", got)
	}
}

func TestReminder_RescheduleUsesStoredTime(t *testing.T) {
	st := newMemStore()
	first := NewReminder(st, nil)
	first.SetTime("10:05")
	first.Flush()

	sched := &fakeScheduler{}
	m := NewReminder(st, sched)
	m.Reschedule()

	if sched.callCount() != 1 || sched.calls[0] != [2]int{10, 5} {
		t.Errorf("scheduler calls = %v, want one call with 10:05", sched.calls)
	}
}
