package store

import (
	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/logger"
	"github.com/LLuCCKKyyyy/lifecompass/internal/notifier"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
	"github.com/LLuCCKKyyyy/lifecompass/internal/utils"
)

// Reminder owns the daily reflection reminder time, a single HH:MM scalar
// persisted under its own key. Changing it reschedules the recurring tray
// notification as a side effect.
type Reminder struct {
	value *Scalar[string]
	sched notifier.Scheduler
}

// NewReminder creates the reminder module. sched may be nil, in which case
// changes persist but no rescheduling is attempted.
func NewReminder(st storage.Store, sched notifier.Scheduler) *Reminder {
	return &Reminder{
		value: NewScalar(st, constants.KeyReminderTime, constants.DefaultReminderTime),
		sched: sched,
	}
}

// Time returns the configured reminder time (HH:MM).
func (m *Reminder) Time() string {
	return m.value.Value()
}

// SetTime validates and stores a new reminder time, then reschedules the
// daily notification. An out-of-range or malformed time is rejected before
// any state change: the previous value stays, and no reschedule is issued.
// Rescheduling itself is best-effort; a tray failure is logged only.
func (m *Reminder) SetTime(timeStr string) error {
	hour, minute, err := utils.ParseClock(timeStr)
	if err != nil {
		return err
	}

	m.value.Set(timeStr)
	m.reschedule(hour, minute)
	return nil
}

// Reschedule re-issues the daily trigger for the currently stored time.
// Called at startup so the tray picks the reminder back up after reinstalls.
func (m *Reminder) Reschedule() {
	hour, minute, err := utils.ParseClock(m.Time())
	if err != nil {
		logger.Error("Stored reminder time is invalid", "time", m.Time(), "error", err)
		return
	}
	m.reschedule(hour, minute)
}

func (m *Reminder) reschedule(hour, minute int) {
	if m.sched == nil {
		return
	}
	if err := m.sched.ScheduleDaily(hour, minute); err != nil {
		logger.Warn("Failed to reschedule daily reminder", "error", err)
	}
}

// Status reports the persistence status of the reminder time.
func (m *Reminder) Status() (PersistStatus, error) {
	return m.value.Status()
}

// Flush waits for any outstanding persist of the reminder time.
func (m *Reminder) Flush() {
	m.value.Flush()
}
