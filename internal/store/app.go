package store

import (
	"github.com/LLuCCKKyyyy/lifecompass/internal/notifier"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
)

// App is the composition root for the four domain modules. It is constructed
// once at startup and passed by reference to consumers; module lifetime is
// the process lifetime, with Close flushing outstanding persists.
type App struct {
	Tasks         *Tasks
	Gratitude     *Gratitude
	Relationships *Relationships
	Reminder      *Reminder

	st storage.Store
}

// NewApp wires the domain modules over one substrate.
func NewApp(st storage.Store, sched notifier.Scheduler) *App {
	return &App{
		Tasks:         NewTasks(st),
		Gratitude:     NewGratitude(st),
		Relationships: NewRelationships(st),
		Reminder:      NewReminder(st, sched),
		st:            st,
	}
}

// Storage exposes the underlying substrate (used by migrate and doctor).
func (a *App) Storage() storage.Store {
	return a.st
}

// Flush waits for every outstanding persist across all modules.
func (a *App) Flush() {
	a.Tasks.Flush()
	a.Gratitude.Flush()
	a.Relationships.Flush()
	a.Reminder.Flush()
}

// Close flushes and releases the substrate.
func (a *App) Close() error {
	a.Flush()
	return a.st.Close()
}
