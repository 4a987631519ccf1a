package constants

// Storage keys for the durable key-value substrate. Each key holds one
// JSON-serialized collection (or scalar). The "life-compass-" prefix is kept
// from the original mobile app so existing exports stay importable.
const (
	KeyTasks         = "life-compass-tasks"
	KeyBigRocks      = "life-compass-big-rocks"
	KeyGratitude     = "life-compass-gratitude"
	KeyReviews       = "life-compass-reviews"
	KeyPeople        = "life-compass-people"
	KeyAnniversaries = "life-compass-anniversaries"
	KeyReminderTime  = "life-compass-reminder-time"
)

// AllKeys lists every storage key, in the order migrate copies them.
var AllKeys = []string{
	KeyTasks,
	KeyBigRocks,
	KeyGratitude,
	KeyReviews,
	KeyPeople,
	KeyAnniversaries,
	KeyReminderTime,
}
