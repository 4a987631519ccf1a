package constants

// Quadrant identifies one of the four Eisenhower-matrix priority categories.
type Quadrant int

// ReviewType represents the cadence of a self-review.
type ReviewType string

const (
	AppName           = "lifecompass"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath = "~/.config/lifecompass/lifecompass.json"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Quadrants
	QuadrantUrgentImportant       Quadrant = 1
	QuadrantNotUrgentImportant    Quadrant = 2
	QuadrantUrgentNotImportant    Quadrant = 3
	QuadrantNotUrgentNotImportant Quadrant = 4

	// Review cadences
	ReviewWeekly  ReviewType = "weekly"
	ReviewMonthly ReviewType = "monthly"
	ReviewYearly  ReviewType = "yearly"

	// Big rock progress bounds
	MinProgress = 0
	MaxProgress = 100

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifecompass-"

	// Notify constants
	NotifierLockfileName   = "lifecompass-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.lluckkyyyy.lifecompass"

	// ReminderTitle and ReminderBody are the contents of the daily reflection
	// reminder.
	ReminderTitle = "Daily Reflection"
	ReminderBody  = "Take a moment to reflect on your day. What are you grateful for?"

	// DefaultReminderTime is used until the user configures their own.
	DefaultReminderTime = "15:40"
)
