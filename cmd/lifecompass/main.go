package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/cli/anniversaries"
	"github.com/LLuCCKKyyyy/lifecompass/internal/cli/backups"
	"github.com/LLuCCKKyyyy/lifecompass/internal/cli/gratitude"
	"github.com/LLuCCKKyyyy/lifecompass/internal/cli/people"
	"github.com/LLuCCKKyyyy/lifecompass/internal/cli/reviews"
	"github.com/LLuCCKKyyyy/lifecompass/internal/cli/rocks"
	"github.com/LLuCCKKyyyy/lifecompass/internal/cli/settings"
	"github.com/LLuCCKKyyyy/lifecompass/internal/cli/system"
	"github.com/LLuCCKKyyyy/lifecompass/internal/cli/tasks"
	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	apperrors "github.com/LLuCCKKyyyy/lifecompass/internal/errors"
	"github.com/LLuCCKKyyyy/lifecompass/internal/keyring"
	"github.com/LLuCCKKyyyy/lifecompass/internal/logger"
	"github.com/LLuCCKKyyyy/lifecompass/internal/notifier"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
	"github.com/LLuCCKKyyyy/lifecompass/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage location: JSON file path, SQLite path (.db), or a postgres:// connection string. PostgreSQL credentials must NOT be embedded; store them with 'lifecompass config set-connection' instead." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize lifecompass storage."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive matrix browser." default:"1"`
	Doctor  system.DoctorCmd  `cmd:"" help:"Check stored data for integrity issues."`
	Migrate system.MigrateCmd `cmd:"" help:"Copy all data to another storage backend."`
	Task    struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks by quadrant."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit a task."`
		Done   tasks.TaskDoneCmd   `cmd:"" help:"Toggle a task's completion."`
		Move   tasks.TaskMoveCmd   `cmd:"" help:"Reorder a task within its quadrant."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage Eisenhower-matrix tasks."`
	Rock struct {
		Add      rocks.RockAddCmd      `cmd:"" help:"Add an annual goal."`
		List     rocks.RockListCmd     `cmd:"" help:"List annual goals."`
		Progress rocks.RockProgressCmd `cmd:"" help:"Update a goal's progress."`
		Delete   rocks.RockDeleteCmd   `cmd:"" help:"Delete an annual goal."`
	} `cmd:"" help:"Manage annual goals (big rocks)."`
	Gratitude struct {
		Add   gratitude.GratitudeAddCmd   `cmd:"" help:"Record something you are grateful for." default:"1"`
		Today gratitude.GratitudeTodayCmd `cmd:"" help:"Show today's gratitude entry."`
	} `cmd:"" help:"Record daily gratitude."`
	Review struct {
		Add    reviews.ReviewAddCmd    `cmd:"" help:"Write a weekly, monthly, or yearly review."`
		List   reviews.ReviewListCmd   `cmd:"" help:"List past reviews."`
		Delete reviews.ReviewDeleteCmd `cmd:"" help:"Delete a review."`
	} `cmd:"" help:"Manage self-reviews."`
	Person struct {
		Add    people.PersonAddCmd    `cmd:"" help:"Add a key person."`
		List   people.PersonListCmd   `cmd:"" help:"List key people."`
		Edit   people.PersonEditCmd   `cmd:"" help:"Edit a key person."`
		Delete people.PersonDeleteCmd `cmd:"" help:"Delete a person and their anniversaries."`
	} `cmd:"" help:"Manage key relationships."`
	Anniversary struct {
		Add    anniversaries.AnniversaryAddCmd    `cmd:"" help:"Add an anniversary for a person."`
		List   anniversaries.AnniversaryListCmd   `cmd:"" help:"List upcoming anniversaries."`
		Edit   anniversaries.AnniversaryEditCmd   `cmd:"" help:"Edit an anniversary."`
		Delete anniversaries.AnniversaryDeleteCmd `cmd:"" help:"Delete an anniversary."`
	} `cmd:"" help:"Manage anniversaries."`
	Settings settings.SettingsCmd `cmd:"" help:"Show or change application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	ConfigCmd struct {
		SetConnection    system.ConfigSetConnectionCmd    `cmd:"" name:"set-connection" help:"Store the PostgreSQL connection string in the OS keyring."`
		GetConnection    system.ConfigGetConnectionCmd    `cmd:"" name:"get-connection" help:"Show the stored connection string."`
		DeleteConnection system.ConfigDeleteConnectionCmd `cmd:"" name:"delete-connection" help:"Remove the stored connection string."`
	} `cmd:"" name:"config" help:"Manage stored credentials."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send the reflection notification (used internally)."`
	Coach  system.CoachCmd  `cmd:"" hidden:"" help:"Serve coach tools over stdio (used by AI assistants)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal life compass: priorities, gratitude, and relationships"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: logDir(configPath),
	}); err != nil {
		apperrors.Fatalf("failed to initialize logging: %v", err)
	}

	st, err := openStore(configPath)
	if err != nil {
		apperrors.Fatal(err)
	}

	command := ""
	if ctx.Selected() != nil {
		command = strings.Fields(ctx.Command())[0]
	}

	// Init handles its own setup; everything else needs loaded storage.
	if command != "init" && command != "config" {
		if err := st.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	n := notifier.New()
	app := store.NewApp(st, n)
	appCtx := &cli.Context{App: app, Notifier: n}

	// Re-arm the tray schedule from the persisted reminder time.
	if command != "init" && command != "config" {
		app.Reminder.Reschedule()
	}

	runErr := ctx.Run(appCtx)

	// Drain in-flight persists before exit, then close the substrate.
	app.Flush()
	if err := app.Close(); err != nil {
		logger.Warn("Failed to close storage", "error", err)
	}

	if runErr != nil {
		apperrors.Fatal(runErr)
	}
}

// openStore picks the substrate from the config string: postgres:// DSNs go
// to Postgres (with keyring/env credential resolution), .db/.sqlite paths to
// SQLite, anything else to the JSON file store.
func openStore(config string) (storage.Store, error) {
	if storage.IsPostgres(config) {
		if storage.HasEmbeddedCredentials(config) {
			return nil, errors.New("connection string contains an embedded password; store it with 'lifecompass config set-connection' and pass a credential-free DSN")
		}

		// A stored full connection string takes precedence over the bare DSN.
		if env := os.Getenv("LIFECOMPASS_DB_CONNECTION"); env != "" {
			return storage.NewPostgresStore(env), nil
		}
		if stored, err := keyring.GetConnectionString(); err == nil {
			return storage.NewPostgresStore(stored), nil
		}
		return storage.NewPostgresStore(config), nil
	}

	if storage.IsSQLite(config) {
		return storage.NewSQLiteStore(config), nil
	}
	return storage.NewFileStore(config), nil
}

// logDir returns the directory logs live under. Postgres has no local file,
// so logs fall back to the default config directory.
func logDir(config string) string {
	if storage.IsPostgres(config) {
		return filepath.Dir(expandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(config)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
