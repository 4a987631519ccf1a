package system

import (
	"fmt"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
)

// MigrateCmd copies every storage key from the current substrate to another
// one, e.g. from the JSON file to SQLite or Postgres.
type MigrateCmd struct {
	Target string `arg:"" help:"Destination: file path (.json), SQLite path (.db), or postgres:// DSN."`
}

func (c *MigrateCmd) Validate() error {
	if storage.IsPostgres(c.Target) && storage.HasEmbeddedCredentials(c.Target) {
		return fmt.Errorf("connection string contains an embedded password, store it with 'lifecompass config set-connection' instead")
	}
	return nil
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	src := ctx.App.Storage()
	if c.Target == src.Path() {
		return fmt.Errorf("target is the current storage location")
	}

	var dst storage.Store
	switch {
	case storage.IsPostgres(c.Target):
		dst = storage.NewPostgresStore(c.Target)
	case storage.IsSQLite(c.Target):
		dst = storage.NewSQLiteStore(c.Target)
	default:
		dst = storage.NewFileStore(c.Target)
	}

	// Fresh targets get initialized; existing ones are opened and overwritten
	// key by key.
	if err := dst.Init(); err != nil {
		if loadErr := dst.Load(); loadErr != nil {
			return fmt.Errorf("failed to open target storage: %w", loadErr)
		}
	}
	defer dst.Close()

	// Drain in-flight writes so the source is current.
	ctx.App.Flush()

	copied := 0
	for _, key := range constants.AllKeys {
		value, ok, err := src.Get(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !ok {
			continue
		}
		if err := dst.Set(key, value); err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
		copied++
	}

	fmt.Printf("Migrated %d keys to %s\n", copied, c.Target)
	fmt.Println("Point --config at the new location to use it")
	return nil
}
