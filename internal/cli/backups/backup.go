package backups

import (
	"fmt"
	"path/filepath"

	"github.com/LLuCCKKyyyy/lifecompass/internal/backup"
	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
)

func manager(ctx *cli.Context) (*backup.Manager, error) {
	path := ctx.App.Storage().Path()
	if storage.IsPostgres(path) {
		return nil, fmt.Errorf("backups are not supported for postgres storage, use pg_dump")
	}
	return backup.NewManager(path), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	// Drain any in-flight writes so the snapshot is current.
	ctx.App.Flush()

	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}

	fmt.Printf("Backups in %s:\n", mgr.BackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %d bytes\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup file name (see 'backup list')."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	path := c.Name
	if filepath.Base(path) == path {
		path = filepath.Join(mgr.BackupDir(), path)
	}

	if err := mgr.Restore(path); err != nil {
		return err
	}

	fmt.Printf("Restored backup: %s\n", filepath.Base(path))
	fmt.Println("Restart lifecompass to load the restored data")
	return nil
}
