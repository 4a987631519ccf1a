package system

import (
	"errors"
	"fmt"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/keyring"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
)

type ConfigSetConnectionCmd struct {
	ConnectionString string `arg:"" help:"Postgres connection string, including credentials."`
}

func (c *ConfigSetConnectionCmd) Validate() error {
	if !storage.IsPostgres(c.ConnectionString) {
		return fmt.Errorf("expected a postgres:// connection string")
	}
	return nil
}

func (c *ConfigSetConnectionCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Stored database connection in the system keyring")
	return nil
}

type ConfigGetConnectionCmd struct{}

func (c *ConfigGetConnectionCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No database connection stored")
			return nil
		}
		return err
	}
	fmt.Println(connStr)
	return nil
}

type ConfigDeleteConnectionCmd struct{}

func (c *ConfigDeleteConnectionCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	fmt.Println("Removed database connection from the system keyring")
	return nil
}
