package system

import (
	"fmt"
	"os"

	"github.com/LLuCCKKyyyy/lifecompass/internal/cli"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists." short:"f"`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	st := ctx.App.Storage()

	if !c.Force && !storage.IsPostgres(st.Path()) {
		if _, err := os.Stat(st.Path()); err == nil {
			return fmt.Errorf("storage already exists at %s, pass --force to reinitialize", st.Path())
		}
	}

	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized lifecompass storage at %s\n", st.Path())
	return nil
}
