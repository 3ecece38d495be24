package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/studylit/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Delete an existing store file before initializing."`
}

// Run initializes the configured store. It runs before the session is
// opened, so only ctx.Store is set.
func (c *InitCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()

	if c.Force {
		if _, ok := ctx.Store.(*storage.PostgresStore); ok {
			return fmt.Errorf("--force is not supported for PostgreSQL; drop the schema manually")
		}
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			fmt.Printf("Deleted existing store at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized studylit storage at: %s\n", path)
	return nil
}
