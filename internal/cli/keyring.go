package cli

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/keyring"
	"github.com/julianstephens/studylit/internal/storage"
)

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the keyring."`
}

func (cmd *KeyringSetCmd) Run() error {
	if storage.HasEmbeddedCredentials(cmd.ConnectionString) {
		fmt.Println("⚠️  Warning: Connection string contains embedded credentials.")
		fmt.Println("   It will be stored in the encrypted OS keyring.")
	}
	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return err
	}

	fmt.Println("✓ Connection string stored in OS keyring")
	fmt.Printf("  Use it with: %s --config %s\n", constants.AppName, KeyringConfig)
	return nil
}

type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run() error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no connection string found in keyring. Use '%s keyring set' to store one", constants.AppName)
		}
		return err
	}
	fmt.Println(maskPassword(connStr))
	return nil
}

type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run() error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}
	fmt.Println("✓ Connection string removed from OS keyring")
	return nil
}

var dsnPassword = regexp.MustCompile(`(?i)\bpassword=('[^']*'|\S+)`)

// maskPassword hides the password in a URL or key=value connection string.
func maskPassword(connStr string) string {
	if storage.IsPostgresConnString(connStr) {
		if u, err := url.Parse(connStr); err == nil {
			return u.Redacted()
		}
	}
	return dsnPassword.ReplaceAllString(connStr, "password=xxxxx")
}
