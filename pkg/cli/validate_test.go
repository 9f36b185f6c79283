package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bussola-app/bussola/pkg/cli"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestRun_ValidateCommand_ValidConfig(t *testing.T) {
	configPath := writeCatalog(t, `
week_start = "monday"

[[category]]
id = "reels"
title = "Reels"
shortcut = "r"
duration = 60
dual_date = true

[[category]]
id = "meeting"
title = "Reunião"
shortcut = "m"
duration = 60
`)

	err := cli.Run(context.Background(), []string{"bussola", "validate", "--config", configPath}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_BuiltInCatalog(t *testing.T) {
	err := cli.Run(context.Background(), []string{"bussola", "validate"}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidConfig(t *testing.T) {
	// Invalid: slug with upper case letters
	configPath := writeCatalog(t, `
[[category]]
id = "BAD_SLUG"
title = "Bad"
`)

	err := cli.Run(context.Background(), []string{"bussola", "validate", "--config", configPath}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_DuplicateState(t *testing.T) {
	configPath := writeCatalog(t, `
[[state]]
id = "idea"
rank = 1

[[state]]
id = "idea"
rank = 2

[[state]]
id = "finished"
rank = 3
`)

	err := cli.Run(context.Background(), []string{"bussola", "validate", "--config", configPath}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_MissingConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nonexistent.toml")

	err := cli.Run(context.Background(), []string{"bussola", "validate", "--config", configPath}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_DBCheckWithMemory(t *testing.T) {
	// empty DB, should pass
	err := cli.Run(context.Background(), []string{
		"bussola", "validate",
		"--check-db",
		"--repository-backend", "memory",
	}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_UnknownBackend(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"bussola", "validate",
		"--check-db",
		"--repository-backend", "sqlite",
	}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{"bussola", "--log-level", "loud", "validate"}, "test")
	gt.Value(t, err).NotNil()
}
