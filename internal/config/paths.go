package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Raunow/jig/internal/git"
)

// LocalConfigFileName is the per-workspace config file name.
const LocalConfigFileName = ".jig.toml"

const appName = "jig"

// globalConfigPath is computed once per process.
var globalConfigPath = sync.OnceValues(func() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to find the config directory: %w", err)
	}
	return filepath.Join(dir, appName, "config.toml"), nil
})

// GlobalConfigPath returns the user-global config file path, e.g.
// ~/.config/jig/config.toml on Linux.
func GlobalConfigPath() (string, error) {
	return globalConfigPath()
}

// WorkspaceConfigPath returns the .jig.toml path for the current workspace.
func WorkspaceConfigPath() (string, error) {
	ws, err := git.CurrentWorkspace()
	if err != nil {
		return "", err
	}
	return filepath.Join(ws, LocalConfigFileName), nil
}
