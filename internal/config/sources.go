package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/nibzard/kanban-go/internal/kanbandir"
)

// ConfigEnv names a user config file to use instead of the discovered one.
const ConfigEnv = "KANBAN_CONFIG"

// projectConfigNames are tried in each directory from the working directory
// up towards the home directory.
var projectConfigNames = []string{
	kanbandir.DefaultConfigFile,
	"." + kanbandir.DefaultConfigFile,
	filepath.Join(kanbandir.Dir, kanbandir.DefaultConfigFile),
}

// findProjectConfigFile returns the nearest project config file, so a board
// configured at a repository root applies in every subdirectory. The search
// stops at the home directory; userFile is never returned as a project file.
func findProjectConfigFile(userFile string) string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	home, _ := os.UserHomeDir()

	for {
		for _, name := range projectConfigNames {
			path := filepath.Join(dir, name)
			if userFile != "" && sameFile(path, userFile) {
				continue
			}
			if isFile(path) {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if dir == home || parent == dir {
			return ""
		}
		dir = parent
	}
}

// findUserConfigFile returns the user-level config file. KANBAN_CONFIG wins
// and must name an existing file; otherwise ~/.kanban/kanban.toml is tried,
// then <os config dir>/kanban/kanban.toml.
func findUserConfigFile() (string, error) {
	if v := os.Getenv(ConfigEnv); v != "" {
		path := expandPath(v)
		if !isFile(path) {
			return "", fmt.Errorf("%s=%s: no such config file", ConfigEnv, v)
		}
		return path, nil
	}

	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, kanbandir.ConfigPath(home))
	}
	if cfgDir := osUserConfigDir(); cfgDir != "" {
		candidates = append(candidates, filepath.Join(cfgDir, kanbandir.AppName, kanbandir.DefaultConfigFile))
	}
	for _, path := range candidates {
		if isFile(path) {
			return path, nil
		}
	}
	return "", nil
}

// osUserConfigDir returns the platform config directory, or "".
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return os.Getenv("APPDATA")
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
