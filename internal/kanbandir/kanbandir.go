// Package kanbandir provides constants and utilities for the .kanban directory structure.
package kanbandir

import "path/filepath"

const (
	// Dir is the name of the kanban state directory.
	Dir = ".kanban"

	// AppName names the OS-specific config subdirectory.
	AppName = "kanban"

	// DefaultConfigFile is the config file name.
	DefaultConfigFile = "kanban.toml"

	// DefaultLogFile is the log file name used by the TUI.
	DefaultLogFile = "kanban.log"
)

// DirPath returns the .kanban directory within base.
func DirPath(base string) string {
	if base == "." || base == "" {
		return Dir
	}
	return filepath.Join(base, Dir)
}

// ConfigPath returns the config file path within base's .kanban directory.
func ConfigPath(base string) string {
	return filepath.Join(DirPath(base), DefaultConfigFile)
}

// LogPath returns the log file path within base's .kanban directory.
func LogPath(base string) string {
	return filepath.Join(DirPath(base), DefaultLogFile)
}
