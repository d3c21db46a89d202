package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# Kanban configuration file
# Values can be overridden by environment variables (KANBAN_*) or CLI flags.
# Set KANBAN_CONFIG to use a file other than ~/.kanban/kanban.toml.

# Storage backend: file, memory or redis
backend = "file"

# Data directory for the file backend (supports ~ expansion)
data_dir = "~/.kanban"

# Key under which the board snapshot is stored
key = "kanban-board"

# Month names used for task dates: en or id
date_locale = "en"

# Logging
log_level = "info"    # debug, info, warn, error
log_format = "text"   # text, json, logfmt
log_timestamps = false
log_caller = false
# log_file = "~/.kanban/kanban.log"

[redis]
addr = "localhost:6379"
# password = ""
db = 0
prefix = "kanban:"
`
}
