package config

import "flag"

// parseFlags defines the global flags on fs and parses args.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("kanban", flag.ContinueOnError)
	}

	// Storage
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "Storage backend (file|memory|redis)")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Data directory for the file backend")
	fs.StringVar(&cfg.Key, "key", cfg.Key, "Store key holding the board")
	fs.StringVar(&cfg.Redis.Addr, "redis-addr", cfg.Redis.Addr, "Redis address (host:port)")
	fs.IntVar(&cfg.Redis.DB, "redis-db", cfg.Redis.DB, "Redis database number")
	fs.StringVar(&cfg.Redis.Prefix, "redis-prefix", cfg.Redis.Prefix, "Prefix for redis keys")

	// Tasks
	fs.StringVar(&cfg.DateLocale, "date-locale", cfg.DateLocale, "Locale for task dates (en|id)")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")

	return fs.Parse(args)
}
