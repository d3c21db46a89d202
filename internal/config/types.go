package config

// Default values.
const (
	DefaultBackend    = "file"
	DefaultDataDir    = "~/.kanban"
	DefaultKey        = "kanban-board"
	DefaultDateLocale = "en"
	DefaultRedisAddr  = "localhost:6379"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config holds the full configuration for kanban.
type Config struct {
	// Storage
	Backend string      `toml:"backend" validate:"oneof=file memory redis"`
	DataDir string      `toml:"data_dir" validate:"required_if=Backend file"`
	Key     string      `toml:"key" validate:"required"`
	Redis   RedisConfig `toml:"redis"`

	// Locale for task dates ("en" or "id")
	DateLocale string `toml:"date_locale" validate:"oneof=en id"`

	// Logging configuration
	LogLevel      string `toml:"log_level" validate:"oneof=debug info warn warning error fatal"`
	LogFormat     string `toml:"log_format" validate:"oneof=text json logfmt"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
	LogFile       string `toml:"log_file"`

	// Config files that were read, in load order (computed)
	Files []string `toml:"-"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr" validate:"omitempty,hostname_port"`
	Password string `toml:"password"`
	DB       int    `toml:"db" validate:"gte=0"`
	Prefix   string `toml:"prefix"`
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Backend = DefaultBackend
	cfg.DataDir = DefaultDataDir
	cfg.Key = DefaultKey
	cfg.DateLocale = DefaultDateLocale
	cfg.Redis.Addr = DefaultRedisAddr
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
