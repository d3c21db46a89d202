package config

import "github.com/nibzard/kanban-go/internal/kv"

// KVOptions returns the store options selected by the configuration.
func (c *Config) KVOptions() kv.Options {
	return kv.Options{
		Backend: c.Backend,
		Dir:     c.DataDir,
		Redis: kv.RedisOptions{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		},
	}
}
