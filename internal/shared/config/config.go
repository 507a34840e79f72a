package config

import "time"

// Config is read once at startup by settings.Load. Keys are case-insensitive,
// getters with a default return it for empty or malformed values.
type Config interface {
	GetString(key string) string
	GetStringList(key string) []string
	GetDuration(key string, def time.Duration) time.Duration
	GetInt(key string, def int) int
	GetBool(key string, def bool) bool
}
