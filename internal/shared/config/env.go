package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/courseflow/courseflow-api/internal/shared/logutil"
)

type EnvConfig struct {
	log    logutil.Log
	lookup func(key string) string
}

func NewEnvConfig(log logutil.Log) *EnvConfig {
	return &EnvConfig{
		log:    log,
		lookup: os.Getenv,
	}
}

// NewMapConfig serves values from m instead of the process environment.
func NewMapConfig(log logutil.Log, m map[string]string) *EnvConfig {
	return &EnvConfig{
		log: log,
		lookup: func(key string) string {
			return m[key]
		},
	}
}

func (c EnvConfig) GetString(key string) string {
	return c.getValue(key)
}

// GetStringList splits a comma separated value, empty items are skipped.
func (c EnvConfig) GetStringList(key string) []string {
	var ret []string
	for _, item := range strings.Split(c.getValue(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			ret = append(ret, item)
		}
	}

	return ret
}

func (c EnvConfig) getValue(key string) string {
	return strings.TrimSpace(c.lookup(strings.ToUpper(key)))
}

func (c EnvConfig) GetDuration(key string, def time.Duration) time.Duration {
	cfgStr := c.getValue(key)
	if cfgStr == "" {
		return def
	}

	d, err := time.ParseDuration(cfgStr)
	if err != nil {
		c.log.Warnf("Config: invalid %s %q: %s", key, cfgStr, err)
		return def
	}

	return d
}

func (c EnvConfig) GetInt(key string, def int) int {
	cfgStr := c.getValue(key)
	if cfgStr == "" {
		return def
	}

	v, err := strconv.Atoi(cfgStr)
	if err != nil {
		c.log.Warnf("Config: invalid %s %q: %s", key, cfgStr, err)
		return def
	}

	return v
}

func (c EnvConfig) GetBool(key string, def bool) bool {
	cfgStr := c.getValue(key)
	if cfgStr == "" {
		return def
	}

	if cfgStr == "1" || cfgStr == "true" {
		return true
	}

	if cfgStr == "0" || cfgStr == "false" {
		return false
	}

	c.log.Warnf("Config: invalid %s %q", key, cfgStr)
	return def
}
