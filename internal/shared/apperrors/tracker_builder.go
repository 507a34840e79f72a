package apperrors

import (
	"github.com/courseflow/courseflow-api/internal/shared/config"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
)

// GetTracker picks rollbar, then sentry, then nop. Lines below
// ERROR_TRACKER_LEVEL (warn by default) aren't reported.
func GetTracker(cfg config.Config, log logutil.Log, project string) Tracker {
	env := cfg.GetString("GO_ENV")
	if env == "" {
		env = "production"
	}
	minLevel := ParseLevel(cfg.GetString("ERROR_TRACKER_LEVEL"), LevelWarn)

	if cfg.GetBool("ROLLBAR_ENABLED", false) {
		token := cfg.GetString("ROLLBAR_TOKEN")
		if token == "" {
			log.Warnf("No ROLLBAR_TOKEN, errors won't be tracked")
			return NewNopTracker()
		}

		return NewLevelFilter(NewRollbarTracker(token, project, env), minLevel)
	}

	if cfg.GetBool("SENTRY_ENABLED", false) {
		t, err := NewSentryTracker(cfg.GetString("SENTRY_DSN"), project, env)
		if err != nil {
			log.Warnf("Can't make sentry error tracker: %s", err)
			return NewNopTracker()
		}

		return NewLevelFilter(t, minLevel)
	}

	return NewNopTracker()
}
