package apperrors

import (
	"net/http"
	"strings"
)

type Level string

const (
	LevelError Level = "ERROR"
	LevelWarn  Level = "WARN"
)

// ParseLevel reads ERROR_TRACKER_LEVEL, unknown values give def.
func ParseLevel(s string, def Level) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError
	case "warn", "warning":
		return LevelWarn
	default:
		return def
	}
}

// Includes reports whether a line of level other reaches a tracker with threshold l.
func (l Level) Includes(other Level) bool {
	if l == LevelError {
		return other == LevelError
	}

	return true
}

// Tracker reports Errorf and Warnf lines to an error tracking service.
// ctx holds the log context of the request: request id, order id, email, component.
type Tracker interface {
	Track(level Level, errorText string, ctx map[string]interface{})
	WithHTTPRequest(r *http.Request) Tracker
}

// levelFilter drops lines below minLevel, e.g. the unexpected amount warnings
// when only errors should page.
type levelFilter struct {
	t        Tracker
	minLevel Level
}

func NewLevelFilter(t Tracker, minLevel Level) Tracker {
	if minLevel == LevelWarn {
		return t
	}

	return levelFilter{
		t:        t,
		minLevel: minLevel,
	}
}

func (f levelFilter) Track(level Level, errorText string, ctx map[string]interface{}) {
	if f.minLevel.Includes(level) {
		f.t.Track(level, errorText, ctx)
	}
}

func (f levelFilter) WithHTTPRequest(r *http.Request) Tracker {
	f.t = f.t.WithHTTPRequest(r)
	return f
}
