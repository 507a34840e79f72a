package apperrors

import (
	"fmt"

	"github.com/courseflow/courseflow-api/internal/shared/logutil"
)

const componentKey = "component"

// WrapLogWithTracker reports every Errorf and Warnf line to t before logging it.
// Reports carry lctx and the name of the child log that wrote the line, e.g. "paypal".
func WrapLogWithTracker(log logutil.Log, lctx logutil.Context, t Tracker) logutil.Log {
	return trackedLog{
		log:  log,
		lctx: lctx,
		t:    t,
	}
}

type trackedLog struct {
	log       logutil.Log
	lctx      logutil.Context
	t         Tracker
	component string
}

// trackContext copies lctx: it's shared with the request and keeps growing.
func (tl trackedLog) trackContext() map[string]interface{} {
	ctx := make(map[string]interface{}, len(tl.lctx)+1)
	for k, v := range tl.lctx {
		ctx[k] = v
	}
	if tl.component != "" {
		ctx[componentKey] = tl.component
	}

	return ctx
}

func (tl trackedLog) Fatalf(format string, args ...interface{}) {
	tl.log.Fatalf(format, args...)
}

func (tl trackedLog) Errorf(format string, args ...interface{}) {
	tl.t.Track(LevelError, fmt.Sprintf(format, args...), tl.trackContext())
	tl.log.Errorf(format, args...)
}

func (tl trackedLog) Warnf(format string, args ...interface{}) {
	tl.t.Track(LevelWarn, fmt.Sprintf(format, args...), tl.trackContext())
	tl.log.Warnf(format, args...)
}

func (tl trackedLog) Infof(format string, args ...interface{}) {
	tl.log.Infof(format, args...)
}

func (tl trackedLog) Debugf(key string, format string, args ...interface{}) {
	tl.log.Debugf(key, format, args...)
}

func (tl trackedLog) Child(name string) logutil.Log {
	child := tl
	child.log = tl.log.Child(name)
	child.component = name
	if tl.component != "" {
		child.component = tl.component + "/" + name
	}

	return child
}

func (tl trackedLog) SetLevel(level logutil.LogLevel) {
	tl.log.SetLevel(level)
}
