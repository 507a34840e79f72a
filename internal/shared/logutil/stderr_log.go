package logutil

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus" //nolint:depguard
)

const exitCodeFailure = 1

type StderrLog struct {
	name      string
	logger    *logrus.Logger
	level     LogLevel
	debugKeys map[string]bool
	json      bool
}

var _ Log = NewStderrLog("")

func NewStderrLog(name string, debugKeys ...string) *StderrLog {
	sl := &StderrLog{
		name:      name,
		logger:    logrus.New(),
		level:     LogLevelWarn,
		debugKeys: map[string]bool{},
	}

	for _, k := range debugKeys {
		sl.debugKeys[k] = true
	}

	// control log level in logutil, not in logrus
	sl.logger.SetLevel(logrus.DebugLevel)
	sl.logger.Out = os.Stderr
	sl.logger.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true, // `INFO[0007] msg` -> `INFO msg`
	}
	return sl
}

// SetOutput is used by tests to capture log lines.
func (sl *StderrLog) SetOutput(w io.Writer) {
	sl.logger.Out = w
}

// SetJSONFormat makes lines JSON objects for CloudWatch, the log name goes
// to the "logger" field instead of the [name] prefix.
func (sl *StderrLog) SetJSONFormat() {
	sl.json = true
	sl.logger.Formatter = &logrus.JSONFormatter{}
}

func (sl StderrLog) entry(format string, args []interface{}) (*logrus.Entry, string) {
	msg := fmt.Sprintf(format, args...)
	e := logrus.NewEntry(sl.logger)
	if sl.name == "" {
		return e, msg
	}

	if sl.json {
		return e.WithField("logger", sl.name), msg
	}

	return e, fmt.Sprintf("[%s] %s", sl.name, msg)
}

func (sl StderrLog) Fatalf(format string, args ...interface{}) {
	e, msg := sl.entry(format, args)
	e.Error(msg)
	os.Exit(exitCodeFailure)
}

func (sl StderrLog) Errorf(format string, args ...interface{}) {
	if sl.level > LogLevelError {
		return
	}

	e, msg := sl.entry(format, args)
	e.Error(msg)
}

func (sl StderrLog) Warnf(format string, args ...interface{}) {
	if sl.level > LogLevelWarn {
		return
	}

	e, msg := sl.entry(format, args)
	e.Warn(msg)
}

func (sl StderrLog) Infof(format string, args ...interface{}) {
	if sl.level > LogLevelInfo {
		return
	}

	e, msg := sl.entry(format, args)
	e.Info(msg)
}

func (sl StderrLog) Debugf(key string, format string, args ...interface{}) {
	if sl.level > LogLevelDebug || !sl.debugKeys[key] {
		return
	}

	e, msg := sl.entry(format, args)
	e.Debug(msg)
}

func (sl StderrLog) Child(name string) Log {
	prefix := ""
	if sl.name != "" {
		prefix = sl.name + "/"
	}

	child := sl
	child.name = prefix + name

	return &child
}

func (sl *StderrLog) SetLevel(level LogLevel) {
	sl.level = level
}
