package logutil

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Context is a set of key-value pairs appended to every line of a wrapped log.
type Context map[string]interface{}

func WrapLogWithContext(log Log, lctx Context) Log {
	return contextLog{
		lctx: lctx,
		log:  log,
	}
}

type contextLog struct {
	lctx Context
	log  Log
}

func (cl contextLog) wrapFormat(format string) string {
	keys := make([]string, 0, len(cl.lctx))
	for k := range cl.lctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var pairs []string
	for _, k := range keys {
		// values may contain '%' (emails, raw payloads): escape them for the outer Sprintf
		v := strings.Replace(fmt.Sprintf("%v", cl.lctx[k]), "%", "%%", -1)
		pairs = append(pairs, fmt.Sprintf("%s=%s", color.YellowString(k), v))
	}

	ctx := strings.Join(pairs, " ")
	if ctx != "" {
		ctx = "[" + ctx + "]"
	}
	return fmt.Sprintf("%s %s", format, ctx)
}

func (cl contextLog) Fatalf(format string, args ...interface{}) {
	cl.log.Fatalf(cl.wrapFormat(format), args...)
}

func (cl contextLog) Errorf(format string, args ...interface{}) {
	cl.log.Errorf(cl.wrapFormat(format), args...)
}

func (cl contextLog) Warnf(format string, args ...interface{}) {
	cl.log.Warnf(cl.wrapFormat(format), args...)
}

func (cl contextLog) Infof(format string, args ...interface{}) {
	cl.log.Infof(cl.wrapFormat(format), args...)
}

func (cl contextLog) Debugf(key string, format string, args ...interface{}) {
	cl.log.Debugf(key, cl.wrapFormat(format), args...)
}

func (cl contextLog) Child(name string) Log {
	return WrapLogWithContext(cl.log.Child(name), cl.lctx)
}

func (cl contextLog) SetLevel(level LogLevel) {
	cl.log.SetLevel(level)
}
