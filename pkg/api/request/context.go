package request

import (
	"context"
	"time"

	"github.com/courseflow/courseflow-api/internal/shared/logutil"
)

type Context interface {
	RequestStartedAt() time.Time
	Logger() logutil.Log
}

type BaseContext struct {
	Ctx  context.Context
	Log  logutil.Log
	Lctx logutil.Context

	StartedAt time.Time
}

func (ctx BaseContext) RequestStartedAt() time.Time {
	return ctx.StartedAt
}

func (ctx BaseContext) Logger() logutil.Log {
	return ctx.Log
}

// AnonymousContext is the context of a storefront call: checkout endpoints have no users.
type AnonymousContext struct {
	BaseContext
}

// LogContextFiller is implemented by request payloads to tag every log line of the request.
type LogContextFiller interface {
	FillLogContext(lctx logutil.Context)
}
