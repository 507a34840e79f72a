package endpointutil

import (
	"context"
	"time"

	"github.com/courseflow/courseflow-api/internal/shared/apperrors"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/courseflow/courseflow-api/pkg/api/request"
	uuid "github.com/satori/go.uuid"
)

type contextKey string

const (
	contextKeyRequestContext contextKey = "endpoint/requestContext"
)

func RequestContext(ctx context.Context) request.Context {
	rc := ctx.Value(contextKeyRequestContext)
	if rc == nil {
		return nil
	}
	return rc.(request.Context)
}

func StoreRequestContext(ctx context.Context, rc request.Context) context.Context {
	return context.WithValue(ctx, contextKeyRequestContext, rc)
}

// MakeAnonymousRequestContext builds a per-request log: every line carries the
// request id and Errorf/Warnf lines are reported to the error tracker.
func MakeAnonymousRequestContext(ctx context.Context, hctx *HandlerRegContext) *request.AnonymousContext {
	lctx := logutil.Context{
		"request_id": uuid.NewV4().String(),
	}
	log := hctx.Log
	log = logutil.WrapLogWithContext(log, lctx)
	log = apperrors.WrapLogWithTracker(log, lctx, hctx.ErrTracker)

	return &request.AnonymousContext{
		BaseContext: request.BaseContext{
			Ctx:       ctx,
			Log:       log,
			Lctx:      lctx,
			StartedAt: time.Now(),
		},
	}
}
