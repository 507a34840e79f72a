package transportutil

import (
	"context"
	"net/http"
	"time"

	"github.com/courseflow/courseflow-api/internal/api/endpointutil"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	httptransport "github.com/go-kit/kit/transport/http"
)

func MakeStoreAnonymousRequestContext(hctx endpointutil.HandlerRegContext) httptransport.RequestFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		// hctx is shared by all requests of the handler, attach r to a copy
		reqHctx := hctx
		reqHctx.ErrTracker = hctx.ErrTracker.WithHTTPRequest(r)
		rc := endpointutil.MakeAnonymousRequestContext(ctx, &reqHctx)
		return endpointutil.StoreRequestContext(ctx, rc)
	}
}

func FinalizeRequest(ctx context.Context, code int, r *http.Request) {
	rc := endpointutil.RequestContext(ctx)
	if rc != nil {
		rc.Logger().Infof("%s %s respond %d for %s", r.Method, r.URL.Path, code, time.Since(rc.RequestStartedAt()))
	} else {
		logger := logutil.NewStderrLog("finalize request")
		logger.Infof("%s %s respond %d with no request context", r.Method, r.URL.Path, code)
	}
}
