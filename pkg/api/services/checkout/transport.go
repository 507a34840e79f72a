package checkout

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/courseflow/courseflow-api/internal/api/checkout"
	"github.com/courseflow/courseflow-api/internal/api/endpointutil"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
	"github.com/courseflow/courseflow-api/internal/api/transportutil"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/courseflow/courseflow-api/pkg/api/request"
	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/pkg/errors"
)

const (
	captureFailedMessage     = "capture/enroll failed"
	createOrderFailedMessage = "create order failed"
)

type errorResponse struct {
	OK    *bool  `json:"ok,omitempty"`
	Error string `json:"error"`
}

func RegisterHandlers(svc Service, regCtx *transportutil.HandlerRegContext) {
	hctx := endpointutil.HandlerRegContext{
		Log:        regCtx.Log,
		ErrTracker: regCtx.ErrTracker,
	}

	makeServer := func(e endpoint.Endpoint, dec httptransport.DecodeRequestFunc,
		enc httptransport.EncodeResponseFunc) *httptransport.Server {

		return httptransport.NewServer(
			e,
			dec,
			enc,
			httptransport.ServerBefore(transportutil.MakeStoreAnonymousRequestContext(hctx)),
			httptransport.ServerFinalizer(transportutil.FinalizeRequest),
			httptransport.ServerErrorEncoder(transportutil.EncodeError),
			httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(regCtx.Log)),
		)
	}

	regCtx.Router.Methods("POST").Path("/capture-paypal-order").
		Handler(makeServer(makeCaptureEndpoint(svc, regCtx.Log), decodeCaptureRequest, encodeCaptureResponse))
	regCtx.Router.Methods("POST").Path("/create-paypal-order").
		Handler(makeServer(makeCreateOrderEndpoint(svc, regCtx.Log), decodeCreateOrderRequest, encodeCreateOrderResponse))
	regCtx.Router.Methods("GET").Path("/health").
		Handler(makeServer(makeHealthEndpoint(svc, regCtx.Log), decodeHealthRequest, encodeHealthResponse))
}

func anonymousContext(ctx context.Context, payload request.LogContextFiller) (*request.AnonymousContext, error) {
	rc, ok := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
	if !ok {
		return nil, errors.New("no request context")
	}

	if payload != nil {
		payload.FillLogContext(rc.Lctx)
	}
	return rc, nil
}

// capture

type CaptureRequest struct {
	Req *checkout.CaptureRequest
}

type CaptureResponse struct {
	Err    error
	Result *checkout.CaptureResult
}

func makeCaptureEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (resp interface{}, err error) {
		creq := req.(CaptureRequest)
		reqLogger := log
		defer func() {
			if rerr := recover(); rerr != nil {
				reqLogger.Errorf("Panic occured: %s, %s", rerr, debug.Stack())
				resp = CaptureResponse{Err: errors.New("panic occured")}
				err = nil
			}
		}()

		rc, err := anonymousContext(ctx, creq.Req)
		if err != nil {
			log.Warnf("Error occurred during endpoint initialization: %s", err)
			return CaptureResponse{Err: err}, nil
		}
		reqLogger = rc.Log

		res, err := svc.Capture(rc, creq.Req)
		if err != nil {
			logServiceError(rc.Log, "checkout.Service.Capture", err)
			return CaptureResponse{Err: err}, nil
		}

		return CaptureResponse{Result: res}, nil
	}
}

func decodeCaptureRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req CaptureRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(err, "can't decode request")
	}

	return req, nil
}

func encodeCaptureResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(CaptureResponse)
	if resp.Err != nil {
		e := transportutil.MakeError(resp.Err)
		if e.IsInternal() {
			ok := false
			return transportutil.EncodeJSON(w, e.HTTPCode, errorResponse{OK: &ok, Error: captureFailedMessage})
		}

		return transportutil.EncodeRejection(w, e)
	}

	return transportutil.EncodeJSON(w, http.StatusOK, resp.Result)
}

// create order

type CreateOrderRequest struct {
	Req *checkout.CreateOrderRequest
}

type CreateOrderResponse struct {
	Err   error
	Order *CreatedOrder
}

func makeCreateOrderEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (resp interface{}, err error) {
		creq := req.(CreateOrderRequest)
		reqLogger := log
		defer func() {
			if rerr := recover(); rerr != nil {
				reqLogger.Errorf("Panic occured: %s, %s", rerr, debug.Stack())
				resp = CreateOrderResponse{Err: errors.New("panic occured")}
				err = nil
			}
		}()

		rc, err := anonymousContext(ctx, creq.Req)
		if err != nil {
			log.Warnf("Error occurred during endpoint initialization: %s", err)
			return CreateOrderResponse{Err: err}, nil
		}
		reqLogger = rc.Log

		order, err := svc.CreateOrder(rc, creq.Req)
		if err != nil {
			if _, rejected := errors.Cause(err).(*paymentgateway.OrderRejectedError); rejected {
				rc.Log.Infof("checkout.Service.CreateOrder rejected: %s", err)
			} else {
				rc.Log.Errorf("checkout.Service.CreateOrder failed: %s", err)
			}
			return CreateOrderResponse{Err: err}, nil
		}

		return CreateOrderResponse{Order: order}, nil
	}
}

func decodeCreateOrderRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req CreateOrderRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(err, "can't decode request")
	}

	return req, nil
}

// encodeCreateOrderResponse passes the provider answer of a rejected order creation through.
func encodeCreateOrderResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(CreateOrderResponse)
	if resp.Err != nil {
		if rejected, ok := errors.Cause(resp.Err).(*paymentgateway.OrderRejectedError); ok && len(rejected.Body) != 0 {
			return transportutil.EncodeJSON(w, http.StatusBadRequest, rejected.Body)
		}

		return transportutil.EncodeJSON(w, http.StatusInternalServerError, errorResponse{Error: createOrderFailedMessage})
	}

	return transportutil.EncodeJSON(w, http.StatusOK, resp.Order)
}

// health

type HealthResponse struct {
	Err    error
	Health *Health
}

func makeHealthEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		rc, err := anonymousContext(ctx, nil)
		if err != nil {
			log.Warnf("Error occurred during endpoint initialization: %s", err)
			return HealthResponse{Err: err}, nil
		}

		h, err := svc.Health(rc)
		return HealthResponse{Err: err, Health: h}, nil
	}
}

func decodeHealthRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

func encodeHealthResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(HealthResponse)
	if resp.Err != nil {
		return transportutil.EncodeRejection(w, transportutil.MakeError(resp.Err))
	}

	return transportutil.EncodeJSON(w, http.StatusOK, resp.Health)
}

func logServiceError(log logutil.Log, method string, err error) {
	if transportutil.MakeError(err).IsInternal() {
		log.Errorf("%s failed: %s", method, err)
		return
	}

	log.Infof("%s rejected: %s", method, err)
}
