package app

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/pkg/errors"
)

func (a App) runLambda() {
	h := a.GetHTTPHandler()
	awslambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return handleAPIGatewayRequest(ctx, h, req)
	})
}

// handleAPIGatewayRequest serves an API Gateway proxy event with the regular HTTP handler.
func handleAPIGatewayRequest(ctx context.Context, h http.Handler,
	req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return events.APIGatewayProxyResponse{}, errors.Wrap(err, "failed to decode base64 body")
		}
		body = decoded
	}

	u := url.URL{Path: req.Path}
	q := url.Values{}
	for k, v := range req.QueryStringParameters {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	r, err := http.NewRequest(req.HTTPMethod, u.String(), bytes.NewReader(body))
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrap(err, "failed to build http request")
	}
	for k, v := range req.Headers {
		r.Header.Set(k, v)
	}
	r.RemoteAddr = req.RequestContext.Identity.SourceIP

	w := newProxyResponseWriter()
	h.ServeHTTP(w, r.WithContext(ctx))
	return w.response(), nil
}

type proxyResponseWriter struct {
	header http.Header
	body   bytes.Buffer
	code   int
}

func newProxyResponseWriter() *proxyResponseWriter {
	return &proxyResponseWriter{
		header: http.Header{},
	}
}

func (w *proxyResponseWriter) Header() http.Header {
	return w.header
}

func (w *proxyResponseWriter) Write(b []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}
	return w.body.Write(b)
}

func (w *proxyResponseWriter) WriteHeader(code int) {
	if w.code == 0 {
		w.code = code
	}
}

func (w *proxyResponseWriter) response() events.APIGatewayProxyResponse {
	headers := map[string]string{}
	for k, v := range w.header {
		headers[k] = strings.Join(v, ",")
	}

	code := w.code
	if code == 0 {
		code = http.StatusOK
	}

	return events.APIGatewayProxyResponse{
		StatusCode: code,
		Headers:    headers,
		Body:       w.body.String(),
	}
}
