package paymentgateway

import "context"

//go:generate mockgen -package paymentgateway -source gateway.go -destination gateway_mock.go

// Gateway is a payment provider able to confirm previously created orders.
// Tokens returned by AccessToken are short-lived and must not be shared between runs.
type Gateway interface {
	Name() string
	SetBaseURL(u string) error

	AccessToken(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, token string, req OrderRequest) (*Order, error)

	// CaptureOrder returns the provider details even when the capture was rejected,
	// so the caller can pass them on.
	CaptureOrder(ctx context.Context, token, orderID string) (details *PaymentDetails, completed bool, err error)
}
