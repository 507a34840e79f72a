package paymentgateway

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

var ErrNoOrderID = errors.New("no order id")

// AuthError is returned when the provider rejects the client credentials.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e AuthError) Error() string {
	return fmt.Sprintf("access token request rejected: %d %s", e.StatusCode, e.Body)
}

// CaptureRejectedError is returned for a non-success HTTP status on capture.
type CaptureRejectedError struct {
	StatusCode int
	Details    *PaymentDetails
}

func (e CaptureRejectedError) Error() string {
	return fmt.Sprintf("capture rejected: %d %s", e.StatusCode, e.Details.Raw())
}

func (e CaptureRejectedError) GetMessage() string {
	return "not completed"
}

func (e CaptureRejectedError) GetDetails() interface{} {
	return e.Details
}

// PaymentNotCompletedError is returned when the capture succeeded at the HTTP level
// but neither status reports completion.
type PaymentNotCompletedError struct {
	Details *PaymentDetails
}

func (e PaymentNotCompletedError) Error() string {
	return fmt.Sprintf("payment not completed: status %q, capture status %q",
		e.Details.Status(), e.Details.CaptureStatus())
}

func (e PaymentNotCompletedError) GetMessage() string {
	return "not completed"
}

func (e PaymentNotCompletedError) GetDetails() interface{} {
	return e.Details
}

// OrderRejectedError carries the provider answer to a rejected order creation.
type OrderRejectedError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e OrderRejectedError) Error() string {
	return fmt.Sprintf("order creation rejected: %d %s", e.StatusCode, e.Body)
}
