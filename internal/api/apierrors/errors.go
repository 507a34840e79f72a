package apierrors

import (
	"github.com/pkg/errors"
)

// ErrBadRequest marks requests that can't be decoded.
var ErrBadRequest = errors.New("bad request")

type LocalizedError interface {
	GetMessage() string
}

// Rejection is a failure caused by the caller input or by a state reported by a
// remote provider. It's answered with 400 and its message and details are shown
// to the caller as is.
type Rejection interface {
	LocalizedError
	GetDetails() interface{}
}

func AsRejection(err error) (Rejection, bool) {
	r, ok := errors.Cause(err).(Rejection)
	return r, ok
}

// BadRequestError is a rejection without details.
type BadRequestError struct {
	message string
}

func NewBadRequestError(m string) *BadRequestError {
	return &BadRequestError{message: m}
}

func (e BadRequestError) Error() string {
	return "bad request: " + e.message
}

func (e BadRequestError) GetMessage() string {
	return e.message
}

func (e BadRequestError) GetDetails() interface{} {
	return nil
}
