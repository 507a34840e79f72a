package transportutil

import (
	"net/http"

	"github.com/courseflow/courseflow-api/internal/api/apierrors"
	"github.com/pkg/errors"
)

type Error struct {
	HTTPCode int
	Message  string
	Details  interface{}
}

func (e Error) Error() string {
	return e.Message
}

func makeError(code int, e error) *Error {
	return &Error{
		HTTPCode: code,
		Message:  e.Error(),
	}
}

// MakeError maps an endpoint error to its HTTP answer. Only rejections and bad
// requests keep their message, everything else becomes a generic internal error.
func MakeError(e error) *Error {
	if r, ok := apierrors.AsRejection(e); ok {
		return &Error{
			HTTPCode: http.StatusBadRequest,
			Message:  r.GetMessage(),
			Details:  r.GetDetails(),
		}
	}

	if srcErr := errors.Cause(e); srcErr == apierrors.ErrBadRequest {
		return makeError(http.StatusBadRequest, srcErr)
	}

	return makeError(http.StatusInternalServerError, errors.New("internal error"))
}

func (e Error) IsInternal() bool {
	return e.HTTPCode >= http.StatusInternalServerError
}
