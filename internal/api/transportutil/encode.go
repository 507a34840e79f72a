package transportutil

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

const jsonContentType = "application/json; charset=UTF-8"

type rejectionResponse struct {
	OK      bool        `json:"ok"`
	Msg     string      `json:"msg"`
	Details interface{} `json:"details,omitempty"`
}

func EncodeJSON(w http.ResponseWriter, code int, v interface{}) error {
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(code)
	return errors.Wrap(json.NewEncoder(w).Encode(v), "failed to encode response")
}

// EncodeRejection writes {ok: false, msg, details}.
func EncodeRejection(w http.ResponseWriter, e *Error) error {
	return EncodeJSON(w, e.HTTPCode, rejectionResponse{
		Msg:     e.Message,
		Details: e.Details,
	})
}

// EncodeError answers failures of the transport layer itself, e.g. undecodable requests.
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	_ = EncodeRejection(w, MakeError(err))
}
