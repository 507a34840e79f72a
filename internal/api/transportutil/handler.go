package transportutil

import (
	"github.com/courseflow/courseflow-api/internal/shared/apperrors"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/gorilla/mux"
)

type HandlerRegContext struct {
	Router     *mux.Router
	Log        logutil.Log
	ErrTracker apperrors.Tracker
}
