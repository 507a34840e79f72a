package endpointutil

import (
	"github.com/courseflow/courseflow-api/internal/shared/apperrors"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
)

type HandlerRegContext struct {
	Log        logutil.Log
	ErrTracker apperrors.Tracker
}
