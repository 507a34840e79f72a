package transportutil

import (
	"net/http"
	"testing"

	"github.com/courseflow/courseflow-api/internal/api/apierrors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type testRejection struct{}

func (testRejection) Error() string           { return "payment not completed: status PENDING" }
func (testRejection) GetMessage() string      { return "not completed" }
func (testRejection) GetDetails() interface{} { return map[string]string{"status": "PENDING"} }

func TestMakeError(t *testing.T) {
	e := MakeError(errors.Wrap(testRejection{}, "capture failed"))
	assert.Equal(t, http.StatusBadRequest, e.HTTPCode)
	assert.Equal(t, "not completed", e.Message)
	assert.Equal(t, map[string]string{"status": "PENDING"}, e.Details)
	assert.False(t, e.IsInternal())

	e = MakeError(errors.Wrap(apierrors.ErrBadRequest, "invalid payload json"))
	assert.Equal(t, http.StatusBadRequest, e.HTTPCode)

	e = MakeError(errors.New("token endpoint answered 401 with client secret xyz"))
	assert.Equal(t, http.StatusInternalServerError, e.HTTPCode)
	assert.Equal(t, "internal error", e.Message)
	assert.True(t, e.IsInternal())
}
