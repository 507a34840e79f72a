package apierrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAsRejectionUnwrapsCause(t *testing.T) {
	err := errors.Wrap(NewBadRequestError("orderID missing"), "capture failed")

	r, ok := AsRejection(err)
	if assert.True(t, ok) {
		assert.Equal(t, "orderID missing", r.GetMessage())
		assert.Nil(t, r.GetDetails())
	}

	_, ok = AsRejection(errors.Wrap(ErrBadRequest, "boom"))
	assert.False(t, ok)
}
