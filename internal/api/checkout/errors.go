package checkout

import (
	"fmt"

	"github.com/courseflow/courseflow-api/internal/api/apierrors"
)

const msgMissingOrderID = "orderID missing"

func NewMissingOrderIDError() *apierrors.BadRequestError {
	return apierrors.NewBadRequestError(msgMissingOrderID)
}

type InvalidEmailError struct {
	Email string
}

func NewInvalidEmailError(email string) *InvalidEmailError {
	return &InvalidEmailError{Email: email}
}

func (e InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email %q", e.Email)
}

func (e InvalidEmailError) GetMessage() string {
	return "invalid email"
}

func (e InvalidEmailError) GetDetails() interface{} {
	return nil
}

type AmountMismatchDetails struct {
	Paid           string `json:"paid"`
	ExpectedAmount string `json:"expectedAmount"`
}

// AmountMismatchError is returned when the provider reported another amount than the caller expected.
type AmountMismatchError struct {
	Paid     string
	Expected string
}

func (e AmountMismatchError) Error() string {
	return fmt.Sprintf("amount mismatch: paid %q, expected %q", e.Paid, e.Expected)
}

func (e AmountMismatchError) GetMessage() string {
	return "amount mismatch"
}

func (e AmountMismatchError) GetDetails() interface{} {
	return AmountMismatchDetails{
		Paid:           e.Paid,
		ExpectedAmount: e.Expected,
	}
}

// StageError is a failed run: Stage is the last stage the run reached.
type StageError struct {
	Stage Stage
	Err   error
}

func (e StageError) Error() string {
	return fmt.Sprintf("failed after stage %s: %s", e.Stage, e.Err)
}

func (e StageError) Cause() error {
	return e.Err
}
