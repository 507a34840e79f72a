package test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/courseflow/courseflow-api/internal/api/events"
	"github.com/courseflow/courseflow-api/test/sharedtest"
	"github.com/stretchr/testify/assert"
)

func uniqueOrder(t *testing.T) (orderID, email string) {
	n := time.Now().UnixNano()
	return fmt.Sprintf("ORDER-%d", n), fmt.Sprintf("buyer-%d@example.com", n)
}

func eventsFor(ta *sharedtest.App, email string) []string {
	var ret []string
	for _, e := range ta.Analytics.Events() {
		if e.UserID == email {
			ret = append(ret, e.Name)
		}
	}
	return ret
}

func TestCaptureStarterEnrollsIntoStarterCourse(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	orderID, email := uniqueOrder(t)
	ta.PayPal.SetCapture(orderID, http.StatusCreated, sharedtest.CompletedCapture(orderID, email, "19.00"))

	resp := ta.NewHTTPExpect(t).POST("/capture-paypal-order").
		WithJSON(map[string]string{"orderID": orderID}).
		Expect().
		Status(http.StatusOK).
		JSON().Object()

	contactID := ta.Systeme.ContactID(email)
	assert.NotEmpty(t, contactID)

	resp.ValueEqual("ok", true)
	resp.ValueEqual("status", "COMPLETED")
	resp.ValueEqual("amount", "19.00")
	resp.Value("contactId").Number().Equal(mustAtoi(t, contactID))
	resp.NotContainsKey("warning")

	assert.Equal(t, 1, ta.Systeme.CreateCalls(email))
	assert.Equal(t, []string{ta.Settings.Systeme.StarterCourseID}, ta.Systeme.Enrollments(contactID))
	assert.Equal(t, []string{events.EventPaymentCaptured}, eventsFor(ta, email))
}

func TestCaptureBundleEnrollsIntoBothCoursesInOrder(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	orderID, email := uniqueOrder(t)
	ta.PayPal.SetCapture(orderID, http.StatusCreated, sharedtest.CompletedCapture(orderID, email, "24.00"))

	ta.NewHTTPExpect(t).POST("/capture-paypal-order").
		WithJSON(map[string]string{"orderID": orderID, "expectedAmount": "24"}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		ValueEqual("amount", "24.00")

	contactID := ta.Systeme.ContactID(email)
	assert.Equal(t, []string{
		ta.Settings.Systeme.StarterCourseID,
		ta.Settings.Systeme.MiniCourseID,
	}, ta.Systeme.Enrollments(contactID))
}

func TestCaptureUnexpectedAmountReturnsWarning(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	orderID, email := uniqueOrder(t)
	ta.PayPal.SetCapture(orderID, http.StatusCreated, sharedtest.CompletedCapture(orderID, email, "5.00"))

	ta.NewHTTPExpect(t).POST("/capture-paypal-order").
		WithJSON(map[string]string{"orderID": orderID}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		ValueEqual("ok", true).
		ValueEqual("amount", "5.00").
		ValueEqual("warning", "unexpected amount")

	contactID := ta.Systeme.ContactID(email)
	assert.NotEmpty(t, contactID)
	assert.Empty(t, ta.Systeme.Enrollments(contactID))
	assert.Equal(t, []string{events.EventUnexpectedAmount, events.EventPaymentCaptured}, eventsFor(ta, email))
}

func TestCaptureExistingContactIsPatched(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	orderID, email := uniqueOrder(t)
	existingID := ta.Systeme.AddContact(email)
	ta.PayPal.SetCapture(orderID, http.StatusCreated, sharedtest.CompletedCapture(orderID, email, "19.00"))

	ta.NewHTTPExpect(t).POST("/capture-paypal-order").
		WithJSON(map[string]string{"orderID": orderID}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("contactId").Number().Equal(mustAtoi(t, existingID))

	assert.Equal(t, 1, ta.Systeme.CreateCalls(email))
	assert.Equal(t, 1, ta.Systeme.PatchCalls(existingID))
	assert.Equal(t, []string{ta.Settings.Systeme.StarterCourseID}, ta.Systeme.Enrollments(existingID))
}

func TestCaptureEmailOverrideWins(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	orderID, payerEmail := uniqueOrder(t)
	override := "override-" + payerEmail
	ta.PayPal.SetCapture(orderID, http.StatusCreated, sharedtest.CompletedCapture(orderID, payerEmail, "19.00"))

	ta.NewHTTPExpect(t).POST("/capture-paypal-order").
		WithJSON(map[string]string{"orderID": orderID, "email": override}).
		Expect().
		Status(http.StatusOK)

	assert.Equal(t, 1, ta.Systeme.CreateCalls(override))
	assert.Zero(t, ta.Systeme.CreateCalls(payerEmail))
}

func TestCaptureWithoutOrderIDIsRejected(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	tokenCalls := ta.PayPal.TokenCalls()
	captureCalls := ta.PayPal.TotalCaptureCalls()

	ta.NewHTTPExpect(t).POST("/capture-paypal-order").
		WithJSON(map[string]string{}).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().
		ValueEqual("ok", false).
		ValueEqual("msg", "orderID missing")

	assert.Equal(t, tokenCalls, ta.PayPal.TokenCalls())
	assert.Equal(t, captureCalls, ta.PayPal.TotalCaptureCalls())
}

func TestCaptureWithInvalidEmailIsRejectedBeforeCapture(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	orderID, _ := uniqueOrder(t)

	ta.NewHTTPExpect(t).POST("/capture-paypal-order").
		WithJSON(map[string]string{"orderID": orderID, "email": "not-an-email"}).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().
		ValueEqual("msg", "invalid email")

	assert.Zero(t, ta.PayPal.CaptureCalls(orderID))
}

func TestCaptureRejectedByPayPalSkipsMembership(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	orderID, email := uniqueOrder(t)
	ta.PayPal.SetCapture(orderID, http.StatusUnprocessableEntity, map[string]interface{}{
		"name":    "UNPROCESSABLE_ENTITY",
		"details": []map[string]string{{"issue": "ORDER_ALREADY_CAPTURED"}},
	})

	resp := ta.NewHTTPExpect(t).POST("/capture-paypal-order").
		WithJSON(map[string]string{"orderID": orderID}).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object()

	resp.ValueEqual("ok", false)
	resp.ValueEqual("msg", "not completed")
	resp.Value("details").Object().ValueEqual("name", "UNPROCESSABLE_ENTITY")

	assert.Zero(t, ta.Systeme.CreateCalls(email))
	assert.Empty(t, eventsFor(ta, email))
}

func TestCaptureAmountMismatchIsRejected(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	orderID, email := uniqueOrder(t)
	ta.PayPal.SetCapture(orderID, http.StatusCreated, sharedtest.CompletedCapture(orderID, email, "19.00"))

	ta.NewHTTPExpect(t).POST("/capture-paypal-order").
		WithJSON(map[string]string{"orderID": orderID, "expectedAmount": "24.00"}).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().
		ValueEqual("ok", false).
		ValueEqual("msg", "amount mismatch").
		Value("details").Object().
		ValueEqual("paid", "19.00").
		ValueEqual("expectedAmount", "24.00")

	assert.Zero(t, ta.Systeme.CreateCalls(email))
}

func TestCaptureEnrollmentFailureIsInternalError(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	orderID, email := uniqueOrder(t)
	mini := ta.Settings.Systeme.MiniCourseID
	ta.Systeme.FailEnrollments(mini, true)
	defer ta.Systeme.FailEnrollments(mini, false)
	ta.PayPal.SetCapture(orderID, http.StatusCreated, sharedtest.CompletedCapture(orderID, email, "24.00"))

	ta.NewHTTPExpect(t).POST("/capture-paypal-order").
		WithJSON(map[string]string{"orderID": orderID}).
		Expect().
		Status(http.StatusInternalServerError).
		JSON().Object().
		ValueEqual("ok", false).
		ValueEqual("error", "capture/enroll failed")

	contactID := ta.Systeme.ContactID(email)
	assert.Equal(t, []string{ta.Settings.Systeme.StarterCourseID}, ta.Systeme.Enrollments(contactID))
}
