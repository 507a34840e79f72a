package checkout

import (
	"context"
	"strings"

	"github.com/courseflow/courseflow-api/internal/api/events"
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
)

type Stage string

const (
	StageReceived        Stage = "received"
	StageAuthenticated   Stage = "authenticated"
	StageCaptured        Stage = "captured"
	StageAmountVerified  Stage = "amount_verified"
	StageContactUpserted Stage = "contact_upserted"
	StageEnrolled        Stage = "enrolled"
	StageDone            Stage = "done"
)

type CaptureRequest struct {
	OrderID        string `json:"orderID"`
	ExpectedAmount string `json:"expectedAmount,omitempty"`
	Email          string `json:"email,omitempty"`
}

func (r CaptureRequest) FillLogContext(lctx logutil.Context) {
	lctx["order_id"] = r.OrderID
	if r.ExpectedAmount != "" {
		lctx["expected_amount"] = r.ExpectedAmount
	}
}

type CaptureResult struct {
	OK        bool                         `json:"ok"`
	Status    string                       `json:"status"`
	ContactID membershipplatform.ContactID `json:"contactId"`
	Amount    string                       `json:"amount"`
	Warning   string                       `json:"warning,omitempty"`
}

// Capturer runs the capture workflow: confirm the payment, check the amount,
// upsert the buyer contact and enroll it into the paid courses. Runs share nothing.
type Capturer struct {
	gateway     paymentgateway.Gateway
	provisioner *ContactProvisioner
	enroller    *Enroller
	analytics   events.Tracker
}

func NewCapturer(gateway paymentgateway.Gateway, platform membershipplatform.Platform,
	plan EnrollmentPlan, analytics events.Tracker) *Capturer {

	if analytics == nil {
		analytics = events.NopTracker{}
	}

	return &Capturer{
		gateway:     gateway,
		provisioner: NewContactProvisioner(platform),
		enroller:    NewEnroller(platform, plan),
		analytics:   analytics,
	}
}

type run struct {
	stage Stage
	log   logutil.Log
}

func (r *run) advance(s Stage) {
	r.stage = s
	r.log.Debugf("checkout", "Stage %s", s)
}

func (r *run) fail(err error) error {
	return &StageError{Stage: r.stage, Err: err}
}

func (c Capturer) Capture(ctx context.Context, log logutil.Log, req *CaptureRequest) (*CaptureResult, error) {
	r := &run{stage: StageReceived, log: log}

	orderID := strings.TrimSpace(req.OrderID)
	if orderID == "" {
		return nil, r.fail(NewMissingOrderIDError())
	}
	if err := validateEmailOverride(strings.TrimSpace(req.Email)); err != nil {
		return nil, r.fail(err)
	}

	token, err := c.gateway.AccessToken(ctx)
	if err != nil {
		return nil, r.fail(err)
	}
	r.advance(StageAuthenticated)

	details, completed, err := c.gateway.CaptureOrder(ctx, token, orderID)
	if err != nil {
		return nil, r.fail(err)
	}
	if !completed {
		return nil, r.fail(&paymentgateway.PaymentNotCompletedError{Details: details})
	}
	r.advance(StageCaptured)

	paid := PaidAmount(details, req.ExpectedAmount)
	if strings.TrimSpace(req.ExpectedAmount) != "" && !amountsMatch(paid, req.ExpectedAmount) {
		return nil, r.fail(&AmountMismatchError{Paid: paid, Expected: req.ExpectedAmount})
	}
	r.advance(StageAmountVerified)

	profile := ExtractBuyerProfile(details, req.Email)
	contact, err := c.provisioner.Upsert(ctx, log, profile)
	if err != nil {
		return nil, r.fail(err)
	}
	r.advance(StageContactUpserted)

	outcome, err := c.enroller.Enroll(ctx, log, contact.ID, paid)
	if err != nil {
		return nil, r.fail(err)
	}
	r.advance(StageEnrolled)

	eventProps := map[string]interface{}{
		"orderId":   orderID,
		"amount":    paid,
		"contactId": contact.ID.String(),
		"gateway":   c.gateway.Name(),
	}
	if outcome.Warning != "" {
		log.Warnf("Unexpected amount %s for order %s: no course enrollment was made", paid, orderID)
		c.analytics.Track(ctx, profile.Email, events.EventUnexpectedAmount, eventProps)
	}
	c.analytics.Track(ctx, profile.Email, events.EventPaymentCaptured, eventProps)

	r.advance(StageDone)
	return &CaptureResult{
		OK:        true,
		Status:    paymentgateway.StatusCompleted,
		ContactID: contact.ID,
		Amount:    paid,
		Warning:   outcome.Warning,
	}, nil
}
