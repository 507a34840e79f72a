package checkout

import (
	"context"

	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/pkg/errors"
)

const UnexpectedAmountWarning = "unexpected amount"

// EnrollmentPlan maps a two-decimal amount to the ordered courses it pays for.
type EnrollmentPlan struct {
	tiers map[string][]string
}

func NewEnrollmentPlan(starterCourseID, miniCourseID string) EnrollmentPlan {
	return EnrollmentPlan{
		tiers: map[string][]string{
			paymentgateway.AmountStarter: {starterCourseID},
			paymentgateway.AmountBundle:  {starterCourseID, miniCourseID},
		},
	}
}

// Courses matches the amount exactly, callers normalize it first.
func (p EnrollmentPlan) Courses(amount string) ([]string, bool) {
	courses, ok := p.tiers[amount]
	if !ok {
		return nil, false
	}

	return append([]string(nil), courses...), true
}

type Outcome struct {
	Courses []string
	Warning string
}

type Enroller struct {
	platform membershipplatform.Platform
	plan     EnrollmentPlan
}

func NewEnroller(platform membershipplatform.Platform, plan EnrollmentPlan) *Enroller {
	return &Enroller{
		platform: platform,
		plan:     plan,
	}
}

// Enroll stops at the first failed enrollment, earlier enrollments are kept.
// An amount without a tier makes no call and returns a warning outcome.
func (e Enroller) Enroll(ctx context.Context, log logutil.Log,
	contactID membershipplatform.ContactID, amount string) (*Outcome, error) {

	courses, ok := e.plan.Courses(amount)
	if !ok {
		return &Outcome{Warning: UnexpectedAmountWarning}, nil
	}

	for _, courseID := range courses {
		if err := e.platform.Enroll(ctx, courseID, contactID); err != nil {
			return nil, errors.Wrapf(err, "failed to enroll into course %s", courseID)
		}
		log.Infof("Enrolled contact %s into course %s", contactID, courseID)
	}

	return &Outcome{Courses: courses}, nil
}
