package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/courseflow/courseflow-api/internal/api/checkout"
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms"
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/api/settings"
	"github.com/courseflow/courseflow-api/internal/shared/config"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// enrollcontact enrolls an existing contact into the courses of a paid amount.
// It's used to finish orders which were captured but failed on enrollment.
func main() {
	email := flag.String("email", "", "contact email")
	amount := flag.String("amount", "", "captured amount, e.g. 24.00")
	flag.Parse()
	if *email == "" || *amount == "" {
		log.Fatal("Set --email and --amount flags")
	}

	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Can't load .env: %s", err)
	}

	if err := printEnrollment(*email, *amount); err != nil {
		log.Fatal(err)
	}
}

type enrollmentResult struct {
	ContactID membershipplatform.ContactID `json:"contactId"`
	Amount    string                       `json:"amount"`
	Courses   []string                     `json:"courses"`
	Warning   string                       `json:"warning,omitempty"`
}

func enroll(ctx context.Context, slog logutil.Log, email, amount string) (*enrollmentResult, error) {
	cfg := config.NewEnvConfig(slog)
	s, err := settings.Load(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	platform, err := membershipplatforms.NewBasicFactory(slog, s).Build(s.MembershipPlatform)
	if err != nil {
		return nil, errors.Wrap(err, "can't build membership platform")
	}

	contact, err := platform.FindContactByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrapf(err, "can't find contact %s", email)
	}
	if contact == nil {
		return nil, errors.Errorf("no contact with email %s", email)
	}

	paid, ok := checkout.NormalizeAmount(amount)
	if !ok {
		return nil, errors.Errorf("invalid amount %q", amount)
	}

	plan := checkout.NewEnrollmentPlan(s.Systeme.StarterCourseID, s.Systeme.MiniCourseID)
	outcome, err := checkout.NewEnroller(platform, plan).Enroll(ctx, slog, contact.ID, paid)
	if err != nil {
		return nil, err
	}

	return &enrollmentResult{
		ContactID: contact.ID,
		Amount:    paid,
		Courses:   outcome.Courses,
		Warning:   outcome.Warning,
	}, nil
}

func printEnrollment(email, amount string) error {
	slog := logutil.NewStderrLog("enrollcontact")

	var ret interface{}
	res, err := enroll(context.Background(), slog, email, amount)
	if err != nil {
		ret = struct {
			Error string `json:"error"`
		}{
			Error: err.Error(),
		}
	} else {
		ret = res
	}

	if err = json.NewEncoder(os.Stdout).Encode(ret); err != nil {
		return errors.Wrap(err, "can't json marshal")
	}

	return nil
}
