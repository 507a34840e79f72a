package membershipplatform

import "context"

//go:generate mockgen -package membershipplatform -source platform.go -destination platform_mock.go

// Platform is the membership service holding customer contacts and course enrollments.
type Platform interface {
	Name() string
	SetBaseURL(u string) error

	// CreateContact returns *ContactRejectedError when the platform refuses the contact,
	// e.g. because the email is already registered.
	CreateContact(ctx context.Context, c *NewContact) (*Contact, error)
	// FindContactByEmail returns nil without error when nothing matches.
	FindContactByEmail(ctx context.Context, email string) (*Contact, error)
	// UpdateContactFields merge-patches the custom fields, other contact data is kept.
	UpdateContactFields(ctx context.Context, id ContactID, fields []ContactField) error

	Enroll(ctx context.Context, courseID string, contactID ContactID) error
}
