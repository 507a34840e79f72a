package membershipplatform

import "fmt"

type ContactRejectedError struct {
	StatusCode int
	Body       string
}

func (e ContactRejectedError) Error() string {
	return fmt.Sprintf("contact creation rejected: %d %s", e.StatusCode, e.Body)
}

// ContactNotFoundError means creation was refused but no contact with the email exists.
type ContactNotFoundError struct {
	Email string
}

func (e ContactNotFoundError) Error() string {
	return fmt.Sprintf("contact %q not found after rejected creation", e.Email)
}

// ContactUpsertError means both the creation and the lookup fallback failed.
type ContactUpsertError struct {
	Email      string
	StatusCode int
	Body       string
}

func (e ContactUpsertError) Error() string {
	return fmt.Sprintf("contact %q upsert failed: lookup answered %d %s", e.Email, e.StatusCode, e.Body)
}

type ContactUpdateError struct {
	ContactID  ContactID
	StatusCode int
	Body       string
}

func (e ContactUpdateError) Error() string {
	return fmt.Sprintf("contact %s fields update failed: %d %s", e.ContactID, e.StatusCode, e.Body)
}

type EnrollmentError struct {
	CourseID   string
	ContactID  ContactID
	StatusCode int
	Body       string
}

func (e EnrollmentError) Error() string {
	return fmt.Sprintf("enrollment of contact %s into course %s failed: %d %s",
		e.ContactID, e.CourseID, e.StatusCode, e.Body)
}
