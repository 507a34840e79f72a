package checkout

import (
	"context"

	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/pkg/errors"
)

// ContactProvisioner creates a contact or, when the platform refuses the creation,
// refreshes the address fields of the existing contact with the same email.
type ContactProvisioner struct {
	platform membershipplatform.Platform
}

func NewContactProvisioner(platform membershipplatform.Platform) *ContactProvisioner {
	return &ContactProvisioner{
		platform: platform,
	}
}

func (p ContactProvisioner) Upsert(ctx context.Context, log logutil.Log,
	profile BuyerProfile) (*membershipplatform.Contact, error) {

	contact, err := p.platform.CreateContact(ctx, profile.NewContact())
	if err == nil {
		log.Infof("Created contact %s", contact.ID)
		return contact, nil
	}

	// a transport failure gives no answer: the contact may exist now, don't guess
	if _, rejected := errors.Cause(err).(*membershipplatform.ContactRejectedError); !rejected {
		return nil, errors.Wrap(err, "failed to create contact")
	}

	log.Infof("Contact creation was rejected (%s), looking up existing contact", err)
	return p.updateExisting(ctx, log, profile)
}

func (p ContactProvisioner) updateExisting(ctx context.Context, log logutil.Log,
	profile BuyerProfile) (*membershipplatform.Contact, error) {

	contact, err := p.platform.FindContactByEmail(ctx, profile.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find contact by email")
	}
	if contact == nil {
		return nil, &membershipplatform.ContactNotFoundError{Email: profile.Email}
	}

	if err := p.platform.UpdateContactFields(ctx, contact.ID, profile.ContactFields()); err != nil {
		log.Warnf("Failed to update fields of contact %s: %s", contact.ID, err)
		return contact, nil
	}

	log.Infof("Updated fields of existing contact %s", contact.ID)
	return contact, nil
}
