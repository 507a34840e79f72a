package checkout

import (
	"strings"

	"github.com/badoux/checkmail"
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
)

// BuyerProfile is derived from a captured payment. Every field is best effort
// and is empty when the provider didn't send it.
type BuyerProfile struct {
	Email       string
	GivenName   string
	Surname     string
	AddressLine string
	City        string
	State       string
	PostalCode  string
	CountryCode string
}

func (p BuyerProfile) FillLogContext(lctx logutil.Context) {
	lctx["email"] = p.Email
	if p.CountryCode != "" {
		lctx["country"] = p.CountryCode
	}
}

// ContactFields always lists every address field, empty ones are sent as null.
func (p BuyerProfile) ContactFields() []membershipplatform.ContactField {
	return []membershipplatform.ContactField{
		membershipplatform.NewContactField(membershipplatform.FieldAddress, p.AddressLine),
		membershipplatform.NewContactField(membershipplatform.FieldCity, p.City),
		membershipplatform.NewContactField(membershipplatform.FieldState, p.State),
		membershipplatform.NewContactField(membershipplatform.FieldPostalCode, p.PostalCode),
		membershipplatform.NewContactField(membershipplatform.FieldCountry, p.CountryCode),
	}
}

func (p BuyerProfile) NewContact() *membershipplatform.NewContact {
	return &membershipplatform.NewContact{
		Email:     p.Email,
		FirstName: p.GivenName,
		LastName:  p.Surname,
		Fields:    p.ContactFields(),
	}
}

// ExtractBuyerProfile never fails: missing or malformed parts of the details
// become empty strings.
func ExtractBuyerProfile(details *paymentgateway.PaymentDetails, emailOverride string) BuyerProfile {
	addr := details.BuyerAddress()

	email := strings.TrimSpace(emailOverride)
	if email == "" {
		email = details.PayerEmail()
	}

	return BuyerProfile{
		Email:       email,
		GivenName:   details.PayerGivenName(),
		Surname:     details.PayerSurname(),
		AddressLine: joinAddressLines(addr.Line1, addr.Line2),
		City:        addr.City,
		State:       addr.State,
		PostalCode:  addr.PostalCode,
		CountryCode: addr.CountryCode,
	}
}

func joinAddressLines(lines ...string) string {
	var parts []string
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}

	return strings.Join(parts, " ")
}

func validateEmailOverride(email string) error {
	if email == "" {
		return nil
	}

	if err := checkmail.ValidateFormat(email); err != nil {
		return NewInvalidEmailError(email)
	}

	return nil
}
