package paymentgateway

import (
	"encoding/json"
	"fmt"

	"github.com/yalp/jsonpath"
)

const (
	StatusCompleted = "COMPLETED"

	CurrencyEUR = "EUR"

	AmountStarter = "19.00"
	AmountBundle  = "24.00"

	ReferenceStarterOnly = "STARTER-ONLY"
	ReferenceBundle      = "STARTER+MINI-BUNDLE"
)

type OrderRequest struct {
	Amount  string
	HasBump bool
}

func (r OrderRequest) Total() string {
	if r.Amount != "" {
		return r.Amount
	}

	if r.HasBump {
		return AmountBundle
	}

	return AmountStarter
}

func (r OrderRequest) ReferenceID() string {
	if r.HasBump {
		return ReferenceBundle
	}

	return ReferenceStarterOnly
}

type Order struct {
	ID string
}

type Address struct {
	Line1       string
	Line2       string
	City        string
	State       string
	PostalCode  string
	CountryCode string
}

var (
	statusFilter             = mustPrepare("$.status")
	captureStatusFilter      = mustPrepare("$.purchase_units[0].payments.captures[0].status")
	captureAmountFilter      = mustPrepare("$.purchase_units[0].payments.captures[0].amount.value")
	purchaseUnitAmountFilter = mustPrepare("$.purchase_units[0].amount.value")
	payerEmailFilter         = mustPrepare("$.payer.email_address")
	payerGivenNameFilter     = mustPrepare("$.payer.name.given_name")
	payerSurnameFilter       = mustPrepare("$.payer.name.surname")
	shippingAddressFilter    = mustPrepare("$.purchase_units[0].shipping.address")
	payerAddressFilter       = mustPrepare("$.payer.address")
)

func mustPrepare(path string) jsonpath.FilterFunc {
	f, err := jsonpath.Prepare(path)
	if err != nil {
		panic(fmt.Sprintf("invalid json path %q: %s", path, err))
	}

	return f
}

// PaymentDetails is the provider capture response. The payload shape varies between
// sandbox and live and between payment sources, so every accessor is total: an absent
// or malformed path reads as an empty value.
type PaymentDetails struct {
	raw   []byte
	doc   interface{}
	valid bool
}

func ParsePaymentDetails(raw []byte) *PaymentDetails {
	d := &PaymentDetails{raw: raw}
	if err := json.Unmarshal(raw, &d.doc); err == nil {
		d.valid = true
	}

	return d
}

func (d *PaymentDetails) Raw() []byte {
	if d == nil {
		return nil
	}

	return d.raw
}

func (d *PaymentDetails) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}

	if !d.valid {
		return json.Marshal(string(d.raw))
	}

	return d.raw, nil
}

func (d *PaymentDetails) lookup(f jsonpath.FilterFunc) (ret interface{}) {
	if d == nil || !d.valid {
		return nil
	}

	defer func() {
		if recover() != nil {
			ret = nil
		}
	}()

	v, err := f(d.doc)
	if err != nil {
		return nil
	}

	return v
}

func (d *PaymentDetails) lookupString(f jsonpath.FilterFunc) string {
	s, _ := d.lookup(f).(string)
	return s
}

func (d *PaymentDetails) Status() string {
	return d.lookupString(statusFilter)
}

func (d *PaymentDetails) CaptureStatus() string {
	return d.lookupString(captureStatusFilter)
}

// IsCompleted is true if either the order or its first capture reports completion.
func (d *PaymentDetails) IsCompleted() bool {
	return d.Status() == StatusCompleted || d.CaptureStatus() == StatusCompleted
}

func (d *PaymentDetails) CaptureAmount() string {
	return d.lookupString(captureAmountFilter)
}

func (d *PaymentDetails) PurchaseUnitAmount() string {
	return d.lookupString(purchaseUnitAmountFilter)
}

func (d *PaymentDetails) PayerEmail() string {
	return d.lookupString(payerEmailFilter)
}

func (d *PaymentDetails) PayerGivenName() string {
	return d.lookupString(payerGivenNameFilter)
}

func (d *PaymentDetails) PayerSurname() string {
	return d.lookupString(payerSurnameFilter)
}

// BuyerAddress prefers the shipping address of the first purchase unit and falls back
// to the payer billing address.
func (d *PaymentDetails) BuyerAddress() Address {
	addr, ok := d.lookup(shippingAddressFilter).(map[string]interface{})
	if !ok {
		addr, _ = d.lookup(payerAddressFilter).(map[string]interface{})
	}

	return Address{
		Line1:       stringField(addr, "address_line_1"),
		Line2:       stringField(addr, "address_line_2"),
		City:        stringField(addr, "admin_area_2"),
		State:       stringField(addr, "admin_area_1"),
		PostalCode:  stringField(addr, "postal_code"),
		CountryCode: stringField(addr, "country_code"),
	}
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}
