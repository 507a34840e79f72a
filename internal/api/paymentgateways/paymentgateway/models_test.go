package paymentgateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCompleted(t *testing.T) {
	cases := []struct {
		name      string
		payload   string
		completed bool
	}{
		{"top level completed", `{"status":"COMPLETED"}`, true},
		{"top level completed, nested pending",
			`{"status":"COMPLETED","purchase_units":[{"payments":{"captures":[{"status":"PENDING"}]}}]}`, true},
		{"top level completed, nested garbage", `{"status":"COMPLETED","purchase_units":"oops"}`, true},
		{"only nested completed",
			`{"status":"APPROVED","purchase_units":[{"payments":{"captures":[{"status":"COMPLETED"}]}}]}`, true},
		{"nested completed on second capture only",
			`{"purchase_units":[{"payments":{"captures":[{"status":"DECLINED"},{"status":"COMPLETED"}]}}]}`, false},
		{"nothing completed", `{"status":"PAYER_ACTION_REQUIRED"}`, false},
		{"empty purchase units", `{"purchase_units":[]}`, false},
		{"purchase units is an object", `{"purchase_units":{"payments":{}}}`, false},
		{"captures is a string", `{"purchase_units":[{"payments":{"captures":"COMPLETED"}}]}`, false},
		{"status is a number", `{"status":1}`, false},
		{"array document", `[1,2,3]`, false},
		{"not json", `<html>bad gateway</html>`, false},
		{"empty body", ``, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := ParsePaymentDetails([]byte(tc.payload))
			assert.Equal(t, tc.completed, d.IsCompleted())
		})
	}
}

func TestAccessorsAreTotal(t *testing.T) {
	var nilDetails *PaymentDetails
	for _, d := range []*PaymentDetails{
		nilDetails,
		ParsePaymentDetails(nil),
		ParsePaymentDetails([]byte(`{"payer":"nobody","purchase_units":[null]}`)),
		ParsePaymentDetails([]byte(`{"purchase_units":[{"shipping":{"address":"street"}}],"payer":{"address":[]}}`)),
	} {
		assert.NotPanics(t, func() {
			assert.False(t, d.IsCompleted())
			assert.Empty(t, d.CaptureAmount())
			assert.Empty(t, d.PurchaseUnitAmount())
			assert.Empty(t, d.PayerEmail())
			assert.Empty(t, d.PayerGivenName())
			assert.Empty(t, d.PayerSurname())
			assert.Equal(t, Address{}, d.BuyerAddress())
		})
	}
}

func TestBuyerAddressPrecedence(t *testing.T) {
	shipping := ParsePaymentDetails([]byte(`{
		"payer": {"address": {"address_line_1": "billing street", "country_code": "DE"}},
		"purchase_units": [{"shipping": {"address": {
			"address_line_1": "1 rue de la Paix", "address_line_2": "Apt 4",
			"admin_area_2": "Paris", "admin_area_1": "IDF", "postal_code": "75002", "country_code": "FR"
		}}}]
	}`))
	assert.Equal(t, Address{
		Line1:       "1 rue de la Paix",
		Line2:       "Apt 4",
		City:        "Paris",
		State:       "IDF",
		PostalCode:  "75002",
		CountryCode: "FR",
	}, shipping.BuyerAddress())

	billing := ParsePaymentDetails([]byte(`{
		"payer": {"address": {"address_line_1": "billing street", "country_code": "DE"}},
		"purchase_units": [{"amount": {"value": "19.00"}}]
	}`))
	assert.Equal(t, Address{Line1: "billing street", CountryCode: "DE"}, billing.BuyerAddress())
}

func TestPaymentDetailsMarshalJSON(t *testing.T) {
	d := ParsePaymentDetails([]byte(`{"status":"COMPLETED"}`))
	out, err := json.Marshal(map[string]interface{}{"details": d})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"details":{"status":"COMPLETED"}}`, string(out))

	d = ParsePaymentDetails([]byte(`upstream timeout`))
	out, err = json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"upstream timeout"`, string(out))
}

func TestOrderRequestDefaults(t *testing.T) {
	assert.Equal(t, "19.00", OrderRequest{}.Total())
	assert.Equal(t, "STARTER-ONLY", OrderRequest{}.ReferenceID())
	assert.Equal(t, "24.00", OrderRequest{HasBump: true}.Total())
	assert.Equal(t, "STARTER+MINI-BUNDLE", OrderRequest{HasBump: true}.ReferenceID())
	assert.Equal(t, "21.50", OrderRequest{Amount: "21.50", HasBump: true}.Total())
}
