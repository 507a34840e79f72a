package checkout

import (
	"strings"

	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
	"github.com/shopspring/decimal"
)

const DefaultPaidAmount = paymentgateway.AmountStarter

// NormalizeAmount formats a decimal amount with exactly two fraction digits:
// "19", "19.0" and "19.000" all become "19.00". Unparseable input is returned
// trimmed and reported with ok == false.
func NormalizeAmount(s string) (normalized string, ok bool) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s, false
	}

	return d.StringFixed(2), true
}

// PaidAmount prefers the captured amount, then the purchase unit amount, then the
// amount the caller expected and finally the starter price.
func PaidAmount(details *paymentgateway.PaymentDetails, expectedAmount string) string {
	for _, a := range []string{details.CaptureAmount(), details.PurchaseUnitAmount(), expectedAmount} {
		if strings.TrimSpace(a) != "" {
			normalized, _ := NormalizeAmount(a)
			return normalized
		}
	}

	return DefaultPaidAmount
}

func amountsMatch(paid, expected string) bool {
	p, pok := NormalizeAmount(paid)
	e, eok := NormalizeAmount(expected)
	if !pok || !eok {
		return false
	}

	return p == e
}
