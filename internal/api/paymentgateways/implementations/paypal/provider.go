package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
	"github.com/courseflow/courseflow-api/internal/api/settings"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const ProviderName = "paypal"

const debugKey = "paypal"

var _ paymentgateway.Gateway = &Provider{}

type Provider struct {
	log    logutil.Log
	client *http.Client

	clientID     string
	clientSecret string

	apiRoot string
}

func NewProvider(log logutil.Log, cfg settings.PayPal, client *http.Client) (*Provider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("no paypal client id or secret")
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &Provider{
		log:          log,
		client:       client,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		apiRoot:      strings.TrimSuffix(cfg.APIRoot, "/"),
	}, nil
}

func (p Provider) Name() string {
	return ProviderName
}

func (p *Provider) SetBaseURL(u string) error {
	if _, err := url.Parse(u); err != nil {
		return errors.Wrap(err, "failed to parse url")
	}

	p.apiRoot = strings.TrimSuffix(u, "/")
	return nil
}

// AccessToken runs a client credentials grant. The token isn't cached:
// every call hits the token endpoint.
func (p Provider) AccessToken(ctx context.Context) (string, error) {
	cc := clientcredentials.Config{
		ClientID:     p.clientID,
		ClientSecret: p.clientSecret,
		TokenURL:     p.apiRoot + "/v1/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	tok, err := cc.Token(context.WithValue(ctx, oauth2.HTTPClient, p.client))
	if err != nil {
		if rerr, ok := err.(*oauth2.RetrieveError); ok {
			statusCode := 0
			if rerr.Response != nil {
				statusCode = rerr.Response.StatusCode
			}
			return "", &paymentgateway.AuthError{
				StatusCode: statusCode,
				Body:       string(rerr.Body),
			}
		}

		return "", errors.Wrap(err, "failed to get access token")
	}

	p.log.Debugf(debugKey, "Got access token of type %s expiring at %s", tok.TokenType, tok.Expiry)
	return tok.AccessToken, nil
}

func (p Provider) CreateOrder(ctx context.Context, token string, orderReq paymentgateway.OrderRequest) (*paymentgateway.Order, error) {
	const path = "/v2/checkout/orders"

	type amount struct {
		CurrencyCode string `json:"currency_code"`
		Value        string `json:"value"`
	}
	type purchaseUnit struct {
		ReferenceID string `json:"reference_id"`
		Amount      amount `json:"amount"`
	}
	reqBody := struct {
		Intent        string         `json:"intent"`
		PurchaseUnits []purchaseUnit `json:"purchase_units"`
	}{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			ReferenceID: orderReq.ReferenceID(),
			Amount: amount{
				CurrencyCode: paymentgateway.CurrencyEUR,
				Value:        orderReq.Total(),
			},
		}},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal request for %s", path)
	}

	req, err := http.NewRequest(http.MethodPost, p.apiRoot+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", path)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("PayPal-Request-Id", uuid.NewV4().String())

	statusCode, respBody, err := p.do(ctx, req, path)
	if err != nil {
		return nil, err
	}

	if !isSuccessStatus(statusCode) {
		return nil, &paymentgateway.OrderRejectedError{
			StatusCode: statusCode,
			Body:       asJSON(respBody),
		}
	}

	var order struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, errors.Wrapf(err, "failed to decode response for %s", path)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("no order id in response for %s: %s", path, respBody)
	}

	p.log.Debugf(debugKey, "Created order %s for %s (%s)", order.ID, orderReq.Total(), orderReq.ReferenceID())
	return &paymentgateway.Order{ID: order.ID}, nil
}

func (p Provider) CaptureOrder(ctx context.Context, token, orderID string) (*paymentgateway.PaymentDetails, bool, error) {
	if orderID == "" {
		return nil, false, paymentgateway.ErrNoOrderID
	}

	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", url.PathEscape(orderID))
	req, err := http.NewRequest(http.MethodPost, p.apiRoot+path, nil)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to create request for %s", path)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	// the same order id always maps to the same request id: a retried capture
	// inside the provider idempotency window replays the first answer
	req.Header.Set("PayPal-Request-Id", "capture-"+orderID)

	statusCode, respBody, err := p.do(ctx, req, path)
	if err != nil {
		return nil, false, err
	}

	details := paymentgateway.ParsePaymentDetails(respBody)
	if !isSuccessStatus(statusCode) {
		return details, false, &paymentgateway.CaptureRejectedError{
			StatusCode: statusCode,
			Details:    details,
		}
	}

	completed := details.IsCompleted()
	p.log.Debugf(debugKey, "Captured order %s: status %q, capture status %q, completed %t",
		orderID, details.Status(), details.CaptureStatus(), completed)
	return details, completed, nil
}

func (p Provider) do(ctx context.Context, req *http.Request, path string) (int, []byte, error) {
	resp, err := p.client.Do(req.WithContext(ctx))
	if err != nil {
		return 0, nil, errors.Wrapf(err, "failed to execute request for %s", path)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "failed to read response for %s", path)
	}

	return resp.StatusCode, body, nil
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}

func asJSON(body []byte) json.RawMessage {
	if json.Valid(body) {
		return json.RawMessage(body)
	}

	quoted, _ := json.Marshal(string(body))
	return json.RawMessage(quoted)
}
