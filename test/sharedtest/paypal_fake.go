package sharedtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/mux"
)

const fakePayPalToken = "fake-paypal-token"

type fakeResponse struct {
	code int
	body interface{}
}

// FakePayPal serves the token, order and capture endpoints. Captures are
// scripted per order id, unknown orders answer 404.
type FakePayPal struct {
	server *httptest.Server

	mu            sync.Mutex
	captures      map[string]fakeResponse
	captureCalls  map[string]int
	tokenCalls    int
	createdOrders []json.RawMessage
	createOrder   *fakeResponse
	ordersCount   int
}

func NewFakePayPal() *FakePayPal {
	f := &FakePayPal{
		captures:     map[string]fakeResponse{},
		captureCalls: map[string]int{},
	}

	r := mux.NewRouter()
	r.Methods("POST").Path("/v1/oauth2/token").HandlerFunc(f.tokenHandler)
	r.Methods("POST").Path("/v2/checkout/orders").HandlerFunc(f.createOrderHandler)
	r.Methods("POST").Path("/v2/checkout/orders/{orderID}/capture").HandlerFunc(f.captureHandler)
	f.server = httptest.NewServer(r)

	return f
}

func (f *FakePayPal) URL() string {
	return f.server.URL
}

func (f *FakePayPal) Close() {
	f.server.Close()
}

func (f *FakePayPal) SetCapture(orderID string, code int, body interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.captures[orderID] = fakeResponse{code: code, body: body}
}

func (f *FakePayPal) CaptureCalls(orderID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.captureCalls[orderID]
}

// SetCreateOrderResponse overrides the next order creations, nil restores the default answer.
// TotalCaptureCalls counts captures of all orders.
func (f *FakePayPal) TotalCaptureCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, n := range f.captureCalls {
		total += n
	}
	return total
}

func (f *FakePayPal) TokenCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokenCalls
}

func (f *FakePayPal) SetCreateOrderResponse(code int, body interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if body == nil {
		f.createOrder = nil
		return
	}
	f.createOrder = &fakeResponse{code: code, body: body}
}

func (f *FakePayPal) LastCreatedOrder() json.RawMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.createdOrders) == 0 {
		return nil
	}
	return f.createdOrders[len(f.createdOrders)-1]
}

func (f *FakePayPal) tokenHandler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.tokenCalls++
	f.mu.Unlock()

	if _, _, ok := r.BasicAuth(); !ok {
		writeFakeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
		return
	}

	writeFakeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": fakePayPalToken,
		"token_type":   "Bearer",
		"expires_in":   32400,
	})
}

func (f *FakePayPal) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFakeJSON(w, http.StatusBadRequest, map[string]string{"name": "MALFORMED_REQUEST_JSON"})
		return
	}

	f.mu.Lock()
	f.createdOrders = append(f.createdOrders, body)
	f.ordersCount++
	orderID := fmt.Sprintf("FAKE-ORDER-%d", f.ordersCount)
	override := f.createOrder
	f.mu.Unlock()

	if override != nil {
		writeFakeJSON(w, override.code, override.body)
		return
	}

	writeFakeJSON(w, http.StatusCreated, map[string]string{
		"id":     orderID,
		"status": "CREATED",
	})
}

func (f *FakePayPal) captureHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+fakePayPalToken {
		writeFakeJSON(w, http.StatusUnauthorized, map[string]string{"name": "AUTHENTICATION_FAILURE"})
		return
	}

	orderID := mux.Vars(r)["orderID"]

	f.mu.Lock()
	f.captureCalls[orderID]++
	resp, ok := f.captures[orderID]
	f.mu.Unlock()

	if !ok {
		writeFakeJSON(w, http.StatusNotFound, map[string]string{"name": "RESOURCE_NOT_FOUND"})
		return
	}

	writeFakeJSON(w, resp.code, resp.body)
}

// CompletedCapture is a minimal successful capture answer for a payer.
func CompletedCapture(orderID, email, amount string) map[string]interface{} {
	return map[string]interface{}{
		"id":     orderID,
		"status": "COMPLETED",
		"payer": map[string]interface{}{
			"email_address": email,
			"name": map[string]string{
				"given_name": "Jane",
				"surname":    "Doe",
			},
		},
		"purchase_units": []interface{}{
			map[string]interface{}{
				"shipping": map[string]interface{}{
					"address": map[string]string{
						"address_line_1": "1 Rue de Rivoli",
						"admin_area_2":   "Paris",
						"postal_code":    "75001",
						"country_code":   "FR",
					},
				},
				"payments": map[string]interface{}{
					"captures": []interface{}{
						map[string]interface{}{
							"status": "COMPLETED",
							"amount": map[string]string{
								"currency_code": "EUR",
								"value":         amount,
							},
						},
					},
				},
			},
		},
	}
}

func writeFakeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
