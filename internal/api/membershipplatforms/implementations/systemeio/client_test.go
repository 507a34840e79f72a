package systemeio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/api/settings"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := NewClient(logutil.NewStderrLog("test"), settings.Systeme{
		APIRoot: ts.URL,
		APIKey:  "sio-key",
	}, ts.Client())
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(logutil.NewStderrLog("test"), settings.Systeme{APIRoot: "http://localhost"}, nil)
	assert.Error(t, err)
}

func TestCreateContact(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contacts", r.URL.Path)
		assert.Equal(t, "sio-key", r.Header.Get("X-API-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "buyer@example.com", body["email"])
		assert.Equal(t, "Ada", body["firstName"])
		fields, _ := body["fields"].([]interface{})
		assert.Len(t, fields, 2)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":4242,"email":"buyer@example.com"}`))
	}))

	contact, err := c.CreateContact(context.Background(), &membershipplatform.NewContact{
		Email:     "buyer@example.com",
		FirstName: "Ada",
		Fields: []membershipplatform.ContactField{
			membershipplatform.NewContactField(membershipplatform.FieldCity, "Paris"),
			membershipplatform.NewContactField(membershipplatform.FieldState, ""),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, membershipplatform.ContactID("4242"), contact.ID)
}

func TestCreateContactRejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":"email: This value is already used."}`))
	}))

	_, err := c.CreateContact(context.Background(), &membershipplatform.NewContact{Email: "buyer@example.com"})
	require.Error(t, err)
	rejected, ok := err.(*membershipplatform.ContactRejectedError)
	require.True(t, ok, "expected ContactRejectedError, got %T", err)
	assert.Equal(t, http.StatusUnprocessableEntity, rejected.StatusCode)
	assert.Contains(t, rejected.Body, "already used")
}

func TestFindContactByEmail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/contacts", r.URL.Path)
		assert.Equal(t, "buyer@example.com", r.URL.Query().Get("email"))
		assert.NotEmpty(t, r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"id":1,"email":"other@example.com"},
			{"id":"77","email":"Buyer@Example.com"}
		]}`))
	}))

	contact, err := c.FindContactByEmail(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, membershipplatform.ContactID("77"), contact.ID)
}

func TestFindContactByEmailNoMatch(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))

	contact, err := c.FindContactByEmail(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	assert.Nil(t, contact)
}

func TestFindContactByEmailFailed(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`oops`))
	}))

	_, err := c.FindContactByEmail(context.Background(), "buyer@example.com")
	require.Error(t, err)
	upsertErr, ok := err.(*membershipplatform.ContactUpsertError)
	require.True(t, ok, "expected ContactUpsertError, got %T", err)
	assert.Equal(t, http.StatusInternalServerError, upsertErr.StatusCode)
}

func TestUpdateContactFields(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/contacts/77", r.URL.Path)
		assert.Equal(t, "application/merge-patch+json", r.Header.Get("Content-Type"))

		var body struct {
			Fields []struct {
				Slug  string  `json:"slug"`
				Value *string `json:"value"`
			} `json:"fields"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if assert.Len(t, body.Fields, 2) {
			assert.Equal(t, "city", body.Fields[0].Slug)
			if assert.NotNil(t, body.Fields[0].Value) {
				assert.Equal(t, "Paris", *body.Fields[0].Value)
			}
			assert.Nil(t, body.Fields[1].Value)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":77}`))
	}))

	err := c.UpdateContactFields(context.Background(), "77", []membershipplatform.ContactField{
		membershipplatform.NewContactField(membershipplatform.FieldCity, "Paris"),
		membershipplatform.NewContactField(membershipplatform.FieldState, ""),
	})
	assert.NoError(t, err)
}

func TestUpdateContactFieldsFailed(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	err := c.UpdateContactFields(context.Background(), "77", nil)
	require.Error(t, err)
	_, ok := err.(*membershipplatform.ContactUpdateError)
	assert.True(t, ok, "expected ContactUpdateError, got %T", err)
}

func TestEnroll(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/school/courses/starter-1/enrollments", r.URL.Path)

		var body map[string]json.RawMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "77", string(body["contactId"]))

		w.WriteHeader(http.StatusCreated)
	}))

	assert.NoError(t, c.Enroll(context.Background(), "starter-1", "77"))
}

func TestEnrollFailed(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"course not found"}`))
	}))

	err := c.Enroll(context.Background(), "mini-2", "77")
	require.Error(t, err)
	enrollErr, ok := err.(*membershipplatform.EnrollmentError)
	require.True(t, ok, "expected EnrollmentError, got %T", err)
	assert.Equal(t, "mini-2", enrollErr.CourseID)
	assert.Equal(t, http.StatusNotFound, enrollErr.StatusCode)
	assert.Contains(t, enrollErr.Body, "course not found")
}
