package membershipplatform

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

const (
	FieldAddress    = "address"
	FieldCity       = "city"
	FieldState      = "state"
	FieldPostalCode = "postal_code"
	FieldCountry    = "country"
)

// ContactID is opaque: the platform answers with numbers, but strings are accepted too.
type ContactID string

func (id *ContactID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if len(b) != 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return errors.Wrap(err, "invalid contact id string")
		}
		*id = ContactID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Wrap(err, "invalid contact id")
	}
	*id = ContactID(n.String())
	return nil
}

// MarshalJSON keeps numeric ids numeric. Only the canonical form of an integer
// is a valid JSON number: "007" or "+5" stay strings.
func (id ContactID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}

	return json.Marshal(string(id))
}

func (id ContactID) String() string {
	return string(id)
}

type Contact struct {
	ID        ContactID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
}

// ContactField is a custom contact field, a nil Value clears the field.
type ContactField struct {
	Slug  string  `json:"slug"`
	Value *string `json:"value"`
}

func NewContactField(slug, value string) ContactField {
	f := ContactField{Slug: slug}
	if value != "" {
		f.Value = &value
	}

	return f
}

type NewContact struct {
	Email     string         `json:"email"`
	FirstName string         `json:"firstName,omitempty"`
	LastName  string         `json:"lastName,omitempty"`
	Fields    []ContactField `json:"fields"`
}
