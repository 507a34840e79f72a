package systemeio

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/api/settings"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/levigross/grequests"
	"github.com/pkg/errors"
)

const PlatformName = "systemeio"

const (
	debugKey = "systemeio"

	// lookup results are filtered by exact email afterwards
	contactLookupLimit = 10

	mergePatchContentType = "application/merge-patch+json"
)

var _ membershipplatform.Platform = &Client{}

type Client struct {
	log    logutil.Log
	client *http.Client

	apiKey  string
	apiRoot string
}

func NewClient(log logutil.Log, cfg settings.Systeme, client *http.Client) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("no systeme.io api key")
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		log:     log,
		client:  client,
		apiKey:  cfg.APIKey,
		apiRoot: strings.TrimSuffix(cfg.APIRoot, "/"),
	}, nil
}

func (c Client) Name() string {
	return PlatformName
}

func (c *Client) SetBaseURL(u string) error {
	if _, err := url.Parse(u); err != nil {
		return errors.Wrap(err, "failed to parse url")
	}

	c.apiRoot = strings.TrimSuffix(u, "/")
	return nil
}

func (c Client) requestOptions(ctx context.Context) *grequests.RequestOptions {
	return &grequests.RequestOptions{
		Context:    ctx,
		HTTPClient: c.client,
		Headers: map[string]string{
			"X-API-Key": c.apiKey,
			"Accept":    "application/json",
		},
	}
}

func (c Client) CreateContact(ctx context.Context, nc *membershipplatform.NewContact) (*membershipplatform.Contact, error) {
	const path = "/contacts"
	ro := c.requestOptions(ctx)
	ro.JSON = nc

	resp, err := grequests.Post(c.apiRoot+path, ro)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to execute request for %s", path)
	}
	defer resp.Close()

	if !resp.Ok {
		return nil, &membershipplatform.ContactRejectedError{
			StatusCode: resp.StatusCode,
			Body:       resp.String(),
		}
	}

	var contact membershipplatform.Contact
	if err := resp.JSON(&contact); err != nil {
		return nil, errors.Wrapf(err, "failed to decode response for %s", path)
	}
	if contact.ID == "" {
		return nil, fmt.Errorf("no contact id in response for %s", path)
	}

	c.log.Debugf(debugKey, "Created contact %s for %s", contact.ID, nc.Email)
	return &contact, nil
}

func (c Client) FindContactByEmail(ctx context.Context, email string) (*membershipplatform.Contact, error) {
	const path = "/contacts"
	ro := c.requestOptions(ctx)
	ro.Params = map[string]string{
		"email": email,
		"limit": strconv.Itoa(contactLookupLimit),
	}

	resp, err := grequests.Get(c.apiRoot+path, ro)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to execute request for %s", path)
	}
	defer resp.Close()

	if !resp.Ok {
		return nil, &membershipplatform.ContactUpsertError{
			Email:      email,
			StatusCode: resp.StatusCode,
			Body:       resp.String(),
		}
	}

	var list struct {
		Items []membershipplatform.Contact `json:"items"`
	}
	if err := resp.JSON(&list); err != nil {
		return nil, errors.Wrapf(err, "failed to decode response for %s", path)
	}

	for i := range list.Items {
		if strings.EqualFold(list.Items[i].Email, email) {
			return &list.Items[i], nil
		}
	}

	c.log.Debugf(debugKey, "No contact for %s among %d results", email, len(list.Items))
	return nil, nil
}

func (c Client) UpdateContactFields(ctx context.Context, id membershipplatform.ContactID,
	fields []membershipplatform.ContactField) error {

	path := fmt.Sprintf("/contacts/%s", url.PathEscape(id.String()))
	ro := c.requestOptions(ctx)
	ro.Headers["Content-Type"] = mergePatchContentType
	ro.JSON = struct {
		Fields []membershipplatform.ContactField `json:"fields"`
	}{
		Fields: fields,
	}

	resp, err := grequests.Patch(c.apiRoot+path, ro)
	if err != nil {
		return errors.Wrapf(err, "failed to execute request for %s", path)
	}
	defer resp.Close()

	if !resp.Ok {
		return &membershipplatform.ContactUpdateError{
			ContactID:  id,
			StatusCode: resp.StatusCode,
			Body:       resp.String(),
		}
	}

	return nil
}

func (c Client) Enroll(ctx context.Context, courseID string, contactID membershipplatform.ContactID) error {
	path := fmt.Sprintf("/school/courses/%s/enrollments", url.PathEscape(courseID))
	ro := c.requestOptions(ctx)
	ro.JSON = struct {
		ContactID membershipplatform.ContactID `json:"contactId"`
	}{
		ContactID: contactID,
	}

	resp, err := grequests.Post(c.apiRoot+path, ro)
	if err != nil {
		return errors.Wrapf(err, "failed to execute request for %s", path)
	}
	defer resp.Close()

	if !resp.Ok {
		return &membershipplatform.EnrollmentError{
			CourseID:   courseID,
			ContactID:  contactID,
			StatusCode: resp.StatusCode,
			Body:       resp.String(),
		}
	}

	c.log.Debugf(debugKey, "Enrolled contact %s into course %s", contactID, courseID)
	return nil
}
