package checkout

import (
	"context"
	"testing"

	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/shared/apperrors"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProfile = BuyerProfile{
	Email:       "buyer@example.com",
	GivenName:   "Ada",
	Surname:     "Lovelace",
	City:        "Paris",
	CountryCode: "FR",
}

var errDuplicate = &membershipplatform.ContactRejectedError{StatusCode: 422, Body: "email already used"}

func TestUpsertCreatesContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := membershipplatform.NewMockPlatform(ctrl)
	p.EXPECT().CreateContact(any, any).
		Do(func(_ context.Context, nc *membershipplatform.NewContact) {
			assert.Equal(t, "buyer@example.com", nc.Email)
			assert.Equal(t, "Ada", nc.FirstName)
			assert.Equal(t, "Lovelace", nc.LastName)
			assert.Len(t, nc.Fields, 5)
		}).
		Return(&membershipplatform.Contact{ID: "42", Email: "buyer@example.com"}, nil)

	c, err := NewContactProvisioner(p).Upsert(context.Background(), testLog(), testProfile)
	require.NoError(t, err)
	assert.Equal(t, membershipplatform.ContactID("42"), c.ID)
}

func TestUpsertFallsBackToPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &membershipplatform.Contact{ID: "42", Email: "buyer@example.com"}
	p := membershipplatform.NewMockPlatform(ctrl)
	gomock.InOrder(
		p.EXPECT().CreateContact(any, any).Return(nil, errDuplicate),
		p.EXPECT().FindContactByEmail(any, "buyer@example.com").Return(existing, nil),
		p.EXPECT().UpdateContactFields(any, membershipplatform.ContactID("42"), testProfile.ContactFields()).Return(nil),
	)

	c, err := NewContactProvisioner(p).Upsert(context.Background(), testLog(), testProfile)
	require.NoError(t, err)
	assert.Equal(t, existing, c)
}

func TestUpsertTwiceGivesSameContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &membershipplatform.Contact{ID: "42", Email: "buyer@example.com"}
	p := membershipplatform.NewMockPlatform(ctrl)
	gomock.InOrder(
		p.EXPECT().CreateContact(any, any).Return(existing, nil),
		p.EXPECT().CreateContact(any, any).Return(nil, errDuplicate),
		p.EXPECT().FindContactByEmail(any, "buyer@example.com").Return(existing, nil),
		p.EXPECT().UpdateContactFields(any, existing.ID, any).Return(nil),
	)

	prov := NewContactProvisioner(p)
	first, err := prov.Upsert(context.Background(), testLog(), testProfile)
	require.NoError(t, err)
	second, err := prov.Upsert(context.Background(), testLog(), testProfile)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestUpsertNotFoundAfterRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := membershipplatform.NewMockPlatform(ctrl)
	p.EXPECT().CreateContact(any, any).Return(nil, errDuplicate)
	p.EXPECT().FindContactByEmail(any, any).Return(nil, nil)

	_, err := NewContactProvisioner(p).Upsert(context.Background(), testLog(), testProfile)
	require.Error(t, err)
	notFound, ok := errors.Cause(err).(*membershipplatform.ContactNotFoundError)
	require.True(t, ok, "expected ContactNotFoundError, got %T", errors.Cause(err))
	assert.Equal(t, "buyer@example.com", notFound.Email)
}

func TestUpsertLookupFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookupErr := &membershipplatform.ContactUpsertError{Email: "buyer@example.com", StatusCode: 500}
	p := membershipplatform.NewMockPlatform(ctrl)
	p.EXPECT().CreateContact(any, any).Return(nil, errDuplicate)
	p.EXPECT().FindContactByEmail(any, any).Return(nil, lookupErr)

	_, err := NewContactProvisioner(p).Upsert(context.Background(), testLog(), testProfile)
	require.Error(t, err)
	assert.Equal(t, lookupErr, errors.Cause(err))
}

func TestUpsertPatchFailureIsAWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &membershipplatform.Contact{ID: "42"}
	p := membershipplatform.NewMockPlatform(ctrl)
	p.EXPECT().CreateContact(any, any).Return(nil, errDuplicate)
	p.EXPECT().FindContactByEmail(any, any).Return(existing, nil)
	p.EXPECT().UpdateContactFields(any, any, any).
		Return(&membershipplatform.ContactUpdateError{ContactID: "42", StatusCode: 400})

	tracker := apperrors.NewMemoryTracker()
	log := apperrors.WrapLogWithTracker(testLog(), logutil.Context{}, tracker)

	c, err := NewContactProvisioner(p).Upsert(context.Background(), log, testProfile)
	require.NoError(t, err)
	assert.Equal(t, existing, c)

	evs := tracker.Events()
	if assert.Len(t, evs, 1) {
		assert.Equal(t, apperrors.LevelWarn, evs[0].Level)
	}
}

func TestUpsertTransportFailureHasNoFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := membershipplatform.NewMockPlatform(ctrl)
	p.EXPECT().CreateContact(any, any).Return(nil, errors.New("connection reset"))

	_, err := NewContactProvisioner(p).Upsert(context.Background(), testLog(), testProfile)
	assert.Error(t, err)
}
