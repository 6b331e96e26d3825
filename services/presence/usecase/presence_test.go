package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/models"
	"github.com/ojekin/dispatch/internal/pkg/observability"
	"github.com/ojekin/dispatch/services/presence/mocks"
)

func newTestUC(t *testing.T) (*PresenceUC, *mocks.MockPresenceRepo, *mocks.MockActiveRideLookup, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockPresenceRepo(ctrl)
	lookup := mocks.NewMockActiveRideLookup(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	cfg := &models.Config{
		Presence: models.PresenceConfig{
			TTLSeconds:       90,
			RideCacheSeconds: 30,
		},
	}
	return NewPresenceUC(cfg, repo, lookup, notifier), repo, lookup, notifier
}

func testScope() models.Scope {
	return models.Scope{Region: "jakarta", Service: "car"}
}

func TestSetOnline_Success(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	event := models.BeaconEvent{
		DriverID: uuid.New().String(),
		Scope:    testScope(),
		IsActive: true,
		Location: models.Location{Latitude: -6.175392, Longitude: 106.827153},
		ConnID:   "conn-1",
	}

	repo.EXPECT().
		SetOnline(gomock.Any(), event.DriverID, event.Scope, &event.Location, "conn-1").
		Return(true, nil)

	err := uc.SetOnline(context.Background(), event)
	assert.NoError(t, err)
}

func TestSetOnline_RepeatedBeaconDoesNotMoveGauge(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	event := models.BeaconEvent{
		DriverID: uuid.New().String(),
		Scope:    testScope(),
		IsActive: true,
		Location: models.Location{Latitude: -6.175392, Longitude: 106.827153},
		ConnID:   "conn-1",
	}

	repo.EXPECT().
		SetOnline(gomock.Any(), event.DriverID, event.Scope, &event.Location, "conn-1").
		Return(true, nil)
	repo.EXPECT().
		SetOnline(gomock.Any(), event.DriverID, event.Scope, &event.Location, "conn-1").
		Return(false, nil)

	before := testutil.ToFloat64(observability.DriversOnline)
	assert.NoError(t, uc.SetOnline(context.Background(), event))
	assert.NoError(t, uc.SetOnline(context.Background(), event))
	assert.Equal(t, before+1, testutil.ToFloat64(observability.DriversOnline))
}

func TestSetOffline_RedundantCallDoesNotMoveGauge(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	driverID := uuid.New().String()
	repo.EXPECT().SetOffline(gomock.Any(), driverID).Return(true, nil)
	repo.EXPECT().SetOffline(gomock.Any(), driverID).Return(false, nil)

	before := testutil.ToFloat64(observability.DriversOnline)
	assert.NoError(t, uc.SetOffline(context.Background(), driverID))
	assert.NoError(t, uc.SetOffline(context.Background(), driverID))
	assert.Equal(t, before-1, testutil.ToFloat64(observability.DriversOnline))
}

func TestSetOnline_RejectsMissingDriver(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	err := uc.SetOnline(context.Background(), models.BeaconEvent{
		Scope:    testScope(),
		Location: models.Location{Latitude: -6.175392, Longitude: 106.827153},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDriverID)
}

func TestSetOnline_RejectsOutOfRangeCoordinates(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	err := uc.SetOnline(context.Background(), models.BeaconEvent{
		DriverID: uuid.New().String(),
		Scope:    testScope(),
		Location: models.Location{Latitude: 97.0, Longitude: 106.827153},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidLocation)
}

func TestUpdateLocation_IdleDriverDoesNotPublish(t *testing.T) {
	uc, repo, lookup, _ := newTestUC(t)

	driverID := uuid.New().String()
	loc := models.Location{Latitude: -6.175392, Longitude: 106.827153}

	repo.EXPECT().
		RefreshLocation(gomock.Any(), driverID, testScope(), &loc).
		Return(nil)
	lookup.EXPECT().
		GetActiveRideIDByDriver(gomock.Any(), driverID).
		Return("", nil)

	err := uc.UpdateLocation(context.Background(), driverID, testScope(), loc)
	assert.NoError(t, err)
}

func TestUpdateLocation_ActiveRideMirrorsTick(t *testing.T) {
	uc, repo, lookup, notifier := newTestUC(t)

	driverID := uuid.New().String()
	rideID := uuid.New().String()
	loc := models.Location{Latitude: -6.175392, Longitude: 106.827153}

	repo.EXPECT().
		RefreshLocation(gomock.Any(), driverID, testScope(), &loc).
		Return(nil)
	lookup.EXPECT().
		GetActiveRideIDByDriver(gomock.Any(), driverID).
		Return(rideID, nil)
	notifier.EXPECT().
		PublishRideLocation(gomock.Any(), rideID, gomock.Any())

	err := uc.UpdateLocation(context.Background(), driverID, testScope(), loc)
	assert.NoError(t, err)
}

func TestUpdateLocation_ActiveRideLookupIsCached(t *testing.T) {
	uc, repo, lookup, notifier := newTestUC(t)

	driverID := uuid.New().String()
	rideID := uuid.New().String()
	loc := models.Location{Latitude: -6.175392, Longitude: 106.827153}

	repo.EXPECT().
		RefreshLocation(gomock.Any(), driverID, testScope(), &loc).
		Return(nil).
		Times(3)
	// Durable store consulted once, later ticks hit the cache
	lookup.EXPECT().
		GetActiveRideIDByDriver(gomock.Any(), driverID).
		Return(rideID, nil).
		Times(1)
	notifier.EXPECT().
		PublishRideLocation(gomock.Any(), rideID, gomock.Any()).
		Times(3)

	for i := 0; i < 3; i++ {
		assert.NoError(t, uc.UpdateLocation(context.Background(), driverID, testScope(), loc))
	}
}

func TestUpdateLocation_LookupFailureStillRefreshes(t *testing.T) {
	uc, repo, lookup, _ := newTestUC(t)

	driverID := uuid.New().String()
	loc := models.Location{Latitude: -6.175392, Longitude: 106.827153}

	repo.EXPECT().
		RefreshLocation(gomock.Any(), driverID, testScope(), &loc).
		Return(nil)
	lookup.EXPECT().
		GetActiveRideIDByDriver(gomock.Any(), driverID).
		Return("", errors.New("db down"))

	err := uc.UpdateLocation(context.Background(), driverID, testScope(), loc)
	assert.NoError(t, err)
}

func TestConnectionClosed_LastConnectionGoesOffline(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	driverID := uuid.New().String()
	repo.EXPECT().
		RemoveConnection(gomock.Any(), driverID, "conn-1").
		Return(int64(0), nil)
	repo.EXPECT().
		SetOffline(gomock.Any(), driverID).
		Return(true, nil)

	err := uc.ConnectionClosed(context.Background(), driverID, "conn-1")
	assert.NoError(t, err)
}

func TestSetOffline_DropsCachedActiveRide(t *testing.T) {
	uc, repo, lookup, notifier := newTestUC(t)

	driverID := uuid.New().String()
	rideID := uuid.New().String()
	loc := models.Location{Latitude: -6.175392, Longitude: 106.827153}

	repo.EXPECT().
		RefreshLocation(gomock.Any(), driverID, testScope(), &loc).
		Return(nil).
		Times(2)
	// Going offline drops the cached entry, so the tick after a fresh
	// beacon consults the durable store again
	lookup.EXPECT().
		GetActiveRideIDByDriver(gomock.Any(), driverID).
		Return(rideID, nil).
		Times(2)
	notifier.EXPECT().
		PublishRideLocation(gomock.Any(), rideID, gomock.Any()).
		Times(2)
	repo.EXPECT().SetOffline(gomock.Any(), driverID).Return(true, nil)

	assert.NoError(t, uc.UpdateLocation(context.Background(), driverID, testScope(), loc))
	assert.NoError(t, uc.SetOffline(context.Background(), driverID))
	assert.NoError(t, uc.UpdateLocation(context.Background(), driverID, testScope(), loc))
}

func TestGetPresence_PassesThrough(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	driverID := uuid.New().String()
	expected := &models.DriverPresence{DriverID: driverID, Online: true}

	repo.EXPECT().GetPresence(gomock.Any(), driverID).Return(expected, nil)

	got, err := uc.GetPresence(context.Background(), driverID)
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestGetPresence_RequiresDriverID(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.GetPresence(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDriverID)
}

func TestConnectionClosed_OtherConnectionsKeepDriverOnline(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	driverID := uuid.New().String()
	repo.EXPECT().
		RemoveConnection(gomock.Any(), driverID, "conn-1").
		Return(int64(1), nil)

	err := uc.ConnectionClosed(context.Background(), driverID, "conn-1")
	assert.NoError(t, err)
}

func TestNearby_ValidatesPoint(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.Nearby(context.Background(), testScope(), nil, 5000, 10)
	assert.ErrorIs(t, err, apperrors.ErrInvalidLocation)
}

func TestNearby_PassesThrough(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	point := &models.Location{Latitude: -6.175392, Longitude: 106.827153}
	expected := []*models.NearbyDriver{
		{DriverID: uuid.New().String(), DistanceM: 420},
	}

	repo.EXPECT().
		Nearby(gomock.Any(), testScope(), point, 5000.0, 10).
		Return(expected, nil)

	drivers, err := uc.Nearby(context.Background(), testScope(), point, 5000, 10)
	assert.NoError(t, err)
	assert.Equal(t, expected, drivers)
}
