package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/models"
	"github.com/ojekin/dispatch/services/rides/mocks"
)

func newTestUC(ctrl *gomock.Controller) (*RideUC, *mocks.MockRideRepo, *mocks.MockBookingRepo, *mocks.MockDispatcher, *mocks.MockRideGW) {
	rideRepo := mocks.NewMockRideRepo(ctrl)
	bookingRepo := mocks.NewMockBookingRepo(ctrl)
	dispatcher := mocks.NewMockDispatcher(ctrl)
	gw := mocks.NewMockRideGW(ctrl)
	uc := NewRideUC(&models.Config{}, rideRepo, bookingRepo, dispatcher, gw)
	return uc, rideRepo, bookingRepo, dispatcher, gw
}

func TestRequestRide_InstantStartsDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, _, dispatcher, gw := newTestUC(ctrl)

	req := &models.RideRequest{
		PassengerID: uuid.New().String(),
		TripType:    models.TripTypeInstant,
		Region:      "jakarta",
		ServiceType: "car",
		Pickup:      models.Location{Latitude: -6.2, Longitude: 106.8},
		Dropoff:     models.Location{Latitude: -6.3, Longitude: 106.9},
		Fare:        42000,
	}

	rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().NotifyRideEvent(gomock.Any(), gomock.Any())

	var wg sync.WaitGroup
	wg.Add(1)
	dispatcher.EXPECT().DispatchRide(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ *models.Ride, _ string) error {
			wg.Done()
			return nil
		})

	ride, err := uc.RequestRide(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusRequested, ride.Status)
	wg.Wait()
}

func TestRequestRide_ScheduledWaitsForPoller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, _, _, gw := newTestUC(ctrl)

	req := &models.RideRequest{
		PassengerID: uuid.New().String(),
		TripType:    models.TripTypeScheduled,
		Region:      "jakarta",
		ServiceType: "car",
		Pickup:      models.Location{Latitude: -6.2, Longitude: 106.8},
		Dropoff:     models.Location{Latitude: -6.3, Longitude: 106.9},
		ScheduledAt: time.Now().Add(2 * time.Hour),
	}

	// No dispatcher expectation: scheduled rides are picked up by the poller
	rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().NotifyRideEvent(gomock.Any(), gomock.Any())

	ride, err := uc.RequestRide(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusScheduled, ride.Status)
	require.NotNil(t, ride.ScheduledAt)
}

func TestRequestRide_ReservedDriverHold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, _, _, gw := newTestUC(ctrl)
	reservedDriver := uuid.New()

	req := &models.RideRequest{
		PassengerID:        uuid.New().String(),
		TripType:           models.TripTypeScheduled,
		Region:             "jakarta",
		ServiceType:        "car",
		Pickup:             models.Location{Latitude: -6.2, Longitude: 106.8},
		Dropoff:            models.Location{Latitude: -6.3, Longitude: 106.9},
		ScheduledAt:        time.Now().Add(2 * time.Hour),
		ReservedDriverID:   reservedDriver.String(),
		ReservationHoldEnd: time.Now().Add(time.Hour),
	}

	rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().NotifyRideEvent(gomock.Any(), gomock.Any())

	ride, err := uc.RequestRide(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusReserved, ride.Status)
	require.NotNil(t, ride.DriverID)
	assert.Equal(t, reservedDriver, *ride.DriverID)
	require.NotNil(t, ride.ReservationExpiresAt)
}

func TestRequestRide_RejectsBadCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newTestUC(ctrl)

	req := &models.RideRequest{
		PassengerID: uuid.New().String(),
		Pickup:      models.Location{Latitude: 120, Longitude: 106.8},
		Dropoff:     models.Location{Latitude: -6.3, Longitude: 106.9},
	}

	_, err := uc.RequestRide(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidLocation)
}

func TestStageProgression(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, _, _, gw := newTestUC(ctrl)
	rideID := uuid.New().String()
	driverUUID := uuid.New()
	driverID := driverUUID.String()
	ctx := context.Background()

	rideRepo.EXPECT().MarkArrived(ctx, rideID, driverID).Return(nil)
	gw.EXPECT().NotifyRideEvent(ctx, gomock.Any())
	require.NoError(t, uc.DriverArrived(ctx, rideID, driverID))

	rideRepo.EXPECT().MarkStarted(ctx, rideID, driverID).Return(nil)
	gw.EXPECT().NotifyRideEvent(ctx, gomock.Any())
	require.NoError(t, uc.StartRide(ctx, rideID, driverID))

	rideRepo.EXPECT().MarkCompleted(ctx, rideID, driverID).Return(nil)
	gw.EXPECT().NotifyRideEvent(ctx, gomock.Any())
	rideRepo.EXPECT().GetRideByID(ctx, rideID).Return(&models.Ride{
		RideID:      uuid.MustParse(rideID),
		DriverID:    &driverUUID,
		ServiceType: "car",
		TripType:    models.TripTypeInstant,
		Fare:        42000,
	}, nil)
	gw.EXPECT().RequestSettlement(ctx, gomock.Any()).
		Do(func(_ context.Context, req models.SettlementRequest) {
			assert.Equal(t, rideID, req.RideID)
			assert.Equal(t, driverID, req.DriverID)
			assert.Equal(t, 42000.0, req.BaseAmount)
		}).Return(nil)
	require.NoError(t, uc.CompleteRide(ctx, rideID, driverID))
}

func TestStartRide_SkippedStageConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, _, _, _ := newTestUC(ctrl)
	rideID := uuid.New().String()

	rideRepo.EXPECT().MarkStarted(gomock.Any(), rideID, "driver-1").
		Return(apperrors.ErrStateConflict)

	err := uc.StartRide(context.Background(), rideID, "driver-1")
	assert.ErrorIs(t, err, apperrors.ErrStateConflict)
}

func TestCompleteRide_SettlementFailureDoesNotUnwind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, _, _, gw := newTestUC(ctrl)
	rideID := uuid.New().String()
	driverUUID := uuid.New()

	rideRepo.EXPECT().MarkCompleted(gomock.Any(), rideID, driverUUID.String()).Return(nil)
	gw.EXPECT().NotifyRideEvent(gomock.Any(), gomock.Any())
	rideRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(&models.Ride{
		RideID:   uuid.MustParse(rideID),
		DriverID: &driverUUID,
	}, nil)
	gw.EXPECT().RequestSettlement(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	// The completion stands even though the hand-off failed
	err := uc.CompleteRide(context.Background(), rideID, driverUUID.String())
	assert.NoError(t, err)
}

func TestCancelRide_TearsDownDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, _, dispatcher, gw := newTestUC(ctrl)
	rideID := uuid.New().String()

	rideRepo.EXPECT().CancelRide(gomock.Any(), rideID, models.RideStatusCancelledRider).Return(nil)
	dispatcher.EXPECT().CancelDispatch(gomock.Any(), rideID).Return(nil)
	gw.EXPECT().NotifyRideEvent(gomock.Any(), gomock.Any())

	err := uc.CancelRide(context.Background(), rideID, models.RideStatusCancelledRider)
	assert.NoError(t, err)
}

func TestCancelRide_AlreadyTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, _, _, _ := newTestUC(ctrl)
	rideID := uuid.New().String()

	rideRepo.EXPECT().CancelRide(gomock.Any(), rideID, models.RideStatusCancelledRider).
		Return(apperrors.ErrStateConflict)

	err := uc.CancelRide(context.Background(), rideID, models.RideStatusCancelledRider)
	assert.ErrorIs(t, err, apperrors.ErrStateConflict)
}

func TestCancelRide_RejectsNonCancelStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newTestUC(ctrl)

	err := uc.CancelRide(context.Background(), uuid.New().String(), models.RideStatusCompleted)
	assert.Error(t, err)
}
