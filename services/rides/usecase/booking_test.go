package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/models"
)

func poolRide(driverID *uuid.UUID, status models.RideStatus) *models.Ride {
	batchID := uuid.New()
	return &models.Ride{
		RideID:      uuid.New(),
		PassengerID: uuid.New(),
		DriverID:    driverID,
		Status:      status,
		TripType:    models.TripTypePool,
		PoolBatchID: &batchID,
	}
}

func TestCreateBooking_OnOpenPoolRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, bookingRepo, _, gw := newTestUC(ctrl)
	ride := poolRide(nil, models.RideStatusRequested)
	rideID := ride.RideID.String()
	passengerID := uuid.New().String()

	rideRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)
	bookingRepo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, b *models.Booking) {
			assert.Equal(t, ride.RideID, b.RideID)
			assert.Equal(t, models.BookingStatusConfirmed, b.Status)
			assert.Equal(t, 2, b.Seats)
		}).Return(nil)
	gw.EXPECT().NotifyBookingEvent(gomock.Any(), gomock.Any())

	booking, err := uc.CreateBooking(context.Background(), rideID, passengerID, 2)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
}

func TestListBookings_ReturnsEveryBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, bookingRepo, _, _ := newTestUC(ctrl)
	ride := poolRide(nil, models.RideStatusRequested)
	rideID := ride.RideID.String()
	bookings := []*models.Booking{
		{BookingID: uuid.New(), RideID: ride.RideID, Status: models.BookingStatusStarted},
		{BookingID: uuid.New(), RideID: ride.RideID, Status: models.BookingStatusCancelled},
	}

	rideRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)
	bookingRepo.EXPECT().GetBookingsByRide(gomock.Any(), rideID).Return(bookings, nil)

	got, err := uc.ListBookings(context.Background(), rideID)
	require.NoError(t, err)
	assert.Equal(t, bookings, got)
}

func TestListBookings_UnknownRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, _, _, _ := newTestUC(ctrl)
	rideID := uuid.New().String()

	rideRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(nil, apperrors.ErrRideNotFound)

	_, err := uc.ListBookings(context.Background(), rideID)
	assert.ErrorIs(t, err, apperrors.ErrRideNotFound)
}

func TestCreateBooking_RejectsNonPoolRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, _, _, _ := newTestUC(ctrl)
	ride := poolRide(nil, models.RideStatusRequested)
	ride.TripType = models.TripTypeInstant
	rideID := ride.RideID.String()

	rideRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)

	_, err := uc.CreateBooking(context.Background(), rideID, uuid.New().String(), 1)
	assert.Error(t, err)
}

func TestCreateBooking_RejectsDepartedRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, _, _, _ := newTestUC(ctrl)
	driverID := uuid.New()
	ride := poolRide(&driverID, models.RideStatusStarted)
	rideID := ride.RideID.String()

	rideRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)

	_, err := uc.CreateBooking(context.Background(), rideID, uuid.New().String(), 1)
	assert.ErrorIs(t, err, apperrors.ErrStateConflict)
}

func TestArriveBooking_FirstArrivalLiftsRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, bookingRepo, _, gw := newTestUC(ctrl)
	driverID := uuid.New()
	ride := poolRide(&driverID, models.RideStatusAccepted)
	rideID := ride.RideID.String()
	booking := &models.Booking{
		BookingID:   uuid.New(),
		RideID:      ride.RideID,
		PassengerID: uuid.New(),
		Status:      models.BookingStatusConfirmed,
	}
	bookingID := booking.BookingID.String()

	bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(booking, nil)
	bookingRepo.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID,
		[]models.BookingStatus{models.BookingStatusConfirmed},
		models.BookingStatusArrived).Return(nil)
	rideRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)
	rideRepo.EXPECT().MarkArrived(gomock.Any(), rideID, driverID.String()).Return(nil)
	gw.EXPECT().NotifyBookingEvent(gomock.Any(), gomock.Any())

	err := uc.ArriveBooking(context.Background(), bookingID)
	assert.NoError(t, err)
}

func TestArriveBooking_LaterArrivalSkipsLift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, bookingRepo, _, gw := newTestUC(ctrl)
	driverID := uuid.New()
	ride := poolRide(&driverID, models.RideStatusArrivedPickup)
	rideID := ride.RideID.String()
	booking := &models.Booking{
		BookingID: uuid.New(),
		RideID:    ride.RideID,
		Status:    models.BookingStatusConfirmed,
	}
	bookingID := booking.BookingID.String()

	bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(booking, nil)
	bookingRepo.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, gomock.Any(),
		models.BookingStatusArrived).Return(nil)
	rideRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)
	rideRepo.EXPECT().MarkArrived(gomock.Any(), rideID, driverID.String()).
		Return(apperrors.ErrStateConflict)
	gw.EXPECT().NotifyBookingEvent(gomock.Any(), gomock.Any())

	err := uc.ArriveBooking(context.Background(), bookingID)
	assert.NoError(t, err)
}

func TestBoardBooking_FirstBoardingLiftsRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, bookingRepo, _, gw := newTestUC(ctrl)
	driverID := uuid.New()
	ride := poolRide(&driverID, models.RideStatusAccepted)
	rideID := ride.RideID.String()
	booking := &models.Booking{
		BookingID:   uuid.New(),
		RideID:      ride.RideID,
		PassengerID: uuid.New(),
		Status:      models.BookingStatusConfirmed,
	}
	bookingID := booking.BookingID.String()

	bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(booking, nil)
	bookingRepo.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID,
		[]models.BookingStatus{models.BookingStatusConfirmed, models.BookingStatusArrived},
		models.BookingStatusStarted).Return(nil)
	rideRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)
	rideRepo.EXPECT().MarkArrived(gomock.Any(), rideID, driverID.String()).Return(nil)
	rideRepo.EXPECT().MarkStarted(gomock.Any(), rideID, driverID.String()).Return(nil)
	gw.EXPECT().NotifyBookingEvent(gomock.Any(), gomock.Any())

	err := uc.BoardBooking(context.Background(), bookingID)
	assert.NoError(t, err)
}

func TestBoardBooking_LaterBoardingSkipsLift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, bookingRepo, _, gw := newTestUC(ctrl)
	driverID := uuid.New()
	ride := poolRide(&driverID, models.RideStatusStarted)
	rideID := ride.RideID.String()
	booking := &models.Booking{
		BookingID: uuid.New(),
		RideID:    ride.RideID,
		Status:    models.BookingStatusConfirmed,
	}
	bookingID := booking.BookingID.String()

	bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(booking, nil)
	bookingRepo.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, gomock.Any(),
		models.BookingStatusStarted).Return(nil)
	rideRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)
	// Ride already started: the lift conflicts, and the boarding still lands
	rideRepo.EXPECT().MarkArrived(gomock.Any(), rideID, driverID.String()).
		Return(apperrors.ErrStateConflict)
	rideRepo.EXPECT().MarkStarted(gomock.Any(), rideID, driverID.String()).
		Return(apperrors.ErrStateConflict)
	gw.EXPECT().NotifyBookingEvent(gomock.Any(), gomock.Any())

	err := uc.BoardBooking(context.Background(), bookingID)
	assert.NoError(t, err)
}

func TestCompleteBooking_LastDropoffCompletesRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, bookingRepo, _, gw := newTestUC(ctrl)
	driverID := uuid.New()
	ride := poolRide(&driverID, models.RideStatusStarted)
	rideID := ride.RideID.String()
	booking := &models.Booking{
		BookingID: uuid.New(),
		RideID:    ride.RideID,
		Status:    models.BookingStatusStarted,
	}
	bookingID := booking.BookingID.String()

	bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(booking, nil)
	bookingRepo.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID,
		[]models.BookingStatus{models.BookingStatusStarted},
		models.BookingStatusCompleted).Return(nil)
	gw.EXPECT().NotifyBookingEvent(gomock.Any(), gomock.Any())

	// No active bookings remain: the ride completes and settles
	bookingRepo.EXPECT().CountActiveBookings(gomock.Any(), rideID).Return(0, nil)
	rideRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil).Times(2)
	rideRepo.EXPECT().MarkCompleted(gomock.Any(), rideID, driverID.String()).Return(nil)
	gw.EXPECT().NotifyRideEvent(gomock.Any(), gomock.Any())
	gw.EXPECT().RequestSettlement(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.CompleteBooking(context.Background(), bookingID)
	assert.NoError(t, err)
}

func TestCompleteBooking_OthersStillAboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, bookingRepo, _, gw := newTestUC(ctrl)
	booking := &models.Booking{
		BookingID: uuid.New(),
		RideID:    uuid.New(),
		Status:    models.BookingStatusStarted,
	}
	bookingID := booking.BookingID.String()

	bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(booking, nil)
	bookingRepo.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, gomock.Any(),
		models.BookingStatusCompleted).Return(nil)
	gw.EXPECT().NotifyBookingEvent(gomock.Any(), gomock.Any())
	bookingRepo.EXPECT().CountActiveBookings(gomock.Any(), booking.RideID.String()).Return(1, nil)

	err := uc.CompleteBooking(context.Background(), bookingID)
	assert.NoError(t, err)
}

func TestCancelBooking_LastSeatFoldsRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, rideRepo, bookingRepo, dispatcher, gw := newTestUC(ctrl)
	booking := &models.Booking{
		BookingID: uuid.New(),
		RideID:    uuid.New(),
		Status:    models.BookingStatusConfirmed,
	}
	bookingID := booking.BookingID.String()
	rideID := booking.RideID.String()

	bookingRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(booking, nil)
	bookingRepo.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, gomock.Any(),
		models.BookingStatusCancelled).Return(nil)
	gw.EXPECT().NotifyBookingEvent(gomock.Any(), gomock.Any())
	bookingRepo.EXPECT().CountActiveBookings(gomock.Any(), rideID).Return(0, nil)

	rideRepo.EXPECT().CancelRide(gomock.Any(), rideID, models.RideStatusCancelledRider).Return(nil)
	dispatcher.EXPECT().CancelDispatch(gomock.Any(), rideID).Return(nil)
	gw.EXPECT().NotifyRideEvent(gomock.Any(), gomock.Any())

	err := uc.CancelBooking(context.Background(), bookingID)
	assert.NoError(t, err)
}
