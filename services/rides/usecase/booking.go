package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
)

// CreateBooking adds a passenger's seat to an open pool ride
func (uc *RideUC) CreateBooking(ctx context.Context, rideID, passengerID string, seats int) (*models.Booking, error) {
	passengerUUID, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, apperrors.ErrInvalidUserID
	}

	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.TripType != models.TripTypePool {
		return nil, fmt.Errorf("ride %s is not a pool ride", rideID)
	}
	if ride.Status.IsTerminal() || ride.Status == models.RideStatusStarted {
		return nil, apperrors.ErrStateConflict
	}
	if seats <= 0 {
		seats = 1
	}

	now := time.Now()
	booking := &models.Booking{
		BookingID:   uuid.New(),
		RideID:      ride.RideID,
		PassengerID: passengerUUID,
		Seats:       seats,
		Status:      models.BookingStatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	uc.notifyBooking(ctx, booking, models.BookingStatusConfirmed)
	return booking, nil
}

// ListBookings returns every booking attached to the ride, terminal ones
// included
func (uc *RideUC) ListBookings(ctx context.Context, rideID string) ([]*models.Booking, error) {
	if _, err := uc.rideRepo.GetRideByID(ctx, rideID); err != nil {
		return nil, err
	}
	return uc.bookingRepo.GetBookingsByRide(ctx, rideID)
}

// ArriveBooking records the driver reaching a passenger's pickup point.
// The first arrival lifts the ride itself into arrived_pickup; arrivals
// at later pickups find that transition already applied and skip past
// the conflict.
func (uc *RideUC) ArriveBooking(ctx context.Context, bookingID string) error {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	err = uc.bookingRepo.UpdateBookingStatus(ctx, bookingID,
		[]models.BookingStatus{models.BookingStatusConfirmed},
		models.BookingStatusArrived)
	if err != nil {
		return err
	}

	ride, err := uc.rideRepo.GetRideByID(ctx, booking.RideID.String())
	if err != nil {
		return err
	}
	if ride.DriverID != nil {
		if err := uc.rideRepo.MarkArrived(ctx, ride.RideID.String(), ride.DriverID.String()); err != nil && !apperrors.IsStateConflict(err) {
			return err
		}
	}

	uc.notifyBooking(ctx, booking, models.BookingStatusArrived)
	return nil
}

// BoardBooking marks a passenger as on board. The first boarding lifts the
// ride itself through arrived_pickup into started; later boardings find
// those transitions already applied and skip past the conflicts.
func (uc *RideUC) BoardBooking(ctx context.Context, bookingID string) error {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	err = uc.bookingRepo.UpdateBookingStatus(ctx, bookingID,
		[]models.BookingStatus{models.BookingStatusConfirmed, models.BookingStatusArrived},
		models.BookingStatusStarted)
	if err != nil {
		return err
	}

	ride, err := uc.rideRepo.GetRideByID(ctx, booking.RideID.String())
	if err != nil {
		return err
	}
	if ride.DriverID != nil {
		driverID := ride.DriverID.String()
		if err := uc.rideRepo.MarkArrived(ctx, ride.RideID.String(), driverID); err != nil && !apperrors.IsStateConflict(err) {
			return err
		}
		if err := uc.rideRepo.MarkStarted(ctx, ride.RideID.String(), driverID); err != nil && !apperrors.IsStateConflict(err) {
			return err
		}
	}

	uc.notifyBooking(ctx, booking, models.BookingStatusStarted)
	return nil
}

// CompleteBooking drops a passenger off. The booking whose completion
// leaves no active bookings also completes the ride; the guarded ride
// update makes that exactly once even when drop-offs race.
func (uc *RideUC) CompleteBooking(ctx context.Context, bookingID string) error {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	err = uc.bookingRepo.UpdateBookingStatus(ctx, bookingID,
		[]models.BookingStatus{models.BookingStatusStarted},
		models.BookingStatusCompleted)
	if err != nil {
		return err
	}

	uc.notifyBooking(ctx, booking, models.BookingStatusCompleted)
	return uc.completeRideIfDrained(ctx, booking.RideID.String())
}

// CancelBooking withdraws a seat before the passenger boards
func (uc *RideUC) CancelBooking(ctx context.Context, bookingID string) error {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	err = uc.bookingRepo.UpdateBookingStatus(ctx, bookingID,
		[]models.BookingStatus{models.BookingStatusConfirmed, models.BookingStatusArrived},
		models.BookingStatusCancelled)
	if err != nil {
		return err
	}

	uc.notifyBooking(ctx, booking, models.BookingStatusCancelled)

	// A pool ride whose last seat cancels before departure folds up
	rideID := booking.RideID.String()
	active, err := uc.bookingRepo.CountActiveBookings(ctx, rideID)
	if err != nil {
		return err
	}
	if active == 0 {
		if err := uc.CancelRide(ctx, rideID, models.RideStatusCancelledRider); err != nil && !apperrors.IsStateConflict(err) {
			return err
		}
	}
	return nil
}

func (uc *RideUC) completeRideIfDrained(ctx context.Context, rideID string) error {
	active, err := uc.bookingRepo.CountActiveBookings(ctx, rideID)
	if err != nil {
		return err
	}
	if active > 0 {
		return nil
	}

	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.DriverID == nil {
		return nil
	}

	err = uc.CompleteRide(ctx, rideID, ride.DriverID.String())
	if apperrors.IsStateConflict(err) {
		// Another drop-off got there first
		return nil
	}
	return err
}

func (uc *RideUC) notifyBooking(ctx context.Context, booking *models.Booking, status models.BookingStatus) {
	uc.gw.NotifyBookingEvent(ctx, models.BookingEvent{
		BookingID:   booking.BookingID.String(),
		RideID:      booking.RideID.String(),
		PassengerID: booking.PassengerID.String(),
		Status:      status,
		Timestamp:   time.Now(),
	})
	logger.Info("Booking transitioned",
		logger.String("booking_id", booking.BookingID.String()),
		logger.String("ride_id", booking.RideID.String()),
		logger.String("status", string(status)))
}
