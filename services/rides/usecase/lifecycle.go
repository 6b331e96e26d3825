package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
	"github.com/ojekin/dispatch/services/rides"
)

// RideUC is the ride lifecycle manager. It owns every transition after a
// ride is created: it hands matching to the dispatcher, guards the
// post-acceptance stage progression, aggregates pool bookings onto their
// ride, and hands completed rides off for settlement.
type RideUC struct {
	cfg         *models.Config
	rideRepo    rides.RideRepo
	bookingRepo rides.BookingRepo
	dispatcher  rides.Dispatcher
	gw          rides.RideGW
}

// NewRideUC creates a new ride lifecycle usecase
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	bookingRepo rides.BookingRepo,
	dispatcher rides.Dispatcher,
	gw rides.RideGW,
) *RideUC {
	return &RideUC{
		cfg:         cfg,
		rideRepo:    rideRepo,
		bookingRepo: bookingRepo,
		dispatcher:  dispatcher,
		gw:          gw,
	}
}

// RequestRide creates a ride and, for instant and pool trips, starts
// matching immediately. Scheduled rides wait for the dispatch poller.
func (uc *RideUC) RequestRide(ctx context.Context, req *models.RideRequest) (*models.Ride, error) {
	passengerID, err := uuid.Parse(req.PassengerID)
	if err != nil {
		return nil, apperrors.ErrInvalidUserID
	}
	if !validCoordinates(&req.Pickup) || !validCoordinates(&req.Dropoff) {
		return nil, apperrors.ErrInvalidLocation
	}

	tripType := req.TripType
	if tripType == "" {
		tripType = models.TripTypeInstant
	}

	now := time.Now()
	ride := &models.Ride{
		RideID:      uuid.New(),
		PassengerID: passengerID,
		Status:      models.RideStatusRequested,
		TripType:    tripType,
		Region:      req.Region,
		ServiceType: req.ServiceType,
		Pickup:      req.Pickup,
		Dropoff:     req.Dropoff,
		DistanceKm:  req.DistanceKm,
		DurationMin: req.DurationMin,
		Fare:        req.Fare,
		RequestedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch tripType {
	case models.TripTypeScheduled:
		if req.ScheduledAt.IsZero() {
			return nil, fmt.Errorf("scheduled ride requires scheduled_at")
		}
		scheduledAt := req.ScheduledAt
		ride.ScheduledAt = &scheduledAt
		ride.Status = models.RideStatusScheduled

		// A pre-assigned driver turns the ride into a reservation held
		// until the hold window lapses
		if req.ReservedDriverID != "" {
			reservedID, err := uuid.Parse(req.ReservedDriverID)
			if err != nil {
				return nil, apperrors.ErrInvalidDriverID
			}
			ride.Status = models.RideStatusReserved
			ride.DriverID = &reservedID
			if !req.ReservationHoldEnd.IsZero() {
				holdEnd := req.ReservationHoldEnd
				ride.ReservationExpiresAt = &holdEnd
			}
		}
	case models.TripTypePool:
		batchID := uuid.New()
		ride.PoolBatchID = &batchID
	}

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	// The requesting passenger's own seat on a pool ride
	if tripType == models.TripTypePool {
		seats := req.Seats
		if seats <= 0 {
			seats = 1
		}
		booking := &models.Booking{
			BookingID:   uuid.New(),
			RideID:      ride.RideID,
			PassengerID: passengerID,
			Seats:       seats,
			Status:      models.BookingStatusConfirmed,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
	}

	uc.gw.NotifyRideEvent(ctx, models.RideEvent{
		RideID:    ride.RideID.String(),
		Status:    ride.Status,
		Timestamp: now,
	})

	if ride.Status == models.RideStatusRequested {
		// Matching runs off the request path; its outcome arrives as events
		go func() {
			if err := uc.dispatcher.DispatchRide(context.Background(), ride, ""); err != nil {
				logger.Error("Failed to dispatch ride",
					logger.String("ride_id", ride.RideID.String()),
					logger.Err(err))
			}
		}()
	}

	return ride, nil
}

// GetRide retrieves a ride by ID
func (uc *RideUC) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	if rideID == "" {
		return nil, apperrors.ErrInvalidRideID
	}
	return uc.rideRepo.GetRideByID(ctx, rideID)
}

// DriverArrived marks the driver as waiting at the pickup point
func (uc *RideUC) DriverArrived(ctx context.Context, rideID, driverID string) error {
	if err := uc.rideRepo.MarkArrived(ctx, rideID, driverID); err != nil {
		return err
	}
	uc.gw.NotifyRideEvent(ctx, models.RideEvent{
		RideID:    rideID,
		Status:    models.RideStatusArrivedPickup,
		DriverID:  driverID,
		Timestamp: time.Now(),
	})
	return nil
}

// StartRide begins the trip
func (uc *RideUC) StartRide(ctx context.Context, rideID, driverID string) error {
	if err := uc.rideRepo.MarkStarted(ctx, rideID, driverID); err != nil {
		return err
	}
	uc.gw.NotifyRideEvent(ctx, models.RideEvent{
		RideID:    rideID,
		Status:    models.RideStatusStarted,
		DriverID:  driverID,
		Timestamp: time.Now(),
	})
	return nil
}

// CompleteRide finishes the trip and hands the fare off for settlement.
// Settlement is downstream of completion: a failed hand-off is logged and
// retried out of band, never unwound.
func (uc *RideUC) CompleteRide(ctx context.Context, rideID, driverID string) error {
	if err := uc.rideRepo.MarkCompleted(ctx, rideID, driverID); err != nil {
		return err
	}

	uc.gw.NotifyRideEvent(ctx, models.RideEvent{
		RideID:    rideID,
		Status:    models.RideStatusCompleted,
		DriverID:  driverID,
		Timestamp: time.Now(),
	})

	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		logger.Error("Failed to load completed ride for settlement",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return nil
	}

	uc.requestSettlement(ctx, ride)
	return nil
}

func (uc *RideUC) requestSettlement(ctx context.Context, ride *models.Ride) {
	driverID := ""
	if ride.DriverID != nil {
		driverID = ride.DriverID.String()
	}
	err := uc.gw.RequestSettlement(ctx, models.SettlementRequest{
		RideID:      ride.RideID.String(),
		DriverID:    driverID,
		ServiceType: ride.ServiceType,
		TripType:    ride.TripType,
		BaseAmount:  ride.Fare,
	})
	if err != nil {
		logger.Error("Settlement hand-off failed",
			logger.String("ride_id", ride.RideID.String()),
			logger.Err(err))
	}
}

// CancelRide cancels a ride with the given terminal status. A cancel that
// lands while matching is in flight also tears down the offer loop.
func (uc *RideUC) CancelRide(ctx context.Context, rideID string, by models.RideStatus) error {
	if rideID == "" {
		return apperrors.ErrInvalidRideID
	}
	switch by {
	case models.RideStatusCancelledDriver, models.RideStatusCancelledRider, models.RideStatusCancelledSystem:
	default:
		return fmt.Errorf("invalid cancel status: %s", by)
	}

	if err := uc.rideRepo.CancelRide(ctx, rideID, by); err != nil {
		return err
	}

	if err := uc.dispatcher.CancelDispatch(ctx, rideID); err != nil {
		logger.Warn("Failed to tear down dispatch state on cancel",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	uc.gw.NotifyRideEvent(ctx, models.RideEvent{
		RideID:    rideID,
		Status:    by,
		Timestamp: time.Now(),
	})
	return nil
}

func validCoordinates(loc *models.Location) bool {
	return loc.Latitude >= -90 && loc.Latitude <= 90 &&
		loc.Longitude >= -180 && loc.Longitude <= 180 &&
		!(loc.Latitude == 0 && loc.Longitude == 0)
}
