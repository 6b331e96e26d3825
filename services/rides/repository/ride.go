package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/models"
)

// RideRepo is the durable ride store on Postgres. The rides table is the
// single source of truth for ride status; every transition here is a
// guarded conditional update and a zero-row result surfaces as
// apperrors.ErrStateConflict so concurrent writers converge instead of
// clobbering each other.
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

const rideColumns = `
	ride_id, passenger_id, driver_id, status, trip_type, region, service_type,
	pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
	distance_km, duration_min, fare,
	offer_driver_id, offer_expires_at, pool_batch_id,
	scheduled_at, reservation_expires_at,
	requested_at, accepted_at, arrived_at, started_at, completed_at, cancelled_at,
	created_at, updated_at`

// CreateRide inserts a new ride row
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (
			ride_id, passenger_id, driver_id, status, trip_type, region, service_type,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			distance_km, duration_min, fare,
			offer_driver_id, offer_expires_at, pool_batch_id,
			scheduled_at, reservation_expires_at,
			requested_at, created_at, updated_at
		) VALUES (
			:ride_id, :passenger_id, :driver_id, :status, :trip_type, :region, :service_type,
			:pickup_latitude, :pickup_longitude, :dropoff_latitude, :dropoff_longitude,
			:distance_km, :duration_min, :fare,
			:offer_driver_id, :offer_expires_at, :pool_batch_id,
			:scheduled_at, :reservation_expires_at,
			:requested_at, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, ride.ToDTO()); err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}

// GetRideByID retrieves a ride by ID
func (r *RideRepo) GetRideByID(ctx context.Context, rideID string) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE ride_id = $1`

	var dto models.RideDTO
	if err := r.db.GetContext(ctx, &dto, query, rideID); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return dto.ToRide(), nil
}

// GetActiveRideIDByDriver returns the driver's in-flight ride, if any.
// An empty string with nil error means the driver has no active ride.
func (r *RideRepo) GetActiveRideIDByDriver(ctx context.Context, driverID string) (string, error) {
	query := `
		SELECT ride_id FROM rides
		WHERE driver_id = $1
		AND status IN ('accepted', 'arrived_pickup', 'started')
		ORDER BY accepted_at DESC
		LIMIT 1`

	var rideID string
	err := r.db.QueryRowContext(ctx, query, driverID).Scan(&rideID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get active ride for driver: %w", err)
	}
	return rideID, nil
}

// SetOffer records the outstanding offer on a ride that is still matching.
// A stale 'offered' row is re-offerable: if the reopen after an expired
// offer was lost, the next offer overwrites the old columns instead of
// conflicting, so the loop keeps advancing.
func (r *RideRepo) SetOffer(ctx context.Context, rideID, driverID string, expireAt time.Time) error {
	query := `
		UPDATE rides
		SET status = 'offered', offer_driver_id = $1, offer_expires_at = $2, updated_at = $3
		WHERE ride_id = $4 AND status IN ('requested', 'offered')`

	return r.guardedExec(ctx, query, driverID, expireAt, time.Now(), rideID)
}

// ReopenRequested returns an offered ride to the requested state after the
// offer expired or was declined
func (r *RideRepo) ReopenRequested(ctx context.Context, rideID string) error {
	query := `
		UPDATE rides
		SET status = 'requested', offer_driver_id = NULL, offer_expires_at = NULL, updated_at = $1
		WHERE ride_id = $2 AND status = 'offered'`

	return r.guardedExec(ctx, query, time.Now(), rideID)
}

// MarkNoDrivers terminates a ride whose candidate queue was exhausted
func (r *RideRepo) MarkNoDrivers(ctx context.Context, rideID string) error {
	query := `
		UPDATE rides
		SET status = 'no_drivers', offer_driver_id = NULL, offer_expires_at = NULL, updated_at = $1
		WHERE ride_id = $2 AND status IN ('requested', 'offered')`

	return r.guardedExec(ctx, query, time.Now(), rideID)
}

// FinalizeOnAccept assigns the ride to the driver holding the offer. The
// guard pins both the status and the offer holder, so a driver whose
// offer was superseded cannot win a ride that was re-offered.
func (r *RideRepo) FinalizeOnAccept(ctx context.Context, rideID, driverID string) error {
	now := time.Now()
	query := `
		UPDATE rides
		SET status = 'accepted', driver_id = $1,
		    offer_driver_id = NULL, offer_expires_at = NULL,
		    accepted_at = $2, updated_at = $2
		WHERE ride_id = $3 AND status = 'offered' AND offer_driver_id = $1`

	return r.guardedExec(ctx, query, driverID, now, rideID)
}

// ClearOffer drops the offer columns without changing status
func (r *RideRepo) ClearOffer(ctx context.Context, rideID string) error {
	query := `
		UPDATE rides
		SET offer_driver_id = NULL, offer_expires_at = NULL, updated_at = $1
		WHERE ride_id = $2 AND offer_driver_id IS NOT NULL`

	return r.guardedExec(ctx, query, time.Now(), rideID)
}

// MarkArrived moves an accepted ride to arrived_pickup
func (r *RideRepo) MarkArrived(ctx context.Context, rideID, driverID string) error {
	now := time.Now()
	query := `
		UPDATE rides
		SET status = 'arrived_pickup', arrived_at = $1, updated_at = $1
		WHERE ride_id = $2 AND driver_id = $3 AND status = 'accepted'`

	return r.guardedExec(ctx, query, now, rideID, driverID)
}

// MarkStarted moves an arrived ride to started
func (r *RideRepo) MarkStarted(ctx context.Context, rideID, driverID string) error {
	now := time.Now()
	query := `
		UPDATE rides
		SET status = 'started', started_at = $1, updated_at = $1
		WHERE ride_id = $2 AND driver_id = $3 AND status = 'arrived_pickup'`

	return r.guardedExec(ctx, query, now, rideID, driverID)
}

// MarkCompleted moves a started ride to completed
func (r *RideRepo) MarkCompleted(ctx context.Context, rideID, driverID string) error {
	now := time.Now()
	query := `
		UPDATE rides
		SET status = 'completed', completed_at = $1, updated_at = $1
		WHERE ride_id = $2 AND driver_id = $3 AND status = 'started'`

	return r.guardedExec(ctx, query, now, rideID, driverID)
}

// CancelRide moves any non-terminal ride to the given cancelled status
func (r *RideRepo) CancelRide(ctx context.Context, rideID string, terminal models.RideStatus) error {
	now := time.Now()
	query := `
		UPDATE rides
		SET status = $1, offer_driver_id = NULL, offer_expires_at = NULL,
		    cancelled_at = $2, updated_at = $2
		WHERE ride_id = $3
		AND status IN ('requested', 'offered', 'accepted', 'arrived_pickup', 'started', 'scheduled', 'reserved')`

	return r.guardedExec(ctx, query, terminal, now, rideID)
}

func (r *RideRepo) guardedExec(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute transition: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrStateConflict
	}
	return nil
}
