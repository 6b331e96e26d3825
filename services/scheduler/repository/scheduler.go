package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ojekin/dispatch/internal/pkg/models"
)

// SchedulerRepo is the poller's view of the rides table
type SchedulerRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewSchedulerRepository creates a new scheduler repository
func NewSchedulerRepository(cfg *models.Config, db *sqlx.DB) *SchedulerRepo {
	return &SchedulerRepo{
		cfg: cfg,
		db:  db,
	}
}

const claimedRideColumns = `
		ride_id, passenger_id, driver_id, status, trip_type, region, service_type,
		pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
		distance_km, duration_min, fare,
		offer_driver_id, offer_expires_at, pool_batch_id,
		scheduled_at, reservation_expires_at,
		requested_at, accepted_at, arrived_at, started_at, completed_at, cancelled_at,
		created_at, updated_at`

// ReleaseAndClaimDue releases lapsed reservation holds and claims due rides
// inside one transaction. Released rides drop their held driver so they go
// through normal candidate discovery when claimed. Skip-locked keeps
// concurrent pollers from claiming the same rows; the guarded status
// transition keeps a ride cancelled between select and update out of the
// claim.
func (r *SchedulerRepo) ReleaseAndClaimDue(ctx context.Context, now, due time.Time, limit int) (int64, []*models.Ride, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	releaseQuery := `
		UPDATE rides
		SET status = 'scheduled', driver_id = NULL, reservation_expires_at = NULL, updated_at = $1
		WHERE status = 'reserved' AND reservation_expires_at IS NOT NULL AND reservation_expires_at < $1`

	result, err := tx.ExecContext(ctx, releaseQuery, now)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to release expired reservations: %w", err)
	}
	released, err := result.RowsAffected()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	claimQuery := `
		UPDATE rides
		SET status = 'requested', updated_at = $1
		WHERE ride_id IN (
			SELECT ride_id FROM rides
			WHERE status IN ('scheduled', 'reserved') AND scheduled_at <= $2
			ORDER BY scheduled_at ASC
			LIMIT $3
			FOR UPDATE SKIP LOCKED
		)
		RETURNING` + claimedRideColumns

	claimed, err := scanRides(tx.QueryxContext(ctx, claimQuery, now, due, limit))
	if err != nil {
		return 0, nil, err
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return released, claimed, nil
}

// ReopenExpiredOffers returns offered rides whose lease timestamp has
// passed to requested and clears the stale offer columns. The guard on
// offer_expires_at keeps a live offer untouched even when several pollers
// sweep at once.
func (r *SchedulerRepo) ReopenExpiredOffers(ctx context.Context, now time.Time) ([]*models.Ride, error) {
	query := `
		UPDATE rides
		SET status = 'requested', offer_driver_id = NULL, offer_expires_at = NULL, updated_at = $1
		WHERE status = 'offered' AND offer_expires_at IS NOT NULL AND offer_expires_at < $1
		RETURNING` + claimedRideColumns

	return scanRides(r.db.QueryxContext(ctx, query, now))
}

func scanRides(rows *sqlx.Rows, err error) ([]*models.Ride, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to update rides: %w", err)
	}
	defer rows.Close()

	var rides []*models.Ride
	for rows.Next() {
		var dto models.RideDTO
		if err := rows.StructScan(&dto); err != nil {
			return nil, fmt.Errorf("failed to scan ride: %w", err)
		}
		rides = append(rides, dto.ToRide())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rides: %w", err)
	}
	return rides, nil
}
