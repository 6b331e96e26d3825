package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/models"
)

// BookingRepo stores per-passenger seat reservations for pool rides
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateBooking inserts a new booking row
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			booking_id, ride_id, passenger_id, seats, status, fare_share,
			created_at, updated_at
		) VALUES (
			:booking_id, :ride_id, :passenger_id, :seats, :status, :fare_share,
			:created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a booking by ID
func (r *BookingRepo) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	query := `
		SELECT booking_id, ride_id, passenger_id, seats, status, fare_share,
		       created_at, updated_at
		FROM bookings WHERE booking_id = $1`

	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, query, bookingID); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

// GetBookingsByRide returns every booking attached to the ride
func (r *BookingRepo) GetBookingsByRide(ctx context.Context, rideID string) ([]*models.Booking, error) {
	query := `
		SELECT booking_id, ride_id, passenger_id, seats, status, fare_share,
		       created_at, updated_at
		FROM bookings WHERE ride_id = $1
		ORDER BY created_at ASC`

	var bookings []*models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to get bookings for ride: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus applies a guarded transition on one booking. The
// statuses in from are inlined as literals so the guard reads the same way
// it does on the rides table.
func (r *BookingRepo) UpdateBookingStatus(ctx context.Context, bookingID string, from []models.BookingStatus, to models.BookingStatus) error {
	if len(from) == 0 {
		return apperrors.ErrStateConflict
	}

	guards := make([]string, len(from))
	for i, s := range from {
		guards[i] = fmt.Sprintf("'%s'", s)
	}

	query := fmt.Sprintf(`
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE booking_id = $3 AND status IN (%s)`, strings.Join(guards, ", "))

	result, err := r.db.ExecContext(ctx, query, to, time.Now(), bookingID)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
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

// CountActiveBookings returns the number of non-terminal bookings on a ride
func (r *BookingRepo) CountActiveBookings(ctx context.Context, rideID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE ride_id = $1 AND status NOT IN ('completed', 'cancelled')`

	var count int
	if err := r.db.QueryRowContext(ctx, query, rideID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}
	return count, nil
}
