package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/cache"
	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
	"github.com/ojekin/dispatch/internal/pkg/observability"
	"github.com/ojekin/dispatch/services/presence"
)

// PresenceUC implements the presence.PresenceUC interface
type PresenceUC struct {
	cfg          *models.Config
	presenceRepo presence.PresenceRepo
	rideLookup   presence.ActiveRideLookup
	rideCache    *cache.TTLCache
	notifier     presence.Notifier
}

// NewPresenceUC creates a new presence use case
func NewPresenceUC(
	cfg *models.Config,
	presenceRepo presence.PresenceRepo,
	rideLookup presence.ActiveRideLookup,
	notifier presence.Notifier,
) *PresenceUC {
	return &PresenceUC{
		cfg:          cfg,
		presenceRepo: presenceRepo,
		rideLookup:   rideLookup,
		rideCache:    cache.New(time.Duration(cfg.Presence.RideCacheSeconds) * time.Second),
		notifier:     notifier,
	}
}

func validateLocation(loc *models.Location) error {
	if loc == nil {
		return apperrors.ErrInvalidLocation
	}
	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return apperrors.ErrInvalidLocation
	}
	return nil
}

// SetOnline registers a driver for a scope
func (uc *PresenceUC) SetOnline(ctx context.Context, event models.BeaconEvent) error {
	if event.DriverID == "" {
		return apperrors.ErrInvalidDriverID
	}
	if err := validateLocation(&event.Location); err != nil {
		return err
	}

	newlyOnline, err := uc.presenceRepo.SetOnline(ctx, event.DriverID, event.Scope, &event.Location, event.ConnID)
	if err != nil {
		return fmt.Errorf("failed to register driver: %w", err)
	}

	// A repeated beacon refreshes the registration without moving the gauge
	if newlyOnline {
		observability.DriversOnline.Inc()
	}
	logger.Info("Driver online",
		logger.String("driver_id", event.DriverID),
		logger.String("region", event.Scope.Region),
		logger.String("service", event.Scope.Service))
	return nil
}

// UpdateLocation refreshes the driver's presence record and geo entry.
// If the driver is serving an active ride, the tick is mirrored to the
// ride's channel so the passenger sees live progress. The active-ride
// lookup goes through a bounded-TTL cache because this path runs on every
// tick.
func (uc *PresenceUC) UpdateLocation(ctx context.Context, driverID string, scope models.Scope, loc models.Location) error {
	if driverID == "" {
		return apperrors.ErrInvalidDriverID
	}
	if err := validateLocation(&loc); err != nil {
		return err
	}

	if err := uc.presenceRepo.RefreshLocation(ctx, driverID, scope, &loc); err != nil {
		return fmt.Errorf("failed to refresh location: %w", err)
	}

	if rideID := uc.activeRideID(ctx, driverID); rideID != "" {
		uc.notifier.PublishRideLocation(ctx, rideID, models.LocationUpdate{
			RideID:    rideID,
			DriverID:  driverID,
			Location:  loc,
			CreatedAt: time.Now(),
		})
	}

	return nil
}

func (uc *PresenceUC) activeRideID(ctx context.Context, driverID string) string {
	if rideID, ok := uc.rideCache.Get(driverID); ok {
		return rideID
	}

	rideID, err := uc.rideLookup.GetActiveRideIDByDriver(ctx, driverID)
	if err != nil {
		logger.Warn("Failed to look up active ride for driver",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return ""
	}

	// Cache empty results too, otherwise idle drivers hit the durable
	// store on every tick
	uc.rideCache.Set(driverID, rideID)
	return rideID
}

// SetOffline removes the driver from the presence index entirely
func (uc *PresenceUC) SetOffline(ctx context.Context, driverID string) error {
	if driverID == "" {
		return apperrors.ErrInvalidDriverID
	}

	wasOnline, err := uc.presenceRepo.SetOffline(ctx, driverID)
	if err != nil {
		return fmt.Errorf("failed to set driver offline: %w", err)
	}
	uc.rideCache.Invalidate(driverID)

	if wasOnline {
		observability.DriversOnline.Dec()
	}
	logger.Info("Driver offline", logger.String("driver_id", driverID))
	return nil
}

// ConnectionClosed handles a dropped live connection. A driver may hold
// several concurrent connections; it only goes offline when the last one
// drops.
func (uc *PresenceUC) ConnectionClosed(ctx context.Context, driverID, connID string) error {
	remaining, err := uc.presenceRepo.RemoveConnection(ctx, driverID, connID)
	if err != nil {
		return fmt.Errorf("failed to drop connection: %w", err)
	}
	if remaining > 0 {
		logger.Debug("Driver still has live connections",
			logger.String("driver_id", driverID),
			logger.Int64("remaining", remaining))
		return nil
	}
	return uc.SetOffline(ctx, driverID)
}

// Nearby returns online drivers near the point, nearest first
func (uc *PresenceUC) Nearby(ctx context.Context, scope models.Scope, point *models.Location, radiusM float64, limit int) ([]*models.NearbyDriver, error) {
	if err := validateLocation(point); err != nil {
		return nil, err
	}
	return uc.presenceRepo.Nearby(ctx, scope, point, radiusM, limit)
}

// GetPresence returns the driver's last known presence record, or nil when
// the driver is not registered
func (uc *PresenceUC) GetPresence(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	if driverID == "" {
		return nil, apperrors.ErrInvalidDriverID
	}
	return uc.presenceRepo.GetPresence(ctx, driverID)
}
