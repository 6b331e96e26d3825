package presence

import (
	"context"

	"github.com/ojekin/dispatch/internal/pkg/models"
)

// PresenceUC defines the presence business logic
type PresenceUC interface {
	SetOnline(ctx context.Context, event models.BeaconEvent) error
	UpdateLocation(ctx context.Context, driverID string, scope models.Scope, loc models.Location) error
	SetOffline(ctx context.Context, driverID string) error
	ConnectionClosed(ctx context.Context, driverID, connID string) error
	Nearby(ctx context.Context, scope models.Scope, point *models.Location, radiusM float64, limit int) ([]*models.NearbyDriver, error)
	GetPresence(ctx context.Context, driverID string) (*models.DriverPresence, error)
}

// ActiveRideLookup resolves the ride a driver is currently serving, if any.
// Implemented by the rides repository; consulted through a bounded-TTL cache
// because it runs on every location tick.
type ActiveRideLookup interface {
	GetActiveRideIDByDriver(ctx context.Context, driverID string) (string, error)
}

// Notifier mirrors location ticks to the active ride's channel
type Notifier interface {
	PublishRideLocation(ctx context.Context, rideID string, update models.LocationUpdate)
}
