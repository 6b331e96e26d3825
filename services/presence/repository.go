package presence

import (
	"context"

	"github.com/ojekin/dispatch/internal/pkg/models"
)

// PresenceRepo defines the ephemeral presence index operations
type PresenceRepo interface {
	// SetOnline registers the driver under the scope's geo index and online
	// set, and tracks the live connection id. Reports whether the driver
	// was previously unknown to the index.
	SetOnline(ctx context.Context, driverID string, scope models.Scope, loc *models.Location, connID string) (bool, error)

	// RefreshLocation updates the driver's geo entry and presence record as
	// one logical unit, refreshing the presence TTL. Idempotent.
	RefreshLocation(ctx context.Context, driverID string, scope models.Scope, loc *models.Location) error

	// RemoveConnection drops one live connection and reports how many
	// remain for the driver.
	RemoveConnection(ctx context.Context, driverID, connID string) (int64, error)

	// SetOffline removes the driver from every scope it registered under.
	// Reports whether the driver was actually registered.
	SetOffline(ctx context.Context, driverID string) (bool, error)

	// Nearby returns online drivers within radiusM meters of the point,
	// nearest first, capped at limit.
	Nearby(ctx context.Context, scope models.Scope, point *models.Location, radiusM float64, limit int) ([]*models.NearbyDriver, error)

	// GetPresence returns the driver's current presence record.
	GetPresence(ctx context.Context, driverID string) (*models.DriverPresence, error)

	// IsOnline reports whether the driver is currently registered under the
	// scope's online set.
	IsOnline(ctx context.Context, driverID string, scope models.Scope) (bool, error)
}
