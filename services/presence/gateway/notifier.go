package gateway

import (
	"context"
	"encoding/json"

	"github.com/ojekin/dispatch/internal/pkg/constants"
	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
	natspkg "github.com/ojekin/dispatch/internal/pkg/nats"
	wspkg "github.com/ojekin/dispatch/internal/pkg/websocket"
	"github.com/ojekin/dispatch/services/presence"
)

// presenceGW mirrors driver location ticks to the active ride's channel so
// the passenger sees live progress. Delivery is best-effort; a dropped tick
// is superseded by the next one within seconds.
type presenceGW struct {
	natsClient *natspkg.Client
	wsManager  *wspkg.Manager
}

// NewPresenceGW creates a new presence gateway instance
func NewPresenceGW(natsClient *natspkg.Client, wsManager *wspkg.Manager) presence.Notifier {
	return &presenceGW{
		natsClient: natsClient,
		wsManager:  wsManager,
	}
}

// PublishRideLocation fans a location tick out to the ride channel
func (g *presenceGW) PublishRideLocation(ctx context.Context, rideID string, update models.LocationUpdate) {
	g.wsManager.Publish(constants.RideChannel(rideID), constants.EventRideLocation, update)

	data, err := json.Marshal(update)
	if err != nil {
		logger.Warn("Failed to marshal location update",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return
	}
	if err := g.natsClient.Publish(constants.SubjectRideLocation, data); err != nil {
		logger.Warn("Failed to publish location update",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}
}
