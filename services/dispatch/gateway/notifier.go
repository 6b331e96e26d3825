package gateway

import (
	"context"
	"encoding/json"

	"github.com/ojekin/dispatch/internal/pkg/constants"
	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
	natspkg "github.com/ojekin/dispatch/internal/pkg/nats"
	wspkg "github.com/ojekin/dispatch/internal/pkg/websocket"
	"github.com/ojekin/dispatch/services/dispatch"
)

// dispatchGW fans dispatch events out over two planes: the WebSocket
// manager for connected clients and NATS for downstream consumers. Both
// are best-effort; a failed publish is logged and dropped.
type dispatchGW struct {
	natsClient *natspkg.Client
	wsManager  *wspkg.Manager
}

// NewDispatchGW creates a new dispatch gateway instance
func NewDispatchGW(natsClient *natspkg.Client, wsManager *wspkg.Manager) dispatch.DispatchGW {
	return &dispatchGW{
		natsClient: natsClient,
		wsManager:  wsManager,
	}
}

// NotifyJobOffer pushes an offer to one driver's channel
func (g *dispatchGW) NotifyJobOffer(ctx context.Context, driverID string, offer models.JobOffer) {
	g.wsManager.Publish(constants.DriverChannel(driverID), constants.EventJobOffer, offer)
	g.publishNATS(constants.SubjectDriverOffer, struct {
		DriverID string `json:"driver_id"`
		models.JobOffer
	}{DriverID: driverID, JobOffer: offer})
}

// NotifyOfferCancelled tells a driver their outstanding offer is gone
func (g *dispatchGW) NotifyOfferCancelled(ctx context.Context, driverID, rideID string) {
	payload := map[string]string{"ride_id": rideID}
	g.wsManager.Publish(constants.DriverChannel(driverID), constants.EventOfferCancelled, payload)
	g.publishNATS(constants.SubjectDriverOfferCancelled, struct {
		DriverID string `json:"driver_id"`
		RideID   string `json:"ride_id"`
	}{DriverID: driverID, RideID: rideID})
}

// NotifyRideEvent broadcasts a stage transition to the ride's channel
func (g *dispatchGW) NotifyRideEvent(ctx context.Context, event models.RideEvent) {
	g.wsManager.Publish(constants.RideChannel(event.RideID), constants.EventForRideStatus(event.Status), event)
	g.publishNATS(constants.SubjectForRideStatus(event.Status), event)
}

func (g *dispatchGW) publishNATS(subject string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("Failed to marshal event payload",
			logger.String("subject", subject),
			logger.Err(err))
		return
	}
	if err := g.natsClient.Publish(subject, data); err != nil {
		logger.Warn("Failed to publish event",
			logger.String("subject", subject),
			logger.Err(err))
	}
}

