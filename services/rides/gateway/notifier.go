package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ojekin/dispatch/internal/pkg/constants"
	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
	natspkg "github.com/ojekin/dispatch/internal/pkg/nats"
	"github.com/ojekin/dispatch/internal/pkg/retry"
	wspkg "github.com/ojekin/dispatch/internal/pkg/websocket"
	"github.com/ojekin/dispatch/services/rides"
)

// rideGW publishes lifecycle events over NATS and fans them out to the
// ride's WebSocket channel. The settlement hand-off rides the same NATS
// connection on its own subject, retried with backoff because losing it
// means an unbilled ride.
type rideGW struct {
	natsClient *natspkg.Client
	wsManager  *wspkg.Manager
	retrier    *retry.Retrier
}

// NewRideGW creates a new ride gateway instance
func NewRideGW(natsClient *natspkg.Client, wsManager *wspkg.Manager) rides.RideGW {
	return &rideGW{
		natsClient: natsClient,
		wsManager:  wsManager,
		retrier:    retry.New(retry.DefaultConfig()),
	}
}

// NotifyRideEvent broadcasts a stage transition. A terminal transition is
// the last message the ride channel will ever carry, so the channel and
// its subscriptions are torn down after the fan-out.
func (g *rideGW) NotifyRideEvent(ctx context.Context, event models.RideEvent) {
	channel := constants.RideChannel(event.RideID)
	g.wsManager.Publish(channel, constants.EventForRideStatus(event.Status), event)
	g.publish(constants.SubjectForRideStatus(event.Status), event)
	if event.Status.IsTerminal() {
		g.wsManager.DropChannel(channel)
	}
}

// NotifyBookingEvent broadcasts a booking transition to the passenger and
// the ride channel
func (g *rideGW) NotifyBookingEvent(ctx context.Context, event models.BookingEvent) {
	g.wsManager.Publish(constants.PassengerChannel(event.PassengerID), constants.EventBookingUpdated, event)
	g.wsManager.Publish(constants.RideChannel(event.RideID), constants.EventBookingUpdated, event)
	g.publish(constants.SubjectBookingUpdated, event)
}

// RequestSettlement hands a completed ride to the settlement consumer
func (g *rideGW) RequestSettlement(ctx context.Context, req models.SettlementRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal settlement request: %w", err)
	}
	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.natsClient.Publish(constants.SubjectSettlementRequest, data)
	})
	if err != nil {
		return fmt.Errorf("failed to publish settlement request: %w", err)
	}
	return nil
}

func (g *rideGW) publish(subject string, payload interface{}) {
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

