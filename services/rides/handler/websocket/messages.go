package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/constants"
	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
)

// subscribeRequest targets an explicit channel, currently only ride
// channels. Driver and passenger channels are implicit to the connection.
type subscribeRequest struct {
	Channel string `json:"channel"`
}

// locationTick is a driver location update scoped to one presence partition
type locationTick struct {
	Scope    models.Scope    `json:"scope"`
	Location models.Location `json:"location"`
}

func (h *WebSocketHandler) handleMessage(client *models.WebSocketClient, raw []byte) error {
	var msg models.WSMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "invalid message format")
	}

	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(client.Conn, constants.EventPong, nil)
	case constants.EventSubscribe:
		return h.handleSubscribe(client, msg.Data, true)
	case constants.EventUnsubscribe:
		return h.handleSubscribe(client, msg.Data, false)
	case constants.EventBeaconUpdate:
		return h.handleBeaconUpdate(client, msg.Data)
	case constants.EventLocationUpdate:
		return h.handleLocationUpdate(client, msg.Data)
	case constants.EventOfferResponse:
		return h.handleOfferResponse(client, msg.Data)
	default:
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, errUnknownEvent.Error())
	}
}

func (h *WebSocketHandler) handleSubscribe(client *models.WebSocketClient, data json.RawMessage, subscribe bool) error {
	var req subscribeRequest
	if err := json.Unmarshal(data, &req); err != nil || req.Channel == "" {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "channel is required")
	}

	if subscribe {
		h.manager.Subscribe(req.Channel, client.UserID)
	} else {
		h.manager.Unsubscribe(req.Channel, client.UserID)
	}
	return nil
}

// handleBeaconUpdate toggles the driver's availability for a scope
func (h *WebSocketHandler) handleBeaconUpdate(client *models.WebSocketClient, data json.RawMessage) error {
	if client.Role != constants.RoleDriver {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, "only drivers update beacons")
	}

	var event models.BeaconEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "invalid beacon format")
	}
	event.DriverID = client.UserID
	event.ConnID = client.ConnID
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	ctx := context.Background()
	var err error
	if event.IsActive {
		err = h.presenceUC.SetOnline(ctx, event)
	} else {
		err = h.presenceUC.SetOffline(ctx, client.UserID)
	}
	if err != nil {
		logger.Error("Beacon update failed",
			logger.String("driver_id", client.UserID),
			logger.Err(err))
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, err.Error())
	}

	return h.manager.SendMessage(client.Conn, constants.EventBeaconUpdate, map[string]bool{"active": event.IsActive})
}

// handleLocationUpdate processes a driver location tick
func (h *WebSocketHandler) handleLocationUpdate(client *models.WebSocketClient, data json.RawMessage) error {
	if client.Role != constants.RoleDriver {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, "only drivers send location ticks")
	}

	var tick locationTick
	if err := json.Unmarshal(data, &tick); err != nil {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "invalid location format")
	}
	if tick.Location.Timestamp.IsZero() {
		tick.Location.Timestamp = time.Now()
	}

	err := h.presenceUC.UpdateLocation(context.Background(), client.UserID, tick.Scope, tick.Location)
	if err != nil {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, err.Error())
	}
	return nil
}

// handleOfferResponse is a driver's answer to an outstanding job offer
func (h *WebSocketHandler) handleOfferResponse(client *models.WebSocketClient, data json.RawMessage) error {
	if client.Role != constants.RoleDriver {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, "only drivers answer offers")
	}

	var resp models.OfferResponse
	if err := json.Unmarshal(data, &resp); err != nil || resp.RideID == "" {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "invalid offer response format")
	}
	resp.DriverID = client.UserID

	ctx := context.Background()
	if resp.Accept {
		ride, err := h.dispatchUC.AcceptOffer(ctx, resp.RideID, resp.DriverID)
		if err != nil {
			if apperrors.IsStateConflict(err) || err == apperrors.ErrNotCurrentOffer {
				return h.manager.SendErrorMessage(client.Conn, constants.ErrorNotCurrentOffer, err.Error())
			}
			logger.Error("Offer accept failed",
				logger.String("ride_id", resp.RideID),
				logger.String("driver_id", resp.DriverID),
				logger.Err(err))
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorInternal, "failed to accept offer")
		}
		return h.manager.SendMessage(client.Conn, constants.EventRideAccepted, ride)
	}

	if err := h.dispatchUC.RejectOffer(ctx, resp.RideID, resp.DriverID); err != nil {
		if err == apperrors.ErrNotCurrentOffer {
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorNotCurrentOffer, err.Error())
		}
		logger.Error("Offer reject failed",
			logger.String("ride_id", resp.RideID),
			logger.String("driver_id", resp.DriverID),
			logger.Err(err))
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInternal, "failed to reject offer")
	}
	return nil
}
