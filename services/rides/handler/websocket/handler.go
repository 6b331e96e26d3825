package websocket

import (
	"context"
	"errors"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/ojekin/dispatch/internal/pkg/constants"
	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
	pkgws "github.com/ojekin/dispatch/internal/pkg/websocket"
	"github.com/ojekin/dispatch/services/dispatch"
	"github.com/ojekin/dispatch/services/presence"
)

// WebSocketHandler ties the live connection plane to the presence and
// dispatch usecases. Drivers push beacons, location ticks and offer
// responses over it; both roles subscribe to ride channels for fan-out.
type WebSocketHandler struct {
	presenceUC presence.PresenceUC
	dispatchUC dispatch.DispatchUC
	manager    *pkgws.Manager
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(
	presenceUC presence.PresenceUC,
	dispatchUC dispatch.DispatchUC,
	manager *pkgws.Manager,
) *WebSocketHandler {
	return &WebSocketHandler{
		presenceUC: presenceUC,
		dispatchUC: dispatchUC,
		manager:    manager,
	}
}

// RegisterRoutes registers the WebSocket endpoint
func (h *WebSocketHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.HandleWebSocket)
}

// HandleWebSocket upgrades and authenticates a new connection
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClientConnection)
}

func (h *WebSocketHandler) handleClientConnection(client *models.WebSocketClient, ws *gorillaws.Conn) error {
	client.Conn = ws
	h.manager.AddClient(client)

	defer func() {
		h.manager.RemoveClient(client.UserID, client.ConnID)
		// Presence refcounts connections: the driver only goes offline
		// when this was the last one
		if client.Role == constants.RoleDriver {
			if err := h.presenceUC.ConnectionClosed(context.Background(), client.UserID, client.ConnID); err != nil {
				logger.Warn("Failed to settle presence on disconnect",
					logger.String("driver_id", client.UserID),
					logger.Err(err))
			}
		}
	}()

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	return h.messageLoop(client)
}

func (h *WebSocketHandler) messageLoop(client *models.WebSocketClient) error {
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if gorillaws.IsUnexpectedCloseError(err, gorillaws.CloseGoingAway, gorillaws.CloseNormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return err
		}

		if err := h.handleMessage(client, msg); err != nil {
			logger.Error("Error handling message",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

var errUnknownEvent = errors.New("unknown event type")
