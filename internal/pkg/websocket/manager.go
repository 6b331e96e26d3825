package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/ojekin/dispatch/internal/pkg/constants"
	jwtpkg "github.com/ojekin/dispatch/internal/pkg/jwt"
	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
)

// Manager manages WebSocket connections and channel subscriptions.
//
// Fan-out is addressed by channel: driver:{id} and passenger:{id} channels
// bind implicitly to that user's live connections; ride:{id} channels carry
// explicit subscriptions made while a ride is active. Delivery is
// best-effort and at-most-once; a failed or absent connection is logged and
// skipped, never retried.
type Manager struct {
	sync.RWMutex
	clients  map[string][]*models.WebSocketClient // user id -> live connections
	channels map[string]map[string]struct{}       // channel -> subscribed user ids
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients:  make(map[string][]*models.WebSocketClient),
		channels: make(map[string]map[string]struct{}),
		cfg:      jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwtpkg.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
		ConnID: uuid.New().String(),
	}, nil
}

// AddClient registers a live connection for a user
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = append(m.clients[client.UserID], client)
}

// RemoveClient removes one connection of a user, identified by its ConnID.
// It returns the number of connections that remain for the user, so callers
// can treat the drop of the last connection as a true offline signal.
func (m *Manager) RemoveClient(userID, connID string) int {
	m.Lock()
	defer m.Unlock()

	conns := m.clients[userID]
	kept := conns[:0]
	for _, c := range conns {
		if c.ConnID != connID {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		delete(m.clients, userID)
		return 0
	}
	m.clients[userID] = kept
	return len(kept)
}

// Subscribe adds a user to an addressed channel
func (m *Manager) Subscribe(channel, userID string) {
	m.Lock()
	defer m.Unlock()
	if m.channels[channel] == nil {
		m.channels[channel] = make(map[string]struct{})
	}
	m.channels[channel][userID] = struct{}{}
}

// Unsubscribe removes a user from a channel
func (m *Manager) Unsubscribe(channel, userID string) {
	m.Lock()
	defer m.Unlock()
	if subs, ok := m.channels[channel]; ok {
		delete(subs, userID)
		if len(subs) == 0 {
			delete(m.channels, channel)
		}
	}
}

// DropChannel removes a channel and all its subscriptions
func (m *Manager) DropChannel(channel string) {
	m.Lock()
	defer m.Unlock()
	delete(m.channels, channel)
}

// Publish pushes an event to every connection addressed by the channel.
// driver:{id} and passenger:{id} channels resolve directly to that user;
// other channels resolve through explicit subscriptions.
func (m *Manager) Publish(channel, event string, data interface{}) {
	for _, userID := range m.resolveChannel(channel) {
		m.NotifyUser(userID, event, data)
	}
}

func (m *Manager) resolveChannel(channel string) []string {
	if userID, ok := implicitChannelUser(channel); ok {
		return []string{userID}
	}

	m.RLock()
	defer m.RUnlock()
	subs := m.channels[channel]
	userIDs := make([]string, 0, len(subs))
	for userID := range subs {
		userIDs = append(userIDs, userID)
	}
	return userIDs
}

func implicitChannelUser(channel string) (string, bool) {
	for _, prefix := range []string{"driver:", "passenger:"} {
		if strings.HasPrefix(channel, prefix) {
			return strings.TrimPrefix(channel, prefix), true
		}
	}
	return "", false
}

// NotifyUser sends an event to every live connection of a user
func (m *Manager) NotifyUser(userID, event string, data interface{}) {
	m.RLock()
	conns := make([]*models.WebSocketClient, len(m.clients[userID]))
	copy(conns, m.clients[userID])
	m.RUnlock()

	if len(conns) == 0 {
		logger.Debug("No live connection for user, dropping event",
			logger.String("user_id", userID),
			logger.String("event", event))
		return
	}

	for _, client := range conns {
		if err := m.SendMessage(client.Conn, event, data); err != nil {
			logger.Warn("Error sending message to client",
				logger.String("user_id", userID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}

// SendMessage sends a message to a WebSocket connection
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return conn.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket connection
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
